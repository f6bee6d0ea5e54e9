package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.InventoryHistoryRepository = (*InventoryHistoryRepo)(nil)

// InventoryHistoryRepo implementación de InventoryHistoryRepository sobre PostgreSQL.
// La tabla es append-only: no hay update ni delete.
type InventoryHistoryRepo struct {
	db querier
}

// NewInventoryHistoryRepository construye el adaptador (acepta pool o tx).
func NewInventoryHistoryRepository(db querier) *InventoryHistoryRepo {
	return &InventoryHistoryRepo{db: db}
}

const historyColumns = `id, inventory_id, item_id, plant_id, action, previous_quantity, quantity, user_id, created_at`

// Create agrega un registro al historial.
func (r *InventoryHistoryRepo) Create(ctx context.Context, h *entity.InventoryHistory) error {
	query := `
		INSERT INTO inventory_histories (id, inventory_id, item_id, plant_id, action, previous_quantity, quantity, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		h.ID, h.InventoryID, h.ItemID, h.PlantID, h.Action, h.PreviousQuantity, h.Quantity, h.UserID, h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory history: %w", err)
	}
	return nil
}

// List lista el historial completo con paginación, más reciente primero.
func (r *InventoryHistoryRepo) List(ctx context.Context, limit, offset int) ([]*entity.InventoryHistory, error) {
	query := `SELECT ` + historyColumns + ` FROM inventory_histories ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset)
}

// ListByInventory lista el historial de un registro de inventario.
func (r *InventoryHistoryRepo) ListByInventory(ctx context.Context, inventoryID string) ([]*entity.InventoryHistory, error) {
	query := `SELECT ` + historyColumns + ` FROM inventory_histories WHERE inventory_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, inventoryID)
}

func (r *InventoryHistoryRepo) list(ctx context.Context, query string, args ...any) ([]*entity.InventoryHistory, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory histories: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryHistory
	for rows.Next() {
		var h entity.InventoryHistory
		if err := rows.Scan(&h.ID, &h.InventoryID, &h.ItemID, &h.PlantID, &h.Action, &h.PreviousQuantity, &h.Quantity, &h.UserID, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory history: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
