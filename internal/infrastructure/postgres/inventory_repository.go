package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	db querier
}

// NewInventoryRepository construye el adaptador (acepta pool o tx).
func NewInventoryRepository(db querier) *InventoryRepo {
	return &InventoryRepo{db: db}
}

const inventoryColumns = `id, item_id, plant_id, quantity, reorder_point, created_at, updated_at`

// Create persiste un nuevo registro de inventario.
func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	query := `
		INSERT INTO inventories (id, item_id, plant_id, quantity, reorder_point, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, inv.ID, inv.ItemID, inv.PlantID, inv.Quantity, inv.ReorderPoint, inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate // ya existe inventario para (item, planta)
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByID obtiene un registro de inventario por ID.
func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventories WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id), "get inventory by id")
}

// GetByItemAndPlant obtiene el inventario de un ítem en una planta.
func (r *InventoryRepo) GetByItemAndPlant(ctx context.Context, itemID, plantID string) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventories WHERE item_id = $1 AND plant_id = $2`
	return r.scanOne(r.db.QueryRow(ctx, query, itemID, plantID), "get inventory by item and plant")
}

// Update actualiza un registro de inventario (last-writer-wins).
func (r *InventoryRepo) Update(ctx context.Context, inv *entity.Inventory) error {
	query := `
		UPDATE inventories SET item_id = $2, plant_id = $3, quantity = $4, reorder_point = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query, inv.ID, inv.ItemID, inv.PlantID, inv.Quantity, inv.ReorderPoint, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	return nil
}

// List lista todos los registros de inventario.
func (r *InventoryRepo) List(ctx context.Context) ([]*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventories ORDER BY updated_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inventories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.ItemID, &inv.PlantID, &inv.Quantity, &inv.ReorderPoint, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// Delete elimina físicamente un registro de inventario.
func (r *InventoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM inventories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	return nil
}

func (r *InventoryRepo) scanOne(row pgx.Row, op string) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := row.Scan(&inv.ID, &inv.ItemID, &inv.PlantID, &inv.Quantity, &inv.ReorderPoint, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &inv, nil
}
