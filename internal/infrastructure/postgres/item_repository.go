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

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL.
type ItemRepo struct {
	db querier
}

// NewItemRepository construye el adaptador (acepta pool o tx).
func NewItemRepository(db querier) *ItemRepo {
	return &ItemRepo{db: db}
}

const itemColumns = `id, storage_level_id, measurement_unit_id, supplier_id, name, code, description, unit_cost, created_at, updated_at`

// Create persiste un nuevo ítem.
func (r *ItemRepo) Create(ctx context.Context, i *entity.Item) error {
	query := `
		INSERT INTO items (id, storage_level_id, measurement_unit_id, supplier_id, name, code, description, unit_cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		i.ID, i.StorageLevelID, i.MeasurementUnitID, i.SupplierID, i.Name, i.Code, i.Description, i.UnitCost,
		i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeAlreadyExists
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	var i entity.Item
	err := r.db.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.StorageLevelID, &i.MeasurementUnitID, &i.SupplierID, &i.Name, &i.Code, &i.Description, &i.UnitCost,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by id: %w", err)
	}
	return &i, nil
}

// Update actualiza un ítem.
func (r *ItemRepo) Update(ctx context.Context, i *entity.Item) error {
	query := `
		UPDATE items SET storage_level_id = $2, measurement_unit_id = $3, supplier_id = $4,
			name = $5, code = $6, description = $7, unit_cost = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		i.ID, i.StorageLevelID, i.MeasurementUnitID, i.SupplierID, i.Name, i.Code, i.Description, i.UnitCost, i.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeAlreadyExists
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// List lista todos los ítems.
func (r *ItemRepo) List(ctx context.Context) ([]*entity.Item, error) {
	return r.list(ctx, `SELECT `+itemColumns+` FROM items ORDER BY name`)
}

// ListByStorageLevel lista los ítems asignados a un nivel de almacenamiento.
func (r *ItemRepo) ListByStorageLevel(ctx context.Context, storageLevelID string) ([]*entity.Item, error) {
	return r.list(ctx, `SELECT `+itemColumns+` FROM items WHERE storage_level_id = $1 ORDER BY name`, storageLevelID)
}

func (r *ItemRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Item, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(&i.ID, &i.StorageLevelID, &i.MeasurementUnitID, &i.SupplierID, &i.Name, &i.Code, &i.Description, &i.UnitCost, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Delete elimina físicamente un ítem.
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
