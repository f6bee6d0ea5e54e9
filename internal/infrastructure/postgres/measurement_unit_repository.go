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

var _ repository.MeasurementUnitRepository = (*MeasurementUnitRepo)(nil)

// MeasurementUnitRepo implementación de MeasurementUnitRepository sobre PostgreSQL.
type MeasurementUnitRepo struct {
	db querier
}

// NewMeasurementUnitRepository construye el adaptador (acepta pool o tx).
func NewMeasurementUnitRepository(db querier) *MeasurementUnitRepo {
	return &MeasurementUnitRepo{db: db}
}

const measurementUnitColumns = `id, name, symbol, created_at, updated_at`

// Create persiste una nueva unidad de medida.
func (r *MeasurementUnitRepo) Create(ctx context.Context, m *entity.MeasurementUnit) error {
	query := `
		INSERT INTO measurement_units (id, name, symbol, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query, m.ID, m.Name, m.Symbol, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert measurement unit: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad de medida por ID.
func (r *MeasurementUnitRepo) GetByID(ctx context.Context, id string) (*entity.MeasurementUnit, error) {
	query := `SELECT ` + measurementUnitColumns + ` FROM measurement_units WHERE id = $1`
	var m entity.MeasurementUnit
	err := r.db.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name, &m.Symbol, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get measurement unit by id: %w", err)
	}
	return &m, nil
}

// Update actualiza una unidad de medida.
func (r *MeasurementUnitRepo) Update(ctx context.Context, m *entity.MeasurementUnit) error {
	query := `
		UPDATE measurement_units SET name = $2, symbol = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query, m.ID, m.Name, m.Symbol, m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update measurement unit: %w", err)
	}
	return nil
}

// List lista todas las unidades de medida.
func (r *MeasurementUnitRepo) List(ctx context.Context) ([]*entity.MeasurementUnit, error) {
	query := `SELECT ` + measurementUnitColumns + ` FROM measurement_units ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list measurement units: %w", err)
	}
	defer rows.Close()
	var list []*entity.MeasurementUnit
	for rows.Next() {
		var m entity.MeasurementUnit
		if err := rows.Scan(&m.ID, &m.Name, &m.Symbol, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan measurement unit: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina físicamente una unidad de medida.
func (r *MeasurementUnitRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM measurement_units WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete measurement unit: %w", err)
	}
	return nil
}
