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

var _ repository.PlantRepository = (*PlantRepo)(nil)

// PlantRepo implementación de PlantRepository sobre PostgreSQL.
type PlantRepo struct {
	db querier
}

// NewPlantRepository construye el adaptador (acepta pool o tx).
func NewPlantRepository(db querier) *PlantRepo {
	return &PlantRepo{db: db}
}

const plantColumns = `id, division_id, name, code, location, created_at, updated_at`

// Create persiste una nueva planta.
func (r *PlantRepo) Create(ctx context.Context, p *entity.Plant) error {
	query := `
		INSERT INTO plants (id, division_id, name, code, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, p.ID, p.DivisionID, p.Name, p.Code, p.Location, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeAlreadyExists
		}
		return fmt.Errorf("insert plant: %w", err)
	}
	return nil
}

// GetByID obtiene una planta por ID.
func (r *PlantRepo) GetByID(ctx context.Context, id string) (*entity.Plant, error) {
	query := `SELECT ` + plantColumns + ` FROM plants WHERE id = $1`
	var p entity.Plant
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.DivisionID, &p.Name, &p.Code, &p.Location, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plant by id: %w", err)
	}
	return &p, nil
}

// Update actualiza una planta.
func (r *PlantRepo) Update(ctx context.Context, p *entity.Plant) error {
	query := `
		UPDATE plants SET division_id = $2, name = $3, code = $4, location = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query, p.ID, p.DivisionID, p.Name, p.Code, p.Location, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeAlreadyExists
		}
		return fmt.Errorf("update plant: %w", err)
	}
	return nil
}

// List lista todas las plantas.
func (r *PlantRepo) List(ctx context.Context) ([]*entity.Plant, error) {
	return r.list(ctx, `SELECT `+plantColumns+` FROM plants ORDER BY name`)
}

// ListByDivision lista las plantas de una división.
func (r *PlantRepo) ListByDivision(ctx context.Context, divisionID string) ([]*entity.Plant, error) {
	return r.list(ctx, `SELECT `+plantColumns+` FROM plants WHERE division_id = $1 ORDER BY name`, divisionID)
}

// ListByDepartment lista las plantas de todas las divisiones de un departamento.
func (r *PlantRepo) ListByDepartment(ctx context.Context, departmentID string) ([]*entity.Plant, error) {
	query := `
		SELECT p.id, p.division_id, p.name, p.code, p.location, p.created_at, p.updated_at
		FROM plants p
		JOIN divisions d ON d.id = p.division_id
		WHERE d.department_id = $1
		ORDER BY p.name`
	return r.list(ctx, query, departmentID)
}

func (r *PlantRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Plant, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Plant
	for rows.Next() {
		var p entity.Plant
		if err := rows.Scan(&p.ID, &p.DivisionID, &p.Name, &p.Code, &p.Location, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan plant: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina físicamente una planta.
func (r *PlantRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM plants WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete plant: %w", err)
	}
	return nil
}
