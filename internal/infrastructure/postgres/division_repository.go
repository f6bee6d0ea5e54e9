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

var _ repository.DivisionRepository = (*DivisionRepo)(nil)

// DivisionRepo implementación de DivisionRepository sobre PostgreSQL.
type DivisionRepo struct {
	db querier
}

// NewDivisionRepository construye el adaptador (acepta pool o tx).
func NewDivisionRepository(db querier) *DivisionRepo {
	return &DivisionRepo{db: db}
}

const divisionColumns = `id, department_id, name, code, created_at, updated_at`

// Create persiste una nueva división.
func (r *DivisionRepo) Create(ctx context.Context, d *entity.Division) error {
	query := `
		INSERT INTO divisions (id, department_id, name, code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, d.ID, d.DepartmentID, d.Name, d.Code, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeAlreadyExists
		}
		return fmt.Errorf("insert division: %w", err)
	}
	return nil
}

// GetByID obtiene una división por ID.
func (r *DivisionRepo) GetByID(ctx context.Context, id string) (*entity.Division, error) {
	query := `SELECT ` + divisionColumns + ` FROM divisions WHERE id = $1`
	var d entity.Division
	err := r.db.QueryRow(ctx, query, id).Scan(&d.ID, &d.DepartmentID, &d.Name, &d.Code, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get division by id: %w", err)
	}
	return &d, nil
}

// Update actualiza una división.
func (r *DivisionRepo) Update(ctx context.Context, d *entity.Division) error {
	query := `
		UPDATE divisions SET department_id = $2, name = $3, code = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query, d.ID, d.DepartmentID, d.Name, d.Code, d.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeAlreadyExists
		}
		return fmt.Errorf("update division: %w", err)
	}
	return nil
}

// List lista todas las divisiones.
func (r *DivisionRepo) List(ctx context.Context) ([]*entity.Division, error) {
	return r.list(ctx, `SELECT `+divisionColumns+` FROM divisions ORDER BY name`)
}

// ListByDepartment lista las divisiones de un departamento.
func (r *DivisionRepo) ListByDepartment(ctx context.Context, departmentID string) ([]*entity.Division, error) {
	return r.list(ctx, `SELECT `+divisionColumns+` FROM divisions WHERE department_id = $1 ORDER BY name`, departmentID)
}

func (r *DivisionRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Division, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list divisions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Division
	for rows.Next() {
		var d entity.Division
		if err := rows.Scan(&d.ID, &d.DepartmentID, &d.Name, &d.Code, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan division: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete elimina físicamente una división.
func (r *DivisionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM divisions WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete division: %w", err)
	}
	return nil
}
