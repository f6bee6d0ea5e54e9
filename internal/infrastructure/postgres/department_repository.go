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

var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)

// DepartmentRepo implementación de DepartmentRepository sobre PostgreSQL.
type DepartmentRepo struct {
	db querier
}

// NewDepartmentRepository construye el adaptador (acepta pool o tx).
func NewDepartmentRepository(db querier) *DepartmentRepo {
	return &DepartmentRepo{db: db}
}

const departmentColumns = `id, name, code, description, created_at, updated_at`

// Create persiste un nuevo departamento.
func (r *DepartmentRepo) Create(ctx context.Context, d *entity.Department) error {
	query := `
		INSERT INTO departments (id, name, code, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, d.ID, d.Name, d.Code, d.Description, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeAlreadyExists
		}
		return fmt.Errorf("insert department: %w", err)
	}
	return nil
}

// GetByID obtiene un departamento por ID.
func (r *DepartmentRepo) GetByID(ctx context.Context, id string) (*entity.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE id = $1`
	var d entity.Department
	err := r.db.QueryRow(ctx, query, id).Scan(&d.ID, &d.Name, &d.Code, &d.Description, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get department by id: %w", err)
	}
	return &d, nil
}

// Update actualiza un departamento.
func (r *DepartmentRepo) Update(ctx context.Context, d *entity.Department) error {
	query := `
		UPDATE departments SET name = $2, code = $3, description = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query, d.ID, d.Name, d.Code, d.Description, d.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeAlreadyExists
		}
		return fmt.Errorf("update department: %w", err)
	}
	return nil
}

// List lista todos los departamentos.
func (r *DepartmentRepo) List(ctx context.Context) ([]*entity.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Department
	for rows.Next() {
		var d entity.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Code, &d.Description, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete elimina físicamente un departamento.
func (r *DepartmentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete department: %w", err)
	}
	return nil
}
