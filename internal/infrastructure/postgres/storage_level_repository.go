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

var _ repository.StorageLevelRepository = (*StorageLevelRepo)(nil)

// StorageLevelRepo implementación de StorageLevelRepository sobre PostgreSQL.
type StorageLevelRepo struct {
	db querier
}

// NewStorageLevelRepository construye el adaptador (acepta pool o tx).
func NewStorageLevelRepository(db querier) *StorageLevelRepo {
	return &StorageLevelRepo{db: db}
}

const storageLevelColumns = `id, name, code, description, created_at, updated_at`

// Create persiste un nuevo nivel de almacenamiento.
func (r *StorageLevelRepo) Create(ctx context.Context, s *entity.StorageLevel) error {
	query := `
		INSERT INTO storage_levels (id, name, code, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, s.ID, s.Name, s.Code, s.Description, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeAlreadyExists
		}
		return fmt.Errorf("insert storage level: %w", err)
	}
	return nil
}

// GetByID obtiene un nivel de almacenamiento por ID.
func (r *StorageLevelRepo) GetByID(ctx context.Context, id string) (*entity.StorageLevel, error) {
	query := `SELECT ` + storageLevelColumns + ` FROM storage_levels WHERE id = $1`
	var s entity.StorageLevel
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Code, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get storage level by id: %w", err)
	}
	return &s, nil
}

// Update actualiza un nivel de almacenamiento.
func (r *StorageLevelRepo) Update(ctx context.Context, s *entity.StorageLevel) error {
	query := `
		UPDATE storage_levels SET name = $2, code = $3, description = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query, s.ID, s.Name, s.Code, s.Description, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeAlreadyExists
		}
		return fmt.Errorf("update storage level: %w", err)
	}
	return nil
}

// List lista todos los niveles de almacenamiento.
func (r *StorageLevelRepo) List(ctx context.Context) ([]*entity.StorageLevel, error) {
	query := `SELECT ` + storageLevelColumns + ` FROM storage_levels ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list storage levels: %w", err)
	}
	defer rows.Close()
	var list []*entity.StorageLevel
	for rows.Next() {
		var s entity.StorageLevel
		if err := rows.Scan(&s.ID, &s.Name, &s.Code, &s.Description, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan storage level: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina físicamente un nivel de almacenamiento.
func (r *StorageLevelRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM storage_levels WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete storage level: %w", err)
	}
	return nil
}
