package repository

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// DivisionRepository puerto de persistencia para Division.
type DivisionRepository interface {
	Create(ctx context.Context, d *entity.Division) error
	GetByID(ctx context.Context, id string) (*entity.Division, error)
	Update(ctx context.Context, d *entity.Division) error
	List(ctx context.Context) ([]*entity.Division, error)
	ListByDepartment(ctx context.Context, departmentID string) ([]*entity.Division, error)
	Delete(ctx context.Context, id string) error
}
