package repository

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// DepartmentRepository puerto de persistencia para Department.
type DepartmentRepository interface {
	Create(ctx context.Context, d *entity.Department) error
	GetByID(ctx context.Context, id string) (*entity.Department, error)
	Update(ctx context.Context, d *entity.Department) error
	List(ctx context.Context) ([]*entity.Department, error)
	Delete(ctx context.Context, id string) error
}
