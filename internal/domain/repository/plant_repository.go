package repository

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// PlantRepository puerto de persistencia para Plant.
type PlantRepository interface {
	Create(ctx context.Context, p *entity.Plant) error
	GetByID(ctx context.Context, id string) (*entity.Plant, error)
	Update(ctx context.Context, p *entity.Plant) error
	List(ctx context.Context) ([]*entity.Plant, error)
	ListByDivision(ctx context.Context, divisionID string) ([]*entity.Plant, error)
	// ListByDepartment atraviesa la jerarquía department -> division -> plant.
	ListByDepartment(ctx context.Context, departmentID string) ([]*entity.Plant, error)
	Delete(ctx context.Context, id string) error
}
