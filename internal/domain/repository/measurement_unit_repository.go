package repository

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// MeasurementUnitRepository puerto de persistencia para MeasurementUnit.
type MeasurementUnitRepository interface {
	Create(ctx context.Context, m *entity.MeasurementUnit) error
	GetByID(ctx context.Context, id string) (*entity.MeasurementUnit, error)
	Update(ctx context.Context, m *entity.MeasurementUnit) error
	List(ctx context.Context) ([]*entity.MeasurementUnit, error)
	Delete(ctx context.Context, id string) error
}
