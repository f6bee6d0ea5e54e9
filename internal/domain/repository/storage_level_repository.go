package repository

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// StorageLevelRepository puerto de persistencia para StorageLevel.
type StorageLevelRepository interface {
	Create(ctx context.Context, s *entity.StorageLevel) error
	GetByID(ctx context.Context, id string) (*entity.StorageLevel, error)
	Update(ctx context.Context, s *entity.StorageLevel) error
	List(ctx context.Context) ([]*entity.StorageLevel, error)
	Delete(ctx context.Context, id string) error
}
