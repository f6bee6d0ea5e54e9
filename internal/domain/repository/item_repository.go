package repository

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// ItemRepository puerto de persistencia para Item.
type ItemRepository interface {
	Create(ctx context.Context, i *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	Update(ctx context.Context, i *entity.Item) error
	List(ctx context.Context) ([]*entity.Item, error)
	ListByStorageLevel(ctx context.Context, storageLevelID string) ([]*entity.Item, error)
	Delete(ctx context.Context, id string) error
}
