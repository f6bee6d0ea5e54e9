package repository

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// InventoryRepository puerto de persistencia para Inventory.
type InventoryRepository interface {
	Create(ctx context.Context, inv *entity.Inventory) error
	GetByID(ctx context.Context, id string) (*entity.Inventory, error)
	GetByItemAndPlant(ctx context.Context, itemID, plantID string) (*entity.Inventory, error)
	Update(ctx context.Context, inv *entity.Inventory) error
	List(ctx context.Context) ([]*entity.Inventory, error)
	Delete(ctx context.Context, id string) error
}
