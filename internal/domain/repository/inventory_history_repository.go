package repository

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// InventoryHistoryRepository puerto de persistencia para el historial (append-only).
type InventoryHistoryRepository interface {
	Create(ctx context.Context, h *entity.InventoryHistory) error
	List(ctx context.Context, limit, offset int) ([]*entity.InventoryHistory, error)
	ListByInventory(ctx context.Context, inventoryID string) ([]*entity.InventoryHistory, error)
}
