// Package inventory implementa las operaciones sobre existencias. Cada
// mutación de un registro de inventario escribe además una entrada en el
// historial dentro de la misma transacción y se publica al canal realtime.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/realtime"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repos de inventario e historial atados a una
// transacción. Lo implementa postgres.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		historyRepo repository.InventoryHistoryRepository,
	) error) error
}

// UseCase operaciones CRUD de inventario con historial append-only.
type UseCase struct {
	tx          TxRunner
	invRepo     repository.InventoryRepository
	historyRepo repository.InventoryHistoryRepository
	itemRepo    repository.ItemRepository
	plantRepo   repository.PlantRepository
	notifier    realtime.Notifier
}

// NewUseCase construye el caso de uso de inventario.
func NewUseCase(
	tx TxRunner,
	invRepo repository.InventoryRepository,
	historyRepo repository.InventoryHistoryRepository,
	itemRepo repository.ItemRepository,
	plantRepo repository.PlantRepository,
	notifier realtime.Notifier,
) *UseCase {
	if notifier == nil {
		notifier = realtime.NopNotifier{}
	}
	return &UseCase{
		tx:          tx,
		invRepo:     invRepo,
		historyRepo: historyRepo,
		itemRepo:    itemRepo,
		plantRepo:   plantRepo,
		notifier:    notifier,
	}
}

// List lista todos los registros de inventario.
func (uc *UseCase) List(ctx context.Context) ([]*dto.InventoryResponse, error) {
	list, err := uc.invRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, dto.ToInventoryResponse(inv))
	}
	return out, nil
}

// Get obtiene un registro de inventario; (nil, nil) si no existe.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.InventoryResponse, error) {
	inv, err := uc.invRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToInventoryResponse(inv), nil
}

// Create abre el inventario de un ítem en una planta. Valida que ítem y
// planta existan y que no haya ya inventario para la pareja.
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	if in.ItemID == "" {
		return nil, domain.NewValidationError("item_id", "es requerido")
	}
	if in.PlantID == "" {
		return nil, domain.NewValidationError("plant_id", "es requerido")
	}
	if in.Quantity.IsNegative() {
		return nil, domain.NewValidationError("quantity", "no puede ser negativa")
	}
	item, err := uc.itemRepo.GetByID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NewValidationError("item_id", "ítem inexistente")
	}
	plant, err := uc.plantRepo.GetByID(ctx, in.PlantID)
	if err != nil {
		return nil, err
	}
	if plant == nil {
		return nil, domain.NewValidationError("plant_id", "planta inexistente")
	}
	existing, err := uc.invRepo.GetByItemAndPlant(ctx, in.ItemID, in.PlantID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	inv := &entity.Inventory{
		ID:           uuid.New().String(),
		ItemID:       in.ItemID,
		PlantID:      in.PlantID,
		Quantity:     in.Quantity,
		ReorderPoint: in.ReorderPoint,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = uc.tx.Run(ctx, func(invRepo repository.InventoryRepository, historyRepo repository.InventoryHistoryRepository) error {
		if err := invRepo.Create(ctx, inv); err != nil {
			return err
		}
		return historyRepo.Create(ctx, uc.historyEntry(inv, entity.HistoryActionCreate, decimal.Zero, userID))
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToInventoryResponse(inv)
	uc.notifier.Saved("inventory", out)
	return out, nil
}

// Update merge superficial de cantidad y punto de reorden. La mutación y su
// registro de historial se confirman juntos; last-writer-wins entre peticiones
// concurrentes.
func (uc *UseCase) Update(ctx context.Context, userID, id string, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	inv, err := uc.invRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	previous := inv.Quantity
	if in.Quantity != nil {
		if in.Quantity.IsNegative() {
			return nil, domain.NewValidationError("quantity", "no puede ser negativa")
		}
		inv.Quantity = *in.Quantity
	}
	if in.ReorderPoint != nil {
		inv.ReorderPoint = *in.ReorderPoint
	}
	inv.UpdatedAt = time.Now()

	err = uc.tx.Run(ctx, func(invRepo repository.InventoryRepository, historyRepo repository.InventoryHistoryRepository) error {
		if err := invRepo.Update(ctx, inv); err != nil {
			return err
		}
		return historyRepo.Create(ctx, uc.historyEntry(inv, entity.HistoryActionUpdate, previous, userID))
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToInventoryResponse(inv)
	uc.notifier.Saved("inventory", out)
	return out, nil
}

// Delete elimina físicamente el registro de inventario y deja constancia en
// el historial.
func (uc *UseCase) Delete(ctx context.Context, userID, id string) error {
	inv, err := uc.invRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	previous := inv.Quantity
	inv.Quantity = decimal.Zero
	err = uc.tx.Run(ctx, func(invRepo repository.InventoryRepository, historyRepo repository.InventoryHistoryRepository) error {
		if err := invRepo.Delete(ctx, id); err != nil {
			return err
		}
		return historyRepo.Create(ctx, uc.historyEntry(inv, entity.HistoryActionDelete, previous, userID))
	})
	if err != nil {
		return err
	}
	uc.notifier.Removed("inventory", id)
	return nil
}

// ListHistory lista el historial global de inventario (paginado).
func (uc *UseCase) ListHistory(ctx context.Context, limit, offset int) ([]*dto.InventoryHistoryResponse, error) {
	list, err := uc.historyRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toHistoryResponses(list), nil
}

// ListHistoryByInventory lista el historial de un registro concreto.
func (uc *UseCase) ListHistoryByInventory(ctx context.Context, inventoryID string) ([]*dto.InventoryHistoryResponse, error) {
	list, err := uc.historyRepo.ListByInventory(ctx, inventoryID)
	if err != nil {
		return nil, err
	}
	return toHistoryResponses(list), nil
}

func (uc *UseCase) historyEntry(inv *entity.Inventory, action string, previous decimal.Decimal, userID string) *entity.InventoryHistory {
	return &entity.InventoryHistory{
		ID:               uuid.New().String(),
		InventoryID:      inv.ID,
		ItemID:           inv.ItemID,
		PlantID:          inv.PlantID,
		Action:           action,
		PreviousQuantity: previous,
		Quantity:         inv.Quantity,
		UserID:           userID,
		CreatedAt:        time.Now(),
	}
}

func toHistoryResponses(list []*entity.InventoryHistory) []*dto.InventoryHistoryResponse {
	out := make([]*dto.InventoryHistoryResponse, 0, len(list))
	for _, h := range list {
		out = append(out, dto.ToInventoryHistoryResponse(h))
	}
	return out
}
