package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/realtime"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// ItemUseCase CRUD de ítems del catálogo. Publica eventos item:save/item:remove
// al canal realtime.
type ItemUseCase struct {
	repo             repository.ItemRepository
	storageLevelRepo repository.StorageLevelRepository
	notifier         realtime.Notifier
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, storageLevelRepo repository.StorageLevelRepository, notifier realtime.Notifier) *ItemUseCase {
	if notifier == nil {
		notifier = realtime.NopNotifier{}
	}
	return &ItemUseCase{repo: repo, storageLevelRepo: storageLevelRepo, notifier: notifier}
}

// List lista todos los ítems.
func (uc *ItemUseCase) List(ctx context.Context) ([]*dto.ItemResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toItemResponses(list), nil
}

// ListByStorageLevel lista los ítems de un nivel de almacenamiento.
func (uc *ItemUseCase) ListByStorageLevel(ctx context.Context, storageLevelID string) ([]*dto.ItemResponse, error) {
	list, err := uc.repo.ListByStorageLevel(ctx, storageLevelID)
	if err != nil {
		return nil, err
	}
	return toItemResponses(list), nil
}

// Get obtiene un ítem; (nil, nil) si no existe.
func (uc *ItemUseCase) Get(ctx context.Context, id string) (*dto.ItemResponse, error) {
	i, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToItemResponse(i), nil
}

// Create crea un ítem; valida que el nivel de almacenamiento exista.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "es requerido")
	}
	if in.Code == "" {
		return nil, domain.NewValidationError("code", "es requerido")
	}
	if in.StorageLevelID == "" {
		return nil, domain.NewValidationError("storage_level_id", "es requerido")
	}
	if in.UnitCost.IsNegative() {
		return nil, domain.NewValidationError("unit_cost", "no puede ser negativo")
	}
	level, err := uc.storageLevelRepo.GetByID(ctx, in.StorageLevelID)
	if err != nil {
		return nil, err
	}
	if level == nil {
		return nil, domain.NewValidationError("storage_level_id", "nivel de almacenamiento inexistente")
	}
	now := time.Now()
	i := &entity.Item{
		ID:                uuid.New().String(),
		StorageLevelID:    in.StorageLevelID,
		MeasurementUnitID: in.MeasurementUnitID,
		SupplierID:        in.SupplierID,
		Name:              in.Name,
		Code:              in.Code,
		Description:       in.Description,
		UnitCost:          in.UnitCost,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(ctx, i); err != nil {
		return nil, err
	}
	out := dto.ToItemResponse(i)
	uc.notifier.Saved("item", out)
	return out, nil
}

// Update merge superficial sobre un ítem existente.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	i, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, domain.ErrNotFound
	}
	if in.StorageLevelID != nil {
		level, err := uc.storageLevelRepo.GetByID(ctx, *in.StorageLevelID)
		if err != nil {
			return nil, err
		}
		if level == nil {
			return nil, domain.NewValidationError("storage_level_id", "nivel de almacenamiento inexistente")
		}
		i.StorageLevelID = *in.StorageLevelID
	}
	if in.MeasurementUnitID != nil {
		i.MeasurementUnitID = *in.MeasurementUnitID
	}
	if in.SupplierID != nil {
		i.SupplierID = *in.SupplierID
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.NewValidationError("name", "no puede quedar vacío")
		}
		i.Name = *in.Name
	}
	if in.Code != nil {
		if *in.Code == "" {
			return nil, domain.NewValidationError("code", "no puede quedar vacío")
		}
		i.Code = *in.Code
	}
	if in.Description != nil {
		i.Description = *in.Description
	}
	if in.UnitCost != nil {
		if in.UnitCost.IsNegative() {
			return nil, domain.NewValidationError("unit_cost", "no puede ser negativo")
		}
		i.UnitCost = *in.UnitCost
	}
	i.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, i); err != nil {
		return nil, err
	}
	out := dto.ToItemResponse(i)
	uc.notifier.Saved("item", out)
	return out, nil
}

// Delete elimina físicamente un ítem.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	i, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if i == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.notifier.Removed("item", id)
	return nil
}

func toItemResponses(list []*entity.Item) []*dto.ItemResponse {
	out := make([]*dto.ItemResponse, 0, len(list))
	for _, i := range list {
		out = append(out, dto.ToItemResponse(i))
	}
	return out
}
