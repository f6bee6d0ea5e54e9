package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// StorageLevelUseCase CRUD de niveles de almacenamiento.
type StorageLevelUseCase struct {
	repo repository.StorageLevelRepository
}

// NewStorageLevelUseCase construye el caso de uso.
func NewStorageLevelUseCase(repo repository.StorageLevelRepository) *StorageLevelUseCase {
	return &StorageLevelUseCase{repo: repo}
}

// List lista todos los niveles.
func (uc *StorageLevelUseCase) List(ctx context.Context) ([]*dto.StorageLevelResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StorageLevelResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.ToStorageLevelResponse(s))
	}
	return out, nil
}

// Get obtiene un nivel; (nil, nil) si no existe.
func (uc *StorageLevelUseCase) Get(ctx context.Context, id string) (*dto.StorageLevelResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToStorageLevelResponse(s), nil
}

// Create crea un nivel de almacenamiento.
func (uc *StorageLevelUseCase) Create(ctx context.Context, in dto.CreateStorageLevelRequest) (*dto.StorageLevelResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "es requerido")
	}
	if in.Code == "" {
		return nil, domain.NewValidationError("code", "es requerido")
	}
	now := time.Now()
	s := &entity.StorageLevel{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Code:        in.Code,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return dto.ToStorageLevelResponse(s), nil
}

// Update merge superficial sobre un nivel existente.
func (uc *StorageLevelUseCase) Update(ctx context.Context, id string, in dto.UpdateStorageLevelRequest) (*dto.StorageLevelResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.NewValidationError("name", "no puede quedar vacío")
		}
		s.Name = *in.Name
	}
	if in.Code != nil {
		if *in.Code == "" {
			return nil, domain.NewValidationError("code", "no puede quedar vacío")
		}
		s.Code = *in.Code
	}
	if in.Description != nil {
		s.Description = *in.Description
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return dto.ToStorageLevelResponse(s), nil
}

// Delete elimina físicamente un nivel de almacenamiento.
func (uc *StorageLevelUseCase) Delete(ctx context.Context, id string) error {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}
