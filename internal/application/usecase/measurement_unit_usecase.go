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

// MeasurementUnitUseCase CRUD de unidades de medida.
type MeasurementUnitUseCase struct {
	repo repository.MeasurementUnitRepository
}

// NewMeasurementUnitUseCase construye el caso de uso.
func NewMeasurementUnitUseCase(repo repository.MeasurementUnitRepository) *MeasurementUnitUseCase {
	return &MeasurementUnitUseCase{repo: repo}
}

// List lista todas las unidades.
func (uc *MeasurementUnitUseCase) List(ctx context.Context) ([]*dto.MeasurementUnitResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MeasurementUnitResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.ToMeasurementUnitResponse(m))
	}
	return out, nil
}

// Get obtiene una unidad; (nil, nil) si no existe.
func (uc *MeasurementUnitUseCase) Get(ctx context.Context, id string) (*dto.MeasurementUnitResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToMeasurementUnitResponse(m), nil
}

// Create crea una unidad de medida.
func (uc *MeasurementUnitUseCase) Create(ctx context.Context, in dto.CreateMeasurementUnitRequest) (*dto.MeasurementUnitResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "es requerido")
	}
	if in.Symbol == "" {
		return nil, domain.NewValidationError("symbol", "es requerido")
	}
	now := time.Now()
	m := &entity.MeasurementUnit{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Symbol:    in.Symbol,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return dto.ToMeasurementUnitResponse(m), nil
}

// Update merge superficial sobre una unidad existente.
func (uc *MeasurementUnitUseCase) Update(ctx context.Context, id string, in dto.UpdateMeasurementUnitRequest) (*dto.MeasurementUnitResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.NewValidationError("name", "no puede quedar vacío")
		}
		m.Name = *in.Name
	}
	if in.Symbol != nil {
		if *in.Symbol == "" {
			return nil, domain.NewValidationError("symbol", "no puede quedar vacío")
		}
		m.Symbol = *in.Symbol
	}
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return dto.ToMeasurementUnitResponse(m), nil
}

// Delete elimina físicamente una unidad de medida.
func (uc *MeasurementUnitUseCase) Delete(ctx context.Context, id string) error {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}
