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

// PlantUseCase CRUD de plantas (pertenecen a una división).
type PlantUseCase struct {
	repo         repository.PlantRepository
	divisionRepo repository.DivisionRepository
}

// NewPlantUseCase construye el caso de uso.
func NewPlantUseCase(repo repository.PlantRepository, divisionRepo repository.DivisionRepository) *PlantUseCase {
	return &PlantUseCase{repo: repo, divisionRepo: divisionRepo}
}

// List lista todas las plantas.
func (uc *PlantUseCase) List(ctx context.Context) ([]*dto.PlantResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toPlantResponses(list), nil
}

// ListByDivision lista las plantas de una división.
func (uc *PlantUseCase) ListByDivision(ctx context.Context, divisionID string) ([]*dto.PlantResponse, error) {
	list, err := uc.repo.ListByDivision(ctx, divisionID)
	if err != nil {
		return nil, err
	}
	return toPlantResponses(list), nil
}

// ListByDepartment lista las plantas de un departamento (vía sus divisiones).
func (uc *PlantUseCase) ListByDepartment(ctx context.Context, departmentID string) ([]*dto.PlantResponse, error) {
	list, err := uc.repo.ListByDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	return toPlantResponses(list), nil
}

// Get obtiene una planta; (nil, nil) si no existe.
func (uc *PlantUseCase) Get(ctx context.Context, id string) (*dto.PlantResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToPlantResponse(p), nil
}

// Create crea una planta; valida que la división padre exista.
func (uc *PlantUseCase) Create(ctx context.Context, in dto.CreatePlantRequest) (*dto.PlantResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "es requerido")
	}
	if in.Code == "" {
		return nil, domain.NewValidationError("code", "es requerido")
	}
	if in.DivisionID == "" {
		return nil, domain.NewValidationError("division_id", "es requerido")
	}
	parent, err := uc.divisionRepo.GetByID(ctx, in.DivisionID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.NewValidationError("division_id", "división inexistente")
	}
	now := time.Now()
	p := &entity.Plant{
		ID:         uuid.New().String(),
		DivisionID: in.DivisionID,
		Name:       in.Name,
		Code:       in.Code,
		Location:   in.Location,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return dto.ToPlantResponse(p), nil
}

// Update merge superficial sobre una planta existente.
func (uc *PlantUseCase) Update(ctx context.Context, id string, in dto.UpdatePlantRequest) (*dto.PlantResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.DivisionID != nil {
		parent, err := uc.divisionRepo.GetByID(ctx, *in.DivisionID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.NewValidationError("division_id", "división inexistente")
		}
		p.DivisionID = *in.DivisionID
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.NewValidationError("name", "no puede quedar vacío")
		}
		p.Name = *in.Name
	}
	if in.Code != nil {
		if *in.Code == "" {
			return nil, domain.NewValidationError("code", "no puede quedar vacío")
		}
		p.Code = *in.Code
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return dto.ToPlantResponse(p), nil
}

// Delete elimina físicamente una planta.
func (uc *PlantUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toPlantResponses(list []*entity.Plant) []*dto.PlantResponse {
	out := make([]*dto.PlantResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToPlantResponse(p))
	}
	return out
}
