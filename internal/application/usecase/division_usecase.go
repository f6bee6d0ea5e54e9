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

// DivisionUseCase CRUD de divisiones (pertenecen a un departamento).
type DivisionUseCase struct {
	repo           repository.DivisionRepository
	departmentRepo repository.DepartmentRepository
}

// NewDivisionUseCase construye el caso de uso.
func NewDivisionUseCase(repo repository.DivisionRepository, departmentRepo repository.DepartmentRepository) *DivisionUseCase {
	return &DivisionUseCase{repo: repo, departmentRepo: departmentRepo}
}

// List lista todas las divisiones.
func (uc *DivisionUseCase) List(ctx context.Context) ([]*dto.DivisionResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDivisionResponses(list), nil
}

// ListByDepartment lista las divisiones de un departamento.
func (uc *DivisionUseCase) ListByDepartment(ctx context.Context, departmentID string) ([]*dto.DivisionResponse, error) {
	list, err := uc.repo.ListByDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	return toDivisionResponses(list), nil
}

// Get obtiene una división; (nil, nil) si no existe.
func (uc *DivisionUseCase) Get(ctx context.Context, id string) (*dto.DivisionResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToDivisionResponse(d), nil
}

// Create crea una división; valida que el departamento padre exista.
func (uc *DivisionUseCase) Create(ctx context.Context, in dto.CreateDivisionRequest) (*dto.DivisionResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "es requerido")
	}
	if in.Code == "" {
		return nil, domain.NewValidationError("code", "es requerido")
	}
	if in.DepartmentID == "" {
		return nil, domain.NewValidationError("department_id", "es requerido")
	}
	parent, err := uc.departmentRepo.GetByID(ctx, in.DepartmentID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.NewValidationError("department_id", "departamento inexistente")
	}
	now := time.Now()
	d := &entity.Division{
		ID:           uuid.New().String(),
		DepartmentID: in.DepartmentID,
		Name:         in.Name,
		Code:         in.Code,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return dto.ToDivisionResponse(d), nil
}

// Update merge superficial sobre una división existente.
func (uc *DivisionUseCase) Update(ctx context.Context, id string, in dto.UpdateDivisionRequest) (*dto.DivisionResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if in.DepartmentID != nil {
		parent, err := uc.departmentRepo.GetByID(ctx, *in.DepartmentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.NewValidationError("department_id", "departamento inexistente")
		}
		d.DepartmentID = *in.DepartmentID
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.NewValidationError("name", "no puede quedar vacío")
		}
		d.Name = *in.Name
	}
	if in.Code != nil {
		if *in.Code == "" {
			return nil, domain.NewValidationError("code", "no puede quedar vacío")
		}
		d.Code = *in.Code
	}
	d.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return dto.ToDivisionResponse(d), nil
}

// Delete elimina físicamente una división.
func (uc *DivisionUseCase) Delete(ctx context.Context, id string) error {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toDivisionResponses(list []*entity.Division) []*dto.DivisionResponse {
	out := make([]*dto.DivisionResponse, 0, len(list))
	for _, d := range list {
		out = append(out, dto.ToDivisionResponse(d))
	}
	return out
}
