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

// DepartmentUseCase CRUD de departamentos.
type DepartmentUseCase struct {
	repo repository.DepartmentRepository
}

// NewDepartmentUseCase construye el caso de uso.
func NewDepartmentUseCase(repo repository.DepartmentRepository) *DepartmentUseCase {
	return &DepartmentUseCase{repo: repo}
}

// List lista todos los departamentos.
func (uc *DepartmentUseCase) List(ctx context.Context) ([]*dto.DepartmentResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DepartmentResponse, 0, len(list))
	for _, d := range list {
		out = append(out, dto.ToDepartmentResponse(d))
	}
	return out, nil
}

// Get obtiene un departamento; (nil, nil) si no existe.
func (uc *DepartmentUseCase) Get(ctx context.Context, id string) (*dto.DepartmentResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToDepartmentResponse(d), nil
}

// Create crea un departamento.
func (uc *DepartmentUseCase) Create(ctx context.Context, in dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "es requerido")
	}
	if in.Code == "" {
		return nil, domain.NewValidationError("code", "es requerido")
	}
	now := time.Now()
	d := &entity.Department{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Code:        in.Code,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return dto.ToDepartmentResponse(d), nil
}

// Update merge superficial sobre un departamento existente.
func (uc *DepartmentUseCase) Update(ctx context.Context, id string, in dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
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
	if in.Description != nil {
		d.Description = *in.Description
	}
	d.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return dto.ToDepartmentResponse(d), nil
}

// Delete elimina físicamente un departamento.
func (uc *DepartmentUseCase) Delete(ctx context.Context, id string) error {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}
