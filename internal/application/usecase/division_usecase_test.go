package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeDepartmentRepo struct {
	items map[string]*entity.Department
}

func (r *fakeDepartmentRepo) Create(_ context.Context, d *entity.Department) error {
	r.items[d.ID] = d
	return nil
}

func (r *fakeDepartmentRepo) GetByID(_ context.Context, id string) (*entity.Department, error) {
	return r.items[id], nil
}

func (r *fakeDepartmentRepo) Update(_ context.Context, d *entity.Department) error {
	r.items[d.ID] = d
	return nil
}

func (r *fakeDepartmentRepo) List(_ context.Context) ([]*entity.Department, error) {
	out := make([]*entity.Department, 0, len(r.items))
	for _, d := range r.items {
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeDepartmentRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type fakeDivisionRepo struct {
	items map[string]*entity.Division
}

func (r *fakeDivisionRepo) Create(_ context.Context, d *entity.Division) error {
	for _, existing := range r.items {
		if existing.Code == d.Code {
			return domain.ErrCodeAlreadyExists
		}
	}
	cp := *d
	r.items[d.ID] = &cp
	return nil
}

func (r *fakeDivisionRepo) GetByID(_ context.Context, id string) (*entity.Division, error) {
	d, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDivisionRepo) Update(_ context.Context, d *entity.Division) error {
	if _, ok := r.items[d.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *d
	r.items[d.ID] = &cp
	return nil
}

func (r *fakeDivisionRepo) List(_ context.Context) ([]*entity.Division, error) {
	out := make([]*entity.Division, 0, len(r.items))
	for _, d := range r.items {
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeDivisionRepo) ListByDepartment(_ context.Context, departmentID string) ([]*entity.Division, error) {
	var out []*entity.Division
	for _, d := range r.items {
		if d.DepartmentID == departmentID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeDivisionRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func buildDivisionUC() (*usecase.DivisionUseCase, *fakeDepartmentRepo) {
	deptRepo := &fakeDepartmentRepo{items: map[string]*entity.Department{
		"dept-1": {ID: "dept-1", Name: "Producción", Code: "PRD"},
	}}
	divRepo := &fakeDivisionRepo{items: make(map[string]*entity.Division)}
	return usecase.NewDivisionUseCase(divRepo, deptRepo), deptRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestDivisionCreate_ValidaDepartamentoPadre(t *testing.T) {
	uc, _ := buildDivisionUC()

	out, err := uc.Create(context.Background(), dto.CreateDivisionRequest{
		DepartmentID: "dept-1",
		Name:         "Ensamblaje",
		Code:         "ENS",
	})
	require.NoError(t, err)
	assert.Equal(t, "dept-1", out.DepartmentID)

	_, err = uc.Create(context.Background(), dto.CreateDivisionRequest{
		DepartmentID: "dept-fantasma",
		Name:         "Huérfana",
		Code:         "HUE",
	})
	assert.True(t, domain.IsValidation(err), "un padre inexistente es error de validación")
}

func TestDivisionCreate_CodigoDuplicado(t *testing.T) {
	uc, _ := buildDivisionUC()

	_, err := uc.Create(context.Background(), dto.CreateDivisionRequest{
		DepartmentID: "dept-1", Name: "Ensamblaje", Code: "ENS",
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateDivisionRequest{
		DepartmentID: "dept-1", Name: "Otra", Code: "ENS",
	})
	assert.ErrorIs(t, err, domain.ErrCodeAlreadyExists)
}

func TestDivisionListByDepartment_FiltraPorPadre(t *testing.T) {
	uc, deptRepo := buildDivisionUC()
	deptRepo.items["dept-2"] = &entity.Department{ID: "dept-2", Name: "Logística", Code: "LOG"}

	_, err := uc.Create(context.Background(), dto.CreateDivisionRequest{
		DepartmentID: "dept-1", Name: "Ensamblaje", Code: "ENS",
	})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreateDivisionRequest{
		DepartmentID: "dept-2", Name: "Transporte", Code: "TRA",
	})
	require.NoError(t, err)

	list, err := uc.ListByDepartment(context.Background(), "dept-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ensamblaje", list[0].Name)
}

func TestDivisionUpdate_ReasignarAPadreInexistenteFalla(t *testing.T) {
	uc, _ := buildDivisionUC()

	out, err := uc.Create(context.Background(), dto.CreateDivisionRequest{
		DepartmentID: "dept-1", Name: "Ensamblaje", Code: "ENS",
	})
	require.NoError(t, err)

	fantasma := "dept-fantasma"
	_, err = uc.Update(context.Background(), out.ID, dto.UpdateDivisionRequest{DepartmentID: &fantasma})
	assert.True(t, domain.IsValidation(err))

	got, err := uc.Get(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, "dept-1", got.DepartmentID, "la negación no debe reasignar la división")
}

func TestDivisionDelete_InexistenteRetornaNotFound(t *testing.T) {
	uc, _ := buildDivisionUC()

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
