package dto

import "time"

// ── Department ────────────────────────────────────────────────────────────────

// CreateDepartmentRequest entrada para crear un departamento.
type CreateDepartmentRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Code        string `json:"code" validate:"required,min=1,max=50"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// UpdateDepartmentRequest actualización parcial (merge superficial).
type UpdateDepartmentRequest struct {
	Name        *string `json:"name"`
	Code        *string `json:"code"`
	Description *string `json:"description"`
}

// DepartmentResponse salida de un departamento.
type DepartmentResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ── Division ──────────────────────────────────────────────────────────────────

// CreateDivisionRequest entrada para crear una división.
type CreateDivisionRequest struct {
	DepartmentID string `json:"department_id" validate:"required,uuid"`
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Code         string `json:"code" validate:"required,min=1,max=50"`
}

// UpdateDivisionRequest actualización parcial (merge superficial).
type UpdateDivisionRequest struct {
	DepartmentID *string `json:"department_id"`
	Name         *string `json:"name"`
	Code         *string `json:"code"`
}

// DivisionResponse salida de una división.
type DivisionResponse struct {
	ID           string    `json:"id"`
	DepartmentID string    `json:"department_id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ── Plant ─────────────────────────────────────────────────────────────────────

// CreatePlantRequest entrada para crear una planta.
type CreatePlantRequest struct {
	DivisionID string `json:"division_id" validate:"required,uuid"`
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Code       string `json:"code" validate:"required,min=1,max=50"`
	Location   string `json:"location" validate:"omitempty,max=300"`
}

// UpdatePlantRequest actualización parcial (merge superficial).
type UpdatePlantRequest struct {
	DivisionID *string `json:"division_id"`
	Name       *string `json:"name"`
	Code       *string `json:"code"`
	Location   *string `json:"location"`
}

// PlantResponse salida de una planta.
type PlantResponse struct {
	ID         string    `json:"id"`
	DivisionID string    `json:"division_id"`
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	Location   string    `json:"location"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ── StorageLevel ──────────────────────────────────────────────────────────────

// CreateStorageLevelRequest entrada para crear un nivel de almacenamiento.
type CreateStorageLevelRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Code        string `json:"code" validate:"required,min=1,max=50"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// UpdateStorageLevelRequest actualización parcial (merge superficial).
type UpdateStorageLevelRequest struct {
	Name        *string `json:"name"`
	Code        *string `json:"code"`
	Description *string `json:"description"`
}

// StorageLevelResponse salida de un nivel de almacenamiento.
type StorageLevelResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ── MeasurementUnit ───────────────────────────────────────────────────────────

// CreateMeasurementUnitRequest entrada para crear una unidad de medida.
type CreateMeasurementUnitRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	Symbol string `json:"symbol" validate:"required,min=1,max=20"`
}

// UpdateMeasurementUnitRequest actualización parcial (merge superficial).
type UpdateMeasurementUnitRequest struct {
	Name   *string `json:"name"`
	Symbol *string `json:"symbol"`
}

// MeasurementUnitResponse salida de una unidad de medida.
type MeasurementUnitResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Symbol    string    `json:"symbol"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ── Supplier ──────────────────────────────────────────────────────────────────

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Code    string `json:"code" validate:"required,min=1,max=50"`
	Contact string `json:"contact" validate:"omitempty,max=200"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,max=50"`
	Address string `json:"address" validate:"omitempty,max=300"`
}

// UpdateSupplierRequest actualización parcial (merge superficial).
type UpdateSupplierRequest struct {
	Name    *string `json:"name"`
	Code    *string `json:"code"`
	Contact *string `json:"contact"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Contact   string    `json:"contact"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
