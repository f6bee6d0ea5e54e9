package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un ítem.
type CreateItemRequest struct {
	StorageLevelID    string          `json:"storage_level_id" validate:"required,uuid"`
	MeasurementUnitID string          `json:"measurement_unit_id" validate:"required,uuid"`
	SupplierID        string          `json:"supplier_id" validate:"omitempty,uuid"`
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	Code              string          `json:"code" validate:"required,min=1,max=50"`
	Description       string          `json:"description" validate:"omitempty,max=500"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
}

// UpdateItemRequest actualización parcial (merge superficial).
type UpdateItemRequest struct {
	StorageLevelID    *string          `json:"storage_level_id"`
	MeasurementUnitID *string          `json:"measurement_unit_id"`
	SupplierID        *string          `json:"supplier_id"`
	Name              *string          `json:"name"`
	Code              *string          `json:"code"`
	Description       *string          `json:"description"`
	UnitCost          *decimal.Decimal `json:"unit_cost"`
}

// ItemResponse salida de un ítem.
type ItemResponse struct {
	ID                string          `json:"id"`
	StorageLevelID    string          `json:"storage_level_id"`
	MeasurementUnitID string          `json:"measurement_unit_id"`
	SupplierID        string          `json:"supplier_id"`
	Name              string          `json:"name"`
	Code              string          `json:"code"`
	Description       string          `json:"description"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
