package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryRequest entrada para crear un registro de inventario.
type CreateInventoryRequest struct {
	ItemID       string          `json:"item_id" validate:"required,uuid"`
	PlantID      string          `json:"plant_id" validate:"required,uuid"`
	Quantity     decimal.Decimal `json:"quantity"`
	ReorderPoint decimal.Decimal `json:"reorder_point"`
}

// UpdateInventoryRequest actualización parcial (merge superficial).
// item_id y plant_id no se actualizan: un registro de inventario está atado
// a su ítem y planta de por vida.
type UpdateInventoryRequest struct {
	Quantity     *decimal.Decimal `json:"quantity"`
	ReorderPoint *decimal.Decimal `json:"reorder_point"`
}

// InventoryResponse salida de un registro de inventario.
type InventoryResponse struct {
	ID           string          `json:"id"`
	ItemID       string          `json:"item_id"`
	PlantID      string          `json:"plant_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	ReorderPoint decimal.Decimal `json:"reorder_point"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// InventoryHistoryResponse salida de un registro del historial.
type InventoryHistoryResponse struct {
	ID               string          `json:"id"`
	InventoryID      string          `json:"inventory_id"`
	ItemID           string          `json:"item_id"`
	PlantID          string          `json:"plant_id"`
	Action           string          `json:"action"`
	PreviousQuantity decimal.Decimal `json:"previous_quantity"`
	Quantity         decimal.Decimal `json:"quantity"`
	UserID           string          `json:"user_id"`
	CreatedAt        time.Time       `json:"created_at"`
}
