package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory existencia de un ítem en una planta.
type Inventory struct {
	ID           string
	ItemID       string
	PlantID      string
	Quantity     decimal.Decimal
	ReorderPoint decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
