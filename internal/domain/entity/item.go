package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item artículo del catálogo de requisición.
type Item struct {
	ID                string
	StorageLevelID    string
	MeasurementUnitID string
	SupplierID        string
	Name              string
	Code              string // código único
	Description       string
	UnitCost          decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
