package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Acciones registradas en el historial de inventario.
const (
	HistoryActionCreate = "create"
	HistoryActionUpdate = "update"
	HistoryActionDelete = "delete"
)

// InventoryHistory registro inmutable de cada mutación de un Inventory.
type InventoryHistory struct {
	ID               string
	InventoryID      string
	ItemID           string
	PlantID          string
	Action           string // create, update, delete
	PreviousQuantity decimal.Decimal
	Quantity         decimal.Decimal
	UserID           string // quién ejecutó la mutación
	CreatedAt        time.Time
}
