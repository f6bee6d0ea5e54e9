package entity

import "time"

// Supplier proveedor de ítems.
type Supplier struct {
	ID        string
	Name      string
	Code      string // código único
	Contact   string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
