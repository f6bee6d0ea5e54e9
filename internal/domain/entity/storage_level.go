package entity

import "time"

// StorageLevel nivel de almacenamiento al que se asignan los ítems
// (p. ej. estantería, nevera, bodega exterior).
type StorageLevel struct {
	ID          string
	Name        string
	Code        string // código único
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
