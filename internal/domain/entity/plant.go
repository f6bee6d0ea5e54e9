package entity

import "time"

// Plant planta física donde se almacena inventario; pertenece a una Division.
type Plant struct {
	ID         string
	DivisionID string
	Name       string
	Code       string // código único
	Location   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
