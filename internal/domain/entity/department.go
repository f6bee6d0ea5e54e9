package entity

import "time"

// Department unidad organizativa de primer nivel; agrupa divisiones.
type Department struct {
	ID          string
	Name        string
	Code        string // código único
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
