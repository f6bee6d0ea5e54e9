package entity

import "time"

// Division pertenece a un Department y agrupa plantas.
type Division struct {
	ID           string
	DepartmentID string
	Name         string
	Code         string // código único
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
