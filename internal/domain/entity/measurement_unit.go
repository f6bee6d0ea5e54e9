package entity

import "time"

// MeasurementUnit unidad de medida de los ítems (kg, unidad, caja, litro).
type MeasurementUnit struct {
	ID        string
	Name      string
	Symbol    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
