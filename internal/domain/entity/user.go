package entity

import "time"

// User representa un usuario del sistema.
// Active implementa soft delete: un usuario inactivo no aparece en los listados
// por defecto pero sigue siendo consultable por id.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // user, admin, superadmin
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
