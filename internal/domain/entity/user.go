package entity

import "time"

// User representa un usuario del sistema.
type User struct {
	ID           int64
	RoleID       *int64
	RoleName     string // solo lectura (LEFT JOIN roles)
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
