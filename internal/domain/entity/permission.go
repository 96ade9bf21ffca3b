package entity

import "time"

// Permission define qué puede hacer un rol sobre un módulo.
type Permission struct {
	ID        int64
	RoleID    int64
	RoleName  string // solo lectura (LEFT JOIN roles)
	Module    string // p. ej. "contabilidad", "cuentas_por_pagar"
	CanRead   bool
	CanCreate bool
	CanUpdate bool
	CanDelete bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
