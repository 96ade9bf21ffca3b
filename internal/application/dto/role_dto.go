package dto

import "time"

// RoleRequest entrada para crear o reemplazar un rol.
type RoleRequest struct {
	Name        string `json:"name" validate:"required,max=60"`
	Description string `json:"description" validate:"max=500"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PermissionRequest entrada para crear o reemplazar un permiso de rol sobre un módulo.
type PermissionRequest struct {
	RoleID    int64  `json:"role_id" validate:"required,gt=0"`
	Module    string `json:"module" validate:"required,max=60"`
	CanRead   bool   `json:"can_read"`
	CanCreate bool   `json:"can_create"`
	CanUpdate bool   `json:"can_update"`
	CanDelete bool   `json:"can_delete"`
}

// PermissionResponse salida de un permiso con el nombre del rol.
type PermissionResponse struct {
	ID        int64     `json:"id"`
	RoleID    int64     `json:"role_id"`
	RoleName  string    `json:"role_name"`
	Module    string    `json:"module"`
	CanRead   bool      `json:"can_read"`
	CanCreate bool      `json:"can_create"`
	CanUpdate bool      `json:"can_update"`
	CanDelete bool      `json:"can_delete"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
