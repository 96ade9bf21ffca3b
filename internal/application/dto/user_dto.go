package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	RoleID   *int64 `json:"role_id" validate:"omitempty,gt=0"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Active   *bool  `json:"active"`
}

// UpdateUserRequest entrada para reemplazar un usuario. Password vacío conserva el actual.
type UpdateUserRequest struct {
	RoleID   *int64 `json:"role_id" validate:"omitempty,gt=0"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
	Active   bool   `json:"active"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        int64     `json:"id"`
	RoleID    *int64    `json:"role_id"`
	RoleName  string    `json:"role_name"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
