package dto

import "time"

// ProviderRequest entrada para crear o reemplazar un proveedor.
type ProviderRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	RFC         string `json:"rfc" validate:"omitempty,min=12,max=13"`
	ContactName string `json:"contact_name" validate:"max=200"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"max=30"`
	BankAccount string `json:"bank_account" validate:"omitempty,numeric,len=18"`
	Notes       string `json:"notes" validate:"max=2000"`
}

// ProviderResponse salida de un proveedor.
type ProviderResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	RFC         string    `json:"rfc"`
	ContactName string    `json:"contact_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	BankAccount string    `json:"bank_account"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
