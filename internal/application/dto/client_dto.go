package dto

import "time"

// ClientRequest entrada para crear o reemplazar un cliente.
type ClientRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	RFC     string `json:"rfc" validate:"omitempty,min=12,max=13"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"max=30"`
	Address string `json:"address" validate:"max=500"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	RFC       string    `json:"rfc"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
