package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectRequest entrada para crear o reemplazar un proyecto.
type ProjectRequest struct {
	ClientID    *int64          `json:"client_id" validate:"omitempty,gt=0"`
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description" validate:"max=2000"`
	Status      string          `json:"status" validate:"omitempty,oneof=planeacion en_curso terminado cancelado"`
	StartDate   *string         `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string         `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Budget      decimal.Decimal `json:"budget" validate:"min=0"`
}

// ProjectResponse salida de un proyecto con el nombre del cliente.
type ProjectResponse struct {
	ID          int64           `json:"id"`
	ClientID    *int64          `json:"client_id"`
	ClientName  string          `json:"client_name"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	StartDate   *string         `json:"start_date"`
	EndDate     *string         `json:"end_date"`
	Budget      decimal.Decimal `json:"budget"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
