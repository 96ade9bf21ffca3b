package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuotationRequest entrada para crear o reemplazar una cotización (campos de formulario multipart o JSON).
type QuotationRequest struct {
	ClientID    *int64          `json:"client_id" validate:"omitempty,gt=0"`
	ProjectID   *int64          `json:"project_id" validate:"omitempty,gt=0"`
	Folio       string          `json:"folio" validate:"max=60"`
	Description string          `json:"description" validate:"required,max=2000"`
	Amount      decimal.Decimal `json:"amount" validate:"min=0"`
	Status      string          `json:"status" validate:"omitempty,oneof=pendiente aprobada rechazada"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
}

// QuotationResponse salida de una cotización con el nombre del cliente.
type QuotationResponse struct {
	ID          int64           `json:"id"`
	ClientID    *int64          `json:"client_id"`
	ClientName  string          `json:"client_name"`
	ProjectID   *int64          `json:"project_id"`
	Folio       string          `json:"folio"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	Date        string          `json:"date"`
	Files       []string        `json:"files"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
