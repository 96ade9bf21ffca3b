package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayableRequest entrada para crear o reemplazar una cuenta por pagar.
// amount_with_tax se calcula en el servidor (net_amount * 1.16 cuando with_tax).
type PayableRequest struct {
	ProviderID    *int64          `json:"provider_id" validate:"omitempty,gt=0"`
	ProjectID     *int64          `json:"project_id" validate:"omitempty,gt=0"`
	Concept       string          `json:"concept" validate:"required,max=255"`
	InvoiceNumber string          `json:"invoice_number" validate:"max=60"`
	NetAmount     decimal.Decimal `json:"net_amount" validate:"gt=0"`
	WithTax       bool            `json:"with_tax"`
	IssueDate     string          `json:"issue_date" validate:"required,datetime=2006-01-02"`
	DueDate       *string         `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Paid          bool            `json:"paid"`
	Notes         string          `json:"notes" validate:"max=2000"`
}

// PayableResponse salida de una cuenta por pagar con el nombre del proveedor.
type PayableResponse struct {
	ID            int64           `json:"id"`
	ProviderID    *int64          `json:"provider_id"`
	ProviderName  string          `json:"provider_name"`
	ProjectID     *int64          `json:"project_id"`
	Concept       string          `json:"concept"`
	InvoiceNumber string          `json:"invoice_number"`
	NetAmount     decimal.Decimal `json:"net_amount"`
	WithTax       bool            `json:"with_tax"`
	Tax           decimal.Decimal `json:"tax"`
	AmountWithTax decimal.Decimal `json:"amount_with_tax"`
	IssueDate     string          `json:"issue_date"`
	DueDate       *string         `json:"due_date"`
	Paid          bool            `json:"paid"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
