package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceivableRequest entrada para crear o reemplazar una cuenta por cobrar.
type ReceivableRequest struct {
	ClientID      *int64          `json:"client_id" validate:"omitempty,gt=0"`
	ProjectID     *int64          `json:"project_id" validate:"omitempty,gt=0"`
	Concept       string          `json:"concept" validate:"required,max=255"`
	InvoiceNumber string          `json:"invoice_number" validate:"max=60"`
	NetAmount     decimal.Decimal `json:"net_amount" validate:"gt=0"`
	WithTax       bool            `json:"with_tax"`
	IssueDate     string          `json:"issue_date" validate:"required,datetime=2006-01-02"`
	DueDate       *string         `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Collected     bool            `json:"collected"`
	Notes         string          `json:"notes" validate:"max=2000"`
}

// ReceivableResponse salida de una cuenta por cobrar con el nombre del cliente.
type ReceivableResponse struct {
	ID            int64           `json:"id"`
	ClientID      *int64          `json:"client_id"`
	ClientName    string          `json:"client_name"`
	ProjectID     *int64          `json:"project_id"`
	Concept       string          `json:"concept"`
	InvoiceNumber string          `json:"invoice_number"`
	NetAmount     decimal.Decimal `json:"net_amount"`
	WithTax       bool            `json:"with_tax"`
	Tax           decimal.Decimal `json:"tax"`
	AmountWithTax decimal.Decimal `json:"amount_with_tax"`
	IssueDate     string          `json:"issue_date"`
	DueDate       *string         `json:"due_date"`
	Collected     bool            `json:"collected"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
