package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payable representa una cuenta por pagar a un proveedor.
type Payable struct {
	ID            int64
	ProviderID    *int64
	ProviderName  string // solo lectura (LEFT JOIN providers)
	ProjectID     *int64
	Concept       string
	InvoiceNumber string
	NetAmount     decimal.Decimal
	WithTax       bool            // si aplica IVA
	Tax           decimal.Decimal // derivado
	AmountWithTax decimal.Decimal // derivado: net_amount * (1 + tasa) cuando WithTax
	IssueDate     time.Time
	DueDate       *time.Time
	Paid          bool
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
