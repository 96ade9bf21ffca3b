package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receivable representa una cuenta por cobrar a un cliente.
type Receivable struct {
	ID            int64
	ClientID      *int64
	ClientName    string // solo lectura (LEFT JOIN clients)
	ProjectID     *int64
	Concept       string
	InvoiceNumber string
	NetAmount     decimal.Decimal
	WithTax       bool
	Tax           decimal.Decimal
	AmountWithTax decimal.Decimal
	IssueDate     time.Time
	DueDate       *time.Time
	Collected     bool
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
