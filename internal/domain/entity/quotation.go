package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cotización.
const (
	QuotationStatusPending  = "pendiente"
	QuotationStatusApproved = "aprobada"
	QuotationStatusRejected = "rechazada"
)

// Quotation representa una cotización enviada a un cliente.
// Files guarda los nombres de los archivos adjuntos (arreglo JSON en la DB).
type Quotation struct {
	ID          int64
	ClientID    *int64
	ClientName  string // solo lectura (LEFT JOIN clients)
	ProjectID   *int64
	Folio       string
	Description string
	Amount      decimal.Decimal
	Status      string
	Date        time.Time
	Files       []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidQuotationStatus indica si s es un estado de cotización conocido.
func ValidQuotationStatus(s string) bool {
	switch s {
	case QuotationStatusPending, QuotationStatusApproved, QuotationStatusRejected:
		return true
	}
	return false
}
