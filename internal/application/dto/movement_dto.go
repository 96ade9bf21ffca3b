package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest entrada para registrar un movimiento en la contabilidad.
// Exactamente uno de debit (cargo) o credit (abono) debe ser mayor que cero.
type CreateMovementRequest struct {
	Date    string           `json:"date" validate:"required,datetime=2006-01-02"`
	Concept string           `json:"concept" validate:"required,max=255"`
	Debit   *decimal.Decimal `json:"debit"`
	Credit  *decimal.Decimal `json:"credit"`
	Notes   string           `json:"notes" validate:"max=2000"`
}

// UpdateMovementRequest entrada para editar un movimiento; solo se aplican los campos enviados.
// Si se envía debit o credit, el par se reemplaza completo (el omitido queda ausente).
type UpdateMovementRequest struct {
	Date    *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Concept *string          `json:"concept" validate:"omitempty,max=255"`
	Debit   *decimal.Decimal `json:"debit"`
	Credit  *decimal.Decimal `json:"credit"`
	Notes   *string          `json:"notes" validate:"omitempty,max=2000"`
}

// MovementAttachments archivos opcionales de factura (PDF y XML).
type MovementAttachments struct {
	InvoicePDF *FileUpload
	InvoiceXML *FileUpload
}

// MovementResponse salida de un movimiento con sus campos derivados.
type MovementResponse struct {
	ID         int64            `json:"id"`
	Date       string           `json:"date"`
	Concept    string           `json:"concept"`
	Debit      *decimal.Decimal `json:"debit"`
	Credit     *decimal.Decimal `json:"credit"`
	Amount     decimal.Decimal  `json:"amount"`
	Balance    decimal.Decimal  `json:"balance"`
	Status     string           `json:"status"`
	Notes      string           `json:"notes"`
	InvoicePDF *string          `json:"invoice_pdf"`
	InvoiceXML *string          `json:"invoice_xml"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}
