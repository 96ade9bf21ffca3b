package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados derivados de un movimiento contable (dependen solo del signo del saldo).
const (
	MovementStatusComplete   = "Complete"
	MovementStatusIncomplete = "Incomplete"
)

// Movement representa un movimiento de la contabilidad (cargo o abono) con su saldo acumulado.
type Movement struct {
	ID         int64
	Date       time.Time // fecha calendario; clave primaria de orden
	Concept    string
	Debit      *decimal.Decimal // cargo (entrada); nil si no aplica
	Credit     *decimal.Decimal // abono (salida); nil si no aplica
	Amount     decimal.Decimal  // derivado: debit o -credit
	Balance    decimal.Decimal  // derivado: saldo acumulado en orden (fecha, id)
	Status     string           // derivado: Complete | Incomplete
	Notes      string
	InvoicePDF *string // nombre del archivo en el almacenamiento local
	InvoiceXML *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
