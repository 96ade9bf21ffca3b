package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recovery representa un monto que se espera recuperar de un tercero.
type Recovery struct {
	ID          int64
	ProjectID   *int64
	ProjectName string // solo lectura (LEFT JOIN projects)
	Concept     string
	ThirdParty  string
	Amount      decimal.Decimal
	Date        time.Time
	Recovered   bool
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
