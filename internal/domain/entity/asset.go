package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset representa un activo fijo de la empresa.
type Asset struct {
	ID           int64
	CategoryID   *int64
	CategoryName string // solo lectura (LEFT JOIN categories)
	Name         string
	Description  string
	SerialNumber string
	PurchaseDate *time.Time
	Cost         decimal.Decimal
	Location     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
