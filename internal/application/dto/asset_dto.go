package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetRequest entrada para crear o reemplazar un activo.
type AssetRequest struct {
	CategoryID   *int64          `json:"category_id" validate:"omitempty,gt=0"`
	Name         string          `json:"name" validate:"required,max=200"`
	Description  string          `json:"description" validate:"max=2000"`
	SerialNumber string          `json:"serial_number" validate:"max=100"`
	PurchaseDate *string         `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	Cost         decimal.Decimal `json:"cost" validate:"min=0"`
	Location     string          `json:"location" validate:"max=200"`
}

// AssetResponse salida de un activo con el nombre de su categoría.
type AssetResponse struct {
	ID           int64           `json:"id"`
	CategoryID   *int64          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	SerialNumber string          `json:"serial_number"`
	PurchaseDate *string         `json:"purchase_date"`
	Cost         decimal.Decimal `json:"cost"`
	Location     string          `json:"location"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
