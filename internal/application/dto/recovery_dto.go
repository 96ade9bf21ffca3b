package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecoveryRequest entrada para crear o reemplazar una recuperación.
type RecoveryRequest struct {
	ProjectID  *int64          `json:"project_id" validate:"omitempty,gt=0"`
	Concept    string          `json:"concept" validate:"required,max=255"`
	ThirdParty string          `json:"third_party" validate:"max=200"`
	Amount     decimal.Decimal `json:"amount" validate:"gt=0"`
	Date       string          `json:"date" validate:"required,datetime=2006-01-02"`
	Recovered  bool            `json:"recovered"`
	Notes      string          `json:"notes" validate:"max=2000"`
}

// RecoveryResponse salida de una recuperación con el nombre del proyecto.
type RecoveryResponse struct {
	ID          int64           `json:"id"`
	ProjectID   *int64          `json:"project_id"`
	ProjectName string          `json:"project_name"`
	Concept     string          `json:"concept"`
	ThirdParty  string          `json:"third_party"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Recovered   bool            `json:"recovered"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
