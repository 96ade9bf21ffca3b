package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de un proyecto.
const (
	ProjectStatusPlanning  = "planeacion"
	ProjectStatusActive    = "en_curso"
	ProjectStatusFinished  = "terminado"
	ProjectStatusCancelled = "cancelado"
)

// Project representa un proyecto realizado para un cliente.
type Project struct {
	ID          int64
	ClientID    *int64
	ClientName  string // solo lectura (LEFT JOIN clients)
	Name        string
	Description string
	Status      string
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidProjectStatus indica si s es un estado de proyecto conocido.
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusActive, ProjectStatusFinished, ProjectStatusCancelled:
		return true
	}
	return false
}
