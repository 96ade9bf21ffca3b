package entity

import "time"

// Phase representa una fase (etapa) de un proyecto.
type Phase struct {
	ID          int64
	ProjectID   int64
	ProjectName string // solo lectura (LEFT JOIN projects)
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	Progress    int // porcentaje 0-100
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
