package dto

import "time"

// PhaseRequest entrada para crear o reemplazar una fase de proyecto.
type PhaseRequest struct {
	ProjectID   int64   `json:"project_id" validate:"required,gt=0"`
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"max=2000"`
	StartDate   *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Progress    int     `json:"progress" validate:"min=0,max=100"`
}

// PhaseResponse salida de una fase con el nombre del proyecto.
type PhaseResponse struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"project_id"`
	ProjectName string    `json:"project_name"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   *string   `json:"start_date"`
	EndDate     *string   `json:"end_date"`
	Progress    int       `json:"progress"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
