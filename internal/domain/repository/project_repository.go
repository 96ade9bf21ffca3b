package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// ProjectFilter filtros opcionales del listado de proyectos.
type ProjectFilter struct {
	Status   string
	ClientID *int64
}

// ProjectRepository define el puerto de persistencia para Project (con nombre de cliente vía LEFT JOIN).
type ProjectRepository interface {
	List(ctx context.Context, f ProjectFilter) ([]*entity.Project, error)
	GetByID(ctx context.Context, id int64) (*entity.Project, error)
	Create(ctx context.Context, p *entity.Project) error
	Update(ctx context.Context, p *entity.Project) error
	Delete(ctx context.Context, id int64) error
}
