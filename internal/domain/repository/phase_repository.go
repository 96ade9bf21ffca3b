package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// PhaseRepository define el puerto de persistencia para Phase.
// List filtra por proyecto cuando projectID no es nil.
type PhaseRepository interface {
	List(ctx context.Context, projectID *int64) ([]*entity.Phase, error)
	GetByID(ctx context.Context, id int64) (*entity.Phase, error)
	Create(ctx context.Context, p *entity.Phase) error
	Update(ctx context.Context, p *entity.Phase) error
	Delete(ctx context.Context, id int64) error
}
