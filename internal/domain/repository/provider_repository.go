package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// ProviderRepository define el puerto de persistencia para Provider.
type ProviderRepository interface {
	List(ctx context.Context) ([]*entity.Provider, error)
	GetByID(ctx context.Context, id int64) (*entity.Provider, error)
	Create(ctx context.Context, p *entity.Provider) error
	Update(ctx context.Context, p *entity.Provider) error
	Delete(ctx context.Context, id int64) error
}
