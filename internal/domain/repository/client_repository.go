package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
// GetByID devuelve nil, nil si no existe; Update y Delete devuelven domain.ErrNotFound.
type ClientRepository interface {
	List(ctx context.Context) ([]*entity.Client, error)
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	Create(ctx context.Context, c *entity.Client) error
	Update(ctx context.Context, c *entity.Client) error
	Delete(ctx context.Context, id int64) error
}
