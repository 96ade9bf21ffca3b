package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// AssetRepository define el puerto de persistencia para activos.
type AssetRepository interface {
	List(ctx context.Context) ([]*entity.Asset, error)
	GetByID(ctx context.Context, id int64) (*entity.Asset, error)
	Create(ctx context.Context, a *entity.Asset) error
	Update(ctx context.Context, a *entity.Asset) error
	Delete(ctx context.Context, id int64) error
}
