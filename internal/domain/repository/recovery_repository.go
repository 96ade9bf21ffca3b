package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// RecoveryRepository define el puerto de persistencia para recuperaciones.
type RecoveryRepository interface {
	List(ctx context.Context) ([]*entity.Recovery, error)
	GetByID(ctx context.Context, id int64) (*entity.Recovery, error)
	Create(ctx context.Context, r *entity.Recovery) error
	Update(ctx context.Context, r *entity.Recovery) error
	Delete(ctx context.Context, id int64) error
	// ToggleRecovered invierte "recuperado" en una sola sentencia.
	ToggleRecovered(ctx context.Context, id int64) (*entity.Recovery, error)
}
