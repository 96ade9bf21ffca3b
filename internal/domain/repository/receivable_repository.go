package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// ReceivableRepository define el puerto de persistencia para cuentas por cobrar.
type ReceivableRepository interface {
	List(ctx context.Context, r DateRange) ([]*entity.Receivable, error)
	GetByID(ctx context.Context, id int64) (*entity.Receivable, error)
	Create(ctx context.Context, r *entity.Receivable) error
	Update(ctx context.Context, r *entity.Receivable) error
	Delete(ctx context.Context, id int64) error
}
