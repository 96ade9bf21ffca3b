package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// PayableRepository define el puerto de persistencia para cuentas por pagar.
type PayableRepository interface {
	List(ctx context.Context, r DateRange) ([]*entity.Payable, error)
	GetByID(ctx context.Context, id int64) (*entity.Payable, error)
	Create(ctx context.Context, p *entity.Payable) error
	Update(ctx context.Context, p *entity.Payable) error
	Delete(ctx context.Context, id int64) error
	// TogglePaid invierte "pagado" en una sola sentencia y devuelve la fila resultante.
	TogglePaid(ctx context.Context, id int64) (*entity.Payable, error)
}
