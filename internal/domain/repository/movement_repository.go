package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia de la contabilidad.
// Todas las listas vienen en orden (fecha, id) ascendente.
type MovementRepository interface {
	// Lock serializa escritores de la contabilidad hasta el fin de la transacción.
	Lock(ctx context.Context) error
	List(ctx context.Context, r DateRange) ([]*entity.Movement, error)
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Movement, error)
	// Create asigna ID, CreatedAt y UpdatedAt.
	Create(ctx context.Context, m *entity.Movement) error
	// Update devuelve domain.ErrNotFound si el id no existe.
	Update(ctx context.Context, m *entity.Movement) error
	// Delete devuelve domain.ErrNotFound si el id no existe.
	Delete(ctx context.Context, id int64) error
	// BalanceBefore devuelve el saldo del último movimiento con (fecha, id) < (date, id); 0 si no hay.
	BalanceBefore(ctx context.Context, date time.Time, id int64) (decimal.Decimal, error)
	// ListFrom devuelve los movimientos con (fecha, id) >= (date, id).
	ListFrom(ctx context.Context, date time.Time, id int64) ([]*entity.Movement, error)
	UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal, status string) error
}
