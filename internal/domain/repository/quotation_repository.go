package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// QuotationRepository define el puerto de persistencia para cotizaciones.
type QuotationRepository interface {
	List(ctx context.Context) ([]*entity.Quotation, error)
	GetByID(ctx context.Context, id int64) (*entity.Quotation, error)
	Create(ctx context.Context, q *entity.Quotation) error
	Update(ctx context.Context, q *entity.Quotation) error
	// Delete devuelve la fila eliminada para que el caller limpie sus archivos.
	Delete(ctx context.Context, id int64) (*entity.Quotation, error)
}
