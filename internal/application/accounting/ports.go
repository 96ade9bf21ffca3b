package accounting

import (
	"context"
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con un MovementRepository atado a ella.
// La implementación hace Commit si fn devuelve nil y Rollback en cualquier otro caso.
type TxRunner interface {
	RunLedger(ctx context.Context, fn func(repo repository.MovementRepository) error) error
}

// SpreadsheetExporter proyecta movimientos a archivos tabulares.
type SpreadsheetExporter interface {
	MovementsXLSX(movements []*entity.Movement) ([]byte, error)
	MovementsCSV(movements []*entity.Movement) ([]byte, error)
}

// StatementRenderer genera el estado de cuenta en PDF.
type StatementRenderer interface {
	RenderStatement(ctx context.Context, movements []*entity.Movement, generatedAt time.Time) ([]byte, error)
}
