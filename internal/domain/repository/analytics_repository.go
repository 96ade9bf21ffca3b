package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PendingTotal suma y conteo de registros pendientes (no pagados / no cobrados / no recuperados).
type PendingTotal struct {
	Count int
	Total decimal.Decimal
}

// MonthlyFlowResult resultado crudo de cargos y abonos de un mes.
type MonthlyFlowResult struct {
	Month   int // 1-12
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetLedgerBalance devuelve el saldo del último movimiento en orden (fecha, id); 0 sin movimientos.
	GetLedgerBalance(ctx context.Context) (decimal.Decimal, error)

	// GetLedgerTotals suma cargos (income) y abonos (expense) en el rango [from, to].
	GetLedgerTotals(ctx context.Context, from, to time.Time) (income, expense decimal.Decimal, err error)

	GetPendingPayables(ctx context.Context) (PendingTotal, error)
	GetPendingReceivables(ctx context.Context) (PendingTotal, error)
	GetPendingRecoveries(ctx context.Context) (PendingTotal, error)

	// CountProjectsByStatus y CountQuotationsByStatus devuelven conteos por estado.
	CountProjectsByStatus(ctx context.Context) (map[string]int, error)
	CountQuotationsByStatus(ctx context.Context) (map[string]int, error)

	// GetMonthlyFlow devuelve cargos y abonos por mes del año; solo meses con movimientos.
	GetMonthlyFlow(ctx context.Context, year int) ([]MonthlyFlowResult, error)
}
