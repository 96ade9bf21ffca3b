package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetLedgerBalance saldo del último movimiento en orden (date, id).
func (r *AnalyticsRepo) GetLedgerBalance(ctx context.Context) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE((
	    SELECT balance FROM ledger_movements ORDER BY date DESC, id DESC LIMIT 1
	), 0)`
	var balance decimal.Decimal
	if err := r.pool.QueryRow(ctx, query).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.GetLedgerBalance: %w", err)
	}
	return balance, nil
}

// GetLedgerTotals suma cargos y abonos del rango [from, to].
func (r *AnalyticsRepo) GetLedgerTotals(ctx context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(debit), 0), COALESCE(SUM(credit), 0)
	FROM ledger_movements
	WHERE date BETWEEN $1::date AND $2::date`
	var income, expense decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, from, to).Scan(&income, &expense); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("analytics.GetLedgerTotals: %w", err)
	}
	return income, expense, nil
}

func (r *AnalyticsRepo) GetPendingPayables(ctx context.Context) (repository.PendingTotal, error) {
	return r.pending(ctx, "GetPendingPayables",
		`SELECT COUNT(*), COALESCE(SUM(amount_with_tax), 0) FROM payables WHERE NOT paid`)
}

func (r *AnalyticsRepo) GetPendingReceivables(ctx context.Context) (repository.PendingTotal, error) {
	return r.pending(ctx, "GetPendingReceivables",
		`SELECT COUNT(*), COALESCE(SUM(amount_with_tax), 0) FROM receivables WHERE NOT collected`)
}

func (r *AnalyticsRepo) GetPendingRecoveries(ctx context.Context) (repository.PendingTotal, error) {
	return r.pending(ctx, "GetPendingRecoveries",
		`SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM recoveries WHERE NOT recovered`)
}

func (r *AnalyticsRepo) pending(ctx context.Context, op, query string) (repository.PendingTotal, error) {
	var p repository.PendingTotal
	if err := r.pool.QueryRow(ctx, query).Scan(&p.Count, &p.Total); err != nil {
		return p, fmt.Errorf("analytics.%s: %w", op, err)
	}
	return p, nil
}

func (r *AnalyticsRepo) CountProjectsByStatus(ctx context.Context) (map[string]int, error) {
	return r.countBy(ctx, "CountProjectsByStatus", `SELECT status, COUNT(*) FROM projects GROUP BY status`)
}

func (r *AnalyticsRepo) CountQuotationsByStatus(ctx context.Context) (map[string]int, error) {
	return r.countBy(ctx, "CountQuotationsByStatus", `SELECT status, COUNT(*) FROM quotations GROUP BY status`)
}

func (r *AnalyticsRepo) countBy(ctx context.Context, op, query string) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.%s: %w", op, err)
	}
	defer rows.Close()
	out := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("analytics.%s scan: %w", op, err)
		}
		out[status] = n
	}
	return out, rows.Err()
}

// GetMonthlyFlow agrupa cargos y abonos por mes del año indicado.
func (r *AnalyticsRepo) GetMonthlyFlow(ctx context.Context, year int) ([]repository.MonthlyFlowResult, error) {
	const query = `
	SELECT EXTRACT(MONTH FROM date)::int AS month,
	       COALESCE(SUM(debit), 0)      AS income,
	       COALESCE(SUM(credit), 0)     AS expense
	FROM ledger_movements
	WHERE EXTRACT(YEAR FROM date) = $1
	GROUP BY month
	ORDER BY month`
	rows, err := r.pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetMonthlyFlow: %w", err)
	}
	defer rows.Close()
	var results []repository.MonthlyFlowResult
	for rows.Next() {
		var row repository.MonthlyFlowResult
		if err := rows.Scan(&row.Month, &row.Income, &row.Expense); err != nil {
			return nil, fmt.Errorf("analytics.GetMonthlyFlow scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
