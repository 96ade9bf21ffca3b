// Package analytics contiene los casos de uso del dashboard: KPIs de contabilidad,
// pendientes de cobro y pago, y flujo mensual.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen del negocio y el flujo de efectivo anual.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Las siete consultas corren en paralelo, cada una con su conexión del pool.
// El primer error cancela el contexto de las demás y es el que se devuelve.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	var (
		balance, income, expense          decimal.Decimal
		payables, receivables, recoveries repository.PendingTotal
		projects, quotations              map[string]int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		balance, err = uc.analyticsRepo.GetLedgerBalance(gctx)
		return wrap("saldo", err)
	})
	g.Go(func() (err error) {
		income, expense, err = uc.analyticsRepo.GetLedgerTotals(gctx, monthStart, monthEnd)
		return wrap("totales del mes", err)
	})
	g.Go(func() (err error) {
		payables, err = uc.analyticsRepo.GetPendingPayables(gctx)
		return wrap("cuentas por pagar", err)
	})
	g.Go(func() (err error) {
		receivables, err = uc.analyticsRepo.GetPendingReceivables(gctx)
		return wrap("cuentas por cobrar", err)
	})
	g.Go(func() (err error) {
		recoveries, err = uc.analyticsRepo.GetPendingRecoveries(gctx)
		return wrap("recuperaciones", err)
	})
	g.Go(func() (err error) {
		projects, err = uc.analyticsRepo.CountProjectsByStatus(gctx)
		return wrap("proyectos", err)
	})
	g.Go(func() (err error) {
		quotations, err = uc.analyticsRepo.CountQuotationsByStatus(gctx)
		return wrap("cotizaciones", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.DashboardSummaryDTO{
		LedgerBalance:      balance.Round(2),
		MonthIncome:        income.Round(2),
		MonthExpense:       expense.Round(2),
		PendingPayables:    toPendingDTO(payables),
		PendingReceivables: toPendingDTO(receivables),
		PendingRecoveries:  toPendingDTO(recoveries),
		ProjectsByStatus:   nonNil(projects),
		QuotationsByStatus: nonNil(quotations),
		DateLabel:          monthLabel(now),
	}, nil
}

// GetCashFlow devuelve cargos, abonos y neto por mes del año; los meses sin movimientos van en cero.
func (uc *DashboardUseCase) GetCashFlow(ctx context.Context, year int) (*dto.CashFlowDTO, error) {
	if year == 0 {
		year = uc.now().Year()
	}
	if year < 1900 || year > 9999 {
		return nil, domain.NewValidationError("anio", "año fuera de rango")
	}
	rows, err := uc.analyticsRepo.GetMonthlyFlow(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("dashboard: flujo mensual: %w", err)
	}

	months := make([]dto.MonthlyFlowDTO, 12)
	for i := range months {
		months[i] = dto.MonthlyFlowDTO{Month: i + 1, Income: decimal.Zero, Expense: decimal.Zero, Net: decimal.Zero}
	}
	for _, r := range rows {
		if r.Month < 1 || r.Month > 12 {
			continue
		}
		m := &months[r.Month-1]
		m.Income = r.Income.Round(2)
		m.Expense = r.Expense.Round(2)
		m.Net = r.Income.Sub(r.Expense).Round(2)
	}
	return &dto.CashFlowDTO{Year: year, Months: months}, nil
}

func wrap(query string, err error) error {
	if err != nil {
		return fmt.Errorf("dashboard: %s: %w", query, err)
	}
	return nil
}

func toPendingDTO(p repository.PendingTotal) dto.PendingDTO {
	return dto.PendingDTO{Count: p.Count, Total: p.Total.Round(2)}
}

func nonNil(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}
	return m
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
