package analytics

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

type stubAnalytics struct {
	from, to   time.Time
	flowYear   int
	flow       []repository.MonthlyFlowResult
	pendingErr error
}

func (s *stubAnalytics) GetLedgerBalance(ctx context.Context) (decimal.Decimal, error) {
	return decimal.RequireFromString("-500"), nil
}

func (s *stubAnalytics) GetLedgerTotals(ctx context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	s.from, s.to = from, to
	return decimal.RequireFromString("1000"), decimal.RequireFromString("1500"), nil
}

func (s *stubAnalytics) GetPendingPayables(ctx context.Context) (repository.PendingTotal, error) {
	return repository.PendingTotal{Count: 2, Total: decimal.RequireFromString("2320.004")}, s.pendingErr
}

func (s *stubAnalytics) GetPendingReceivables(ctx context.Context) (repository.PendingTotal, error) {
	return repository.PendingTotal{Count: 1, Total: decimal.NewFromInt(580)}, nil
}

func (s *stubAnalytics) GetPendingRecoveries(ctx context.Context) (repository.PendingTotal, error) {
	return repository.PendingTotal{}, nil
}

func (s *stubAnalytics) CountProjectsByStatus(ctx context.Context) (map[string]int, error) {
	return map[string]int{"en_curso": 3}, nil
}

func (s *stubAnalytics) CountQuotationsByStatus(ctx context.Context) (map[string]int, error) {
	return nil, nil
}

func (s *stubAnalytics) GetMonthlyFlow(ctx context.Context, year int) ([]repository.MonthlyFlowResult, error) {
	s.flowYear = year
	return s.flow, nil
}

func fixedNow() time.Time { return time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC) }

func TestGetSummary_CombinaConsultas(t *testing.T) {
	repo := &stubAnalytics{}
	uc := NewDashboardUseCase(repo)
	uc.now = fixedNow

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "-500", out.LedgerBalance.String())
	assert.Equal(t, "1000", out.MonthIncome.String())
	assert.Equal(t, "1500", out.MonthExpense.String())
	assert.Equal(t, 2, out.PendingPayables.Count)
	assert.Equal(t, "2320", out.PendingPayables.Total.String())
	assert.Equal(t, 3, out.ProjectsByStatus["en_curso"])
	assert.NotNil(t, out.QuotationsByStatus, "los mapas vacíos se serializan como {}")
	assert.Equal(t, "Febrero 2024", out.DateLabel)

	assert.Equal(t, "2024-02-01", repo.from.Format("2006-01-02"))
	assert.Equal(t, "2024-02-29", repo.to.Format("2006-01-02"))
}

func TestGetSummary_PropagaError(t *testing.T) {
	boom := errors.New("conexión perdida")
	uc := NewDashboardUseCase(&stubAnalytics{pendingErr: boom})
	_, err := uc.GetSummary(context.Background())
	assert.ErrorIs(t, err, boom)
}

// slowAnalytics bloquea saldo y proyectos hasta que su contexto se cancela.
type slowAnalytics struct {
	*stubAnalytics
	cancelled atomic.Int32
}

func (s *slowAnalytics) wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		s.cancelled.Add(1)
		return ctx.Err()
	case <-time.After(5 * time.Second):
		return errors.New("la consulta no fue cancelada")
	}
}

func (s *slowAnalytics) GetLedgerBalance(ctx context.Context) (decimal.Decimal, error) {
	return decimal.Zero, s.wait(ctx)
}

func (s *slowAnalytics) CountProjectsByStatus(ctx context.Context) (map[string]int, error) {
	return nil, s.wait(ctx)
}

func TestGetSummary_ErrorCancelaLasDemasConsultas(t *testing.T) {
	boom := errors.New("conexión perdida")
	repo := &slowAnalytics{stubAnalytics: &stubAnalytics{pendingErr: boom}}
	uc := NewDashboardUseCase(repo)
	uc.now = fixedNow

	start := time.Now()
	_, err := uc.GetSummary(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "cuentas por pagar")
	assert.EqualValues(t, 2, repo.cancelled.Load(), "las consultas en curso reciben la cancelación")
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestGetCashFlow_RellenaDoceMeses(t *testing.T) {
	repo := &stubAnalytics{flow: []repository.MonthlyFlowResult{
		{Month: 3, Income: decimal.NewFromInt(1000), Expense: decimal.NewFromInt(400)},
		{Month: 11, Income: decimal.Zero, Expense: decimal.NewFromInt(250)},
	}}
	uc := NewDashboardUseCase(repo)
	uc.now = fixedNow

	out, err := uc.GetCashFlow(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 2024, out.Year, "sin año usa el actual")
	require.Len(t, out.Months, 12)
	assert.Equal(t, 1, out.Months[0].Month)
	assert.True(t, out.Months[0].Net.IsZero())
	assert.Equal(t, "600", out.Months[2].Net.String())
	assert.Equal(t, "-250", out.Months[10].Net.String())

	_, err = uc.GetCashFlow(context.Background(), 12)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
