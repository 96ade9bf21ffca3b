package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/tax"
)

type memPayables struct {
	rows   map[int64]entity.Payable
	nextID int64
	last   repository.DateRange
}

func newMemPayables() *memPayables { return &memPayables{rows: map[int64]entity.Payable{}} }

func (r *memPayables) List(ctx context.Context, dr repository.DateRange) ([]*entity.Payable, error) {
	r.last = dr
	out := make([]*entity.Payable, 0, len(r.rows))
	for _, p := range r.rows {
		cp := p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memPayables) GetByID(ctx context.Context, id int64) (*entity.Payable, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	p.ProviderName = "Proveedor"
	return &p, nil
}

func (r *memPayables) Create(ctx context.Context, p *entity.Payable) error {
	r.nextID++
	p.ID = r.nextID
	r.rows[p.ID] = *p
	return nil
}

func (r *memPayables) Update(ctx context.Context, p *entity.Payable) error {
	if _, ok := r.rows[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.rows[p.ID] = *p
	return nil
}

func (r *memPayables) Delete(ctx context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *memPayables) TogglePaid(ctx context.Context, id int64) (*entity.Payable, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	p.Paid = !p.Paid
	r.rows[id] = p
	return &p, nil
}

func payableIn(net string, withTax bool) dto.PayableRequest {
	return dto.PayableRequest{
		Concept:   "Material eléctrico",
		NetAmount: decimal.RequireFromString(net),
		WithTax:   withTax,
		IssueDate: "2024-03-10",
	}
}

func TestPayable_CreateDerivaIVA(t *testing.T) {
	uc := usecase.NewPayableUseCase(newMemPayables(), tax.DefaultRate)

	out, err := uc.Create(context.Background(), payableIn("1000", true))
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.Equal(t, "1160", out.AmountWithTax.String())
	assert.Equal(t, "160", out.Tax.String())
	assert.Equal(t, "Proveedor", out.ProviderName, "la respuesta incluye el nombre unido")

	out, err = uc.Create(context.Background(), payableIn("1000", false))
	require.NoError(t, err)
	assert.Equal(t, "1000", out.AmountWithTax.String())
	assert.True(t, out.Tax.IsZero())
}

func TestPayable_ValidaAntesDePersistir(t *testing.T) {
	repo := newMemPayables()
	uc := usecase.NewPayableUseCase(repo, tax.DefaultRate)

	_, err := uc.Create(context.Background(), payableIn("0", true))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in := payableIn("10", true)
	in.IssueDate = "10/03/2024"
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.rows)
}

func TestPayable_TogglePaidDosVecesRestaura(t *testing.T) {
	uc := usecase.NewPayableUseCase(newMemPayables(), tax.DefaultRate)
	created, err := uc.Create(context.Background(), payableIn("50", false))
	require.NoError(t, err)
	require.False(t, created.Paid)

	once, err := uc.TogglePaid(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, once.Paid)

	twice, err := uc.TogglePaid(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, twice.Paid)

	_, err = uc.TogglePaid(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPayable_UpdateYDeleteNoEncontrado(t *testing.T) {
	uc := usecase.NewPayableUseCase(newMemPayables(), tax.DefaultRate)
	_, err := uc.Update(context.Background(), 7, payableIn("10", true))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(context.Background(), 7), domain.ErrNotFound)
	_, err = uc.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPayable_ListConMes(t *testing.T) {
	repo := newMemPayables()
	uc := usecase.NewPayableUseCase(repo, tax.DefaultRate)

	_, err := uc.List(context.Background(), dto.DateRangeQuery{Month: "2024-02"})
	require.NoError(t, err)
	require.NotNil(t, repo.last.From)
	require.NotNil(t, repo.last.To)
	assert.Equal(t, "2024-02-01", dto.FormatDate(*repo.last.From))
	assert.Equal(t, "2024-02-29", dto.FormatDate(*repo.last.To))

	_, err = uc.List(context.Background(), dto.DateRangeQuery{From: "2024-05-01", To: "2024-04-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
