package accounting_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/accounting"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/ledger"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba
// ──────────────────────────────────────────────────────────────────────────────

// memRepo repositorio de movimientos en memoria; devuelve copias como lo haría la DB.
type memRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]entity.Movement
	locks  int
}

func newMemRepo() *memRepo {
	return &memRepo{rows: map[int64]entity.Movement{}}
}

func (r *memRepo) sorted() []*entity.Movement {
	out := make([]*entity.Movement, 0, len(r.rows))
	for _, m := range r.rows {
		cp := m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return ledger.Less(out[i], out[j]) })
	return out
}

func (r *memRepo) Lock(ctx context.Context) error { r.locks++; return nil }

func (r *memRepo) List(ctx context.Context, dr repository.DateRange) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.sorted() {
		if dr.From != nil && m.Date.Before(*dr.From) {
			continue
		}
		if dr.To != nil && m.Date.After(*dr.To) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *memRepo) GetByID(ctx context.Context, id int64) (*entity.Movement, error) {
	m, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *memRepo) Create(ctx context.Context, m *entity.Movement) error {
	r.nextID++
	m.ID = r.nextID
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	r.rows[m.ID] = *m
	return nil
}

func (r *memRepo) Update(ctx context.Context, m *entity.Movement) error {
	if _, ok := r.rows[m.ID]; !ok {
		return domain.ErrNotFound
	}
	m.UpdatedAt = time.Now()
	r.rows[m.ID] = *m
	return nil
}

func (r *memRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *memRepo) BalanceBefore(ctx context.Context, date time.Time, id int64) (decimal.Decimal, error) {
	balance := decimal.Zero
	for _, m := range r.sorted() {
		if !ledger.KeyLess(m.Date, m.ID, date, id) {
			break
		}
		balance = m.Balance
	}
	return balance, nil
}

func (r *memRepo) ListFrom(ctx context.Context, date time.Time, id int64) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.sorted() {
		if ledger.KeyLess(m.Date, m.ID, date, id) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *memRepo) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal, status string) error {
	m, ok := r.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.Balance, m.Status = balance, status
	r.rows[id] = m
	return nil
}

// memTx ejecuta fn con el repositorio en memoria y restaura el estado si fn falla.
type memTx struct{ repo *memRepo }

func (tx memTx) RunLedger(ctx context.Context, fn func(repo repository.MovementRepository) error) error {
	tx.repo.mu.Lock()
	defer tx.repo.mu.Unlock()
	snapshot := make(map[int64]entity.Movement, len(tx.repo.rows))
	for k, v := range tx.repo.rows {
		snapshot[k] = v
	}
	if err := fn(tx.repo); err != nil {
		tx.repo.rows = snapshot
		return err
	}
	return nil
}

type memStore struct {
	saved   []string
	removed []string
	failOn  string
}

func (s *memStore) Save(ctx context.Context, kind string, up dto.FileUpload) (string, error) {
	if kind == s.failOn {
		return "", domain.ErrInvalidFile
	}
	name := kind + "-" + up.Filename
	s.saved = append(s.saved, name)
	return name, nil
}

func (s *memStore) Remove(ctx context.Context, name string) error {
	s.removed = append(s.removed, name)
	return nil
}

type stubExporter struct{ rows int }

func (e *stubExporter) MovementsXLSX(movements []*entity.Movement) ([]byte, error) {
	e.rows = len(movements)
	return []byte("xlsx"), nil
}

func (e *stubExporter) MovementsCSV(movements []*entity.Movement) ([]byte, error) {
	e.rows = len(movements)
	return []byte("csv"), nil
}

type stubRenderer struct{}

func (stubRenderer) RenderStatement(ctx context.Context, movements []*entity.Movement, generatedAt time.Time) ([]byte, error) {
	return []byte("%PDF"), nil
}

type fixture struct {
	uc       *accounting.LedgerUseCase
	repo     *memRepo
	store    *memStore
	exporter *stubExporter
}

func newFixture() fixture {
	repo := newMemRepo()
	store := &memStore{}
	exporter := &stubExporter{}
	uc := accounting.NewLedgerUseCase(memTx{repo: repo}, repo, store, exporter, stubRenderer{})
	return fixture{uc: uc, repo: repo, store: store, exporter: exporter}
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strp(s string) *string { return &s }

func create(t *testing.T, f fixture, date, concept string, debit, credit *decimal.Decimal) *dto.MovementResponse {
	t.Helper()
	out, err := f.uc.Create(context.Background(), dto.CreateMovementRequest{
		Date: date, Concept: concept, Debit: debit, Credit: credit,
	}, dto.MovementAttachments{})
	require.NoError(t, err)
	return out
}

// assertChain verifica balance(k) = balance(k-1) + amount(k) y el estado de cada fila.
func assertChain(t *testing.T, f fixture) {
	t.Helper()
	list, err := f.uc.List(context.Background())
	require.NoError(t, err)
	running := decimal.Zero
	for _, m := range list {
		running = running.Add(m.Amount)
		assert.True(t, m.Balance.Equal(running), "movimiento %d: saldo %s, esperado %s", m.ID, m.Balance, running)
		assert.Equal(t, ledger.StatusFor(running), m.Status)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_CargoYAbonoEncadenanSaldo(t *testing.T) {
	f := newFixture()

	a := create(t, f, "2024-01-01", "Anticipo", dec("1000"), nil)
	assert.Equal(t, "1000", a.Amount.String())
	assert.Equal(t, "1000", a.Balance.String())
	assert.Equal(t, entity.MovementStatusComplete, a.Status)

	b := create(t, f, "2024-01-02", "Pago proveedor", dec("0"), dec("1500"))
	assert.Equal(t, "-1500", b.Amount.String())
	assert.Equal(t, "-500", b.Balance.String())
	assert.Equal(t, entity.MovementStatusIncomplete, b.Status)

	list, err := f.uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].ID)
	assert.Equal(t, b.ID, list[1].ID)
	assert.Equal(t, 2, f.repo.locks, "cada alta toma el bloqueo de la tabla")
}

func TestCreate_RechazaExclusividadSinEfectos(t *testing.T) {
	f := newFixture()
	create(t, f, "2024-01-01", "Inicial", dec("10"), nil)

	cases := []struct {
		name          string
		debit, credit *decimal.Decimal
	}{
		{"ambos", dec("100"), dec("50")},
		{"ninguno", nil, nil},
		{"ceros", dec("0"), dec("0")},
		{"más de dos decimales", dec("10.005"), nil},
		{"menos de un centavo", nil, dec("0.001")},
		{"excede la columna", dec("100000000000000"), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.Create(context.Background(), dto.CreateMovementRequest{
				Date: "2024-01-05", Concept: "X", Debit: tc.debit, Credit: tc.credit,
			}, dto.MovementAttachments{
				InvoicePDF: &dto.FileUpload{Filename: "f.pdf"},
			})
			assert.ErrorIs(t, err, domain.ErrInvalidMovement)
		})
	}
	assert.Len(t, f.repo.rows, 1)
	assert.Empty(t, f.store.saved, "no se guardan adjuntos de un movimiento rechazado")
}

func TestCreate_ValidaFechaYConcepto(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Create(context.Background(), dto.CreateMovementRequest{
		Date: "01/02/2024", Concept: "X", Debit: dec("1"),
	}, dto.MovementAttachments{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(context.Background(), dto.CreateMovementRequest{
		Date: "2024-02-01", Concept: "<script>x</script>", Debit: dec("1"),
	}, dto.MovementAttachments{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un concepto que queda vacío tras sanitizar se rechaza")
	assert.Empty(t, f.repo.rows)
}

func TestCreate_RetroactivoRecalculaPosteriores(t *testing.T) {
	f := newFixture()
	create(t, f, "2024-01-10", "B", dec("100"), nil)
	create(t, f, "2024-01-20", "C", nil, dec("30"))

	a := create(t, f, "2024-01-01", "A", nil, dec("500"))
	assert.Equal(t, "-500", a.Balance.String())

	list, err := f.uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "A", list[0].Concept)
	assert.Equal(t, "-400", list[1].Balance.String())
	assert.Equal(t, "-430", list[2].Balance.String())
	assertChain(t, f)
}

func TestCreate_MismaFechaDesempataPorID(t *testing.T) {
	f := newFixture()
	first := create(t, f, "2024-03-01", "Primero", dec("10"), nil)
	second := create(t, f, "2024-03-01", "Segundo", nil, dec("4"))

	assert.Equal(t, "6", second.Balance.String())
	list, err := f.uc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{first.ID, second.ID}, []int64{list[0].ID, list[1].ID})
}

func TestCreate_FalloDeAdjuntoLimpiaLosGuardados(t *testing.T) {
	f := newFixture()
	f.store.failOn = "xml"
	_, err := f.uc.Create(context.Background(), dto.CreateMovementRequest{
		Date: "2024-01-01", Concept: "Factura", Debit: dec("10"),
	}, dto.MovementAttachments{
		InvoicePDF: &dto.FileUpload{Filename: "f.pdf"},
		InvoiceXML: &dto.FileUpload{Filename: "f.xml"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidFile)
	assert.Equal(t, []string{"pdf-f.pdf"}, f.store.removed)
	assert.Empty(t, f.repo.rows)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta, edición y baja
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_RoundTripYNoEncontrado(t *testing.T) {
	f := newFixture()
	created, err := f.uc.Create(context.Background(), dto.CreateMovementRequest{
		Date: "2024-05-15", Concept: "Renta", Credit: dec("250.75"), Notes: "mayo",
	}, dto.MovementAttachments{InvoicePDF: &dto.FileUpload{Filename: "renta.pdf"}})
	require.NoError(t, err)

	got, err := f.uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-15", got.Date)
	assert.Equal(t, "Renta", got.Concept)
	assert.Nil(t, got.Debit)
	assert.Equal(t, "250.75", got.Credit.String())
	assert.Equal(t, "-250.75", got.Amount.String())
	assert.Equal(t, "mayo", got.Notes)
	require.NotNil(t, got.InvoicePDF)
	assert.Equal(t, "pdf-renta.pdf", *got.InvoicePDF)

	_, err = f.uc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_CambioDeMontoPropagaSaldo(t *testing.T) {
	f := newFixture()
	a := create(t, f, "2024-01-01", "A", dec("1000"), nil)
	create(t, f, "2024-01-02", "B", nil, dec("1500"))

	out, err := f.uc.Update(context.Background(), a.ID, dto.UpdateMovementRequest{Debit: dec("2000")}, dto.MovementAttachments{})
	require.NoError(t, err)
	assert.Equal(t, "2000", out.Balance.String())

	list, err := f.uc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "500", list[1].Balance.String())
	assert.Equal(t, entity.MovementStatusComplete, list[1].Status)
	assertChain(t, f)
}

func TestUpdate_CambioDeFechaReordena(t *testing.T) {
	f := newFixture()
	a := create(t, f, "2024-01-01", "A", dec("100"), nil)
	create(t, f, "2024-01-02", "B", nil, dec("300"))
	create(t, f, "2024-01-03", "C", dec("50"), nil)

	_, err := f.uc.Update(context.Background(), a.ID, dto.UpdateMovementRequest{Date: strp("2024-01-31")}, dto.MovementAttachments{})
	require.NoError(t, err)

	list, err := f.uc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, []string{list[0].Concept, list[1].Concept, list[2].Concept})
	assert.Equal(t, "-150", list[2].Balance.String())
	assertChain(t, f)
}

func TestUpdate_ParCargoAbonoSeReemplazaCompleto(t *testing.T) {
	f := newFixture()
	a := create(t, f, "2024-01-01", "A", dec("100"), nil)

	out, err := f.uc.Update(context.Background(), a.ID, dto.UpdateMovementRequest{Credit: dec("40")}, dto.MovementAttachments{})
	require.NoError(t, err)
	assert.Nil(t, out.Debit)
	assert.Equal(t, "-40", out.Amount.String())

	_, err = f.uc.Update(context.Background(), a.ID, dto.UpdateMovementRequest{Debit: dec("1"), Credit: dec("1")}, dto.MovementAttachments{})
	assert.ErrorIs(t, err, domain.ErrInvalidMovement)
	got, err := f.uc.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, "-40", got.Amount.String(), "la edición rechazada no modifica la fila")
}

func TestUpdate_RechazaImporteFueraDeEscala(t *testing.T) {
	f := newFixture()
	a := create(t, f, "2024-01-01", "A", dec("100"), nil)

	_, err := f.uc.Update(context.Background(), a.ID, dto.UpdateMovementRequest{Debit: dec("10.005")}, dto.MovementAttachments{})
	assert.ErrorIs(t, err, domain.ErrInvalidMovement)
	assert.Equal(t, 1, f.repo.locks, "la validación ocurre antes de abrir la transacción")

	got, err := f.uc.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, "100", got.Balance.String())
}

func TestCreate_RespuestaIgualALaLectura(t *testing.T) {
	f := newFixture()
	created := create(t, f, "2024-03-01", "Centavos", dec("10.50"), nil)

	got, err := f.uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, created.Debit.Equal(*got.Debit))
	assert.True(t, created.Amount.Equal(got.Amount))
	assert.True(t, created.Balance.Equal(got.Balance))
	assert.Equal(t, created.Status, got.Status)
}

func TestUpdate_ReemplazaAdjuntoYBorraElAnterior(t *testing.T) {
	f := newFixture()
	created, err := f.uc.Create(context.Background(), dto.CreateMovementRequest{
		Date: "2024-01-01", Concept: "A", Debit: dec("1"),
	}, dto.MovementAttachments{
		InvoicePDF: &dto.FileUpload{Filename: "v1.pdf"},
		InvoiceXML: &dto.FileUpload{Filename: "v1.xml"},
	})
	require.NoError(t, err)

	out, err := f.uc.Update(context.Background(), created.ID, dto.UpdateMovementRequest{}, dto.MovementAttachments{
		InvoicePDF: &dto.FileUpload{Filename: "v2.pdf"},
	})
	require.NoError(t, err)
	assert.Equal(t, "pdf-v2.pdf", *out.InvoicePDF)
	assert.Equal(t, "xml-v1.xml", *out.InvoiceXML, "el XML no enviado se conserva")
	assert.Equal(t, []string{"pdf-v1.pdf"}, f.store.removed)
}

func TestUpdate_NoEncontradoLimpiaAdjuntoNuevo(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Update(context.Background(), 42, dto.UpdateMovementRequest{Concept: strp("X")}, dto.MovementAttachments{
		InvoicePDF: &dto.FileUpload{Filename: "huerfano.pdf"},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, []string{"pdf-huerfano.pdf"}, f.store.removed)
}

func TestDelete_RecalculaYLimpiaAdjuntos(t *testing.T) {
	f := newFixture()
	a, err := f.uc.Create(context.Background(), dto.CreateMovementRequest{
		Date: "2024-01-01", Concept: "A", Debit: dec("1000"),
	}, dto.MovementAttachments{InvoiceXML: &dto.FileUpload{Filename: "a.xml"}})
	require.NoError(t, err)
	create(t, f, "2024-01-02", "B", nil, dec("1500"))

	require.NoError(t, f.uc.Delete(context.Background(), a.ID))

	list, err := f.uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "-1500", list[0].Balance.String())
	assert.Equal(t, []string{"xml-a.xml"}, f.store.removed)

	assert.ErrorIs(t, f.uc.Delete(context.Background(), a.ID), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestExportCSV_FiltraPorMes(t *testing.T) {
	f := newFixture()
	create(t, f, "2024-01-31", "Enero", dec("1"), nil)
	create(t, f, "2024-02-01", "Febrero", dec("1"), nil)
	create(t, f, "2024-02-29", "Febrero fin", dec("1"), nil)

	out, err := f.uc.ExportCSV(context.Background(), dto.DateRangeQuery{Month: "2024-02"})
	require.NoError(t, err)
	assert.Equal(t, "csv", string(out))
	assert.Equal(t, 2, f.exporter.rows)

	_, err = f.uc.ExportCSV(context.Background(), dto.DateRangeQuery{Month: "febrero"})
	var verr *domain.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestExportXLSX_IncluyeTodo(t *testing.T) {
	f := newFixture()
	create(t, f, "2024-01-01", "A", dec("1"), nil)
	create(t, f, "2025-01-01", "B", dec("1"), nil)

	out, err := f.uc.ExportXLSX(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Equal(t, 2, f.exporter.rows)
}
