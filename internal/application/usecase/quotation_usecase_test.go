package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

type memQuotations struct {
	rows   map[int64]entity.Quotation
	nextID int64
}

func (r *memQuotations) List(ctx context.Context) ([]*entity.Quotation, error) { return nil, nil }

func (r *memQuotations) GetByID(ctx context.Context, id int64) (*entity.Quotation, error) {
	q, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

func (r *memQuotations) Create(ctx context.Context, q *entity.Quotation) error {
	r.nextID++
	q.ID = r.nextID
	r.rows[q.ID] = *q
	return nil
}

func (r *memQuotations) Update(ctx context.Context, q *entity.Quotation) error {
	if _, ok := r.rows[q.ID]; !ok {
		return domain.ErrNotFound
	}
	r.rows[q.ID] = *q
	return nil
}

func (r *memQuotations) Delete(ctx context.Context, id int64) (*entity.Quotation, error) {
	q, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	delete(r.rows, id)
	return &q, nil
}

// brokenStore guarda archivos pero falla al eliminarlos.
type brokenStore struct {
	saved     []string
	removeErr error
	attempts  []string
}

func (s *brokenStore) Save(ctx context.Context, kind string, up dto.FileUpload) (string, error) {
	if up.Filename == "malo.exe" {
		return "", domain.ErrInvalidFile
	}
	s.saved = append(s.saved, up.Filename)
	return up.Filename, nil
}

func (s *brokenStore) Remove(ctx context.Context, name string) error {
	s.attempts = append(s.attempts, name)
	return s.removeErr
}

func quotationIn() dto.QuotationRequest {
	return dto.QuotationRequest{
		Description: "Instalación de paneles",
		Amount:      decimal.RequireFromString("25000"),
		Date:        "2024-04-01",
	}
}

func TestQuotation_CreateConArchivos(t *testing.T) {
	store := &brokenStore{}
	uc := usecase.NewQuotationUseCase(&memQuotations{rows: map[int64]entity.Quotation{}}, store)

	out, err := uc.Create(context.Background(), quotationIn(), []dto.FileUpload{{Filename: "cot.pdf"}, {Filename: "cot.xlsx"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"cot.pdf", "cot.xlsx"}, out.Files)
	assert.Equal(t, entity.QuotationStatusPending, out.Status)
}

func TestQuotation_ArchivoInvalidoLimpiaLosPrevios(t *testing.T) {
	store := &brokenStore{}
	repo := &memQuotations{rows: map[int64]entity.Quotation{}}
	uc := usecase.NewQuotationUseCase(repo, store)

	_, err := uc.Create(context.Background(), quotationIn(), []dto.FileUpload{{Filename: "ok.pdf"}, {Filename: "malo.exe"}})
	assert.ErrorIs(t, err, domain.ErrInvalidFile)
	assert.Equal(t, []string{"ok.pdf"}, store.attempts)
	assert.Empty(t, repo.rows)
}

func TestQuotation_DeleteNoFallaSiElArchivoNoSeBorra(t *testing.T) {
	store := &brokenStore{removeErr: errors.New("permiso denegado")}
	repo := &memQuotations{rows: map[int64]entity.Quotation{}}
	uc := usecase.NewQuotationUseCase(repo, store)

	out, err := uc.Create(context.Background(), quotationIn(), []dto.FileUpload{{Filename: "cot.pdf"}})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), out.ID))
	assert.Equal(t, []string{"cot.pdf"}, store.attempts)
	assert.Empty(t, repo.rows)

	assert.ErrorIs(t, uc.Delete(context.Background(), out.ID), domain.ErrNotFound)
}

func TestQuotation_UpdateSinArchivosConservaLosActuales(t *testing.T) {
	store := &brokenStore{}
	uc := usecase.NewQuotationUseCase(&memQuotations{rows: map[int64]entity.Quotation{}}, store)
	created, err := uc.Create(context.Background(), quotationIn(), []dto.FileUpload{{Filename: "v1.pdf"}})
	require.NoError(t, err)

	in := quotationIn()
	in.Status = entity.QuotationStatusApproved
	out, err := uc.Update(context.Background(), created.ID, in, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"v1.pdf"}, out.Files)
	assert.Equal(t, entity.QuotationStatusApproved, out.Status)
	assert.Empty(t, store.attempts)

	out, err = uc.Update(context.Background(), created.ID, in, []dto.FileUpload{{Filename: "v2.csv"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"v2.csv"}, out.Files)
	assert.Equal(t, []string{"v1.pdf"}, store.attempts)
}

func TestQuotation_EstadoInvalido(t *testing.T) {
	uc := usecase.NewQuotationUseCase(&memQuotations{rows: map[int64]entity.Quotation{}}, &brokenStore{})
	in := quotationIn()
	in.Status = "archivada"
	_, err := uc.Create(context.Background(), in, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
