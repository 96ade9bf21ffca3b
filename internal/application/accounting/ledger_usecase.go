// Package accounting contiene los casos de uso de la contabilidad (movimientos con saldo acumulado).
package accounting

import (
	"context"
	"math"
	"time"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/files"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/ledger"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/text"
)

// LedgerUseCase registra, edita y elimina movimientos manteniendo el saldo acumulado.
//
// Toda escritura corre en una transacción que bloquea la tabla de movimientos
// (TxRunner.RunLedger + repo.Lock), de modo que leer el saldo previo e insertar
// es atómico frente a escritores concurrentes. Después de cada escritura se
// recalcula el saldo desde la primera posición (fecha, id) afectada hasta el final,
// así que balance(k) = balance(k-1) + amount(k) se cumple para todas las filas.
type LedgerUseCase struct {
	txRunner TxRunner
	repo     repository.MovementRepository
	files    files.Store
	exporter SpreadsheetExporter
	renderer StatementRenderer
	now      func() time.Time
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	repo repository.MovementRepository,
	store files.Store,
	exporter SpreadsheetExporter,
	renderer StatementRenderer,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner: txRunner,
		repo:     repo,
		files:    store,
		exporter: exporter,
		renderer: renderer,
		now:      time.Now,
	}
}

// List devuelve todos los movimientos en orden (fecha, id) ascendente.
func (uc *LedgerUseCase) List(ctx context.Context) ([]*dto.MovementResponse, error) {
	list, err := uc.repo.List(ctx, repository.DateRange{})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}

// GetByID obtiene un movimiento; domain.ErrNotFound si no existe.
func (uc *LedgerUseCase) GetByID(ctx context.Context, id int64) (*dto.MovementResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return toMovementResponse(m), nil
}

// Create valida y registra un movimiento. Las validaciones ocurren antes de
// guardar archivos o tocar la DB; si la transacción falla se limpian los adjuntos.
func (uc *LedgerUseCase) Create(ctx context.Context, in dto.CreateMovementRequest, att dto.MovementAttachments) (*dto.MovementResponse, error) {
	date, err := dto.ParseDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	concept := text.Sanitize(in.Concept)
	if concept == "" {
		return nil, domain.NewValidationError("concept", "es requerido")
	}
	amount, err := ledger.Amount(in.Debit, in.Credit)
	if err != nil {
		return nil, err
	}

	pdfName, xmlName, saved, err := uc.saveAttachments(ctx, att)
	if err != nil {
		return nil, err
	}

	m := &entity.Movement{
		Date:       ledger.DateOnly(date),
		Concept:    concept,
		Debit:      in.Debit,
		Credit:     in.Credit,
		Amount:     amount,
		Notes:      text.Sanitize(in.Notes),
		InvoicePDF: pdfName,
		InvoiceXML: xmlName,
	}

	err = uc.txRunner.RunLedger(ctx, func(repo repository.MovementRepository) error {
		if err := repo.Lock(ctx); err != nil {
			return err
		}
		// El id nuevo es mayor que cualquier existente: queda al final de su fecha.
		previous, err := repo.BalanceBefore(ctx, m.Date, math.MaxInt64)
		if err != nil {
			return err
		}
		m.Balance = previous.Add(m.Amount)
		m.Status = ledger.StatusFor(m.Balance)
		if err := repo.Create(ctx, m); err != nil {
			return err
		}
		// Solo hay filas posteriores si la fecha es retroactiva.
		_, err = rebalanceFrom(ctx, repo, m.Date, m.ID)
		return err
	})
	if err != nil {
		files.Cleanup(ctx, uc.files, saved...)
		return nil, err
	}
	return toMovementResponse(m), nil
}

// Update aplica los campos enviados a un movimiento existente y recalcula saldos.
// Los adjuntos se reemplazan solo si llega un archivo nuevo; el anterior se elimina
// (mejor esfuerzo) después del commit.
func (uc *LedgerUseCase) Update(ctx context.Context, id int64, in dto.UpdateMovementRequest, att dto.MovementAttachments) (*dto.MovementResponse, error) {
	var newDate *time.Time
	if in.Date != nil {
		d, err := dto.ParseDate("date", *in.Date)
		if err != nil {
			return nil, err
		}
		d = ledger.DateOnly(d)
		newDate = &d
	}
	var concept *string
	if in.Concept != nil {
		c := text.Sanitize(*in.Concept)
		if c == "" {
			return nil, domain.NewValidationError("concept", "no puede quedar vacío")
		}
		concept = &c
	}
	replacePair := in.Debit != nil || in.Credit != nil
	if replacePair {
		if _, err := ledger.Amount(in.Debit, in.Credit); err != nil {
			return nil, err
		}
	}

	pdfName, xmlName, saved, err := uc.saveAttachments(ctx, att)
	if err != nil {
		return nil, err
	}

	var updated *entity.Movement
	var replaced []string
	err = uc.txRunner.RunLedger(ctx, func(repo repository.MovementRepository) error {
		if err := repo.Lock(ctx); err != nil {
			return err
		}
		m, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}
		oldDate := m.Date

		if newDate != nil {
			m.Date = *newDate
		}
		if concept != nil {
			m.Concept = *concept
		}
		if in.Notes != nil {
			m.Notes = text.Sanitize(*in.Notes)
		}
		if replacePair {
			m.Debit, m.Credit = in.Debit, in.Credit
		}
		amount, err := ledger.Amount(m.Debit, m.Credit)
		if err != nil {
			return err
		}
		m.Amount = amount

		if pdfName != nil {
			if m.InvoicePDF != nil {
				replaced = append(replaced, *m.InvoicePDF)
			}
			m.InvoicePDF = pdfName
		}
		if xmlName != nil {
			if m.InvoiceXML != nil {
				replaced = append(replaced, *m.InvoiceXML)
			}
			m.InvoiceXML = xmlName
		}

		if err := repo.Update(ctx, m); err != nil {
			return err
		}

		// Se recalcula desde la menor de la posición anterior y la nueva.
		anchor := m.Date
		if ledger.KeyLess(oldDate, m.ID, m.Date, m.ID) {
			anchor = oldDate
		}
		tail, err := rebalanceFrom(ctx, repo, anchor, m.ID)
		if err != nil {
			return err
		}
		for _, t := range tail {
			if t.ID == m.ID {
				m.Balance, m.Status = t.Balance, t.Status
				break
			}
		}
		updated = m
		return nil
	})
	if err != nil {
		files.Cleanup(ctx, uc.files, saved...)
		return nil, err
	}
	files.Cleanup(ctx, uc.files, replaced...)
	return toMovementResponse(updated), nil
}

// Delete elimina un movimiento, recalcula los saldos posteriores y limpia sus adjuntos.
func (uc *LedgerUseCase) Delete(ctx context.Context, id int64) error {
	var removed *entity.Movement
	err := uc.txRunner.RunLedger(ctx, func(repo repository.MovementRepository) error {
		if err := repo.Lock(ctx); err != nil {
			return err
		}
		m, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}
		if err := repo.Delete(ctx, id); err != nil {
			return err
		}
		if _, err := rebalanceFrom(ctx, repo, m.Date, m.ID); err != nil {
			return err
		}
		removed = m
		return nil
	})
	if err != nil {
		return err
	}
	files.Cleanup(ctx, uc.files, deref(removed.InvoicePDF), deref(removed.InvoiceXML))
	return nil
}

// ExportXLSX genera la hoja de cálculo con todos los movimientos.
func (uc *LedgerUseCase) ExportXLSX(ctx context.Context) ([]byte, error) {
	list, err := uc.repo.List(ctx, repository.DateRange{})
	if err != nil {
		return nil, err
	}
	return uc.exporter.MovementsXLSX(list)
}

// ExportCSV genera el CSV de movimientos, opcionalmente filtrado por mes o rango de fechas.
func (uc *LedgerUseCase) ExportCSV(ctx context.Context, q dto.DateRangeQuery) ([]byte, error) {
	r, err := q.Range()
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, r)
	if err != nil {
		return nil, err
	}
	return uc.exporter.MovementsCSV(list)
}

// ExportStatement genera el estado de cuenta en PDF, con el mismo filtro que ExportCSV.
func (uc *LedgerUseCase) ExportStatement(ctx context.Context, q dto.DateRangeQuery) ([]byte, error) {
	r, err := q.Range()
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, r)
	if err != nil {
		return nil, err
	}
	return uc.renderer.RenderStatement(ctx, list, uc.now())
}

// rebalanceFrom recalcula saldo y estado de los movimientos con (fecha, id) >= (date, id)
// partiendo del saldo del movimiento inmediatamente anterior, y persiste solo los que cambian.
func rebalanceFrom(ctx context.Context, repo repository.MovementRepository, date time.Time, id int64) ([]*entity.Movement, error) {
	previous, err := repo.BalanceBefore(ctx, date, id)
	if err != nil {
		return nil, err
	}
	tail, err := repo.ListFrom(ctx, date, id)
	if err != nil {
		return nil, err
	}
	for _, m := range ledger.Rebalance(previous, tail) {
		if err := repo.UpdateBalance(ctx, m.ID, m.Balance, m.Status); err != nil {
			return nil, err
		}
	}
	return tail, nil
}

func (uc *LedgerUseCase) saveAttachments(ctx context.Context, att dto.MovementAttachments) (pdfName, xmlName *string, saved []string, err error) {
	if att.InvoicePDF != nil {
		name, err := uc.files.Save(ctx, files.KindPDF, *att.InvoicePDF)
		if err != nil {
			return nil, nil, nil, err
		}
		pdfName = &name
		saved = append(saved, name)
	}
	if att.InvoiceXML != nil {
		name, err := uc.files.Save(ctx, files.KindXML, *att.InvoiceXML)
		if err != nil {
			files.Cleanup(ctx, uc.files, saved...)
			return nil, nil, nil, err
		}
		xmlName = &name
		saved = append(saved, name)
	}
	return pdfName, xmlName, saved, nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:         m.ID,
		Date:       dto.FormatDate(m.Date),
		Concept:    m.Concept,
		Debit:      m.Debit,
		Credit:     m.Credit,
		Amount:     m.Amount,
		Balance:    m.Balance,
		Status:     m.Status,
		Notes:      m.Notes,
		InvoicePDF: m.InvoicePDF,
		InvoiceXML: m.InvoiceXML,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
