package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, date, concept, debit, credit, amount, balance, status, notes,
	invoice_pdf, invoice_xml, created_at, updated_at`

// MovementRepo implementación de MovementRepository (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Lock bloquea la tabla contra otros escritores hasta el fin de la transacción.
// SHARE ROW EXCLUSIVE entra en conflicto consigo mismo y con INSERT/UPDATE/DELETE,
// pero permite lecturas concurrentes. Fuera de una transacción Postgres lo rechaza.
func (r *MovementRepo) Lock(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `LOCK TABLE ledger_movements IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return fmt.Errorf("lock ledger_movements: %w", err)
	}
	return nil
}

// List devuelve los movimientos en orden (fecha, id), filtrados por rango si se indica.
func (r *MovementRepo) List(ctx context.Context, dr repository.DateRange) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM ledger_movements
		WHERE ($1::date IS NULL OR date >= $1) AND ($2::date IS NULL OR date <= $2)
		ORDER BY date, id`
	rows, err := r.q.Query(ctx, query, dr.From, dr.To)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return collectMovements(rows)
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(ctx context.Context, id int64) (*entity.Movement, error) {
	row := r.q.QueryRow(ctx, `SELECT `+movementColumns+` FROM ledger_movements WHERE id = $1`, id)
	m, err := scanMovement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// Create persiste un movimiento con su saldo ya calculado.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO ledger_movements (date, concept, debit, credit, amount, balance, status, notes, invoice_pdf, invoice_xml)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		m.Date, m.Concept, m.Debit, m.Credit, m.Amount, m.Balance, m.Status, m.Notes, m.InvoicePDF, m.InvoiceXML,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return writeError("insert movement", err)
	}
	return nil
}

// Update guarda los campos editables; saldo y estado los actualiza UpdateBalance.
func (r *MovementRepo) Update(ctx context.Context, m *entity.Movement) error {
	query := `
		UPDATE ledger_movements
		SET date = $2, concept = $3, debit = $4, credit = $5, amount = $6, notes = $7,
		    invoice_pdf = $8, invoice_xml = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query,
		m.ID, m.Date, m.Concept, m.Debit, m.Credit, m.Amount, m.Notes, m.InvoicePDF, m.InvoiceXML,
	).Scan(&m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return writeError("update movement", err)
	}
	return nil
}

// Delete elimina un movimiento por ID.
func (r *MovementRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM ledger_movements WHERE id = $1`, id)
	if err != nil {
		return writeError("delete movement", err)
	}
	return affected(tag)
}

// BalanceBefore devuelve el saldo del último movimiento con (fecha, id) < (date, id).
func (r *MovementRepo) BalanceBefore(ctx context.Context, date time.Time, id int64) (decimal.Decimal, error) {
	query := `
		SELECT balance FROM ledger_movements
		WHERE (date, id) < ($1::date, $2)
		ORDER BY date DESC, id DESC
		LIMIT 1`
	var balance decimal.Decimal
	err := r.q.QueryRow(ctx, query, date, id).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("balance before: %w", err)
	}
	return balance, nil
}

// ListFrom devuelve los movimientos con (fecha, id) >= (date, id) en orden.
func (r *MovementRepo) ListFrom(ctx context.Context, date time.Time, id int64) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM ledger_movements
		WHERE (date, id) >= ($1::date, $2)
		ORDER BY date, id`
	rows, err := r.q.Query(ctx, query, date, id)
	if err != nil {
		return nil, fmt.Errorf("list movements from: %w", err)
	}
	return collectMovements(rows)
}

// UpdateBalance fija saldo y estado de un movimiento.
func (r *MovementRepo) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal, status string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE ledger_movements SET balance = $2, status = $3 WHERE id = $1`,
		id, balance, status,
	)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	return affected(tag)
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	err := row.Scan(
		&m.ID, &m.Date, &m.Concept, &m.Debit, &m.Credit, &m.Amount, &m.Balance, &m.Status, &m.Notes,
		&m.InvoicePDF, &m.InvoiceXML, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectMovements(rows pgx.Rows) ([]*entity.Movement, error) {
	defer rows.Close()
	list := []*entity.Movement{}
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
