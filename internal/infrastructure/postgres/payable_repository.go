package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.PayableRepository = (*PayableRepo)(nil)

// PayableRepo implementación de PayableRepository; une el nombre del proveedor.
type PayableRepo struct {
	q Querier
}

func NewPayableRepository(q Querier) *PayableRepo {
	return &PayableRepo{q: q}
}

const payableSelect = `
	SELECT x.id, x.provider_id, COALESCE(pr.name, ''), x.project_id, x.concept, x.invoice_number,
	       x.net_amount, x.with_tax, x.tax, x.amount_with_tax, x.issue_date, x.due_date, x.paid, x.notes,
	       x.created_at, x.updated_at
	FROM payables x
	LEFT JOIN providers pr ON pr.id = x.provider_id`

func scanPayable(row pgx.Row) (*entity.Payable, error) {
	var p entity.Payable
	err := row.Scan(&p.ID, &p.ProviderID, &p.ProviderName, &p.ProjectID, &p.Concept, &p.InvoiceNumber,
		&p.NetAmount, &p.WithTax, &p.Tax, &p.AmountWithTax, &p.IssueDate, &p.DueDate, &p.Paid, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List lista cuentas por pagar por fecha de emisión descendente.
func (r *PayableRepo) List(ctx context.Context, dr repository.DateRange) ([]*entity.Payable, error) {
	query := payableSelect + `
		WHERE ($1::date IS NULL OR x.issue_date >= $1) AND ($2::date IS NULL OR x.issue_date <= $2)
		ORDER BY x.issue_date DESC, x.id DESC`
	rows, err := r.q.Query(ctx, query, dr.From, dr.To)
	if err != nil {
		return nil, fmt.Errorf("list payables: %w", err)
	}
	defer rows.Close()
	list := []*entity.Payable{}
	for rows.Next() {
		p, err := scanPayable(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payable: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *PayableRepo) GetByID(ctx context.Context, id int64) (*entity.Payable, error) {
	p, err := scanPayable(r.q.QueryRow(ctx, payableSelect+` WHERE x.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payable: %w", err)
	}
	return p, nil
}

func (r *PayableRepo) Create(ctx context.Context, p *entity.Payable) error {
	query := `
		INSERT INTO payables (provider_id, project_id, concept, invoice_number, net_amount, with_tax, tax,
		                      amount_with_tax, issue_date, due_date, paid, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		p.ProviderID, p.ProjectID, p.Concept, p.InvoiceNumber, p.NetAmount, p.WithTax, p.Tax,
		p.AmountWithTax, p.IssueDate, p.DueDate, p.Paid, p.Notes,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return writeError("insert payable", err)
	}
	return nil
}

func (r *PayableRepo) Update(ctx context.Context, p *entity.Payable) error {
	query := `
		UPDATE payables
		SET provider_id = $2, project_id = $3, concept = $4, invoice_number = $5, net_amount = $6,
		    with_tax = $7, tax = $8, amount_with_tax = $9, issue_date = $10, due_date = $11, paid = $12,
		    notes = $13, updated_at = NOW()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.ProviderID, p.ProjectID, p.Concept, p.InvoiceNumber, p.NetAmount,
		p.WithTax, p.Tax, p.AmountWithTax, p.IssueDate, p.DueDate, p.Paid, p.Notes,
	)
	if err != nil {
		return writeError("update payable", err)
	}
	return affected(tag)
}

func (r *PayableRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM payables WHERE id = $1`, id)
	if err != nil {
		return writeError("delete payable", err)
	}
	return affected(tag)
}

// TogglePaid invierte "paid" en una sola sentencia, sin leer antes la fila.
func (r *PayableRepo) TogglePaid(ctx context.Context, id int64) (*entity.Payable, error) {
	query := `
		WITH x AS (
			UPDATE payables SET paid = NOT paid, updated_at = NOW() WHERE id = $1
			RETURNING *
		)
		SELECT x.id, x.provider_id, COALESCE(pr.name, ''), x.project_id, x.concept, x.invoice_number,
		       x.net_amount, x.with_tax, x.tax, x.amount_with_tax, x.issue_date, x.due_date, x.paid, x.notes,
		       x.created_at, x.updated_at
		FROM x
		LEFT JOIN providers pr ON pr.id = x.provider_id`
	p, err := scanPayable(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("toggle payable: %w", err)
	}
	return p, nil
}
