package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.ReceivableRepository = (*ReceivableRepo)(nil)

// ReceivableRepo implementación de ReceivableRepository; une el nombre del cliente.
type ReceivableRepo struct {
	q Querier
}

func NewReceivableRepository(q Querier) *ReceivableRepo {
	return &ReceivableRepo{q: q}
}

const receivableSelect = `
	SELECT x.id, x.client_id, COALESCE(pr.name, ''), x.project_id, x.concept, x.invoice_number,
	       x.net_amount, x.with_tax, x.tax, x.amount_with_tax, x.issue_date, x.due_date, x.collected, x.notes,
	       x.created_at, x.updated_at
	FROM receivables x
	LEFT JOIN clients pr ON pr.id = x.client_id`

func scanReceivable(row pgx.Row) (*entity.Receivable, error) {
	var p entity.Receivable
	err := row.Scan(&p.ID, &p.ClientID, &p.ClientName, &p.ProjectID, &p.Concept, &p.InvoiceNumber,
		&p.NetAmount, &p.WithTax, &p.Tax, &p.AmountWithTax, &p.IssueDate, &p.DueDate, &p.Collected, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List lista cuentas por cobrar por fecha de emisión descendente.
func (r *ReceivableRepo) List(ctx context.Context, dr repository.DateRange) ([]*entity.Receivable, error) {
	query := receivableSelect + `
		WHERE ($1::date IS NULL OR x.issue_date >= $1) AND ($2::date IS NULL OR x.issue_date <= $2)
		ORDER BY x.issue_date DESC, x.id DESC`
	rows, err := r.q.Query(ctx, query, dr.From, dr.To)
	if err != nil {
		return nil, fmt.Errorf("list receivables: %w", err)
	}
	defer rows.Close()
	list := []*entity.Receivable{}
	for rows.Next() {
		p, err := scanReceivable(rows)
		if err != nil {
			return nil, fmt.Errorf("scan receivable: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ReceivableRepo) GetByID(ctx context.Context, id int64) (*entity.Receivable, error) {
	p, err := scanReceivable(r.q.QueryRow(ctx, receivableSelect+` WHERE x.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receivable: %w", err)
	}
	return p, nil
}

func (r *ReceivableRepo) Create(ctx context.Context, p *entity.Receivable) error {
	query := `
		INSERT INTO receivables (client_id, project_id, concept, invoice_number, net_amount, with_tax, tax,
		                      amount_with_tax, issue_date, due_date, collected, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		p.ClientID, p.ProjectID, p.Concept, p.InvoiceNumber, p.NetAmount, p.WithTax, p.Tax,
		p.AmountWithTax, p.IssueDate, p.DueDate, p.Collected, p.Notes,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return writeError("insert receivable", err)
	}
	return nil
}

func (r *ReceivableRepo) Update(ctx context.Context, p *entity.Receivable) error {
	query := `
		UPDATE receivables
		SET client_id = $2, project_id = $3, concept = $4, invoice_number = $5, net_amount = $6,
		    with_tax = $7, tax = $8, amount_with_tax = $9, issue_date = $10, due_date = $11, collected = $12,
		    notes = $13, updated_at = NOW()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.ClientID, p.ProjectID, p.Concept, p.InvoiceNumber, p.NetAmount,
		p.WithTax, p.Tax, p.AmountWithTax, p.IssueDate, p.DueDate, p.Collected, p.Notes,
	)
	if err != nil {
		return writeError("update receivable", err)
	}
	return affected(tag)
}

func (r *ReceivableRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM receivables WHERE id = $1`, id)
	if err != nil {
		return writeError("delete receivable", err)
	}
	return affected(tag)
}
