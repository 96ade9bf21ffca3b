package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo implementación de QuotationRepository; files es una columna JSONB con nombres de archivo.
type QuotationRepo struct {
	q Querier
}

func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

const quotationSelect = `
	SELECT x.id, x.client_id, COALESCE(c.name, ''), x.project_id, x.folio, x.description, x.amount,
	       x.status, x.date, x.files, x.created_at, x.updated_at
	FROM quotations x
	LEFT JOIN clients c ON c.id = x.client_id`

func scanQuotation(row pgx.Row) (*entity.Quotation, error) {
	var q entity.Quotation
	err := row.Scan(&q.ID, &q.ClientID, &q.ClientName, &q.ProjectID, &q.Folio, &q.Description, &q.Amount,
		&q.Status, &q.Date, &q.Files, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if q.Files == nil {
		q.Files = []string{}
	}
	return &q, nil
}

// fileNames evita escribir null en la columna JSONB.
func fileNames(files []string) []string {
	if files == nil {
		return []string{}
	}
	return files
}

func (r *QuotationRepo) List(ctx context.Context) ([]*entity.Quotation, error) {
	rows, err := r.q.Query(ctx, quotationSelect+` ORDER BY x.date DESC, x.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer rows.Close()
	list := []*entity.Quotation{}
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		list = append(list, q)
	}
	return list, rows.Err()
}

func (r *QuotationRepo) GetByID(ctx context.Context, id int64) (*entity.Quotation, error) {
	q, err := scanQuotation(r.q.QueryRow(ctx, quotationSelect+` WHERE x.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	return q, nil
}

func (r *QuotationRepo) Create(ctx context.Context, q *entity.Quotation) error {
	query := `
		INSERT INTO quotations (client_id, project_id, folio, description, amount, status, date, files)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		q.ClientID, q.ProjectID, q.Folio, q.Description, q.Amount, q.Status, q.Date, fileNames(q.Files),
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return writeError("insert quotation", err)
	}
	return nil
}

func (r *QuotationRepo) Update(ctx context.Context, q *entity.Quotation) error {
	query := `
		UPDATE quotations
		SET client_id = $2, project_id = $3, folio = $4, description = $5, amount = $6, status = $7,
		    date = $8, files = $9, updated_at = NOW()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		q.ID, q.ClientID, q.ProjectID, q.Folio, q.Description, q.Amount, q.Status, q.Date, fileNames(q.Files),
	)
	if err != nil {
		return writeError("update quotation", err)
	}
	return affected(tag)
}

// Delete elimina la cotización y devuelve la fila borrada (nil si no existía).
func (r *QuotationRepo) Delete(ctx context.Context, id int64) (*entity.Quotation, error) {
	query := `
		DELETE FROM quotations WHERE id = $1
		RETURNING id, client_id, '', project_id, folio, description, amount, status, date, files,
		          created_at, updated_at`
	q, err := scanQuotation(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, writeError("delete quotation", err)
	}
	return q, nil
}
