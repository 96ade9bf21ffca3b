package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.RecoveryRepository = (*RecoveryRepo)(nil)

// RecoveryRepo implementación de RecoveryRepository; une el nombre del proyecto.
type RecoveryRepo struct {
	q Querier
}

func NewRecoveryRepository(q Querier) *RecoveryRepo {
	return &RecoveryRepo{q: q}
}

const recoveryFields = `x.id, x.project_id, COALESCE(p.name, ''), x.concept, x.third_party, x.amount, x.date,
	x.recovered, x.notes, x.created_at, x.updated_at`

func scanRecovery(row pgx.Row) (*entity.Recovery, error) {
	var rc entity.Recovery
	err := row.Scan(&rc.ID, &rc.ProjectID, &rc.ProjectName, &rc.Concept, &rc.ThirdParty, &rc.Amount, &rc.Date,
		&rc.Recovered, &rc.Notes, &rc.CreatedAt, &rc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rc, nil
}

func (r *RecoveryRepo) List(ctx context.Context) ([]*entity.Recovery, error) {
	rows, err := r.q.Query(ctx, `SELECT `+recoveryFields+`
		FROM recoveries x LEFT JOIN projects p ON p.id = x.project_id
		ORDER BY x.date DESC, x.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list recoveries: %w", err)
	}
	defer rows.Close()
	list := []*entity.Recovery{}
	for rows.Next() {
		rc, err := scanRecovery(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recovery: %w", err)
		}
		list = append(list, rc)
	}
	return list, rows.Err()
}

func (r *RecoveryRepo) GetByID(ctx context.Context, id int64) (*entity.Recovery, error) {
	rc, err := scanRecovery(r.q.QueryRow(ctx, `SELECT `+recoveryFields+`
		FROM recoveries x LEFT JOIN projects p ON p.id = x.project_id
		WHERE x.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recovery: %w", err)
	}
	return rc, nil
}

func (r *RecoveryRepo) Create(ctx context.Context, rc *entity.Recovery) error {
	query := `
		INSERT INTO recoveries (project_id, concept, third_party, amount, date, recovered, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, rc.ProjectID, rc.Concept, rc.ThirdParty, rc.Amount, rc.Date, rc.Recovered, rc.Notes).
		Scan(&rc.ID, &rc.CreatedAt, &rc.UpdatedAt)
	if err != nil {
		return writeError("insert recovery", err)
	}
	return nil
}

func (r *RecoveryRepo) Update(ctx context.Context, rc *entity.Recovery) error {
	query := `
		UPDATE recoveries
		SET project_id = $2, concept = $3, third_party = $4, amount = $5, date = $6, recovered = $7,
		    notes = $8, updated_at = NOW()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, rc.ID, rc.ProjectID, rc.Concept, rc.ThirdParty, rc.Amount, rc.Date, rc.Recovered, rc.Notes)
	if err != nil {
		return writeError("update recovery", err)
	}
	return affected(tag)
}

func (r *RecoveryRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM recoveries WHERE id = $1`, id)
	if err != nil {
		return writeError("delete recovery", err)
	}
	return affected(tag)
}

// ToggleRecovered invierte "recovered" en una sola sentencia.
func (r *RecoveryRepo) ToggleRecovered(ctx context.Context, id int64) (*entity.Recovery, error) {
	query := `
		WITH x AS (
			UPDATE recoveries SET recovered = NOT recovered, updated_at = NOW() WHERE id = $1
			RETURNING *
		)
		SELECT ` + recoveryFields + ` FROM x LEFT JOIN projects p ON p.id = x.project_id`
	rc, err := scanRecovery(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("toggle recovery: %w", err)
	}
	return rc, nil
}
