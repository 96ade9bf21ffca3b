package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var (
	_ repository.ProjectRepository = (*ProjectRepo)(nil)
	_ repository.PhaseRepository   = (*PhaseRepo)(nil)
)

// ProjectRepo implementación de ProjectRepository; une el nombre del cliente.
type ProjectRepo struct {
	q Querier
}

func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

const projectSelect = `
	SELECT p.id, p.client_id, COALESCE(c.name, ''), p.name, p.description, p.status,
	       p.start_date, p.end_date, p.budget, p.created_at, p.updated_at
	FROM projects p
	LEFT JOIN clients c ON c.id = p.client_id`

func scanProject(row pgx.Row) (*entity.Project, error) {
	var p entity.Project
	err := row.Scan(&p.ID, &p.ClientID, &p.ClientName, &p.Name, &p.Description, &p.Status,
		&p.StartDate, &p.EndDate, &p.Budget, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List lista proyectos, más recientes primero, con filtros opcionales de estado y cliente.
func (r *ProjectRepo) List(ctx context.Context, f repository.ProjectFilter) ([]*entity.Project, error) {
	query := projectSelect + `
		WHERE ($1 = '' OR p.status = $1) AND ($2::bigint IS NULL OR p.client_id = $2)
		ORDER BY p.created_at DESC, p.id DESC`
	rows, err := r.q.Query(ctx, query, f.Status, f.ClientID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	list := []*entity.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProjectRepo) GetByID(ctx context.Context, id int64) (*entity.Project, error) {
	p, err := scanProject(r.q.QueryRow(ctx, projectSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

func (r *ProjectRepo) Create(ctx context.Context, p *entity.Project) error {
	query := `
		INSERT INTO projects (client_id, name, description, status, start_date, end_date, budget)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, p.ClientID, p.Name, p.Description, p.Status, p.StartDate, p.EndDate, p.Budget).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return writeError("insert project", err)
	}
	return nil
}

func (r *ProjectRepo) Update(ctx context.Context, p *entity.Project) error {
	query := `
		UPDATE projects
		SET client_id = $2, name = $3, description = $4, status = $5, start_date = $6, end_date = $7,
		    budget = $8, updated_at = NOW()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, p.ID, p.ClientID, p.Name, p.Description, p.Status, p.StartDate, p.EndDate, p.Budget)
	if err != nil {
		return writeError("update project", err)
	}
	return affected(tag)
}

func (r *ProjectRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return writeError("delete project", err)
	}
	return affected(tag)
}

// PhaseRepo implementación de PhaseRepository; une el nombre del proyecto.
type PhaseRepo struct {
	q Querier
}

func NewPhaseRepository(q Querier) *PhaseRepo {
	return &PhaseRepo{q: q}
}

const phaseSelect = `
	SELECT f.id, f.project_id, COALESCE(p.name, ''), f.name, f.description, f.start_date, f.end_date,
	       f.progress, f.created_at, f.updated_at
	FROM phases f
	LEFT JOIN projects p ON p.id = f.project_id`

func scanPhase(row pgx.Row) (*entity.Phase, error) {
	var f entity.Phase
	err := row.Scan(&f.ID, &f.ProjectID, &f.ProjectName, &f.Name, &f.Description, &f.StartDate, &f.EndDate,
		&f.Progress, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PhaseRepo) List(ctx context.Context, projectID *int64) ([]*entity.Phase, error) {
	query := phaseSelect + `
		WHERE ($1::bigint IS NULL OR f.project_id = $1)
		ORDER BY f.project_id, f.start_date NULLS LAST, f.id`
	rows, err := r.q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list phases: %w", err)
	}
	defer rows.Close()
	list := []*entity.Phase{}
	for rows.Next() {
		f, err := scanPhase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan phase: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

func (r *PhaseRepo) GetByID(ctx context.Context, id int64) (*entity.Phase, error) {
	f, err := scanPhase(r.q.QueryRow(ctx, phaseSelect+` WHERE f.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get phase: %w", err)
	}
	return f, nil
}

func (r *PhaseRepo) Create(ctx context.Context, f *entity.Phase) error {
	query := `
		INSERT INTO phases (project_id, name, description, start_date, end_date, progress)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, f.ProjectID, f.Name, f.Description, f.StartDate, f.EndDate, f.Progress).
		Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return writeError("insert phase", err)
	}
	return nil
}

func (r *PhaseRepo) Update(ctx context.Context, f *entity.Phase) error {
	query := `
		UPDATE phases
		SET project_id = $2, name = $3, description = $4, start_date = $5, end_date = $6, progress = $7,
		    updated_at = NOW()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, f.ID, f.ProjectID, f.Name, f.Description, f.StartDate, f.EndDate, f.Progress)
	if err != nil {
		return writeError("update phase", err)
	}
	return affected(tag)
}

func (r *PhaseRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM phases WHERE id = $1`, id)
	if err != nil {
		return writeError("delete phase", err)
	}
	return affected(tag)
}
