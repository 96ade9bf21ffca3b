package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.RoleRepository     = (*RoleRepo)(nil)
)

// CategoryRepo y RoleRepo comparten forma: (id, name, description) sobre tablas distintas.
type CategoryRepo struct {
	named namedTable
}

func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{named: namedTable{q: q, table: "categories", label: "category"}}
}

func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.named.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Category, 0, len(rows))
	for _, n := range rows {
		out = append(out, &entity.Category{ID: n.id, Name: n.name, Description: n.description, CreatedAt: n.createdAt, UpdatedAt: n.updatedAt})
	}
	return out, nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	n, err := r.named.get(ctx, id)
	if err != nil || n == nil {
		return nil, err
	}
	return &entity.Category{ID: n.id, Name: n.name, Description: n.description, CreatedAt: n.createdAt, UpdatedAt: n.updatedAt}, nil
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	return r.named.create(ctx, c.Name, c.Description, &c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	return r.named.update(ctx, c.ID, c.Name, c.Description, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	return r.named.delete(ctx, id)
}

// RoleRepo implementación de RoleRepository.
type RoleRepo struct {
	named namedTable
}

func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{named: namedTable{q: q, table: "roles", label: "role"}}
}

func (r *RoleRepo) List(ctx context.Context) ([]*entity.Role, error) {
	rows, err := r.named.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Role, 0, len(rows))
	for _, n := range rows {
		out = append(out, &entity.Role{ID: n.id, Name: n.name, Description: n.description, CreatedAt: n.createdAt, UpdatedAt: n.updatedAt})
	}
	return out, nil
}

func (r *RoleRepo) GetByID(ctx context.Context, id int64) (*entity.Role, error) {
	n, err := r.named.get(ctx, id)
	if err != nil || n == nil {
		return nil, err
	}
	return &entity.Role{ID: n.id, Name: n.name, Description: n.description, CreatedAt: n.createdAt, UpdatedAt: n.updatedAt}, nil
}

func (r *RoleRepo) Create(ctx context.Context, role *entity.Role) error {
	return r.named.create(ctx, role.Name, role.Description, &role.ID, &role.CreatedAt, &role.UpdatedAt)
}

func (r *RoleRepo) Update(ctx context.Context, role *entity.Role) error {
	return r.named.update(ctx, role.ID, role.Name, role.Description, &role.CreatedAt, &role.UpdatedAt)
}

func (r *RoleRepo) Delete(ctx context.Context, id int64) error {
	return r.named.delete(ctx, id)
}

// namedTable acceso a tablas (id, name, description, created_at, updated_at).
// table es siempre una constante interna, nunca entrada del usuario.
type namedTable struct {
	q     Querier
	table string
	label string
}

type namedRow struct {
	id                   int64
	name, description    string
	createdAt, updatedAt time.Time
}

func (t namedTable) scan(row pgx.Row) (*namedRow, error) {
	var n namedRow
	if err := row.Scan(&n.id, &n.name, &n.description, &n.createdAt, &n.updatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

func (t namedTable) list(ctx context.Context) ([]*namedRow, error) {
	rows, err := t.q.Query(ctx, `SELECT id, name, description, created_at, updated_at FROM `+t.table+` ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.label, err)
	}
	defer rows.Close()
	list := []*namedRow{}
	for rows.Next() {
		n, err := t.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.label, err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func (t namedTable) get(ctx context.Context, id int64) (*namedRow, error) {
	n, err := t.scan(t.q.QueryRow(ctx, `SELECT id, name, description, created_at, updated_at FROM `+t.table+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", t.label, err)
	}
	return n, nil
}

func (t namedTable) create(ctx context.Context, name, description string, id *int64, createdAt, updatedAt *time.Time) error {
	err := t.q.QueryRow(ctx,
		`INSERT INTO `+t.table+` (name, description) VALUES ($1, $2) RETURNING id, created_at, updated_at`,
		name, description,
	).Scan(id, createdAt, updatedAt)
	if err != nil {
		return writeError("insert "+t.label, err)
	}
	return nil
}

func (t namedTable) update(ctx context.Context, id int64, name, description string, createdAt, updatedAt *time.Time) error {
	err := t.q.QueryRow(ctx,
		`UPDATE `+t.table+` SET name = $2, description = $3, updated_at = NOW() WHERE id = $1 RETURNING created_at, updated_at`,
		id, name, description,
	).Scan(createdAt, updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return writeError("update "+t.label, err)
	}
	return nil
}

func (t namedTable) delete(ctx context.Context, id int64) error {
	tag, err := t.q.Exec(ctx, `DELETE FROM `+t.table+` WHERE id = $1`, id)
	if err != nil {
		return writeError("delete "+t.label, err)
	}
	return affected(tag)
}
