package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.PermissionRepository = (*PermissionRepo)(nil)

// PermissionRepo implementación de PermissionRepository; une el nombre del rol.
type PermissionRepo struct {
	q Querier
}

func NewPermissionRepository(q Querier) *PermissionRepo {
	return &PermissionRepo{q: q}
}

const permissionSelect = `
	SELECT p.id, p.role_id, COALESCE(r.name, ''), p.module, p.can_read, p.can_create, p.can_update, p.can_delete,
	       p.created_at, p.updated_at
	FROM permissions p
	LEFT JOIN roles r ON r.id = p.role_id`

func scanPermission(row pgx.Row) (*entity.Permission, error) {
	var p entity.Permission
	err := row.Scan(&p.ID, &p.RoleID, &p.RoleName, &p.Module, &p.CanRead, &p.CanCreate, &p.CanUpdate, &p.CanDelete,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PermissionRepo) List(ctx context.Context, roleID *int64) ([]*entity.Permission, error) {
	rows, err := r.q.Query(ctx, permissionSelect+`
		WHERE ($1::bigint IS NULL OR p.role_id = $1)
		ORDER BY r.name, p.module`, roleID)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	defer rows.Close()
	list := []*entity.Permission{}
	for rows.Next() {
		p, err := scanPermission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *PermissionRepo) GetByID(ctx context.Context, id int64) (*entity.Permission, error) {
	p, err := scanPermission(r.q.QueryRow(ctx, permissionSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get permission: %w", err)
	}
	return p, nil
}

func (r *PermissionRepo) Create(ctx context.Context, p *entity.Permission) error {
	query := `
		INSERT INTO permissions (role_id, module, can_read, can_create, can_update, can_delete)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, p.RoleID, p.Module, p.CanRead, p.CanCreate, p.CanUpdate, p.CanDelete).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return writeError("insert permission", err)
	}
	return nil
}

func (r *PermissionRepo) Update(ctx context.Context, p *entity.Permission) error {
	query := `
		UPDATE permissions
		SET role_id = $2, module = $3, can_read = $4, can_create = $5, can_update = $6, can_delete = $7,
		    updated_at = NOW()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, p.ID, p.RoleID, p.Module, p.CanRead, p.CanCreate, p.CanUpdate, p.CanDelete)
	if err != nil {
		return writeError("update permission", err)
	}
	return affected(tag)
}

func (r *PermissionRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM permissions WHERE id = $1`, id)
	if err != nil {
		return writeError("delete permission", err)
	}
	return affected(tag)
}

