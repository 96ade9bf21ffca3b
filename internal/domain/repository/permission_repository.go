package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// PermissionRepository define el puerto de persistencia para Permission.
// List filtra por rol cuando roleID no es nil.
type PermissionRepository interface {
	List(ctx context.Context, roleID *int64) ([]*entity.Permission, error)
	GetByID(ctx context.Context, id int64) (*entity.Permission, error)
	Create(ctx context.Context, p *entity.Permission) error
	Update(ctx context.Context, p *entity.Permission) error
	Delete(ctx context.Context, id int64) error
}
