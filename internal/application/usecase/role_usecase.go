package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/text"
)

// RoleUseCase casos de uso CRUD para roles y sus permisos por módulo.
type RoleUseCase struct {
	roles       repository.RoleRepository
	permissions repository.PermissionRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(roles repository.RoleRepository, permissions repository.PermissionRepository) *RoleUseCase {
	return &RoleUseCase{roles: roles, permissions: permissions}
}

func (uc *RoleUseCase) List(ctx context.Context) ([]*dto.RoleResponse, error) {
	list, err := uc.roles.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toRoleResponse), nil
}

func (uc *RoleUseCase) GetByID(ctx context.Context, id int64) (*dto.RoleResponse, error) {
	r, err := found(uc.roles.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	return toRoleResponse(r), nil
}

func (uc *RoleUseCase) Create(ctx context.Context, in dto.RoleRequest) (*dto.RoleResponse, error) {
	r := &entity.Role{Name: text.Sanitize(in.Name), Description: text.Sanitize(in.Description)}
	if err := uc.roles.Create(ctx, r); err != nil {
		return nil, err
	}
	return toRoleResponse(r), nil
}

func (uc *RoleUseCase) Update(ctx context.Context, id int64, in dto.RoleRequest) (*dto.RoleResponse, error) {
	r := &entity.Role{ID: id, Name: text.Sanitize(in.Name), Description: text.Sanitize(in.Description)}
	if err := uc.roles.Update(ctx, r); err != nil {
		return nil, err
	}
	return toRoleResponse(r), nil
}

// Delete elimina un rol; sus permisos se eliminan en cascada en la DB.
func (uc *RoleUseCase) Delete(ctx context.Context, id int64) error {
	return uc.roles.Delete(ctx, id)
}

// ListPermissions lista permisos, opcionalmente de un solo rol.
func (uc *RoleUseCase) ListPermissions(ctx context.Context, roleID *int64) ([]*dto.PermissionResponse, error) {
	list, err := uc.permissions.List(ctx, roleID)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toPermissionResponse), nil
}

func (uc *RoleUseCase) GetPermission(ctx context.Context, id int64) (*dto.PermissionResponse, error) {
	p, err := found(uc.permissions.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	return toPermissionResponse(p), nil
}

func (uc *RoleUseCase) CreatePermission(ctx context.Context, in dto.PermissionRequest) (*dto.PermissionResponse, error) {
	p := permissionFromRequest(in)
	if err := uc.permissions.Create(ctx, p); err != nil {
		return nil, err
	}
	return uc.GetPermission(ctx, p.ID)
}

func (uc *RoleUseCase) UpdatePermission(ctx context.Context, id int64, in dto.PermissionRequest) (*dto.PermissionResponse, error) {
	p := permissionFromRequest(in)
	p.ID = id
	if err := uc.permissions.Update(ctx, p); err != nil {
		return nil, err
	}
	return uc.GetPermission(ctx, id)
}

func (uc *RoleUseCase) DeletePermission(ctx context.Context, id int64) error {
	return uc.permissions.Delete(ctx, id)
}

func permissionFromRequest(in dto.PermissionRequest) *entity.Permission {
	return &entity.Permission{
		RoleID:    in.RoleID,
		Module:    strings.ToLower(strings.TrimSpace(in.Module)),
		CanRead:   in.CanRead,
		CanCreate: in.CanCreate,
		CanUpdate: in.CanUpdate,
		CanDelete: in.CanDelete,
	}
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	return &dto.RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toPermissionResponse(p *entity.Permission) *dto.PermissionResponse {
	return &dto.PermissionResponse{
		ID:        p.ID,
		RoleID:    p.RoleID,
		RoleName:  p.RoleName,
		Module:    p.Module,
		CanRead:   p.CanRead,
		CanCreate: p.CanCreate,
		CanUpdate: p.CanUpdate,
		CanDelete: p.CanDelete,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
