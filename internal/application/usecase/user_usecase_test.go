package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

type memUsers struct {
	rows   map[int64]entity.User
	nextID int64
}

func (r *memUsers) List(ctx context.Context) ([]*entity.User, error) { return nil, nil }

func (r *memUsers) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memUsers) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.rows {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUsers) Create(ctx context.Context, u *entity.User) error {
	r.nextID++
	u.ID = r.nextID
	r.rows[u.ID] = *u
	return nil
}

func (r *memUsers) Update(ctx context.Context, u *entity.User) error {
	cur, ok := r.rows[u.ID]
	if !ok {
		return domain.ErrNotFound
	}
	u.PasswordHash = cur.PasswordHash
	r.rows[u.ID] = *u
	return nil
}

func (r *memUsers) UpdatePassword(ctx context.Context, id int64, hash string) error {
	u, ok := r.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.PasswordHash = hash
	r.rows[id] = u
	return nil
}

func (r *memUsers) Delete(ctx context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

func TestUser_CreateGuardaHashYNormalizaEmail(t *testing.T) {
	repo := &memUsers{rows: map[int64]entity.User{}}
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Ana", Email: "  Ana@Empresa.MX ", Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@empresa.mx", out.Email)
	assert.True(t, out.Active, "activo por defecto")

	stored := repo.rows[out.ID]
	assert.NotEqual(t, "secreto123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestUser_EmailDuplicado(t *testing.T) {
	uc := usecase.NewUserUseCase(&memUsers{rows: map[int64]entity.User{}})
	_, err := uc.Create(context.Background(), dto.CreateUserRequest{Name: "A", Email: "a@x.mx", Password: "12345678"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateUserRequest{Name: "B", Email: "A@X.MX", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUser_UpdateSinPasswordConservaHash(t *testing.T) {
	repo := &memUsers{rows: map[int64]entity.User{}}
	uc := usecase.NewUserUseCase(repo)
	created, err := uc.Create(context.Background(), dto.CreateUserRequest{Name: "A", Email: "a@x.mx", Password: "original1"})
	require.NoError(t, err)
	before := repo.rows[created.ID].PasswordHash

	out, err := uc.Update(context.Background(), created.ID, dto.UpdateUserRequest{Name: "A2", Email: "a@x.mx", Active: false})
	require.NoError(t, err)
	assert.Equal(t, "A2", out.Name)
	assert.False(t, out.Active)
	assert.Equal(t, before, repo.rows[created.ID].PasswordHash)

	_, err = uc.Update(context.Background(), created.ID, dto.UpdateUserRequest{Name: "A2", Email: "a@x.mx", Password: "nuevo1234", Active: true})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.rows[created.ID].PasswordHash), []byte("nuevo1234")))
}
