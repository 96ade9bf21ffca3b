package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

type memClients struct {
	rows   map[int64]entity.Client
	nextID int64
}

func (r *memClients) List(ctx context.Context) ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(r.rows))
	for _, c := range r.rows {
		cp := c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memClients) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memClients) Create(ctx context.Context, c *entity.Client) error {
	r.nextID++
	c.ID = r.nextID
	r.rows[c.ID] = *c
	return nil
}

func (r *memClients) Update(ctx context.Context, c *entity.Client) error {
	if _, ok := r.rows[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.rows[c.ID] = *c
	return nil
}

func (r *memClients) Delete(ctx context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func TestClientUseCase_RFC(t *testing.T) {
	repo := &memClients{rows: map[int64]entity.Client{}}
	uc := usecase.NewClientUseCase(repo)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.ClientRequest{Name: "Walmart", RFC: " wmt970714r10 ", Email: "Compras@Walmart.MX"})
	require.NoError(t, err)
	assert.Equal(t, "WMT970714R10", out.RFC)
	assert.Equal(t, "compras@walmart.mx", out.Email)

	_, err = uc.Create(ctx, dto.ClientRequest{Name: "Otro", RFC: "WMT970714R19"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Len(t, repo.rows, 1)

	_, err = uc.Create(ctx, dto.ClientRequest{Name: "Sin RFC"})
	assert.NoError(t, err)
}

func TestClientUseCase_NoEncontrado(t *testing.T) {
	uc := usecase.NewClientUseCase(&memClients{rows: map[int64]entity.Client{}})
	ctx := context.Background()

	_, err := uc.GetByID(ctx, 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Update(ctx, 5, dto.ClientRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, 5), domain.ErrNotFound)
}
