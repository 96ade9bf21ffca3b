package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/text"
)

// ProviderUseCase casos de uso CRUD para proveedores.
type ProviderUseCase struct {
	repo repository.ProviderRepository
}

// NewProviderUseCase construye el caso de uso.
func NewProviderUseCase(repo repository.ProviderRepository) *ProviderUseCase {
	return &ProviderUseCase{repo: repo}
}

func (uc *ProviderUseCase) List(ctx context.Context) ([]*dto.ProviderResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toProviderResponse), nil
}

func (uc *ProviderUseCase) GetByID(ctx context.Context, id int64) (*dto.ProviderResponse, error) {
	p, err := found(uc.repo.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	return toProviderResponse(p), nil
}

func (uc *ProviderUseCase) Create(ctx context.Context, in dto.ProviderRequest) (*dto.ProviderResponse, error) {
	p, err := providerFromRequest(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProviderResponse(p), nil
}

func (uc *ProviderUseCase) Update(ctx context.Context, id int64, in dto.ProviderRequest) (*dto.ProviderResponse, error) {
	p, err := providerFromRequest(in)
	if err != nil {
		return nil, err
	}
	p.ID = id
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProviderResponse(p), nil
}

func (uc *ProviderUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func providerFromRequest(in dto.ProviderRequest) (*entity.Provider, error) {
	code, err := normalizeRFC(in.RFC)
	if err != nil {
		return nil, err
	}
	return &entity.Provider{
		Name:        text.Sanitize(in.Name),
		RFC:         code,
		ContactName: text.Sanitize(in.ContactName),
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:       strings.TrimSpace(in.Phone),
		BankAccount: strings.TrimSpace(in.BankAccount),
		Notes:       text.Sanitize(in.Notes),
	}, nil
}

func toProviderResponse(p *entity.Provider) *dto.ProviderResponse {
	return &dto.ProviderResponse{
		ID:          p.ID,
		Name:        p.Name,
		RFC:         p.RFC,
		ContactName: p.ContactName,
		Email:       p.Email,
		Phone:       p.Phone,
		BankAccount: p.BankAccount,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
