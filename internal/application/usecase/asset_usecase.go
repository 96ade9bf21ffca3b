package usecase

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/text"
)

// AssetUseCase casos de uso CRUD para activos fijos.
type AssetUseCase struct {
	repo repository.AssetRepository
}

func NewAssetUseCase(repo repository.AssetRepository) *AssetUseCase {
	return &AssetUseCase{repo: repo}
}

func (uc *AssetUseCase) List(ctx context.Context) ([]*dto.AssetResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toAssetResponse), nil
}

func (uc *AssetUseCase) GetByID(ctx context.Context, id int64) (*dto.AssetResponse, error) {
	a, err := found(uc.repo.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	return toAssetResponse(a), nil
}

func (uc *AssetUseCase) Create(ctx context.Context, in dto.AssetRequest) (*dto.AssetResponse, error) {
	a, err := assetFromRequest(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, a.ID)
}

func (uc *AssetUseCase) Update(ctx context.Context, id int64, in dto.AssetRequest) (*dto.AssetResponse, error) {
	a, err := assetFromRequest(in)
	if err != nil {
		return nil, err
	}
	a.ID = id
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

func (uc *AssetUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func assetFromRequest(in dto.AssetRequest) (*entity.Asset, error) {
	if in.Cost.IsNegative() {
		return nil, domain.NewValidationError("cost", "no puede ser negativo")
	}
	purchased, err := dto.ParseOptionalDate("purchase_date", in.PurchaseDate)
	if err != nil {
		return nil, err
	}
	return &entity.Asset{
		CategoryID:   in.CategoryID,
		Name:         text.Sanitize(in.Name),
		Description:  text.Sanitize(in.Description),
		SerialNumber: text.Sanitize(in.SerialNumber),
		PurchaseDate: purchased,
		Cost:         in.Cost.Round(2),
		Location:     text.Sanitize(in.Location),
	}, nil
}

func toAssetResponse(a *entity.Asset) *dto.AssetResponse {
	return &dto.AssetResponse{
		ID:           a.ID,
		CategoryID:   a.CategoryID,
		CategoryName: a.CategoryName,
		Name:         a.Name,
		Description:  a.Description,
		SerialNumber: a.SerialNumber,
		PurchaseDate: dto.FormatOptionalDate(a.PurchaseDate),
		Cost:         a.Cost,
		Location:     a.Location,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
