package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

// AssetRepo implementación de AssetRepository; une el nombre de la categoría.
type AssetRepo struct {
	q Querier
}

func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

const assetSelect = `
	SELECT a.id, a.category_id, COALESCE(c.name, ''), a.name, a.description, a.serial_number,
	       a.purchase_date, a.cost, a.location, a.created_at, a.updated_at
	FROM assets a
	LEFT JOIN categories c ON c.id = a.category_id`

func scanAsset(row pgx.Row) (*entity.Asset, error) {
	var a entity.Asset
	err := row.Scan(&a.ID, &a.CategoryID, &a.CategoryName, &a.Name, &a.Description, &a.SerialNumber,
		&a.PurchaseDate, &a.Cost, &a.Location, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssetRepo) List(ctx context.Context) ([]*entity.Asset, error) {
	rows, err := r.q.Query(ctx, assetSelect+` ORDER BY a.name, a.id`)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()
	list := []*entity.Asset{}
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *AssetRepo) GetByID(ctx context.Context, id int64) (*entity.Asset, error) {
	a, err := scanAsset(r.q.QueryRow(ctx, assetSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset: %w", err)
	}
	return a, nil
}

func (r *AssetRepo) Create(ctx context.Context, a *entity.Asset) error {
	query := `
		INSERT INTO assets (category_id, name, description, serial_number, purchase_date, cost, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, a.CategoryID, a.Name, a.Description, a.SerialNumber, a.PurchaseDate, a.Cost, a.Location).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return writeError("insert asset", err)
	}
	return nil
}

func (r *AssetRepo) Update(ctx context.Context, a *entity.Asset) error {
	query := `
		UPDATE assets
		SET category_id = $2, name = $3, description = $4, serial_number = $5, purchase_date = $6,
		    cost = $7, location = $8, updated_at = NOW()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, a.ID, a.CategoryID, a.Name, a.Description, a.SerialNumber, a.PurchaseDate, a.Cost, a.Location)
	if err != nil {
		return writeError("update asset", err)
	}
	return affected(tag)
}

func (r *AssetRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return writeError("delete asset", err)
	}
	return affected(tag)
}
