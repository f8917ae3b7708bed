package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/vaulthive/vaulthive.go/common"
	"github.com/vaulthive/vaulthive.go/db/models"
)

func (svc *VaulthiveService) CreateAsset(ctx context.Context, ownerId, name, description, category string, valuation float64, imageUrl string) (*models.Asset, error) {
	if category == "" {
		category = common.AssetCategoryMiscellaneous
	}
	if !common.AssetCategories[category] {
		return nil, ErrInvalidCategory
	}
	if valuation < 0 {
		return nil, ErrInvalidValuation
	}
	if _, err := svc.FindUser(ctx, ownerId); err != nil {
		return nil, err
	}

	asset := &models.Asset{
		ID:          uuid.NewString(),
		OwnerID:     ownerId,
		Name:        name,
		Description: description,
		Category:    category,
		Valuation:   valuation,
		ImageURL:    imageUrl,
	}
	if _, err := svc.DB.NewInsert().Model(asset).Exec(ctx); err != nil {
		return nil, err
	}
	return asset, nil
}

func (svc *VaulthiveService) FindAsset(ctx context.Context, assetId string) (*models.Asset, error) {
	asset := &models.Asset{}
	err := svc.DB.NewSelect().Model(asset).Where("id = ?", assetId).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAssetNotFound
	}
	if err != nil {
		return nil, err
	}
	return asset, nil
}

func (svc *VaulthiveService) AllAssets(ctx context.Context) ([]models.Asset, error) {
	assets := []models.Asset{}
	err := svc.DB.NewSelect().Model(&assets).OrderExpr("created_at DESC").Limit(100).Scan(ctx)
	return assets, err
}

func (svc *VaulthiveService) AssetsForUser(ctx context.Context, userId string) ([]models.Asset, error) {
	assets := []models.Asset{}
	err := svc.DB.NewSelect().Model(&assets).Where("owner_id = ?", userId).OrderExpr("created_at DESC").Scan(ctx)
	return assets, err
}
