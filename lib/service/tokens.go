package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vaulthive/vaulthive.go/db/models"
)

func (svc *VaulthiveService) AllTokens(ctx context.Context) ([]models.Token, error) {
	tokens := []models.Token{}
	err := svc.DB.NewSelect().Model(&tokens).Relation("Asset").OrderExpr("token.created_at DESC").Limit(100).Scan(ctx)
	return tokens, err
}

func (svc *VaulthiveService) TokensForUser(ctx context.Context, userId string) ([]models.Token, error) {
	if _, err := svc.FindUser(ctx, userId); err != nil {
		return nil, err
	}
	tokens := []models.Token{}
	err := svc.DB.NewSelect().
		Model(&tokens).
		Relation("Asset").
		Where("asset.owner_id = ?", userId).
		OrderExpr("token.created_at DESC").
		Scan(ctx)
	return tokens, err
}

func (svc *VaulthiveService) FindToken(ctx context.Context, tokenId string) (*models.Token, error) {
	token := &models.Token{}
	err := svc.DB.NewSelect().Model(token).Relation("Asset").Where("token.id = ?", tokenId).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, err
	}
	return token, nil
}
