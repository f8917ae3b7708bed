package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/vaulthive/vaulthive.go/db/models"
)

// CreditVault appends a reward entry to the ledger. It takes a bun.IDB so
// it can run inside the tokenization transaction.
func (svc *VaulthiveService) CreditVault(ctx context.Context, db bun.IDB, userId string, amount int64, reason, assetId, tokenId string) (*models.VaultReward, error) {
	if amount <= 0 {
		return nil, ErrInvalidRewardAmount
	}
	reward := &models.VaultReward{
		ID:      uuid.NewString(),
		UserID:  userId,
		Amount:  amount,
		Reason:  reason,
		AssetID: assetId,
		TokenID: tokenId,
	}
	if _, err := db.NewInsert().Model(reward).Exec(ctx); err != nil {
		return nil, err
	}
	return reward, nil
}

// VaultBalance is the sum of the user's ledger entries. A user with no
// entries has a balance of 0, which is not an error.
func (svc *VaulthiveService) VaultBalance(ctx context.Context, userId string) (int64, error) {
	if _, err := svc.FindUser(ctx, userId); err != nil {
		return 0, err
	}
	var balance int64
	err := svc.DB.NewSelect().
		Model((*models.VaultReward)(nil)).
		ColumnExpr("COALESCE(SUM(amount), 0)").
		Where("user_id = ?", userId).
		Scan(ctx, &balance)
	return balance, err
}

func (svc *VaulthiveService) VaultRewardsFor(ctx context.Context, userId string) ([]models.VaultReward, error) {
	if _, err := svc.FindUser(ctx, userId); err != nil {
		return nil, err
	}
	rewards := []models.VaultReward{}
	err := svc.DB.NewSelect().Model(&rewards).Where("user_id = ?", userId).OrderExpr("created_at DESC").Limit(100).Scan(ctx)
	return rewards, err
}
