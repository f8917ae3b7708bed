package service

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/vaulthive/vaulthive.go/common"
	"github.com/vaulthive/vaulthive.go/db/models"
	"github.com/vaulthive/vaulthive.go/lib/fraction"
)

type TokenizeResult struct {
	Token          *models.Token `json:"token"`
	RewardAmount   int64         `json:"reward_amount"`
	VaultBalance   int64         `json:"vault_balance"`
	PricePerToken  int64         `json:"price_per_token"`
	PercentPerUnit string        `json:"percent_per_unit"`
}

// TokenSymbol derives the ticker from the asset name: the first four
// characters, upper-cased. Deterministic so re-derivation always agrees
// with the stored row.
func TokenSymbol(assetName string) string {
	runes := []rune(strings.ToUpper(assetName))
	if len(runes) > 4 {
		runes = runes[:4]
	}
	return string(runes)
}

// TokenizeAsset splits an asset into 100 fungible units and credits the
// owner's VAULT ledger. The on-chain mint is best effort: when it fails
// the token is recorded database-only and the call still succeeds.
// A non-empty walletAddress overrides the owner's stored wallet for the
// mint.
func (svc *VaulthiveService) TokenizeAsset(ctx context.Context, assetId, userId, walletAddress string) (*TokenizeResult, error) {
	asset, err := svc.FindAsset(ctx, assetId)
	if err != nil {
		return nil, err
	}
	if asset.OwnerID != userId {
		return nil, ErrNotAssetOwner
	}
	if asset.Tokenized {
		return nil, ErrAlreadyTokenized
	}
	owner, err := svc.FindUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	token := &models.Token{
		ID:          uuid.NewString(),
		AssetID:     asset.ID,
		Symbol:      TokenSymbol(asset.Name),
		TotalSupply: common.TokenTotalSupply,
		Decimals:    common.TokenDecimals,
	}

	if walletAddress == "" {
		walletAddress = owner.WalletAddress
	}

	// Mint before touching the database so a chain failure never leaves
	// a half-committed token behind.
	if svc.ChainClient != nil {
		mint, err := svc.ChainClient.CreateAssetToken(ctx, asset.Name, token.Symbol, token.TotalSupply, walletAddress)
		if err != nil {
			svc.Logger.Errorf("On-chain mint failed for asset %s, recording database-only token: %v", asset.ID, err)
		} else {
			token.MintAddress = mint.ContractAddress
			token.MintTx = mint.TxHash
			token.OnChain = true
		}
	}

	err = svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model((*models.Asset)(nil)).
			Set("tokenized = true").
			Where("id = ? AND tokenized = false", asset.ID).
			Exec(ctx)
		if err != nil {
			return err
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrAlreadyTokenized
		}
		if _, err := tx.NewInsert().Model(token).Exec(ctx); err != nil {
			return err
		}
		_, err = svc.CreditVault(ctx, tx, userId, common.TokenizeRewardAmount, common.RewardReasonTokenize, asset.ID, token.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	balance, err := svc.VaultBalance(ctx, userId)
	if err != nil {
		return nil, err
	}

	result := &TokenizeResult{
		Token:          token,
		RewardAmount:   common.TokenizeRewardAmount,
		VaultBalance:   balance,
		PricePerToken:  fraction.PricePerUnit(asset.Valuation, token.TotalSupply),
		PercentPerUnit: fraction.FormatPercentPerUnit(token.TotalSupply),
	}

	svc.publishTokenMinted(token, asset)

	return result, nil
}

type tokenMintedEvent struct {
	TokenID     string `json:"token_id"`
	AssetID     string `json:"asset_id"`
	OwnerID     string `json:"owner_id"`
	Symbol      string `json:"symbol"`
	TotalSupply int64  `json:"total_supply"`
	OnChain     bool   `json:"on_chain"`
	MintAddress string `json:"mint_address,omitempty"`
}

// publishTokenMinted fans the event out to RabbitMQ and the webhook.
// Both are fire and forget, delivery problems are logged only.
func (svc *VaulthiveService) publishTokenMinted(token *models.Token, asset *models.Asset) {
	event := tokenMintedEvent{
		TokenID:     token.ID,
		AssetID:     asset.ID,
		OwnerID:     asset.OwnerID,
		Symbol:      token.Symbol,
		TotalSupply: token.TotalSupply,
		OnChain:     token.OnChain,
		MintAddress: token.MintAddress,
	}
	if svc.RabbitMQ != nil {
		go func() {
			if err := svc.RabbitMQ.PublishTokenMinted(context.Background(), event); err != nil {
				svc.Logger.Errorf("Failed to publish token minted event: %v", err)
			}
		}()
	}
	if svc.Config.WebhookUrl != "" {
		go svc.postToWebhook(event)
	}
}
