package service

import (
	"context"
	"fmt"
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
	"github.com/vaulthive/vaulthive.go/common"
	"github.com/vaulthive/vaulthive.go/db/models"
)

type WalletBalance struct {
	Address string        `json:"address"`
	Balance BalanceDetail `json:"balance"`
	Network string        `json:"network"`
	ChainID int64         `json:"chainId"`
}

type BalanceDetail struct {
	Native string            `json:"native"`
	RawWei string            `json:"raw_wei"`
	Tokens map[string]string `json:"tokens"`
}

// ConnectWallet associates a wallet address with a user. The association
// is last-write-wins, a user reconnecting with another wallet simply
// overwrites the previous one.
func (svc *VaulthiveService) ConnectWallet(ctx context.Context, userId, address string) (*models.User, error) {
	if !ethcommon.IsHexAddress(address) {
		return nil, ErrInvalidWalletAddress
	}
	user, err := svc.FindUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	user.WalletAddress = ethcommon.HexToAddress(address).Hex()
	_, err = svc.DB.NewUpdate().
		Model(user).
		Column("wallet_address", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (svc *VaulthiveService) GetWalletBalance(ctx context.Context, address string) (*WalletBalance, error) {
	if !ethcommon.IsHexAddress(address) {
		return nil, ErrInvalidWalletAddress
	}
	if svc.ChainClient == nil {
		return nil, fmt.Errorf("chain client not available")
	}
	wei, err := svc.ChainClient.BalanceAt(ctx, address)
	if err != nil {
		return nil, err
	}
	return &WalletBalance{
		Address: ethcommon.HexToAddress(address).Hex(),
		Balance: BalanceDetail{
			Native: formatNative(wei),
			RawWei: wei.String(),
			Tokens: map[string]string{"VAULT": "0"},
		},
		Network: common.NetworkName,
		ChainID: svc.ChainClient.ChainID(),
	}, nil
}

func formatNative(wei *big.Int) string {
	native, _ := new(big.Float).Quo(new(big.Float).SetInt(wei), big.NewFloat(params.Ether)).Float64()
	return fmt.Sprintf("%.4f %s", native, common.NativeSymbol)
}
