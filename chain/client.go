// Package chain wraps the Monad testnet RPC endpoint. The service keeps
// working without it: a nil Client means tokens are recorded in the
// database only.
package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"
)

type Client interface {
	ChainID() int64
	BalanceAt(ctx context.Context, address string) (*big.Int, error)
	// CreateAssetToken deploys a fresh ERC-20 contract for a tokenized asset.
	CreateAssetToken(ctx context.Context, name, symbol string, totalSupply int64, ownerWallet string) (*MintResult, error)
	// MintReward mints VAULT to a wallet on the platform reward contract.
	MintReward(ctx context.Context, to string, amount int64) (string, error)
}

type MintResult struct {
	ContractAddress string
	TxHash          string
}

type monadClient struct {
	cfg    *Config
	eth    *ethclient.Client
	key    *ecdsa.PrivateKey
	logger *zerolog.Logger
}

// Init dials the configured RPC endpoint. Callers treat an error as
// "run without a chain" rather than a fatal condition.
func Init(ctx context.Context, cfg *Config, logger *zerolog.Logger) (Client, error) {
	eth, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", cfg.RPCURL, err)
	}
	// the dial is lazy for http endpoints, probe the chain id to be sure
	chainID, err := eth.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("chain id probe: %w", err)
	}
	if chainID.Int64() != cfg.ChainID {
		return nil, fmt.Errorf("unexpected chain id %d, want %d", chainID.Int64(), cfg.ChainID)
	}

	client := &monadClient{cfg: cfg, eth: eth, logger: logger}
	if cfg.PlatformPrivateKey != "" {
		key, err := crypto.HexToECDSA(cfg.PlatformPrivateKey)
		if err != nil {
			return nil, fmt.Errorf("platform key: %w", err)
		}
		client.key = key
	}
	return client, nil
}

func (c *monadClient) ChainID() int64 {
	return c.cfg.ChainID
}

func (c *monadClient) BalanceAt(ctx context.Context, address string) (*big.Int, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid address %q", address)
	}
	return c.eth.BalanceAt(ctx, common.HexToAddress(address), nil)
}

func (c *monadClient) transactor(ctx context.Context) (*bind.TransactOpts, error) {
	if c.key == nil {
		return nil, fmt.Errorf("no platform key configured")
	}
	auth, err := bind.NewKeyedTransactorWithChainID(c.key, big.NewInt(c.cfg.ChainID))
	if err != nil {
		return nil, err
	}
	auth.Context = ctx
	return auth, nil
}

func (c *monadClient) CreateAssetToken(ctx context.Context, name, symbol string, totalSupply int64, ownerWallet string) (*MintResult, error) {
	artifact, err := LoadArtifact(c.cfg.ArtifactsPath, "AssetToken")
	if err != nil {
		return nil, err
	}
	parsed, err := artifact.ParsedABI()
	if err != nil {
		return nil, err
	}
	auth, err := c.transactor(ctx)
	if err != nil {
		return nil, err
	}
	owner := crypto.PubkeyToAddress(c.key.PublicKey)
	if common.IsHexAddress(ownerWallet) {
		owner = common.HexToAddress(ownerWallet)
	}
	addr, tx, _, err := bind.DeployContract(auth, parsed, common.FromHex(artifact.Bytecode), c.eth,
		name, symbol, big.NewInt(totalSupply), owner)
	if err != nil {
		return nil, fmt.Errorf("deploy asset token: %w", err)
	}
	c.logger.Info().Str("contract", addr.Hex()).Str("tx", tx.Hash().Hex()).Str("symbol", symbol).Msg("deployed asset token")
	return &MintResult{
		ContractAddress: addr.Hex(),
		TxHash:          tx.Hash().Hex(),
	}, nil
}

func (c *monadClient) MintReward(ctx context.Context, to string, amount int64) (string, error) {
	if c.cfg.VaultContractAddress == "" {
		return "", fmt.Errorf("no vault contract configured")
	}
	if !common.IsHexAddress(to) {
		return "", fmt.Errorf("invalid recipient %q", to)
	}
	artifact, err := LoadArtifact(c.cfg.ArtifactsPath, "VaultToken")
	if err != nil {
		return "", err
	}
	parsed, err := artifact.ParsedABI()
	if err != nil {
		return "", err
	}
	auth, err := c.transactor(ctx)
	if err != nil {
		return "", err
	}
	contract := bind.NewBoundContract(common.HexToAddress(c.cfg.VaultContractAddress), parsed, c.eth, c.eth, c.eth)
	tx, err := contract.Transact(auth, "mintReward", common.HexToAddress(to), big.NewInt(amount))
	if err != nil {
		return "", fmt.Errorf("mint reward: %w", err)
	}
	return tx.Hash().Hex(), nil
}
