// Command deploy deploys the VaultToken reward contract to the Monad
// testnet, authorizes the deployer as a minter and smoke-tests a mint.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/params"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/vaulthive/vaulthive.go/chain"
)

// the deployer needs at least 0.1 MON for gas
var minDeployerBalance = new(big.Int).Div(big.NewInt(params.Ether), big.NewInt(10))

// 1,000,000 VAULT with 18 decimals
var initialSupply = new(big.Int).Mul(big.NewInt(1_000_000), big.NewInt(params.Ether))

type deployConfig struct {
	chain.Config
	DeployerPrivateKey string `envconfig:"DEPLOYER_PRIVATE_KEY" required:"true"`
	DeploymentsPath    string `envconfig:"DEPLOYMENTS_PATH" default:"deployments"`
}

type deploymentRecord struct {
	Network         string    `json:"network"`
	ChainID         int64     `json:"chainId"`
	ContractAddress string    `json:"contractAddress"`
	Deployer        string    `json:"deployer"`
	TxHash          string    `json:"txHash"`
	InitialSupply   string    `json:"initialSupply"`
	DeployedAt      time.Time `json:"deployedAt"`
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		fmt.Println("Failed to load .env file")
	}
	cfg := &deployConfig{}
	if err := envconfig.Process("", cfg); err != nil {
		log.Fatalf("Error loading environment variables: %v", err)
	}

	ctx := context.Background()
	if err := run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg *deployConfig) error {
	key, err := crypto.HexToECDSA(cfg.DeployerPrivateKey)
	if err != nil {
		return fmt.Errorf("deployer key: %w", err)
	}
	deployer := crypto.PubkeyToAddress(key.PublicKey)

	eth, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("dial %s: %w", cfg.RPCURL, err)
	}
	log.Printf("Deploying VaultToken to %s with account %s", cfg.RPCURL, deployer.Hex())

	balance, err := eth.BalanceAt(ctx, deployer, nil)
	if err != nil {
		return fmt.Errorf("deployer balance: %w", err)
	}
	if balance.Cmp(minDeployerBalance) < 0 {
		return fmt.Errorf("deployer balance %s wei is below the 0.1 MON minimum, fund %s first", balance, deployer.Hex())
	}

	artifact, err := chain.LoadArtifact(cfg.ArtifactsPath, "VaultToken")
	if err != nil {
		return err
	}
	parsed, err := artifact.ParsedABI()
	if err != nil {
		return err
	}
	auth, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(cfg.ChainID))
	if err != nil {
		return err
	}
	auth.Context = ctx

	addr, tx, contract, err := bind.DeployContract(auth, parsed, ethcommon.FromHex(artifact.Bytecode), eth, deployer, initialSupply)
	if err != nil {
		return fmt.Errorf("deploy: %w", err)
	}
	log.Printf("Deploy tx %s, waiting for confirmation...", tx.Hash().Hex())
	if _, err := bind.WaitDeployed(ctx, eth, tx); err != nil {
		return fmt.Errorf("waiting for deploy: %w", err)
	}
	log.Printf("VaultToken deployed at %s", addr.Hex())

	if err := verifyDeployment(ctx, contract, deployer); err != nil {
		return err
	}

	// let the deployer mint rewards, the backend uses the same account
	tx, err = contract.Transact(auth, "setMinterAuthorization", deployer, true)
	if err != nil {
		return fmt.Errorf("authorize minter: %w", err)
	}
	if _, err := bind.WaitMined(ctx, eth, tx); err != nil {
		return fmt.Errorf("waiting for minter authorization: %w", err)
	}
	log.Printf("Minter authorization granted to %s", deployer.Hex())

	tx, err = contract.Transact(auth, "mintReward", deployer, big.NewInt(100))
	if err != nil {
		return fmt.Errorf("test mint: %w", err)
	}
	if _, err := bind.WaitMined(ctx, eth, tx); err != nil {
		return fmt.Errorf("waiting for test mint: %w", err)
	}
	log.Printf("Test mint of 100 VAULT succeeded")

	record := deploymentRecord{
		Network:         "monad-testnet",
		ChainID:         cfg.ChainID,
		ContractAddress: addr.Hex(),
		Deployer:        deployer.Hex(),
		TxHash:          tx.Hash().Hex(),
		InitialSupply:   initialSupply.String(),
		DeployedAt:      time.Now().UTC(),
	}
	if err := writeDeploymentRecord(cfg.DeploymentsPath, &record); err != nil {
		return err
	}
	log.Printf("Deployment record written to %s", filepath.Join(cfg.DeploymentsPath, "monad-testnet.json"))
	return nil
}

func verifyDeployment(ctx context.Context, contract *bind.BoundContract, owner ethcommon.Address) error {
	opts := &bind.CallOpts{Context: ctx}

	var name []interface{}
	if err := contract.Call(opts, &name, "name"); err != nil {
		return fmt.Errorf("read name: %w", err)
	}
	var symbol []interface{}
	if err := contract.Call(opts, &symbol, "symbol"); err != nil {
		return fmt.Errorf("read symbol: %w", err)
	}
	var totalSupply []interface{}
	if err := contract.Call(opts, &totalSupply, "totalSupply"); err != nil {
		return fmt.Errorf("read total supply: %w", err)
	}

	if len(symbol) != 1 || symbol[0].(string) != "VAULT" {
		return fmt.Errorf("unexpected symbol %v", symbol)
	}
	supply, ok := totalSupply[0].(*big.Int)
	if !ok || supply.Cmp(initialSupply) != 0 {
		return fmt.Errorf("unexpected total supply %v", totalSupply)
	}
	log.Printf("Verified contract: name=%v symbol=%v totalSupply=%v", name[0], symbol[0], supply)
	return nil
}

func writeDeploymentRecord(dir string, record *deploymentRecord) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "monad-testnet.json"), raw, 0644)
}
