package chain

type Config struct {
	RPCURL               string `envconfig:"MONAD_RPC_URL" default:"https://testnet-rpc.monad.xyz"`
	ChainID              int64  `envconfig:"MONAD_CHAIN_ID" default:"10143"`
	PlatformPrivateKey   string `envconfig:"PLATFORM_PRIVATE_KEY"`
	VaultContractAddress string `envconfig:"VAULT_CONTRACT_ADDRESS"`
	ArtifactsPath        string `envconfig:"CONTRACT_ARTIFACTS_PATH" default:"contracts/artifacts"`
}
