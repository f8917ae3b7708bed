package service

import (
	"github.com/uptrace/bun"
	"github.com/vaulthive/vaulthive.go/chain"
	"github.com/vaulthive/vaulthive.go/rabbitmq"
	"github.com/ziflex/lecho/v3"
)

type VaulthiveService struct {
	Config *Config
	DB     *bun.DB
	Logger *lecho.Logger
	// ChainClient is nil when the RPC endpoint is unreachable or not
	// configured. Tokenization then records database-only tokens.
	ChainClient chain.Client
	RabbitMQ    rabbitmq.Client
}
