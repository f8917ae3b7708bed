package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Token is the fungible-unit record created when an asset is tokenized.
// MintAddress and MintTx are only set when the on-chain mint succeeded.
type Token struct {
	bun.BaseModel `bun:"table:tokens,alias:token"`

	ID          string    `bun:",pk" json:"id"`
	AssetID     string    `bun:",unique,notnull" json:"asset_id"`
	Asset       *Asset    `bun:"rel:belongs-to,join:asset_id=id" json:"-"`
	Symbol      string    `bun:",notnull" json:"symbol"`
	TotalSupply int64     `bun:",notnull" json:"total_supply"`
	Decimals    int       `bun:",notnull,default:0" json:"decimals"`
	MintAddress string    `bun:",nullzero" json:"mint_address,omitempty"`
	MintTx      string    `bun:",nullzero" json:"mint_tx,omitempty"`
	OnChain     bool      `bun:",notnull,default:false" json:"on_chain"`
	CreatedAt   time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"created_at"`
}
