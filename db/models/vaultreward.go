package models

import (
	"time"

	"github.com/uptrace/bun"
)

// VaultReward is an append-only ledger entry. A user's VAULT balance is
// the sum of their entries, never a stored total.
type VaultReward struct {
	bun.BaseModel `bun:"table:vault_rewards"`

	ID        string    `bun:",pk" json:"id"`
	UserID    string    `bun:",notnull" json:"user_id"`
	User      *User     `bun:"rel:belongs-to,join:user_id=id" json:"-"`
	Amount    int64     `bun:",notnull" json:"amount"`
	Reason    string    `bun:",notnull" json:"reason"`
	AssetID   string    `bun:",nullzero" json:"asset_id,omitempty"`
	TokenID   string    `bun:",nullzero" json:"token_id,omitempty"`
	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"created_at"`
}
