package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users"`

	ID            string    `bun:",pk" json:"id"`
	Email         string    `bun:",unique,notnull" json:"email"`
	Username      string    `bun:",notnull" json:"username"`
	Password      string    `bun:",notnull" json:"-"`
	WalletAddress string    `bun:",nullzero" json:"wallet_address,omitempty"`
	CreatedAt     time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"updated_at"`
}
