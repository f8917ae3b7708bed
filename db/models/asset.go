package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Asset struct {
	bun.BaseModel `bun:"table:assets,alias:asset"`

	ID          string    `bun:",pk" json:"id"`
	OwnerID     string    `bun:",notnull" json:"owner_id"`
	Owner       *User     `bun:"rel:belongs-to,join:owner_id=id" json:"-"`
	Name        string    `bun:",notnull" json:"name"`
	Description string    `json:"description"`
	Category    string    `bun:",notnull" json:"category"`
	Valuation   float64   `bun:",notnull" json:"valuation"`
	ImageURL    string    `bun:",nullzero" json:"image_url,omitempty"`
	Tokenized   bool      `bun:",notnull,default:false" json:"tokenized"`
	CreatedAt   time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"created_at"`
}
