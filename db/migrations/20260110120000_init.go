package migrations

import (
	"context"

	"github.com/uptrace/bun"
	"github.com/vaulthive/vaulthive.go/db/models"
)

/* This init reflects the latest model fields when run on a fresh db.
Subsequent migrations that add or remove columns must use
IfNotExists/IfExists or they will fail on fresh installs. */
func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {

		if _, err := db.NewCreateTable().Model((*models.User)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*models.Asset)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*models.Token)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*models.VaultReward)(nil)).Exec(ctx); err != nil {
			return err
		}

		return nil
	}, nil)
}
