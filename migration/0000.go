package migration

import (
	"context"

	"github.com/nums-lab/backend/internal/entity"
	"github.com/nums-lab/backend/pkg/xcontext"
)

// migrate0000 creates the database with the latest version.
func migrate0000(ctx context.Context) error {
	return AutoMigrate(ctx)
}

// When this migrator is called, no need to call other schema migrators.
func AutoMigrate(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.Theme{},
		&entity.UserProfile{},
		&entity.UserConfig{},
		&entity.Admin{},
		&entity.Game{},
		&entity.Migration{},
	)
}
