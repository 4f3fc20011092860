package migration

import (
	"context"
	"errors"
	"sort"

	"github.com/nums-lab/backend/internal/entity"
	"github.com/nums-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type Migrator func(ctx context.Context) error

var Migrators = map[string]Migrator{
	"0000": migrate0000,
	"0001": migrate0001,
}

// Versions returns the known migrator versions in apply order.
func Versions() []string {
	versions := make([]string, 0, len(Migrators))
	for v := range Migrators {
		versions = append(versions, v)
	}

	sort.Strings(versions)
	return versions
}

// Migrate applies every migrator not recorded in the migrations table yet.
// Each migrator runs in its own transaction together with its record.
func Migrate(ctx context.Context) error {
	if err := xcontext.DB(ctx).AutoMigrate(&entity.Migration{}); err != nil {
		return err
	}

	for _, version := range Versions() {
		var record entity.Migration
		err := xcontext.DB(ctx).Where("version=?", version).Take(&record).Error
		if err == nil {
			continue
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := apply(ctx, version); err != nil {
			return err
		}

		xcontext.Logger(ctx).Infof("Applied migration %s", version)
	}

	return nil
}

// Run applies a single migrator regardless of the migrations table.
func Run(ctx context.Context, version string) error {
	if err := xcontext.DB(ctx).AutoMigrate(&entity.Migration{}); err != nil {
		return err
	}

	return apply(ctx, version)
}

func apply(ctx context.Context, version string) error {
	migrator, ok := Migrators[version]
	if !ok {
		return errors.New("not found migration version " + version)
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := migrator(ctx); err != nil {
		return err
	}

	if err := xcontext.DB(ctx).Save(&entity.Migration{Version: version}).Error; err != nil {
		return err
	}

	return xcontext.WithCommitDBTransaction(ctx)
}
