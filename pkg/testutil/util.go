package testutil

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nums-lab/backend/config"
	"github.com/nums-lab/backend/internal/model"
	"github.com/nums-lab/backend/migration"
	"github.com/nums-lab/backend/pkg/authenticator"
	"github.com/nums-lab/backend/pkg/logger"
	"github.com/nums-lab/backend/pkg/xcontext"
	"golang.org/x/crypto/bcrypt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func MockConfigs() config.Configs {
	return config.Configs{
		Env: config.EnvDevelopment,
		Database: config.DatabaseConfigs{
			Driver: "sqlite",
		},
		ApiServer: config.APIServerConfigs{
			Host: "localhost",
			Port: "8080",
		},
		Auth: config.AuthConfigs{
			TokenSecret: "secret",
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: time.Minute,
			},
			BcryptCost: bcrypt.MinCost,
		},
		Game: config.GameConfigs{
			RecentThresholdDays: 7,
			DefaultLimit:        10,
			MaxLimit:            100,
		},
		Monitor: config.MonitorConfigs{
			DBCheckInterval:        time.Minute,
			FreshnessCheckInterval: time.Hour,
		},
	}
}

// NewDB opens a private in-memory sqlite database. A single connection is
// kept open so that every query sees the same database.
func NewDB() *gorm.DB {
	dsn := "file:" + uuid.NewString() + "?mode=memory&_foreign_keys=1"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		panic(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db
}

func MockContext() context.Context {
	cfg := MockConfigs()

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithTokenEngine(ctx,
		authenticator.NewTokenEngine[model.AccessToken](cfg.Auth.TokenSecret, cfg.Auth.AccessToken))
	ctx = xcontext.WithDB(ctx, NewDB())

	if err := migration.AutoMigrate(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithUserID(userID string) context.Context {
	return xcontext.WithRequestUserID(MockContext(), userID)
}
