package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/nums-lab/backend/config"
	"github.com/nums-lab/backend/internal/common"
	"github.com/nums-lab/backend/internal/domain"
	"github.com/nums-lab/backend/internal/repository"
	"github.com/nums-lab/backend/pkg/logger"
	"github.com/nums-lab/backend/pkg/router"
	"github.com/nums-lab/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const fallbackTokenSecret = "fallback_secret_key"

type srv struct {
	app *cli.App
	ctx context.Context

	configs  *config.Configs
	logger   logger.Logger
	db       *gorm.DB
	dbStatus *common.DBStatus

	secretFallback bool

	userRepo        repository.UserRepository
	userProfileRepo repository.UserProfileRepository
	userConfigRepo  repository.UserConfigRepository
	themeRepo       repository.ThemeRepository
	gameRepo        repository.GameRepository
	adminRepo       repository.AdminRepository

	healthDomain      domain.HealthDomain
	authDomain        domain.AuthDomain
	userDomain        domain.UserDomain
	userProfileDomain domain.UserProfileDomain
	userConfigDomain  domain.UserConfigDomain
	themeDomain       domain.ThemeDomain
	gameDomain        domain.GameDomain
	adminDomain       domain.AdminDomain

	router *router.Router
}

// setup runs before every command.
func (s *srv) setup(cctx *cli.Context) error {
	if err := s.loadConfig(cctx.String("env-file"), cctx.String("config")); err != nil {
		return err
	}

	s.loadLogger()
	s.ctx = xcontext.WithConfigs(s.ctx, *s.configs)
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
	return nil
}

func defaultConfigs() *config.Configs {
	return &config.Configs{
		Env: config.EnvDevelopment,
		Database: config.DatabaseConfigs{
			Driver:         "postgres",
			Host:           "localhost",
			Port:           "5432",
			Database:       "nums_db",
			User:           "postgres",
			SSLMode:        "disable",
			ConnectTimeout: 5 * time.Second,
			MaxOpenConns:   10,
			MaxIdleConns:   2,
		},
		ApiServer: config.APIServerConfigs{
			Port:           "8080",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Auth: config.AuthConfigs{
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: 24 * time.Hour,
			},
			BcryptCost: 10,
		},
		Game: config.GameConfigs{
			RecentThresholdDays: 7,
			DefaultLimit:        10,
			MaxLimit:            100,
		},
		Monitor: config.MonitorConfigs{
			DBCheckInterval:        30 * time.Second,
			FreshnessCheckInterval: time.Hour,
		},
		Log: config.LogConfigs{
			Level: "info",
		},
	}
}

// loadConfig reads the dotenv file, then the TOML file, then applies the
// environment variables on top. Missing files are not an error.
func (s *srv) loadConfig(envFile, configFile string) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load %s: %w", envFile, err)
	}

	s.configs = defaultConfigs()
	if _, err := toml.DecodeFile(configFile, s.configs); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot decode %s: %w", configFile, err)
	}

	if err := applyEnv(s.configs); err != nil {
		return err
	}

	if s.configs.Auth.TokenSecret == "" {
		if s.configs.Env == config.EnvProduction {
			return errors.New("JWT_SECRET must be set in production")
		}

		s.configs.Auth.TokenSecret = fallbackTokenSecret
		s.secretFallback = true
	}

	return nil
}

func applyEnv(cfg *config.Configs) error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	setString("APP_ENV", &cfg.Env)
	setString("LOG_LEVEL", &cfg.Log.Level)
	setString("DB_DRIVER", &cfg.Database.Driver)
	setString("DB_HOST", &cfg.Database.Host)
	setString("DB_PORT", &cfg.Database.Port)
	setString("DB_NAME", &cfg.Database.Database)
	setString("DB_USER", &cfg.Database.User)
	setString("DB_PASSWORD", &cfg.Database.Password)
	setString("DB_SSLMODE", &cfg.Database.SSLMode)
	setString("PORT", &cfg.ApiServer.Port)
	setString("JWT_SECRET", &cfg.Auth.TokenSecret)

	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		cfg.ApiServer.AllowedOrigins = strings.Split(v, ",")
		for i := range cfg.ApiServer.AllowedOrigins {
			cfg.ApiServer.AllowedOrigins[i] = strings.TrimSpace(cfg.ApiServer.AllowedOrigins[i])
		}
	}

	if v := os.Getenv("JWT_EXPIRES_IN"); v != "" {
		d, err := parseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid JWT_EXPIRES_IN: %w", err)
		}
		cfg.Auth.AccessToken.Expiration = d
	}

	if v := os.Getenv("GAME_RECENT_THRESHOLD_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days < 0 {
			return fmt.Errorf("invalid GAME_RECENT_THRESHOLD_DAYS %q", v)
		}
		cfg.Game.RecentThresholdDays = days
	}

	return nil
}

// parseDuration accepts Go durations, a number of seconds, or a number of
// days suffixed by "d".
func parseDuration(s string) (time.Duration, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Second, nil
	}

	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, err
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}

	return time.ParseDuration(s)
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLogger(logger.ParseLevel(s.configs.Log.Level))
	if s.secretFallback {
		s.logger.Warnf("JWT_SECRET is not set, using the fallback secret")
	}
}

func (s *srv) newDatabase() (*gorm.DB, error) {
	cfg := s.configs.Database
	dsn := cfg.ConnectionString()

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.New(mysql.Config{
			DSN:                       dsn,
			DefaultStringSize:         256,
			DisableDatetimePrecision:  true,
			DontSupportRenameIndex:    true,
			DontSupportRenameColumn:   true,
			SkipInitializeWithVersion: true,
		})
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	logLevel := gormlogger.Silent
	if s.configs.Env == config.EnvDevelopment {
		logLevel = gormlogger.Warn
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError:       true,
		DisableAutomaticPing: true,
		Logger:               gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if cfg.Driver == "sqlite" {
		sqlDB.SetMaxOpenConns(1)
	} else {
		if cfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		}
	}

	return db, nil
}

// loadDatabase opens the database and records whether it answered. The api
// keeps running without a database, DB routes answer 503 until the health
// job sees it again.
func (s *srv) loadDatabase() error {
	s.dbStatus = common.NewDBStatus()

	db, err := s.newDatabase()
	if err != nil {
		return err
	}
	s.db = db
	s.ctx = xcontext.WithDB(s.ctx, s.db)

	timeout := s.configs.Database.ConnectTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	ctx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		s.logger.Errorf("Cannot connect to the %s database: %v", s.configs.Database.Driver, err)
		s.dbStatus.SetConnected(false)
		return nil
	}

	s.logger.Infof("Connected to the %s database", s.configs.Database.Driver)
	s.dbStatus.SetConnected(true)
	return nil
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.userProfileRepo = repository.NewUserProfileRepository()
	s.userConfigRepo = repository.NewUserConfigRepository()
	s.themeRepo = repository.NewThemeRepository()
	s.gameRepo = repository.NewGameRepository()
	s.adminRepo = repository.NewAdminRepository()
}

func (s *srv) loadDomains() {
	s.healthDomain = domain.NewHealthDomain(s.dbStatus)
	s.authDomain = domain.NewAuthDomain(s.userRepo, s.userProfileRepo)
	s.userDomain = domain.NewUserDomain(s.userRepo, s.userProfileRepo, s.userConfigRepo, s.themeRepo, s.adminRepo)
	s.userProfileDomain = domain.NewUserProfileDomain(s.userRepo, s.userProfileRepo)
	s.userConfigDomain = domain.NewUserConfigDomain(s.userConfigRepo, s.themeRepo)
	s.themeDomain = domain.NewThemeDomain(s.themeRepo, s.userConfigRepo)
	s.gameDomain = domain.NewGameDomain(s.gameRepo)
	s.adminDomain = domain.NewAdminDomain(s.userRepo, s.userProfileRepo, s.userConfigRepo, s.adminRepo)
}
