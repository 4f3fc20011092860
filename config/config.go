package config

import (
	"fmt"
	"time"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Configs struct {
	Env string `toml:"env"`

	Database  DatabaseConfigs  `toml:"database"`
	ApiServer APIServerConfigs `toml:"api_server"`
	Auth      AuthConfigs      `toml:"auth"`
	Game      GameConfigs      `toml:"game"`
	Monitor   MonitorConfigs   `toml:"monitor"`
	Log       LogConfigs       `toml:"log"`
}

type DatabaseConfigs struct {
	// Driver is one of postgres, mysql or sqlite.
	Driver         string        `toml:"driver"`
	Host           string        `toml:"host"`
	Port           string        `toml:"port"`
	Database       string        `toml:"database"`
	User           string        `toml:"user"`
	Password       string        `toml:"password"`
	SSLMode        string        `toml:"sslmode"`
	ConnectTimeout time.Duration `toml:"connect_timeout"`
	MaxOpenConns   int           `toml:"max_open_conns"`
	MaxIdleConns   int           `toml:"max_idle_conns"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	timeout := int(d.ConnectTimeout.Seconds())
	if timeout <= 0 {
		timeout = 5
	}

	switch d.Driver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds",
			d.User,
			d.Password,
			d.Host,
			d.Port,
			d.Database,
			timeout,
		)
	case "sqlite":
		return d.Database
	default:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s connect_timeout=%d",
			d.Host,
			d.Port,
			d.User,
			d.Password,
			d.Database,
			d.SSLMode,
			timeout,
		)
	}
}

type APIServerConfigs struct {
	Host           string   `toml:"host"`
	Port           string   `toml:"port"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

func (s APIServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type AuthConfigs struct {
	TokenSecret string       `toml:"token_secret"`
	AccessToken TokenConfigs `toml:"access_token"`
	BcryptCost  int          `toml:"bcrypt_cost"`
}

type TokenConfigs struct {
	Name       string        `toml:"name"`
	Expiration time.Duration `toml:"expiration"`
}

type GameConfigs struct {
	RecentThresholdDays int `toml:"recent_threshold_days"`
	DefaultLimit        int `toml:"default_limit"`
	MaxLimit            int `toml:"max_limit"`
}

type MonitorConfigs struct {
	DBCheckInterval        time.Duration `toml:"db_check_interval"`
	FreshnessCheckInterval time.Duration `toml:"freshness_check_interval"`
}

type LogConfigs struct {
	Level string `toml:"level"`
}
