// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every variable: STOREKEEP_DB_DSN, STOREKEEP_APP_PORT, ...
const EnvPrefix = "STOREKEEP"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Config is the full service configuration.
type Config struct {
	App     AppConfig
	DB      DBConfig
	HTTP    HTTPConfig
	Migrate MigrateConfig
}

// AppConfig holds process-level settings.
type AppConfig struct {
	Env      string `envconfig:"ENV" default:"development"`
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Version  string `envconfig:"VERSION" default:"dev"`
}

// IsDev reports whether the service runs in development mode.
func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

// DBConfig holds the PostgreSQL pool settings.
type DBConfig struct {
	DSN               string        `envconfig:"DSN" required:"true"`
	MaxConns          int32         `envconfig:"MAX_CONNS" default:"10"`
	MinConns          int32         `envconfig:"MIN_CONNS" default:"1"`
	MaxConnLifetime   time.Duration `envconfig:"MAX_CONN_LIFETIME" default:"1h"`
	MaxConnIdleTime   time.Duration `envconfig:"MAX_CONN_IDLE_TIME" default:"10m"`
	HealthCheckPeriod time.Duration `envconfig:"HEALTH_CHECK_PERIOD" default:"30s"`
	TxTimeout         time.Duration `envconfig:"TX_TIMEOUT" default:"30s"`
}

// HTTPConfig holds server timeouts.
type HTTPConfig struct {
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// MigrateConfig controls schema migration on server start.
type MigrateConfig struct {
	AutoRun bool `envconfig:"AUTO_RUN" default:"false"`
}

// Load reads an optional .env file, then the STOREKEEP_* environment.
// Variables already set in the environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv()
}

// FromEnv parses the environment without touching .env.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.DB.DSN) == "" {
		return fmt.Errorf("%s_DB_DSN is empty", EnvPrefix)
	}
	if c.DB.MinConns > c.DB.MaxConns {
		return fmt.Errorf("%s_DB_MIN_CONNS (%d) exceeds %s_DB_MAX_CONNS (%d)",
			EnvPrefix, c.DB.MinConns, EnvPrefix, c.DB.MaxConns)
	}
	if c.DB.TxTimeout <= 0 {
		return fmt.Errorf("%s_DB_TX_TIMEOUT must be positive", EnvPrefix)
	}
	return nil
}
