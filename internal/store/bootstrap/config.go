package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Lexv0lk/merch-ledger/internal/pkg/database"
	"github.com/Lexv0lk/merch-ledger/internal/pkg/env"
	"github.com/Lexv0lk/merch-ledger/internal/pkg/logging"
	"github.com/Lexv0lk/merch-ledger/internal/store/domain"
	"gopkg.in/yaml.v2"
)

type StoreConfig struct {
	HttpPort        string                    `yaml:"http_port"`
	DbSettings      database.PostgresSettings `yaml:"db"`
	JwtSecret       string                    `yaml:"jwt_secret"`
	TokenTTLMinutes int                       `yaml:"token_ttl_minutes"`
	StartBalance    int                       `yaml:"start_balance"`
	TxMaxRetries    int                       `yaml:"tx_max_retries"`
	LogFormat       string                    `yaml:"log_format"`
}

func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		HttpPort: ":8080",
		DbSettings: database.PostgresSettings{
			User:   "postgres",
			Host:   "localhost",
			Port:   "5432",
			DBName: "shop",
		},
		TokenTTLMinutes: 60,
		StartBalance:    domain.StartBalance,
		TxMaxRetries:    database.DefaultMaxRetries,
		LogFormat:       logging.FormatText,
	}
}

// LoadStoreConfig layers the optional YAML file and then the environment over the defaults.
func LoadStoreConfig(configPath string) (StoreConfig, error) {
	cfg := DefaultStoreConfig()

	if configPath != "" {
		raw, err := os.ReadFile(configPath)
		if err != nil {
			return StoreConfig{}, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return StoreConfig{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return StoreConfig{}, err
	}

	if err := cfg.Validate(); err != nil {
		return StoreConfig{}, err
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *StoreConfig) error {
	env.TrySetFromEnv(env.EnvHttpPort, &cfg.HttpPort)
	env.TrySetFromEnv(env.EnvDatabaseHost, &cfg.DbSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &cfg.DbSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &cfg.DbSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &cfg.DbSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &cfg.DbSettings.DBName)
	env.TrySetFromEnv(env.EnvJwtSecret, &cfg.JwtSecret)
	env.TrySetFromEnv(env.EnvLogFormat, &cfg.LogFormat)

	if err := env.TrySetBoolFromEnv(env.EnvDatabaseSSL, &cfg.DbSettings.SSlEnabled); err != nil {
		return err
	}

	if err := env.TrySetIntFromEnv(env.EnvStartBalance, &cfg.StartBalance); err != nil {
		return err
	}

	return env.TrySetIntFromEnv(env.EnvTxMaxRetries, &cfg.TxMaxRetries)
}

func (c StoreConfig) Validate() error {
	var errs []error

	if c.JwtSecret == "" {
		errs = append(errs, errors.New("jwt secret must be set"))
	}

	if c.StartBalance < 0 || c.StartBalance > domain.MaxBalance {
		errs = append(errs, fmt.Errorf("start balance must be within [0, %d]", domain.MaxBalance))
	}

	if c.TxMaxRetries < 0 {
		errs = append(errs, errors.New("tx max retries must not be negative"))
	}

	if c.TokenTTLMinutes <= 0 {
		errs = append(errs, errors.New("token ttl must be positive"))
	}

	if c.LogFormat != logging.FormatText && c.LogFormat != logging.FormatJSON {
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

func (c StoreConfig) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}
