package main

import (
	"errors"
	"fmt"
	"github.com/pelletier/go-toml/v2"
	"os"
	"time"
)

const (
	BoltDriver   = "bolt"
	SqliteDriver = "sqlite"
)

var ConfigError = errors.New("invalid config")

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Webhook  WebhookConfig  `toml:"webhook"`
}

type ServerConfig struct {
	Listen string `toml:"listen"`
}

type DatabaseConfig struct {
	Driver string `toml:"driver"`
	Path   string `toml:"path"`
}

type WebhookConfig struct {
	Workers        int `toml:"workers"`
	QueueSize      int `toml:"queue_size"`
	TimeoutSeconds int `toml:"timeout_seconds"`
}

func (c WebhookConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Listen: ":8080",
		},
		Database: DatabaseConfig{
			Driver: BoltDriver,
		},
		Webhook: WebhookConfig{
			Workers:        5,
			QueueSize:      20,
			TimeoutSeconds: 5,
		},
	}
}

// LoadConfig reads the TOML file at path over the defaults (an empty path skips the file),
// then applies environment overrides.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		if err = toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", path, ConfigError, err)
		}
	}

	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		config.Database.Driver = v
	}
	if v := os.Getenv("DATABASE_FILEPATH"); v != "" {
		config.Database.Path = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		config.Server.Listen = v
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case BoltDriver, SqliteDriver:
	default:
		return fmt.Errorf("database driver `%s`: %w", c.Database.Driver, ConfigError)
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database path is empty: %w", ConfigError)
	}

	if c.Webhook.Workers < 1 || c.Webhook.QueueSize < 0 {
		return fmt.Errorf("webhook workers %d, queue size %d: %w", c.Webhook.Workers, c.Webhook.QueueSize, ConfigError)
	}

	return nil
}
