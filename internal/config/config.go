package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Storage backends selectable via STORAGE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"memory"`
	RedisURL       string `env:"REDIS_URL"`
	DatabaseURL    string `env:"DATABASE_URL"`
	AdminName      string `env:"ADMIN_NAME" envDefault:"Capitão"`
	AdminEmail     string `env:"ADMIN_EMAIL" envDefault:"admin@leadsdocapitao.com.br"`
	AdminPassword  string `env:"ADMIN_PASSWORD" envDefault:"capitao123"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
}

func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory:
	case BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when STORAGE_BACKEND=redis")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORAGE_BACKEND=postgres")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q (expected memory, redis or postgres)", c.StorageBackend)
	}

	if c.AdminEmail == "" || c.AdminPassword == "" {
		return fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD must not be empty")
	}

	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
