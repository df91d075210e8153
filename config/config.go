package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Fallback credentials exist only so that ENV=local works out of the box.
// Load refuses to start any other environment with them still in place.
const (
	DefaultAdminPassword = "password"
	DefaultJWTSecret     = "insecure-local-dev-secret-change-me!!"
)

type Config struct {
	Env      string `env:"ENV" envDefault:"local" validate:"required,oneof=local staging production"`
	Port     string `env:"PORT" envDefault:"8080" validate:"required"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	DatabaseURL string `env:"DATABASE_URL,required" validate:"required"`

	MetricsPort string `env:"METRICS_PORT" envDefault:"9090"`

	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@example.com" validate:"required,email"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"password" validate:"required"`

	JWTSecret          string `env:"JWT_SECRET" envDefault:"insecure-local-dev-secret-change-me!!" validate:"required"`
	JWTAlgorithm       string `env:"JWT_ALGORITHM" envDefault:"HS256" validate:"required,oneof=HS256 HS384 HS512"`
	TokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"30" validate:"min=1,max=1440"`

	ResendAPIKey string `env:"RESEND_API_KEY" validate:"required_if=Env production,required_if=Env staging"`
	ResendFrom   string `env:"RESEND_FROM"    validate:"required_if=Env production,required_if=Env staging"`
	NotifyEmail  string `env:"NOTIFY_EMAIL"   envDefault:"admin@example.com" validate:"required,email"`
	SummaryCron  string `env:"SUMMARY_CRON"   envDefault:"0 8 * * *" validate:"required"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Env != "local" {
		if cfg.AdminPassword == DefaultAdminPassword {
			return nil, fmt.Errorf("ADMIN_PASSWORD must be set explicitly when ENV=%s", cfg.Env)
		}
		if cfg.JWTSecret == DefaultJWTSecret {
			return nil, fmt.Errorf("JWT_SECRET must be set explicitly when ENV=%s", cfg.Env)
		}
		if len(cfg.JWTSecret) < 32 {
			return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters when ENV=%s", cfg.Env)
		}
	}

	return cfg, nil
}

func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
