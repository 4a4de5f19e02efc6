// Package config loads runtime configuration from the environment and
// opens the process-wide backing stores.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries every knob the service reads from its environment.
type Config struct {
	Addr        string   `env:"ADDR" envDefault:":8080"`
	Environment string   `env:"ENVIRONMENT" envDefault:"development"`
	DBPath      string   `env:"DB_PATH" envDefault:"restaurant.db"`
	RedisAddr   string   `env:"REDIS_ADDR"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	JWTSecret     string `env:"JWT_SECRET" envDefault:"change-me-in-production"`
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"classic@admin2026"`

	RazorpayKeyID     string `env:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret string `env:"RAZORPAY_KEY_SECRET"`
}

// Load parses the environment. Production refuses to run on the default
// JWT secret.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.Environment == "production" && cfg.JWTSecret == "change-me-in-production" {
		return Config{}, fmt.Errorf("JWT_SECRET must be set in production")
	}
	return cfg, nil
}
