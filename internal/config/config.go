// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds all runtime parameters. In development a .env file in the
// working directory is loaded before parsing.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	ServerPort  string `env:"SERVER_PORT" envDefault:"8080"`

	// Identity provider settings for bearer token verification.
	AuthJWKSURL  string `env:"AUTH_JWKS_URL"`
	AuthIssuer   string `env:"AUTH_ISSUER"`
	AuthAudience string `env:"AUTH_AUDIENCE"`

	// AuthDisabled tolerates requests without a bearer token. Test and local
	// development use only.
	AuthDisabled bool `env:"AUTH_DISABLED"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the environment (and optional .env file) into a Config.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if !cfg.AuthDisabled {
		if cfg.AuthJWKSURL == "" || cfg.AuthIssuer == "" || cfg.AuthAudience == "" {
			return nil, fmt.Errorf("AUTH_JWKS_URL, AUTH_ISSUER and AUTH_AUDIENCE are required unless AUTH_DISABLED=true")
		}
	}

	return &cfg, nil
}
