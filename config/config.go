// Package config loads the application configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application. GeminiAPIKey may be
// empty: generation features then degrade silently instead of failing start.
type Config struct {
	ServerHost string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	ServerPort string `env:"SERVER_PORT" envDefault:"8080"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiAPIURL string `env:"GEMINI_API_URL" envDefault:"https://generativelanguage.googleapis.com"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	JWTSecret  string        `env:"JWT_SECRET"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"12h"`

	// RedisAddr is optional; when empty, sessions and the recent-search
	// cache fall back to in-process storage.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// StoreLatency is the simulated latency of the mock sheet store.
	StoreLatency time.Duration `env:"STORE_LATENCY" envDefault:"300ms"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:5173" envSeparator:","`
}

// Load parses and validates the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the fields no sane default exists for.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.StoreLatency < 0 {
		return errors.New("STORE_LATENCY must not be negative")
	}
	return nil
}
