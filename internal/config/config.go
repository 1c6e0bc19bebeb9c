// Package config loads runtime configuration from environment variables,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the eventscout binaries.
type Config struct {
	// Scraping
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	MaxRetries     int           `env:"MAX_RETRIES" envDefault:"3"`
	UserAgent      string        `env:"USER_AGENT" envDefault:"Mozilla/5.0 (compatible; eventscout/1.0)"`

	// Cache
	CacheExpiry time.Duration `env:"CACHE_EXPIRY" envDefault:"6h"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"INFO"`

	// Text generation backend for the writer agents
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// HTTP API
	APIBindAddr string `env:"API_BIND_ADDR" envDefault:"0.0.0.0:8080"`

	// Watch mode
	WatchCron string `env:"WATCH_CRON" envDefault:"@every 6h"`
}

// Load reads a .env file when present and parses the environment into a
// Config. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.MaxRetries < 1 {
		return nil, fmt.Errorf("MAX_RETRIES must be at least 1, got %d", cfg.MaxRetries)
	}
	if cfg.CacheExpiry <= 0 {
		return nil, fmt.Errorf("CACHE_EXPIRY must be positive, got %s", cfg.CacheExpiry)
	}

	return cfg, nil
}
