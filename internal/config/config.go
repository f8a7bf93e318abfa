package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds all configuration for the application.
type Config struct {
	TokensURL      string        `env:"TOKENS_URL" envDefault:"https://raw.githubusercontent.com/kadena-community/design-system/main/builds/tokens/kda-design-system.raw.svg.tokens.json"`
	TokensRootPath string        `env:"TOKENS_ROOT_PATH" envDefault:"kda.foundation.icon"`
	FetchTimeout   time.Duration `env:"FETCH_TIMEOUT" envDefault:"15s"`
	DBPath         string        `env:"DB_PATH" envDefault:"./data/icongallery.db"`
	SnapshotRetain int           `env:"SNAPSHOT_RETAIN" envDefault:"5"`
	APIPort        string        `env:"API_PORT" envDefault:"9000"`
	LogLevel       slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the result.
// If a .env file exists in the current directory or a parent, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Create the data directory for the SQLite file
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// loadDotEnv loads the nearest .env file, walking up at most five directories.
func loadDotEnv() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	dir := wd
	for i := 0; i < 5; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return // Reached filesystem root
		}
		dir = parent
	}
}

func (c *Config) validate() error {
	u, err := url.Parse(c.TokensURL)
	if err != nil {
		return fmt.Errorf("TOKENS_URL is invalid: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("TOKENS_URL must be an absolute URL, got %q", c.TokensURL)
	}
	if c.TokensRootPath == "" {
		return fmt.Errorf("TOKENS_ROOT_PATH is required")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be greater than 0")
	}
	if c.SnapshotRetain <= 0 {
		return fmt.Errorf("SNAPSHOT_RETAIN must be greater than 0")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH is required")
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("LOG_FORMAT must be %q or %q, got %q", LogFormatText, LogFormatJSON, c.LogFormat)
	}
	return nil
}
