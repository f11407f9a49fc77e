package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// ClientConfig holds configuration for the resconv terminal client.
type ClientConfig struct {
	ServerURL  string        `env:"RESCONV_SERVER" envDefault:"http://localhost:8080"`
	Timeout    time.Duration `env:"RESCONV_TIMEOUT" envDefault:"30s"`
	ConfigDir  string        `env:"RESCONV_CONFIG_DIR"`
	UseKeyring bool          `env:"RESCONV_USE_KEYRING" envDefault:"false"`
	// SessionDir keeps view snapshots on disk so they survive a restart.
	// Empty keeps them in memory.
	SessionDir string        `env:"RESCONV_SESSION_DIR"`
	Debounce   time.Duration `env:"RESCONV_DEBOUNCE" envDefault:"500ms"`
	PageSize   int           `env:"RESCONV_PAGE_SIZE" envDefault:"50"`
	LogLevel   string        `env:"RESCONV_LOG_LEVEL" envDefault:"warn"`
}

// LoadClient loads the client configuration from environment variables.
func LoadClient() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.ConfigDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = os.Getenv("HOME")
		}
		cfg.ConfigDir = filepath.Join(base, "resconv")
	}

	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("RESCONV_SERVER is required")
	}
	if cfg.PageSize < 1 {
		return nil, fmt.Errorf("RESCONV_PAGE_SIZE must be at least 1")
	}
	if cfg.Debounce < 0 {
		return nil, fmt.Errorf("RESCONV_DEBOUNCE must not be negative")
	}

	return cfg, nil
}
