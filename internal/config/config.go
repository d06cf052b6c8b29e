// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"lifecast/internal/engine"
)

// Config is the CLI configuration loadable from a JSON file. All fields
// are optional; missing values use defaults or CLI flags, and secrets fall
// back to the environment.
type Config struct {
	// Collaborators
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	Model       string `json:"model,omitempty"`        // Gemini model name

	// Simulation
	Years     int   `json:"years,omitempty"`      // Horizon in years (default 10)
	StartYear int   `json:"start_year,omitempty"` // First simulated year (default: current year)
	Seed      int64 `json:"seed,omitempty"`       // Random seed; 0 means time-seeded

	// Logging
	LogLevel  string `json:"log_level,omitempty"`  // debug, info, warn, error
	LogFormat string `json:"log_format,omitempty"` // json or console
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills secrets left empty by the file or flags from the environment.
func (c *Config) FromEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Years < 0 {
		return fmt.Errorf("config error: 'years' must be non-negative")
	}
	if c.StartYear < 0 {
		return fmt.Errorf("config error: 'start_year' must be non-negative")
	}
	switch c.LogFormat {
	case "", "json", "console":
	default:
		return fmt.Errorf("config error: 'log_format' must be json or console")
	}
	return nil
}

// HorizonOrDefault returns the configured horizon, defaulting to the
// engine's standard ten years.
func (c *Config) HorizonOrDefault() int {
	if c.Years > 0 {
		return c.Years
	}
	return engine.DefaultHorizon
}
