// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"power-cost/internal/errors"
	"power-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Catalog contains catalog configuration
	Catalog CatalogConfig `json:"catalog"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Hydration contains record repair configuration
	Hydration HydrationConfig `json:"hydration"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// CatalogConfig contains catalog-related settings
type CatalogConfig struct {
	// Path is the catalog file (.yaml, .yml, .json or .hcl)
	Path string `json:"path" env:"POWERCOST_CATALOG"`

	// Strict rejects catalogs that fail validation
	Strict bool `json:"strict" env:"POWERCOST_CATALOG_STRICT"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format" env:"POWERCOST_FORMAT"`

	// ShowDetails shows detailed cost breakdown
	ShowDetails bool `json:"show_details" env:"POWERCOST_SHOW_DETAILS"`
}

// HydrationConfig contains record repair settings
type HydrationConfig struct {
	// DefaultOptions maps modifier ids to the configuration option
	// backfilled when a single-choice selection is missing
	DefaultOptions map[string]string `json:"default_options,omitempty" env:"POWERCOST_DEFAULT_OPTIONS"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	catalogPath := filepath.Join(homeDir, ".powercost", "catalog.yaml")

	return &Config{
		Version: "1.0",
		Catalog: CatalogConfig{
			Path:   catalogPath,
			Strict: true,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
		},
		Hydration: HydrationConfig{
			DefaultOptions: map[string]string{},
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file, then applies environment overrides.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, errors.Config("read config "+path, err)
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return nil, errors.Config("parse config "+path, err)
		}
	}

	if err := config.ApplyEnv(); err != nil {
		return nil, err
	}
	return config, nil
}

// ApplyEnv overrides fields from POWERCOST_* environment variables
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return errors.Config("parse env", err)
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
