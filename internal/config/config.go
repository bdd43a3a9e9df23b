// Package config loads and persists the apiref configuration.
// Configuration lives at .apiref/config.json under the workspace root; a
// missing file means defaults, never an error.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"apiref/internal/publicapi"
)

// Config represents the complete apiref configuration
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	Crates  CratesConfig      `json:"crates" mapstructure:"crates"`
	Report  ReportConfig      `json:"report" mapstructure:"report"`
	Noise   publicapi.RuleSet `json:"noise" mapstructure:"noise"`
	Cache   CacheConfig       `json:"cache" mapstructure:"cache"`
	Logging LoggingConfig     `json:"logging" mapstructure:"logging"`
}

// CrateConfig identifies one of the two compared crates
type CrateConfig struct {
	// Name is the crate name as it appears in Cargo.toml, e.g. oxidros-zenoh
	Name string `json:"name" mapstructure:"name"`

	// Label is the display name used in report sections, e.g. Zenoh
	Label string `json:"label" mapstructure:"label"`

	// Features is the cargo feature list passed to the extraction
	Features string `json:"features,omitempty" mapstructure:"features"`
}

// CratesConfig contains the crate pair and the shared placeholder token
type CratesConfig struct {
	A CrateConfig `json:"a" mapstructure:"a"`
	B CrateConfig `json:"b" mapstructure:"b"`

	// Placeholder is the token substituted for either crate name during
	// path normalization
	Placeholder string `json:"placeholder" mapstructure:"placeholder"`
}

// ReportConfig contains report output settings
type ReportConfig struct {
	Title  string `json:"title" mapstructure:"title"`
	Output string `json:"output" mapstructure:"output"`
}

// CacheConfig contains listing cache settings
type CacheConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration, targeting the oxidros
// workspace layout
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Crates: CratesConfig{
			A: CrateConfig{
				Name:  "oxidros-zenoh",
				Label: "Zenoh",
			},
			B: CrateConfig{
				Name:     "oxidros-rcl",
				Label:    "RCL",
				Features: "jazzy",
			},
			Placeholder: "oxidros",
		},
		Report: ReportConfig{
			Title:  "Oxidros API Reference",
			Output: "docs/API_REFERENCE.md",
		},
		Cache: CacheConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from .apiref/config.json
func LoadConfig(workspaceRoot string) (*Config, error) {
	v := viper.New()

	v.SetDefault("version", 1)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(workspaceRoot, ".apiref"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to .apiref/config.json
func (c *Config) Save(workspaceRoot string) error {
	dir := filepath.Join(workspaceRoot, ".apiref")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Crates.A.Name == "" || c.Crates.B.Name == "" {
		return fmt.Errorf("both crate names must be set")
	}
	if c.Crates.A.Name == c.Crates.B.Name {
		return fmt.Errorf("crates a and b must differ")
	}
	if c.Crates.Placeholder == "" {
		return fmt.Errorf("placeholder token must be set")
	}
	if c.Report.Output == "" {
		return fmt.Errorf("report output path must be set")
	}
	return nil
}
