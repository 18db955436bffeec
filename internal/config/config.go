// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Environment variables that override file values
const (
	EnvDocument    = "BLOCKS_DOCUMENT"
	EnvDatabaseURL = "DATABASE_URL"
	EnvPort        = "PORT"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Document   string `json:"document,omitempty"`   // Path to the achievement markdown document
	Vocabulary string `json:"vocabulary,omitempty"` // Path to a vocabulary override JSON file

	// Limits
	TopN      int `json:"top_n,omitempty"`      // Entries in stats top lists
	MaxBlocks int `json:"max_blocks,omitempty"` // Blocks kept by selection

	// Parsing
	StopSections []string `json:"stop_sections,omitempty"` // Category prefixes that end the achievement section

	// Behavior
	Port        int    `json:"port,omitempty"`         // HTTP port for serve
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	LogJSON     bool   `json:"log_json,omitempty"`     // JSON log encoding
	Debug       bool   `json:"debug,omitempty"`        // Debug log level
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		TopN:      10,
		MaxBlocks: 10,
		Port:      8080,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
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

// ApplyEnv overrides file values with any set environment variables
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvDocument); v != "" {
		c.Document = v
	}
	if v := os.Getenv(EnvDatabaseURL); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: %s must be an integer: %w", EnvPort, err)
		}
		c.Port = port
	}
	return nil
}

// Validate checks that the configuration has valid values.
// Required fields are checked by the commands that need them.
func (c *Config) Validate() error {
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}
	if c.MaxBlocks < 0 {
		return fmt.Errorf("config error: 'max_blocks' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.Document != "" {
		if _, err := os.Stat(c.Document); os.IsNotExist(err) {
			return fmt.Errorf("config error: document file not found: %s", c.Document)
		}
	}

	if c.Vocabulary != "" {
		if _, err := os.Stat(c.Vocabulary); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.Vocabulary)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Document == "" {
		result.Document = defaults.Document
	}
	if result.Vocabulary == "" {
		result.Vocabulary = defaults.Vocabulary
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if result.MaxBlocks == 0 {
		result.MaxBlocks = defaults.MaxBlocks
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	if result.StopSections == nil {
		result.StopSections = defaults.StopSections
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
