// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	StorageDir  string `json:"storage_dir,omitempty"`  // Directory for the local state document
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL (overrides storage_dir)
	Port        int    `json:"port,omitempty"`         // Port for the HTTP server
	ChromePath  string `json:"chrome_path,omitempty"`  // Browser binary for PDF export
	SchemaPath  string `json:"schema_path,omitempty"`  // Path to the resume data JSON schema
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
}

// DefaultStorageDir returns the default location of the local state
// document: ~/.resume-builder, falling back to the working directory when
// the home directory cannot be resolved.
func DefaultStorageDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".resume-builder"
	}
	return filepath.Join(home, ".resume-builder")
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}

	if c.SchemaPath != "" {
		if _, err := os.Stat(c.SchemaPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: schema file not found: %s", c.SchemaPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.StorageDir == "" {
		result.StorageDir = defaults.StorageDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.SchemaPath == "" {
		result.SchemaPath = defaults.SchemaPath
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
