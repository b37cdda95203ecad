// Package config provides configuration loading for the letter generator.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds process configuration. Values can come from a JSON file,
// environment variables, or CLI flags; flags win over file, file over env.
type Config struct {
	// Record store connection
	OdooURL      string `json:"odoo_url,omitempty"`
	OdooDB       string `json:"odoo_db,omitempty"`
	OdooUsername string `json:"odoo_username,omitempty"`
	OdooPassword string `json:"odoo_password,omitempty"`

	// Template storage
	TemplateDir string `json:"template_dir,omitempty"`

	// Optional generation history
	DatabaseURL string `json:"database_url,omitempty"`

	// HTTP server
	Port int `json:"port,omitempty"`
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

// FromEnv builds a config from environment variables, typically populated
// by a .env file loaded at startup.
func FromEnv() *Config {
	cfg := &Config{
		OdooURL:      os.Getenv("ODOO_URL"),
		OdooDB:       os.Getenv("ODOO_DB"),
		OdooUsername: os.Getenv("ODOO_USERNAME"),
		OdooPassword: os.Getenv("ODOO_PASSWORD"),
		TemplateDir:  os.Getenv("TEMPLATE_DIR"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
	}
	if port := os.Getenv("PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			cfg.Port = n
		}
	}
	return cfg
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c
	if result.OdooURL == "" {
		result.OdooURL = defaults.OdooURL
	}
	if result.OdooDB == "" {
		result.OdooDB = defaults.OdooDB
	}
	if result.OdooUsername == "" {
		result.OdooUsername = defaults.OdooUsername
	}
	if result.OdooPassword == "" {
		result.OdooPassword = defaults.OdooPassword
	}
	if result.TemplateDir == "" {
		result.TemplateDir = defaults.TemplateDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	return result
}

// Validate checks that the configuration can drive a store-backed
// generation run.
func (c *Config) Validate() error {
	if c.OdooURL == "" {
		return fmt.Errorf("config error: 'odoo_url' is required")
	}
	if c.OdooDB == "" {
		return fmt.Errorf("config error: 'odoo_db' is required")
	}
	if c.OdooUsername == "" || c.OdooPassword == "" {
		return fmt.Errorf("config error: record store credentials are required")
	}
	if c.TemplateDir != "" {
		if _, err := os.Stat(c.TemplateDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: template directory not found: %s", c.TemplateDir)
		}
	}
	return nil
}
