// Package config loads application configuration from an optional YAML
// file with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all inkwell configuration.
type Config struct {
	// ListenAddr is the HTTP listen address, e.g. ":8080".
	ListenAddr string `yaml:"listen_addr"`

	// DBPath is the Badger data directory.
	DBPath string `yaml:"db_path"`

	// PageSize is the default post listing page size.
	PageSize int `yaml:"page_size"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ListenAddr: ":8080",
		DBPath:     "data/badger",
		PageSize:   9,
		Logging:    LoggingConfig{Level: "info"},
	}
}

// Load reads configuration from path (skipped when empty or missing),
// then applies environment overrides on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env overrides
		case err != nil:
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	cfg.applyEnv()

	if cfg.PageSize < 1 {
		cfg.PageSize = Default().PageSize
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.ListenAddr = getenv("INKWELL_LISTEN_ADDR", c.ListenAddr)
	c.DBPath = getenv("INKWELL_DB_PATH", c.DBPath)
	c.PageSize = getenvi("INKWELL_PAGE_SIZE", c.PageSize)
	c.Logging.Level = getenv("INKWELL_LOG_LEVEL", c.Logging.Level)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvi(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			return iv
		}
	}
	return def
}
