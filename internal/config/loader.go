// Package config provides configuration management for pbrpub.
//
// This file contains config loading functionality including:
// - XDG config path detection
// - TOML file parsing
// - Environment variable overrides
// - Validation
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	pbrerrors "github.com/chazuruo/pbrpub/internal/errors"
)

// DefaultConfigPath returns ~/.config/pbrpub/config.toml.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "pbrpub", "config.toml")
}

// DetectConfigPath searches for a config file using XDG standard paths.
// Returns the first config file found, or empty string if none exists.
//
// Search order:
// 1. $XDG_CONFIG_HOME/pbrpub/config.toml
// 2. ~/.config/pbrpub/config.toml
func DetectConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configPath := filepath.Join(xdg, "pbrpub", "config.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
	}

	if _, err := os.UserHomeDir(); err != nil {
		return ""
	}

	configPath := DefaultConfigPath()
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}

	return ""
}

// Load loads a config from the specified path.
// If the file doesn't exist, returns an error.
// After loading, applies environment variable overrides and validates.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &pbrerrors.ConfigError{Path: path, Err: fmt.Errorf("config file not found")}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &pbrerrors.ConfigError{Path: path, Err: fmt.Errorf("failed to read config file: %w", err)}
	}

	// Start with defaults
	cfg := DefaultConfig()

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, &pbrerrors.ConfigError{Path: path, Err: fmt.Errorf("failed to parse config file: %w", err)}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, &pbrerrors.ConfigError{Path: path, Err: err}
	}
	expandPaths(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, &pbrerrors.ConfigError{Path: path, Err: fmt.Errorf("config validation failed: %w", err)}
	}

	return cfg, nil
}

// LoadWithDefaults attempts to load a config from XDG standard paths.
// If no config file is found, returns a config with all default values
// plus environment overrides.
func LoadWithDefaults() (*Config, error) {
	configPath := DetectConfigPath()
	if configPath == "" {
		cfg := DefaultConfig()
		if err := applyEnvOverrides(cfg); err != nil {
			return nil, &pbrerrors.ConfigError{Err: err}
		}
		expandPaths(cfg)

		if err := cfg.Validate(); err != nil {
			return nil, &pbrerrors.ConfigError{Err: fmt.Errorf("config validation failed: %w", err)}
		}
		return cfg, nil
	}

	return Load(configPath)
}

// Resolve loads the config at path, or the detected/default config when
// path is empty.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	return LoadWithDefaults()
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables follow the pattern: PBRPUB_<SECTION>_<FIELD>
//
// Examples:
// - PBRPUB_SOURCE_PATH overrides [source].path
// - PBRPUB_DESTINATION_DIR overrides [destination].dir
// - PBRPUB_ARCHIVE_LEVEL overrides [archive].level
func applyEnvOverrides(c *Config) error {
	applyString := func(key string, target *string) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			*target = val
		}
	}

	applyInt := func(key string, target *int) error {
		val, ok := os.LookupEnv(key)
		if !ok || val == "" {
			return nil
		}
		i, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return fmt.Errorf("%s: %q is not an integer: %w", key, val, pbrerrors.ErrInvalid)
		}
		*target = i
		return nil
	}

	applyString("PBRPUB_SOURCE_PATH", &c.Source.Path)
	applyString("PBRPUB_DESTINATION_DIR", &c.Destination.Dir)
	applyString("PBRPUB_LOG_LEVEL", &c.Log.Level)
	applyString("PBRPUB_LOG_FORMAT", &c.Log.Format)
	return applyInt("PBRPUB_ARCHIVE_LEVEL", &c.Archive.Level)
}

// expandPaths expands a leading ~ in the source and destination paths.
func expandPaths(c *Config) {
	c.Source.Path = ExpandHome(c.Source.Path)
	c.Destination.Dir = ExpandHome(c.Destination.Dir)
}

// ExpandHome expands ~ to the home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") && path != "~" {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}
