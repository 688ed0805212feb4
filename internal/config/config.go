// Package config provides configuration management for pbrpub.
//
// The configuration is stored in TOML format and supports validation
// and default values for all fields.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	pbrerrors "github.com/chazuruo/pbrpub/internal/errors"
)

// DefaultSourcePath is the Gradle release output, relative to the project root.
const DefaultSourcePath = "app/build/outputs/apk/release/app-release.apk"

// Config is the top-level configuration struct for pbrpub.
type Config struct {
	Source      SourceConfig      `toml:"source"`
	Destination DestinationConfig `toml:"destination"`
	Archive     ArchiveConfig     `toml:"archive"`
	Log         LogConfig         `toml:"log"`
}

// SourceConfig locates the package to publish.
type SourceConfig struct {
	// Path is the built package file. Relative paths resolve against the
	// working directory.
	Path string `toml:"path"`
}

// DestinationConfig contains settings for where packages are published.
type DestinationConfig struct {
	// Dir is scanned for earlier versions and receives the new files
	// (default: ~/Downloads).
	Dir string `toml:"dir"`
}

// ArchiveConfig contains zip archive settings.
type ArchiveConfig struct {
	// Level is the deflate compression level.
	// Valid values: -1 (library default) through 9.
	Level int `toml:"level"`
}

// LogConfig contains diagnostic logging settings.
type LogConfig struct {
	// Level is the minimum level logged.
	// Valid values: "debug", "info", "warn", "error".
	Level string `toml:"level"`

	// Format selects the log encoding.
	// Valid values: "console", "json".
	Format string `toml:"format"`
}

// DefaultConfig returns a Config with all default values set.
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Source: SourceConfig{
			Path: DefaultSourcePath,
		},
		Destination: DestinationConfig{
			Dir: filepath.Join(homeDir, "Downloads"),
		},
		Archive: ArchiveConfig{
			Level: 6,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks the configuration for valid values.
// Returns a nil error if the config is valid, or an error wrapping
// errors.ErrInvalid that describes the problem.
func (c *Config) Validate() error {
	if c.Source.Path == "" {
		return fmt.Errorf("%w: source.path cannot be empty", pbrerrors.ErrInvalid)
	}
	if c.Destination.Dir == "" {
		return fmt.Errorf("%w: destination.dir cannot be empty", pbrerrors.ErrInvalid)
	}

	if c.Archive.Level < -1 || c.Archive.Level > 9 {
		return fmt.Errorf("%w: archive.level must be between -1 and 9; got %d", pbrerrors.ErrInvalid, c.Archive.Level)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("%w: log.level must be one of: debug, info, warn, error; got %q", pbrerrors.ErrInvalid, c.Log.Level)
	}
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[c.Log.Format] {
		return fmt.Errorf("%w: log.format must be one of: console, json; got %q", pbrerrors.ErrInvalid, c.Log.Format)
	}

	return nil
}
