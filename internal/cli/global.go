// Package cli provides global state and utilities for CLI commands.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chazuruo/pbrpub/internal/config"
	"github.com/chazuruo/pbrpub/internal/logging"
)

// GlobalOptions holds the persistent flags shared by every command.
type GlobalOptions struct {
	ConfigPath string
	Source     string
	Dest       string
	Verbose    bool
	LogFormat  string

	// NoTUI disables interactive prompts.
	NoTUI bool
}

var globals = &GlobalOptions{}

// AddGlobalFlags adds global flags to a command.
func AddGlobalFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&globals.ConfigPath, "config", "", "config file path (default ~/.config/pbrpub/config.toml)")
	flags.StringVar(&globals.Source, "source", "", "package to publish (overrides [source].path)")
	flags.StringVar(&globals.Dest, "dest", "", "destination directory (overrides [destination].dir)")
	flags.BoolVar(&globals.Verbose, "verbose", false, "enable debug logging")
	flags.StringVar(&globals.LogFormat, "log-format", "", "log format: console or json")
	flags.BoolVar(&globals.NoTUI, "no-tui", false,
		"disable interactive mode; use flags only")
}

// Globals returns a copy of the parsed global flags.
func Globals() GlobalOptions {
	return *globals
}

// resolveConfig loads the config file (if any) and applies flag overrides.
// Precedence: flags > environment > config file > defaults.
func resolveConfig(g GlobalOptions) (*config.Config, error) {
	cfg, err := config.Resolve(g.ConfigPath)
	if err != nil {
		return nil, err
	}

	if g.Source != "" {
		cfg.Source.Path = config.ExpandHome(g.Source)
	}
	if g.Dest != "" {
		cfg.Destination.Dir = config.ExpandHome(g.Dest)
	}
	if g.Verbose {
		cfg.Log.Level = "debug"
	}
	if g.LogFormat != "" {
		cfg.Log.Format = g.LogFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	return cfg, nil
}

// withLogger attaches a logger built from cfg to ctx.
func withLogger(ctx context.Context, cfg *config.Config, stderr io.Writer) context.Context {
	logger := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Out:    stderr,
	})
	return logger.WithContext(ctx)
}
