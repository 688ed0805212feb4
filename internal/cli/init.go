// Package cli provides Cobra command definitions for pbrpub.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/chazuruo/pbrpub/internal/config"
)

// InitOptions contains the options for the init command.
type InitOptions struct {
	Force bool
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	opts := &InitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a pbrpub configuration file",
		Long: `Write a configuration file with the package path and destination directory.

The file goes to --config, or ~/.config/pbrpub/config.toml by default.
Without --no-tui the values are asked for interactively; with --no-tui they are
taken from --source and --dest, falling back to the defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(Globals(), opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, "overwrite an existing config file")

	return cmd
}

func runInit(g GlobalOptions, opts *InitOptions, w io.Writer) error {
	configPath := g.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	if _, err := os.Stat(configPath); err == nil && !opts.Force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configPath)
	}

	cfg := config.DefaultConfig()
	if g.Source != "" {
		cfg.Source.Path = g.Source
	}
	if g.Dest != "" {
		cfg.Destination.Dir = g.Dest
	}

	if !g.NoTUI {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if err := config.Write(configPath, cfg); err != nil {
		return err
	}

	fmt.Fprintf(w, "Configuration written to: %s\n", configPath)
	fmt.Fprintf(w, "  Source:      %s\n", cfg.Source.Path)
	fmt.Fprintf(w, "  Destination: %s\n", cfg.Destination.Dir)
	return nil
}

// promptConfig asks for the source and destination, keeping cfg's values
// when the answers are left empty.
func promptConfig(cfg *config.Config) error {
	var source, dest string

	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Package path").
				Description("The built .apk to publish").
				Value(&source).Placeholder(cfg.Source.Path),
			huh.NewInput().
				Title("Destination directory").
				Description("Where PBRv<version>.apk and .zip are written").
				Value(&dest).Placeholder(cfg.Destination.Dir),
		),
	).Run(); err != nil {
		return fmt.Errorf("form error: %w", err)
	}

	if source != "" {
		cfg.Source.Path = source
	}
	if dest != "" {
		cfg.Destination.Dir = dest
	}
	return nil
}
