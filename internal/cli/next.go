// Package cli provides Cobra command definitions for pbrpub.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chazuruo/pbrpub/internal/version"
)

// NewNextCommand creates the next command.
func NewNextCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Print the version the next publish would use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNext(cmd.Context(), Globals(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func runNext(ctx context.Context, g GlobalOptions, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveConfig(g)
	if err != nil {
		return err
	}
	ctx = withLogger(ctx, cfg, stderr)

	fmt.Fprintln(stdout, version.Locate(ctx, cfg.Destination.Dir))
	return nil
}
