// Package cli provides Cobra command definitions for pbrpub.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/chazuruo/pbrpub/internal/publish"
)

// NewPublishCommand creates the publish command.
func NewPublishCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "publish",
		Short: "Publish the package under the next version",
		Long: `Copy the built package into the destination directory as PBRv<major>.<minor>.apk
and archive it as PBRv<major>.<minor>.zip.

The next version is the highest PBRv<major>.<minor>.apk already in the destination
with its minor number increased by one, or 0.1 when there is none.

Running pbrpub with no subcommand does the same thing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd.Context(), Globals(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func runPublish(ctx context.Context, g GlobalOptions, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveConfig(g)
	if err != nil {
		return err
	}

	ctx = withLogger(ctx, cfg, stderr)
	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("source", cfg.Source.Path).
		Str("dest", cfg.Destination.Dir).
		Int("level", cfg.Archive.Level).
		Msg("publishing")

	p := publish.New(publish.Options{
		Source:           cfg.Source.Path,
		DestDir:          cfg.Destination.Dir,
		CompressionLevel: cfg.Archive.Level,
	})

	res, err := p.Publish(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Wrote %s\n", res.APKPath)
	fmt.Fprintf(stdout, "Wrote %s\n", res.ZipPath)

	logger.Info().
		Stringer("version", res.Version).
		Int64("bytes", res.Size).
		Str("digest", res.Digest.String()).
		Msg("published")

	return nil
}
