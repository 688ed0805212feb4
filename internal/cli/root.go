// Package cli provides Cobra command definitions for pbrpub.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the pbrpub root command. Invoked without a
// subcommand it publishes.
func NewRootCommand(build BuildInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pbrpub",
		Short: "Publish a built APK as the next PBRv<version>.apk and .zip",
		Long: `pbrpub copies a locally built package into a downloads directory under the
next PBRv<major>.<minor>.apk name and archives the copy as PBRv<major>.<minor>.zip.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", build.Version, build.Commit, build.Date),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd.Context(), Globals(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	AddGlobalFlags(rootCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(NewPublishCommand())
	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewNextCommand())
	rootCmd.AddCommand(NewInitCommand())
	rootCmd.AddCommand(NewVersionCommand(build))

	return rootCmd
}
