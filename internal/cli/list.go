// Package cli provides Cobra command definitions for pbrpub.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/chazuruo/pbrpub/internal/version"
)

// OutputFormat defines the output format for the list command.
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
	FormatPlain OutputFormat = "plain"
)

// ListOptions contains the options for the list command.
type ListOptions struct {
	Format string
}

// Listing is the list command's structured output.
type Listing struct {
	Dir      string         `json:"dir" yaml:"dir"`
	Next     version.Tag    `json:"next" yaml:"next"`
	Versions []ListingEntry `json:"versions" yaml:"versions"`
}

// ListingEntry is one published version.
type ListingEntry struct {
	Version  version.Tag `json:"version" yaml:"version"`
	Package  string      `json:"package" yaml:"package"`
	Archive  string      `json:"archive,omitempty" yaml:"archive,omitempty"`
	Size     int64       `json:"size" yaml:"size"`
	Modified time.Time   `json:"modified" yaml:"modified"`
}

var headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// NewListCommand creates the list command for listing published versions.
func NewListCommand() *cobra.Command {
	opts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List published versions in the destination directory",
		Long: `List every PBRv<major>.<minor>.apk in the destination directory, oldest first,
followed by the version the next publish would use.

Examples:
  pbrpub list                  # table
  pbrpub list --format json    # JSON
  pbrpub list --format plain   # one version per line`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(Globals(), opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "table", "output format (table, json, yaml, plain)")

	return cmd
}

func runList(g GlobalOptions, opts *ListOptions, w io.Writer) error {
	format := OutputFormat(opts.Format)
	switch format {
	case FormatTable, FormatJSON, FormatYAML, FormatPlain:
	default:
		return fmt.Errorf("invalid format: %s (must be table, json, yaml, or plain)", opts.Format)
	}

	cfg, err := resolveConfig(g)
	if err != nil {
		return err
	}

	cands, err := version.Scan(cfg.Destination.Dir)
	if err != nil {
		return err
	}

	listing := buildListing(cfg.Destination.Dir, cands)

	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(listing)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(listing); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return encoder.Close()
	case FormatPlain:
		for _, e := range listing.Versions {
			fmt.Fprintln(w, e.Version)
		}
		return nil
	default:
		printTable(w, listing)
		return nil
	}
}

// buildListing pairs each package with its archive when one exists.
func buildListing(dir string, cands []version.Candidate) Listing {
	listing := Listing{
		Dir:      dir,
		Next:     version.NextFrom(cands),
		Versions: make([]ListingEntry, 0, len(cands)),
	}

	for _, c := range cands {
		entry := ListingEntry{
			Version:  c.Tag,
			Package:  c.Name,
			Size:     c.Size,
			Modified: c.ModTime,
		}
		archive := version.ArchiveName(c.Tag)
		if _, err := os.Stat(filepath.Join(dir, archive)); err == nil {
			entry.Archive = archive
		}
		listing.Versions = append(listing.Versions, entry)
	}

	return listing
}

// printTable prints the listing in table format.
func printTable(w io.Writer, listing Listing) {
	if len(listing.Versions) == 0 {
		fmt.Fprintf(w, "No published versions in %s.\n", listing.Dir)
		fmt.Fprintf(w, "Next version: %s\n", listing.Next)
		return
	}

	tbl := table.New("VERSION", "PACKAGE", "ARCHIVE", "SIZE", "MODIFIED").
		WithWriter(w).
		WithHeaderFormatter(func(format string, vals ...interface{}) string {
			return headerStyle.Render(fmt.Sprintf(format, vals...))
		})

	for _, e := range listing.Versions {
		archive := e.Archive
		if archive == "" {
			archive = "-"
		}
		tbl.AddRow(e.Version, e.Package, archive, humanize.Bytes(uint64(e.Size)), humanize.Time(e.Modified))
	}
	tbl.Print()

	fmt.Fprintf(w, "\nTotal: %d version(s)\n", len(listing.Versions))
	fmt.Fprintf(w, "Next version: %s\n", listing.Next)
}
