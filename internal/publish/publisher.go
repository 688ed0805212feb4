// Package publish copies a built package into a destination directory under
// the next version name and wraps the copy in a zip archive.
package publish

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/opencontainers/go-digest"
	"github.com/rs/zerolog"

	pbrerrors "github.com/chazuruo/pbrpub/internal/errors"
	"github.com/chazuruo/pbrpub/internal/version"
)

// Options configures a Publisher.
type Options struct {
	// Source is the package to publish.
	Source string

	// DestDir is scanned for earlier versions and receives the outputs.
	DestDir string

	// CompressionLevel is the deflate level used for the archive
	// (-1 for the library default, 0-9 otherwise).
	CompressionLevel int
}

// Result describes a completed publish.
type Result struct {
	Version version.Tag   `json:"version"`
	APKPath string        `json:"apk_path"`
	ZipPath string        `json:"zip_path"`
	Digest  digest.Digest `json:"digest"`
	Size    int64         `json:"size"`
}

// Publisher publishes one package per call to Publish.
type Publisher struct {
	opts Options
}

// New creates a Publisher.
func New(opts Options) *Publisher {
	return &Publisher{opts: opts}
}

// Publish copies the source package to PBRv<next>.apk in the destination
// directory and archives it as PBRv<next>.zip.
//
// If the source does not exist the destination is left untouched and a
// *errors.MissingInputError is returned. Filesystem failures are returned as
// *errors.FilesystemError; files written before the failure are kept.
func (p *Publisher) Publish(ctx context.Context) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	if err := checkSource(p.opts.Source); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	next := version.Locate(ctx, p.opts.DestDir)

	res := &Result{
		Version: next,
		APKPath: filepath.Join(p.opts.DestDir, version.PackageName(next)),
		ZipPath: filepath.Join(p.opts.DestDir, version.ArchiveName(next)),
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dgst, size, err := copyFile(p.opts.Source, res.APKPath)
	if err != nil {
		return nil, err
	}
	res.Digest = dgst
	res.Size = size
	logger.Debug().
		Str("src", p.opts.Source).
		Str("dst", res.APKPath).
		Int64("bytes", size).
		Str("digest", dgst.String()).
		Msg("copied package")

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := writeArchive(res.ZipPath, res.APKPath, p.opts.CompressionLevel); err != nil {
		return nil, err
	}
	logger.Debug().Str("archive", res.ZipPath).Msg("wrote archive")

	return res, nil
}

// checkSource verifies the source package exists as a file.
func checkSource(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &pbrerrors.MissingInputError{Path: path}
		}
		return &pbrerrors.FilesystemError{Op: "stat", Path: path, Err: err}
	}
	if info.IsDir() {
		return &pbrerrors.MissingInputError{Path: path}
	}
	return nil
}
