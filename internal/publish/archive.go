package publish

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"

	pbrerrors "github.com/chazuruo/pbrpub/internal/errors"
)

// writeArchive creates zipPath holding a single deflated entry: the file at
// filePath stored under its base name.
func writeArchive(zipPath, filePath string, level int) error {
	src, err := os.Open(filePath)
	if err != nil {
		return &pbrerrors.FilesystemError{Op: "archive", Path: filePath, Err: err}
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return &pbrerrors.FilesystemError{Op: "archive", Path: filePath, Err: err}
	}

	out, err := os.OpenFile(zipPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return &pbrerrors.FilesystemError{Op: "archive", Path: zipPath, Err: err}
	}

	if err := writeEntry(out, src, info, level); err != nil {
		out.Close()
		return &pbrerrors.FilesystemError{Op: "archive", Path: zipPath, Err: err}
	}

	if err := out.Close(); err != nil {
		return &pbrerrors.FilesystemError{Op: "archive", Path: zipPath, Err: err}
	}

	return nil
}

func writeEntry(w io.Writer, src io.Reader, info os.FileInfo, level int) error {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, level)
	})

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = filepath.Base(info.Name())
	header.Method = zip.Deflate

	entry, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}
	if _, err := io.Copy(entry, src); err != nil {
		return err
	}

	return zw.Close()
}
