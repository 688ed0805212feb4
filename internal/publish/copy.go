package publish

import (
	"io"
	"os"

	"github.com/opencontainers/go-digest"

	pbrerrors "github.com/chazuruo/pbrpub/internal/errors"
)

// copyFile copies src to dst, creating or truncating dst, and returns the
// sha256 digest and size of the copied bytes.
func copyFile(src, dst string) (digest.Digest, int64, error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return "", 0, &pbrerrors.FilesystemError{Op: "open", Path: src, Err: err}
	}
	defer srcFile.Close()

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return "", 0, &pbrerrors.FilesystemError{Op: "create", Path: dst, Err: err}
	}

	digester := digest.Canonical.Digester()
	n, err := io.Copy(io.MultiWriter(dstFile, digester.Hash()), srcFile)
	if err != nil {
		dstFile.Close()
		return "", 0, &pbrerrors.FilesystemError{Op: "copy", Path: dst, Err: err}
	}

	if err := dstFile.Close(); err != nil {
		return "", 0, &pbrerrors.FilesystemError{Op: "copy", Path: dst, Err: err}
	}

	return digester.Digest(), n, nil
}
