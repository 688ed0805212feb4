package publish

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pbrerrors "github.com/chazuruo/pbrpub/internal/errors"
	"github.com/chazuruo/pbrpub/internal/testutil"
	"github.com/chazuruo/pbrpub/internal/version"
)

// samplePackage returns bytes that compress unevenly, like a real package.
func samplePackage() []byte {
	var buf bytes.Buffer
	buf.WriteString("PK\x03\x04")
	for i := 0; i < 4096; i++ {
		buf.WriteByte(byte(i * 31 % 251))
	}
	buf.Write(bytes.Repeat([]byte("classes.dex"), 200))
	return buf.Bytes()
}

func setup(t *testing.T) (src, dest string, data []byte) {
	t.Helper()

	root := testutil.TempDir(t)
	data = samplePackage()
	src = testutil.WriteFile(t, filepath.Join(root, "build", "app-release.apk"), data)
	dest = filepath.Join(root, "Downloads")
	require.NoError(t, os.MkdirAll(dest, 0755))
	return src, dest, data
}

func readZip(t *testing.T, path string) *zip.ReadCloser {
	t.Helper()

	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestPublish_FirstVersion(t *testing.T) {
	src, dest, data := setup(t)

	res, err := New(Options{Source: src, DestDir: dest, CompressionLevel: 6}).Publish(context.Background())
	require.NoError(t, err)

	assert.Equal(t, version.Tag{Major: "0", Minor: "1"}, res.Version)
	assert.Equal(t, filepath.Join(dest, "PBRv0.1.apk"), res.APKPath)
	assert.Equal(t, filepath.Join(dest, "PBRv0.1.zip"), res.ZipPath)
	assert.Equal(t, int64(len(data)), res.Size)
	assert.Equal(t, digest.FromBytes(data), res.Digest)

	got, err := os.ReadFile(res.APKPath)
	require.NoError(t, err)
	assert.Equal(t, data, got, "copy must be byte-identical")

	r := readZip(t, res.ZipPath)
	require.Len(t, r.File, 1)
	entry := r.File[0]
	assert.Equal(t, "PBRv0.1.apk", entry.Name)
	assert.Equal(t, zip.Deflate, entry.Method)

	rc, err := entry.Open()
	require.NoError(t, err)
	defer rc.Close()
	unpacked, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, data, unpacked)

	assert.ElementsMatch(t, []string{"PBRv0.1.apk", "PBRv0.1.zip"}, testutil.ListDir(t, dest))
}

func TestPublish_IncrementsMinor(t *testing.T) {
	src, dest, _ := setup(t)
	testutil.WriteFiles(t, dest, "PBRv1.3.apk", "PBRv1.9.apk", "notes.txt")

	res, err := New(Options{Source: src, DestDir: dest, CompressionLevel: -1}).Publish(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "1.10", res.Version.String())
	assert.FileExists(t, filepath.Join(dest, "PBRv1.10.apk"))
	assert.FileExists(t, filepath.Join(dest, "PBRv1.10.zip"))
	// Earlier versions are kept.
	assert.FileExists(t, filepath.Join(dest, "PBRv1.3.apk"))
	assert.FileExists(t, filepath.Join(dest, "PBRv1.9.apk"))
}

func TestPublish_Repeated(t *testing.T) {
	src, dest, _ := setup(t)
	p := New(Options{Source: src, DestDir: dest, CompressionLevel: 9})

	for _, want := range []string{"0.1", "0.2", "0.3"} {
		res, err := p.Publish(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, res.Version.String())
	}
}

// TestPublish_OverwritesStaleArchive checks that a leftover zip for the next
// version is replaced rather than appended to.
func TestPublish_OverwritesStaleArchive(t *testing.T) {
	src, dest, data := setup(t)
	testutil.WriteFile(t, filepath.Join(dest, "PBRv0.1.zip"), []byte("stale"))

	res, err := New(Options{Source: src, DestDir: dest, CompressionLevel: 6}).Publish(context.Background())
	require.NoError(t, err)

	r := readZip(t, res.ZipPath)
	require.Len(t, r.File, 1)
	assert.Equal(t, uint64(len(data)), r.File[0].UncompressedSize64)
}

func TestPublish_MissingSource(t *testing.T) {
	_, dest, _ := setup(t)
	missing := filepath.Join(filepath.Dir(dest), "build", "nope.apk")

	res, err := New(Options{Source: missing, DestDir: dest}).Publish(context.Background())
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, pbrerrors.IsMissingInput(err))
	assert.Equal(t, 1, pbrerrors.ExitCode(err))

	me, ok := pbrerrors.AsMissingInputError(err)
	require.True(t, ok)
	assert.Equal(t, missing, me.Path)

	assert.Empty(t, testutil.ListDir(t, dest), "no files may be written when the source is missing")
}

func TestPublish_SourceIsDirectory(t *testing.T) {
	_, dest, _ := setup(t)

	_, err := New(Options{Source: dest, DestDir: dest}).Publish(context.Background())
	assert.True(t, pbrerrors.IsMissingInput(err))
	assert.Empty(t, testutil.ListDir(t, dest))
}

func TestPublish_MissingDestination(t *testing.T) {
	src, dest, _ := setup(t)
	gone := filepath.Join(dest, "missing")

	_, err := New(Options{Source: src, DestDir: gone}).Publish(context.Background())
	require.Error(t, err)
	assert.True(t, pbrerrors.IsFilesystem(err))
	assert.Equal(t, 2, pbrerrors.ExitCode(err))
}

func TestPublish_ReadOnlyDestination(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}
	src, dest, _ := setup(t)
	require.NoError(t, os.Chmod(dest, 0555))
	t.Cleanup(func() { _ = os.Chmod(dest, 0755) })

	_, err := New(Options{Source: src, DestDir: dest}).Publish(context.Background())
	fe, ok := pbrerrors.AsFilesystemError(err)
	require.True(t, ok)
	assert.Equal(t, "create", fe.Op)
}

func TestPublish_Canceled(t *testing.T) {
	src, dest, _ := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Options{Source: src, DestDir: dest}).Publish(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, testutil.ListDir(t, dest))
}
