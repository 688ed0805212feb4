package version

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pbrerrors "github.com/chazuruo/pbrpub/internal/errors"
	"github.com/chazuruo/pbrpub/internal/testutil"
)

func TestLocate_Example(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.WriteFiles(t, dir, "PBRv1.3.apk", "PBRv1.9.apk", "notes.txt")

	assert.Equal(t, Tag{"1", "10"}, Locate(context.Background(), dir))
}

func TestLocate_Empty(t *testing.T) {
	dir := testutil.TempDir(t)
	assert.Equal(t, Tag{"0", "1"}, Locate(context.Background(), dir))
}

func TestLocate_MissingDirectory(t *testing.T) {
	dir := filepath.Join(testutil.TempDir(t), "does-not-exist")
	assert.Equal(t, Initial, Locate(context.Background(), dir))
}

func TestLocate_IgnoresNonMatching(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.WriteFiles(t, dir,
		"PBRv0.4.apk",
		"PBRv9.9.zip",
		"PBRv8.1.apk.bak",
		"pbrv7.0.apk",
		"PBRvX.1.apk",
		"app-release.apk",
	)
	// A directory with a matching name is not a package.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "PBRv5.5.apk"), 0755))

	assert.Equal(t, Tag{"0", "5"}, Locate(context.Background(), dir))
}

// TestLocate_GreaterThanEveryCandidate checks that the next tag beats every
// existing one and equals the maximum plus one minor.
func TestLocate_GreaterThanEveryCandidate(t *testing.T) {
	sets := [][]string{
		{"PBRv0.1.apk"},
		{"PBRv2.0.apk", "PBRv1.99.apk"},
		{"PBRv1.2.apk", "PBRv1.10.apk", "PBRv1.9.apk"},
		{"PBRv3.7.apk", "PBRv10.0.apk", "PBRv9.99.apk", "readme.md"},
		{"PBRv0.0.apk"},
		{"PBRv1.3.apk", "PBRv1.18446744073709551616.apk", "PBRv0.99999999999999999999.apk"},
	}

	for _, names := range sets {
		dir := testutil.TempDir(t)
		testutil.WriteFiles(t, dir, names...)

		cands, err := Scan(dir)
		require.NoError(t, err)
		next := Locate(context.Background(), dir)

		latest, ok := Latest(cands)
		require.True(t, ok)
		assert.Equal(t, latest.Next(), next)
		for _, c := range cands {
			assert.True(t, c.Tag.Less(next), "%s should be less than %s", c.Tag, next)
		}
	}
}

func TestLocate_LargeComponents(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.WriteFiles(t, dir, "PBRv1.9223372036854775807.apk")
	assert.Equal(t, Tag{"1", "9223372036854775808"}, Locate(context.Background(), dir))

	dir = testutil.TempDir(t)
	testutil.WriteFiles(t, dir, "PBRv1.3.apk", "PBRv1.99999999999999999999.apk")
	next := Locate(context.Background(), dir)
	assert.Equal(t, Tag{"1", "100000000000000000000"}, next)
	assert.Equal(t, "PBRv1.100000000000000000000.apk", PackageName(next))
}

func TestScan_SortedWithMetadata(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.WriteFiles(t, dir, "PBRv1.10.apk", "PBRv1.9.apk", "PBRv0.3.apk", "other.apk")

	cands, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, cands, 3)

	assert.Equal(t, []Tag{{"0", "3"}, {"1", "9"}, {"1", "10"}}, []Tag{cands[0].Tag, cands[1].Tag, cands[2].Tag})
	assert.Equal(t, "PBRv1.10.apk", cands[2].Name)
	assert.Equal(t, filepath.Join(dir, "PBRv1.10.apk"), cands[2].Path)
	assert.Equal(t, int64(len("PBRv1.10.apk")), cands[2].Size)
	assert.False(t, cands[2].ModTime.IsZero())
}

func TestScan_MissingDirectory(t *testing.T) {
	dir := filepath.Join(testutil.TempDir(t), "missing")

	_, err := Scan(dir)
	require.Error(t, err)
	assert.True(t, pbrerrors.IsFilesystem(err))
}

func TestNextFrom(t *testing.T) {
	assert.Equal(t, Initial, NextFrom(nil))
	assert.Equal(t, Tag{"2", "1"}, NextFrom([]Candidate{{Tag: Tag{"1", "5"}}, {Tag: Tag{"2", "0"}}}))
}
