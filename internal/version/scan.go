package version

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"

	pbrerrors "github.com/chazuruo/pbrpub/internal/errors"
)

// Candidate is a published package found in a directory.
type Candidate struct {
	Tag     Tag       `json:"version" yaml:"version"`
	Name    string    `json:"name" yaml:"name"`
	Path    string    `json:"path" yaml:"path"`
	Size    int64     `json:"size" yaml:"size"`
	ModTime time.Time `json:"modified" yaml:"modified"`
}

// Scan lists the published packages directly inside dir, sorted by tag.
// Subdirectories are not descended into and entries that are directories
// themselves are skipped even when their name matches.
func Scan(dir string) ([]Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &pbrerrors.FilesystemError{Op: "scan", Path: dir, Err: err}
	}

	var cands []Candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		tag, ok := ParsePackageName(entry.Name())
		if !ok {
			continue
		}

		c := Candidate{
			Tag:  tag,
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
		}
		// The entry may vanish between ReadDir and Info; it still counts.
		if info, err := entry.Info(); err == nil {
			c.Size = info.Size()
			c.ModTime = info.ModTime()
		}
		cands = append(cands, c)
	}

	sort.Slice(cands, func(i, j int) bool {
		return cands[i].Tag.Less(cands[j].Tag)
	})

	return cands, nil
}

// Latest returns the highest tag among cands.
func Latest(cands []Candidate) (Tag, bool) {
	if len(cands) == 0 {
		return Tag{}, false
	}
	latest := cands[0].Tag
	for _, c := range cands[1:] {
		if latest.Less(c.Tag) {
			latest = c.Tag
		}
	}
	return latest, true
}

// NextFrom returns the tag following the highest candidate, or Initial.
func NextFrom(cands []Candidate) Tag {
	latest, ok := Latest(cands)
	if !ok {
		return Initial
	}
	return latest.Next()
}

// Locate returns the next tag to publish into dir. A directory that cannot be
// listed is treated as holding no packages; the failure is logged to the
// logger carried by ctx.
func Locate(ctx context.Context, dir string) Tag {
	logger := zerolog.Ctx(ctx)

	cands, err := Scan(dir)
	if err != nil {
		logger.Warn().Err(err).Str("dir", dir).Msg("cannot list destination, assuming no published versions")
		return Initial
	}

	next := NextFrom(cands)
	logger.Debug().
		Str("dir", dir).
		Int("candidates", len(cands)).
		Stringer("next", next).
		Msg("located next version")

	return next
}
