package version

import (
	"regexp"
)

const (
	// Prefix starts every published file name.
	Prefix = "PBRv"

	// PackageExt is the extension of the published package copy.
	PackageExt = ".apk"

	// ArchiveExt is the extension of the archive wrapping the copy.
	ArchiveExt = ".zip"
)

var packageNameRe = regexp.MustCompile(`^PBRv(\d+)\.(\d+)\.apk$`)

// PackageName returns the package file name for t, e.g. "PBRv1.10.apk".
func PackageName(t Tag) string {
	return Prefix + t.String() + PackageExt
}

// ArchiveName returns the archive file name for t, e.g. "PBRv1.10.zip".
func ArchiveName(t Tag) string {
	return Prefix + t.String() + ArchiveExt
}

// ParsePackageName extracts the tag from a published package file name.
// It returns false for any name that is not exactly PBRv<digits>.<digits>.apk.
func ParsePackageName(name string) (Tag, bool) {
	m := packageNameRe.FindStringSubmatch(name)
	if m == nil {
		return Tag{}, false
	}
	major, err := ParseNumber(m[1])
	if err != nil {
		return Tag{}, false
	}
	minor, err := ParseNumber(m[2])
	if err != nil {
		return Tag{}, false
	}
	return Tag{Major: major, Minor: minor}, true
}
