// Package version computes the version tags of published packages.
//
// Published packages are named PBRv<major>.<minor>.apk. The next tag is found
// by scanning a directory for such names and bumping the minor component of
// the highest one.
package version

import (
	"fmt"
	"strings"
)

// Number is a non-negative decimal integer of any size, held as its digits
// with leading zeros removed. The empty Number reads as zero.
type Number string

// ParseNumber accepts one or more ASCII digits.
func ParseNumber(s string) (Number, error) {
	if s == "" {
		return "", fmt.Errorf("empty component")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("non-digit %q", r)
		}
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		s = "0"
	}
	return Number(s), nil
}

func (n Number) String() string {
	if n == "" {
		return "0"
	}
	return string(n)
}

// Compare returns -1 if n < o, 0 if equal, 1 if n > o.
func (n Number) Compare(o Number) int {
	a, b := n.String(), o.String()
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return strings.Compare(a, b)
}

// Inc returns n + 1.
func (n Number) Inc() Number {
	digits := []byte(n.String())
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] < '9' {
			digits[i]++
			return Number(digits)
		}
		digits[i] = '0'
	}
	return Number("1" + string(digits))
}

// Tag is a (major, minor) version pair.
type Tag struct {
	Major Number
	Minor Number
}

// Initial is the tag used when nothing has been published yet.
var Initial = Tag{Major: "0", Minor: "1"}

// String renders the tag as "major.minor".
func (t Tag) String() string {
	return t.Major.String() + "." + t.Minor.String()
}

// Compare returns -1 if t < o, 0 if equal, 1 if t > o.
// Components are compared as integers, so 1.10 sorts after 1.9.
func (t Tag) Compare(o Tag) int {
	if c := t.Major.Compare(o.Major); c != 0 {
		return c
	}
	return t.Minor.Compare(o.Minor)
}

// Less reports whether t sorts before o.
func (t Tag) Less(o Tag) bool { return t.Compare(o) < 0 }

// Next returns the tag that follows t. Only the minor component is bumped;
// it never rolls over into major.
func (t Tag) Next() Tag {
	return Tag{Major: Number(t.Major.String()), Minor: t.Minor.Inc()}
}

// MarshalText encodes the tag as "major.minor".
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a "major.minor" tag.
func (t *Tag) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Parse parses a "major.minor" string.
func Parse(s string) (Tag, error) {
	majorStr, minorStr, ok := strings.Cut(s, ".")
	if !ok {
		return Tag{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}
	major, err := ParseNumber(majorStr)
	if err != nil {
		return Tag{}, fmt.Errorf("invalid version %q: major: %w", s, err)
	}
	minor, err := ParseNumber(minorStr)
	if err != nil {
		return Tag{}, fmt.Errorf("invalid version %q: minor: %w", s, err)
	}
	return Tag{Major: major, Minor: minor}, nil
}
