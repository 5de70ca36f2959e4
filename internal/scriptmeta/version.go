package scriptmeta

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedVersion = errors.New("scriptmeta: malformed version")

// Version is a MAJOR.MINOR.PATCH triple. Components are compared numerically,
// so 2.0.0 sorts after 1.9.9.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses a "MAJOR.MINOR.PATCH" string. Wrong arity, non-numeric
// or negative components are an error, never a silent zero value.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrMalformedVersion, s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		if p == "" || strings.TrimLeft(p, "0123456789") != "" {
			return Version{}, fmt.Errorf("%w: %q", ErrMalformedVersion, s)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrMalformedVersion, s)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0 or 1 ordering v against o.
func (v Version) Compare(o Version) int {
	if c := cmpInt(v.Major, o.Major); c != 0 {
		return c
	}
	if c := cmpInt(v.Minor, o.Minor); c != 0 {
		return c
	}
	return cmpInt(v.Patch, o.Patch)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// BumpKind selects which component a version bump increments.
type BumpKind string

const (
	BumpMajor BumpKind = "major"
	BumpMinor BumpKind = "minor"
	BumpPatch BumpKind = "patch"
)

func ParseBumpKind(s string) (BumpKind, error) {
	k := BumpKind(s)
	switch k {
	case BumpMajor, BumpMinor, BumpPatch:
		return k, nil
	}
	return "", fmt.Errorf("invalid bump kind %q (want major, minor or patch)", s)
}

// Bump returns the incremented version. Lower components reset to zero.
// Pure: it never reads ambient state.
func (v Version) Bump(kind BumpKind) Version {
	switch kind {
	case BumpMajor:
		return Version{Major: v.Major + 1}
	case BumpMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}
	default:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	}
}
