package pybump

import (
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// minComponents is the number of components a parsed version is padded to.
const minComponents = 3

// Version is an ordered list of non-negative integer components.
// Index 0 is major, 1 is minor, 2 is patch; anything after is carried along.
type Version []int

// ParseVersion splits s on "." and parses every segment as a non-negative
// integer. The result is padded with trailing zeros to at least three
// components; extra components are kept as they are.
func ParseVersion(s string) (Version, error) {
	segments := strings.Split(s, ".")
	v := make(Version, 0, max(len(segments), minComponents))
	for _, seg := range segments {
		n, err := strconv.Atoi(strings.TrimSpace(seg))
		if err != nil || n < 0 {
			return nil, malformedVersion(s, seg)
		}
		v = append(v, n)
	}
	for len(v) < minComponents {
		v = append(v, 0)
	}
	return v, nil
}

// String joins the components with ".".
func (v Version) String() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// IsCanonical reports whether the declared text s is already a canonical
// MAJOR.MINOR.PATCH semver. "0.9", "01.2.3" and "1.2.3.4" are not.
func IsCanonical(s string) bool {
	return semver.IsValid("v"+s) && semver.Canonical("v"+s) == "v"+s
}

// Bump returns a new version with bt applied. v is not modified.
//
//	patch: 1.2.3 -> 1.2.4
//	minor: 1.2.3 -> 1.3.0
//	major: 1.2.3 -> 2.0.0
//
// Components past the patch position are never touched. A version built by
// hand with fewer than three components is zero padded first.
func (v Version) Bump(bt BumpType) (Version, error) {
	next := make(Version, max(len(v), minComponents))
	copy(next, v)

	switch bt {
	case Patch:
		next[2]++
	case Minor:
		next[1]++
		next[2] = 0
	case Major:
		next[0]++
		next[1] = 0
		next[2] = 0
	default:
		return nil, invalidBumpType(string(bt))
	}
	return next, nil
}
