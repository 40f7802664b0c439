package pybump

// BumpType selects which version component gets incremented.
type BumpType string

const (
	Patch BumpType = "patch"
	Minor BumpType = "minor"
	Major BumpType = "major"
)

// DefaultBumpType is used when no bump type is given.
const DefaultBumpType = Patch

// ParseBumpType accepts exactly "patch", "minor" or "major".
func ParseBumpType(s string) (BumpType, error) {
	switch bt := BumpType(s); bt {
	case Patch, Minor, Major:
		return bt, nil
	default:
		return "", invalidBumpType(s)
	}
}
