package pybump

import (
	"errors"
	"fmt"
)

// Error kinds reported by the bumper. Match them with errors.Is.
var (
	ErrVersionNotFound  = errors.New("version not found")
	ErrMalformedVersion = errors.New("malformed version")
	ErrInvalidBumpType  = errors.New("invalid bump type")
)

// BumpError is returned for every failure the bumper detects itself.
// Kind is one of the Err* sentinels; the message is what the CLI shows.
type BumpError struct {
	Kind error
	msg  string
}

func (e *BumpError) Error() string { return e.msg }

func (e *BumpError) Unwrap() error { return e.Kind }

func versionNotFound(path string) error {
	return &BumpError{Kind: ErrVersionNotFound, msg: "Could not find version in " + path}
}

func malformedVersion(version, segment string) error {
	return &BumpError{
		Kind: ErrMalformedVersion,
		msg:  fmt.Sprintf("Malformed version %q: segment %q is not a non-negative integer", version, segment),
	}
}

func invalidBumpType(bump string) error {
	return &BumpError{Kind: ErrInvalidBumpType, msg: "Invalid bump type: " + bump}
}
