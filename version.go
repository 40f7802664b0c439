package main

import (
	"fmt"

	"github.com/maloquacious/semver"
)

var version = semver.Version{
	Major: 1,
	Minor: 0,
	Patch: 0,
	Build: semver.Commit(),
}

// Version is the pybump CLI version.
var Version = fmt.Sprint(version.Core())
