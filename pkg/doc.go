// Package pybump provides a library for bumping the version declared in a
// project manifest such as pyproject.toml.
//
// It provides functionalities for:
//   - Locating the first `version = "X.Y.Z"` declaration in a manifest (single or double quoted).
//   - Parsing the declared version into numeric components, padding it to at least major.minor.patch.
//   - Bumping the version with one of the keywords patch, minor or major.
//   - Rewriting the declaration in place and writing the manifest back to disk.
//
// Usage Example:
//
//	import (
//	    "log"
//	    pybump "github.com/bcomnes/pybump/pkg"
//	)
//
//	func main() {
//	    meta, err := pybump.Run("pyproject.toml", "minor")
//	    if err != nil {
//	        log.Fatalf("version bump failed: %v", err)
//	    }
//	    log.Printf("%s -> %s", meta.OldVersion, meta.NewVersion)
//	}
package pybump
