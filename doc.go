// Package main implements the pybump CLI tool.
//
// pybump increments the version declared in a project manifest. It reads the
// manifest (default "./pyproject.toml"), finds the first declaration of the
// form version = "X.Y.Z" (single or double quotes, any spacing around "="),
// bumps it and writes the whole file back. The declaration is rewritten as
// version = "<new>"; the rest of the file is left byte for byte.
//
// Command Usage:
//
//	pybump [flags] [patch|minor|major]
//
// The bump type defaults to patch.
//
// Flags:
//
//	-m, --manifest: Path to the manifest. (Defaults to "pyproject.toml")
//	-c, --config:   Optional YAML config file. (Defaults to ".pybump.yml")
//	--dry:          Print the bump without writing the manifest.
//	-v, --verbose:  Log details such as the declaration line to stderr.
//	--version:      Displays the version of the pybump CLI tool and exits.
//
// On success a single line "<old> -> <new>" is printed to stdout. On failure
// a single line "Error: <description>" is printed to stderr and the exit
// status is 1. The manifest is never written when an error is reported
// before the write itself.
//
// Examples:
//
//	# Bump the patch version (e.g. 1.2.3 → 1.2.4)
//	pybump
//
//	# Bump the minor version (e.g. 1.2.3 → 1.3.0)
//	pybump minor
//
//	# Bump the major version of another manifest (e.g. 1.2.3 → 2.0.0)
//	pybump -m packages/core/pyproject.toml major
//
//	# Short versions are padded first (e.g. 0.9 → 0.9.1)
//	pybump patch
//
// For library documentation see the "pkg" package.
package main
