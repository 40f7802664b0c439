package pybump

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// DefaultManifest is the manifest edited when no other path is configured.
const DefaultManifest = "pyproject.toml"

// declarationPattern matches `version = "X.Y.Z"` with either quote style and
// optional spacing around "=". It is not anchored, so the first occurrence
// anywhere in the file wins.
var declarationPattern = regexp.MustCompile(`version\s*=\s*["']([^"']+)["']`)

// Declaration is a version declaration found in a manifest.
type Declaration struct {
	Line       int    // 1-based line of the match
	StartIndex int    // byte offset of the match in the content
	EndIndex   int    // byte offset just past the match
	FullMatch  string // e.g. `version = '0.9'`
	Version    string // the quoted value, e.g. "0.9"
}

// FindDeclaration returns the first version declaration in content.
// path is only used for the error message.
func FindDeclaration(path, content string) (Declaration, error) {
	m := declarationPattern.FindStringSubmatchIndex(content)
	if m == nil {
		return Declaration{}, versionNotFound(path)
	}
	return Declaration{
		Line:       strings.Count(content[:m[0]], "\n") + 1,
		StartIndex: m[0],
		EndIndex:   m[1],
		FullMatch:  content[m[0]:m[1]],
		Version:    content[m[2]:m[3]],
	}, nil
}

// CountDeclarations reports how many version declarations content holds.
func CountDeclarations(content string) int {
	return len(declarationPattern.FindAllStringIndex(content, -1))
}

// ReplaceDeclaration swaps d for `version = "<newVersion>"`. The original
// quoting and spacing are not preserved; everything outside d is.
func ReplaceDeclaration(content string, d Declaration, newVersion string) string {
	return content[:d.StartIndex] + fmt.Sprintf("version = %q", newVersion) + content[d.EndIndex:]
}

// ReadManifest reads the whole manifest into memory. I/O errors are the
// *fs.PathError from the os package, returned as is.
func ReadManifest(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteManifest overwrites the manifest with content in full.
func WriteManifest(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
