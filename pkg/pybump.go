package pybump

// VersionMeta holds metadata about the version bump operation.
type VersionMeta struct {
	OldVersion   string   // The declared version, exactly as written in the manifest.
	NewVersion   string   // The version after bumping.
	BumpType     BumpType // Which component was bumped.
	ManifestPath string   // The manifest that was (or would be) written.
	Line         int      // Line of the rewritten declaration.
	Declarations int      // Number of declarations found; only the first is rewritten.
	Canonical    bool     // Whether OldVersion was declared as a canonical MAJOR.MINOR.PATCH semver.
}

// plan reads the manifest and computes the bump without writing anything.
// The checks run in a fixed order: locate, parse, then bump type.
func plan(manifestPath, bumpArg string) (VersionMeta, string, error) {
	var meta VersionMeta
	meta.ManifestPath = manifestPath

	content, err := ReadManifest(manifestPath)
	if err != nil {
		return meta, "", err
	}

	decl, err := FindDeclaration(manifestPath, content)
	if err != nil {
		return meta, "", err
	}
	meta.OldVersion = decl.Version
	meta.Line = decl.Line
	meta.Declarations = CountDeclarations(content)
	meta.Canonical = IsCanonical(decl.Version)

	current, err := ParseVersion(decl.Version)
	if err != nil {
		return meta, "", err
	}

	bt, err := ParseBumpType(bumpArg)
	if err != nil {
		return meta, "", err
	}
	meta.BumpType = bt

	next, err := current.Bump(bt)
	if err != nil {
		return meta, "", err
	}
	meta.NewVersion = next.String()

	return meta, ReplaceDeclaration(content, decl, meta.NewVersion), nil
}

// Run bumps the first version declaration in the manifest at manifestPath
// and writes the file back. bumpArg must be one of patch, minor or major.
// Nothing is written unless every check passes.
func Run(manifestPath, bumpArg string) (VersionMeta, error) {
	meta, updated, err := plan(manifestPath, bumpArg)
	if err != nil {
		return meta, err
	}
	if err := WriteManifest(manifestPath, updated); err != nil {
		return meta, err
	}
	return meta, nil
}

// DryRun computes the same VersionMeta as Run without touching the manifest.
func DryRun(manifestPath, bumpArg string) (VersionMeta, error) {
	meta, _, err := plan(manifestPath, bumpArg)
	return meta, err
}
