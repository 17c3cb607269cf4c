package manifest

import "path/filepath"

// Kind identifies which of the two package descriptor files a document is.
type Kind int

const (
	// KindManifest is package.json: dependencies map names to version strings.
	KindManifest Kind = iota
	// KindLockfile is package-lock.json: dependencies map names to objects
	// carrying the resolved version.
	KindLockfile
)

const (
	ManifestFile = "package.json"
	LockfileFile = "package-lock.json"
)

// FileName returns the file name used for documents of kind k.
func (k Kind) FileName() string {
	if k == KindLockfile {
		return LockfileFile
	}
	return ManifestFile
}

func (k Kind) String() string {
	if k == KindLockfile {
		return "lockfile"
	}
	return "manifest"
}

// Path returns the location of the kind k descriptor of package pkg under root.
func (k Kind) Path(root, pkg string) string {
	return filepath.Join(root, pkg, k.FileName())
}

// DependencyVersionKeys returns the key path of dep's version inside a
// document of kind k.
func (k Kind) DependencyVersionKeys(dep string) []string {
	if k == KindLockfile {
		return []string{"dependencies", dep, "version"}
	}
	return []string{"dependencies", dep}
}
