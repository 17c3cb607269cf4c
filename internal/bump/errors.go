package bump

import "fmt"

// MismatchError is returned when the manifest and lockfile of the self
// package record different versions.
type MismatchError struct {
	Package         string
	ManifestPath    string
	ManifestVersion string
	LockfilePath    string
	LockfileVersion string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s has version %q but %s has %q",
		e.ManifestPath, e.ManifestVersion, e.LockfilePath, e.LockfileVersion)
}
