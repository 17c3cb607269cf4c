package platform

import (
	"os"
	"runtime"

	"github.com/spf13/afero"
)

// defaultPerm is used for files written without an existing file or source
// file to inherit permissions from.
const defaultPerm os.FileMode = 0644

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(fs afero.Fs, path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return fs.Chmod(path, mode)
}

// permOf returns the permission bits of path, or fallback if it cannot be
// stat'ed.
func permOf(fs afero.Fs, path string, fallback os.FileMode) os.FileMode {
	info, err := fs.Stat(path)
	if err != nil {
		return fallback
	}
	return info.Mode().Perm()
}
