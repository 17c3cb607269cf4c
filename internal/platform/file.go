package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// IOError reports a filesystem operation that failed on a specific path.
type IOError struct {
	Op   string // "reading" or "writing"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ReadFile reads the whole file at path.
func ReadFile(fs afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, &IOError{Op: "reading", Path: path, Err: err}
	}
	return data, nil
}

// WriteFileAtomic replaces path with data. The content is written to a
// temporary file in the same directory and renamed over path, so readers
// never observe a partially written file. An existing file keeps its
// permissions.
func WriteFileAtomic(fs afero.Fs, path string, data []byte) error {
	return writeFileAtomic(fs, path, data, permOf(fs, path, defaultPerm))
}

// CopyFile copies src over dst, preserving the permissions of src.
// The parent directory of dst must already exist.
func CopyFile(fs afero.Fs, src, dst string) error {
	return CopyFileWith(fs, src, dst, nil)
}

// CopyFileWith is CopyFile with the content passed through transform before
// it is written. dst is left untouched when transform fails.
func CopyFileWith(fs afero.Fs, src, dst string, transform func(data []byte) ([]byte, error)) error {
	data, err := ReadFile(fs, src)
	if err != nil {
		return err
	}
	if transform != nil {
		if data, err = transform(data); err != nil {
			return err
		}
	}
	return writeFileAtomic(fs, dst, data, permOf(fs, src, defaultPerm))
}

func writeFileAtomic(fs afero.Fs, path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	// Memory-backed filesystems create files in missing directories, the OS
	// does not. Check explicitly so both behave the same.
	exists, err := afero.DirExists(fs, dir)
	if err != nil {
		return &IOError{Op: "writing", Path: path, Err: err}
	}
	if !exists {
		return &IOError{Op: "writing", Path: path, Err: fmt.Errorf("directory %s: %w", dir, os.ErrNotExist)}
	}

	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &IOError{Op: "writing", Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		fs.Remove(tmpName)
		return &IOError{Op: "writing", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		fs.Remove(tmpName)
		return &IOError{Op: "writing", Path: path, Err: err}
	}
	if err := Chmod(fs, tmpName, perm); err != nil {
		fs.Remove(tmpName)
		return &IOError{Op: "writing", Path: path, Err: err}
	}
	if err := fs.Rename(tmpName, path); err != nil {
		fs.Remove(tmpName)
		return &IOError{Op: "writing", Path: path, Err: err}
	}
	return nil
}
