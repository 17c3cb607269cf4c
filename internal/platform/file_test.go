package platform

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(afero.NewMemMapFs(), "/src/package.json")

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("error = %v, want *IOError", err)
	}
	if ioErr.Op != "reading" || ioErr.Path != "/src/package.json" {
		t.Errorf("IOError = {%q, %q}, want {reading, /src/package.json}", ioErr.Op, ioErr.Path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error %v should wrap os.ErrNotExist", err)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	tests := []struct {
		name     string
		existing string
	}{
		{"new file", ""},
		{"replace existing", "old content that is longer than the new one\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "out.json")
			if tt.existing != "" {
				if err := os.WriteFile(path, []byte(tt.existing), 0644); err != nil {
					t.Fatal(err)
				}
			}

			if err := WriteFileAtomic(afero.NewOsFs(), path, []byte("{}\n")); err != nil {
				t.Fatalf("WriteFileAtomic: %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != "{}\n" {
				t.Errorf("content = %q, want %q", data, "{}\n")
			}

			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != 1 {
				t.Errorf("directory has %d entries, want only the target file", len(entries))
			}
		})
	}
}

func TestWriteFileAtomicKeepsPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not supported on Windows")
	}

	path := filepath.Join(t.TempDir(), "run.sh")
	if err := os.WriteFile(path, []byte("old"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := WriteFileAtomic(afero.NewOsFs(), path, []byte("new")); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0755 {
		t.Errorf("permissions = %o, want %o", perm, 0755)
	}
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	filesystems := map[string]afero.Fs{
		"os":     afero.NewOsFs(),
		"memory": afero.NewMemMapFs(),
	}

	for name, fs := range filesystems {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing", "out.json")
			err := WriteFileAtomic(fs, path, []byte("{}"))

			var ioErr *IOError
			if !errors.As(err, &ioErr) {
				t.Fatalf("error = %v, want *IOError", err)
			}
			if ioErr.Op != "writing" {
				t.Errorf("Op = %q, want writing", ioErr.Op)
			}
			if !errors.Is(err, os.ErrNotExist) {
				t.Errorf("error %v should wrap os.ErrNotExist", err)
			}
		})
	}
}

func TestCopyFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/templates/src.eslintrc", []byte("extends: airbnb-base\n"), 0640); err != nil {
		t.Fatal(err)
	}
	if err := fs.MkdirAll("/src/rest", 0755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "/src/rest/.eslintrc", []byte("stale\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := CopyFile(fs, "/templates/src.eslintrc", "/src/rest/.eslintrc"); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}

	data, err := afero.ReadFile(fs, "/src/rest/.eslintrc")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "extends: airbnb-base\n" {
		t.Errorf("content = %q, want the template", data)
	}
	if runtime.GOOS != "windows" {
		info, err := fs.Stat("/src/rest/.eslintrc")
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0640 {
			t.Errorf("permissions = %o, want %o from the source", perm, 0640)
		}
	}
}

func TestCopyFileMissingSource(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/src/rest", 0755); err != nil {
		t.Fatal(err)
	}

	err := CopyFile(fs, "/templates/src.eslintrc", "/src/rest/.eslintrc")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, want os.ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), "/templates/src.eslintrc") {
		t.Errorf("error %q does not name the template", err)
	}
	if exists, _ := afero.Exists(fs, "/src/rest/.eslintrc"); exists {
		t.Error("destination should not be created when the source is missing")
	}
}

func TestWriteFileAtomicCopyOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "package.json")
	if err := os.WriteFile(path, []byte("original"), 0644); err != nil {
		t.Fatal(err)
	}

	fs := afero.NewCopyOnWriteFs(afero.NewOsFs(), afero.NewMemMapFs())
	if err := WriteFileAtomic(fs, path, []byte("changed")); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(onDisk) != "original" {
		t.Errorf("disk content = %q, want it untouched", onDisk)
	}
	overlay, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatal(err)
	}
	if string(overlay) != "changed" {
		t.Errorf("overlay content = %q, want %q", overlay, "changed")
	}
}

func TestCopyFileWith(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/templates/src.eslintrc", []byte("root: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := fs.MkdirAll("/src/rest", 0755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "/src/rest/.eslintrc", []byte("stale\n"), 0644); err != nil {
		t.Fatal(err)
	}

	failed := errors.New("rejected")
	err := CopyFileWith(fs, "/templates/src.eslintrc", "/src/rest/.eslintrc", func([]byte) ([]byte, error) {
		return nil, failed
	})
	if !errors.Is(err, failed) {
		t.Fatalf("error = %v, want the transform error", err)
	}
	if data, _ := afero.ReadFile(fs, "/src/rest/.eslintrc"); string(data) != "stale\n" {
		t.Errorf("destination = %q, want it untouched after a failed transform", data)
	}

	err = CopyFileWith(fs, "/templates/src.eslintrc", "/src/rest/.eslintrc", func(data []byte) ([]byte, error) {
		return append(data, "env:\n  es6: true\n"...), nil
	})
	if err != nil {
		t.Fatalf("CopyFileWith: %v", err)
	}
	if data, _ := afero.ReadFile(fs, "/src/rest/.eslintrc"); string(data) != "root: true\nenv:\n  es6: true\n" {
		t.Errorf("destination = %q", data)
	}
}
