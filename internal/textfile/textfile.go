// Package textfile rewrites text files line by line. Lines keep their
// terminators so content that is not edited is written back byte for byte.
package textfile

import (
	"strings"

	"github.com/spf13/afero"

	"github.com/nemtech/catapult-scripts/internal/platform"
)

// SplitLines splits s after every "\n". A final line without a terminator is
// kept; an empty string yields no lines.
func SplitLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// MutateLines reads path, passes its lines to fn and writes the returned
// lines back verbatim. Nothing is written when fn returns an error.
func MutateLines(fs afero.Fs, path string, fn func(lines []string) ([]string, error)) error {
	data, err := platform.ReadFile(fs, path)
	if err != nil {
		return err
	}

	lines, err := fn(SplitLines(string(data)))
	if err != nil {
		return err
	}

	return platform.WriteFileAtomic(fs, path, []byte(strings.Join(lines, "")))
}

// Insert returns lines with newLines inserted before index. An index past the
// end appends.
func Insert(lines []string, index int, newLines ...string) []string {
	if index > len(lines) {
		index = len(lines)
	}
	if index < 0 {
		index = 0
	}
	out := make([]string, 0, len(lines)+len(newLines))
	out = append(out, lines[:index]...)
	out = append(out, newLines...)
	return append(out, lines[index:]...)
}

// Append returns lines with newLines added at the end.
func Append(lines []string, newLines ...string) []string {
	return append(lines, newLines...)
}

// Terminate returns line with a "\n" appended unless it already ends with one.
func Terminate(line string) string {
	if strings.HasSuffix(line, "\n") {
		return line
	}
	return line + "\n"
}
