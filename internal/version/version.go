package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// FormatError is returned when a version string has fewer than three
// dot-separated components.
type FormatError struct {
	Version string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("version %q is not of the form MAJOR.MINOR.PATCH", e.Version)
}

// ParseError is returned when the minor component is not an integer.
type ParseError struct {
	Version string
	Minor   string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("minor component %q of version %q is not numeric: %v", e.Minor, e.Version, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Split breaks v into MAJOR, MINOR and PATCH. MINOR and PATCH are the last
// two dot-separated segments; MAJOR is everything before them and may itself
// contain dots.
func Split(v string) (major, minor, patch string, err error) {
	last := strings.LastIndex(v, ".")
	if last < 0 {
		return "", "", "", &FormatError{Version: v}
	}
	prev := strings.LastIndex(v[:last], ".")
	if prev < 0 {
		return "", "", "", &FormatError{Version: v}
	}
	return v[:prev], v[prev+1 : last], v[last+1:], nil
}

// Increment returns v with its minor component incremented by one.
// MAJOR and PATCH are kept as the original substrings.
func Increment(v string) (string, error) {
	major, minor, patch, err := Split(v)
	if err != nil {
		return "", err
	}

	n, err := strconv.Atoi(strings.TrimSpace(minor))
	if err != nil {
		return "", &ParseError{Version: v, Minor: minor, Err: err}
	}

	return major + "." + strconv.Itoa(n+1) + "." + patch, nil
}

// Equal reports whether a and b name the same version. Strings that parse as
// semantic versions are compared semantically ("v1.2.0" equals "1.2.0"),
// anything else must match exactly.
func Equal(a, b string) bool {
	if a == b {
		return true
	}
	av, aerr := parseSemver(a)
	bv, berr := parseSemver(b)
	if aerr != nil || berr != nil {
		return false
	}
	return av.Equal(bv)
}

// Compare compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
func Compare(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(v string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(v, "v"))
}
