package eslint

import (
	"fmt"

	"go.yaml.in/yaml/v3"
)

// Option selects how the test configuration of a package is handled.
// A package carries exactly one option.
type Option string

const (
	// None copies the test template unchanged.
	None Option = "none"
	// MongoSupport appends the mongo identifier exceptions to the test config.
	MongoSupport Option = "mongo-support"
	// NoTest skips the test configuration entirely.
	NoTest Option = "no-test"
)

// ParseOption returns the Option named s. The empty string is None.
func ParseOption(s string) (Option, error) {
	switch Option(s) {
	case "", None:
		return None, nil
	case MongoSupport:
		return MongoSupport, nil
	case NoTest:
		return NoTest, nil
	default:
		return "", fmt.Errorf("unknown option %q (want %q, %q or %q)", s, None, MongoSupport, NoTest)
	}
}

func (o Option) String() string {
	if o == "" {
		return string(None)
	}
	return string(o)
}

// UnmarshalYAML rejects option names other than the three known ones.
func (o *Option) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseOption(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*o = parsed
	return nil
}
