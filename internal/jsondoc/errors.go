package jsondoc

import (
	"fmt"
	"strings"
)

// DecodeError is returned when a file does not hold a JSON object.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// KeyNotFoundError is returned when a key path is absent from a document.
type KeyNotFoundError struct {
	Keys []string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %q not found", strings.Join(e.Keys, "."))
}

// TypeError is returned when a value exists but has an unexpected JSON type.
type TypeError struct {
	Keys []string
	Want string
	Got  any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("key %q is %s, want %s", strings.Join(e.Keys, "."), jsonType(e.Got), e.Want)
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case float64, int, int64:
		return "a number"
	case []any:
		return "an array"
	default:
		if _, ok := asObject(v); ok {
			return "an object"
		}
		return fmt.Sprintf("%T", v)
	}
}
