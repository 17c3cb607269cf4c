package jsondoc

import (
	"encoding/json"
	"fmt"

	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/spf13/afero"

	"github.com/nemtech/catapult-scripts/internal/platform"
)

// Decode parses data as a JSON object. path is only used in errors.
func Decode(path string, data []byte) (*orderedmap.OrderedMap, error) {
	doc := orderedmap.New()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return doc, nil
}

// Read loads the JSON object stored at path.
func Read(fs afero.Fs, path string) (*orderedmap.OrderedMap, error) {
	data, err := platform.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	return Decode(path, data)
}

// Write replaces the file at path with the encoded doc.
func Write(fs afero.Fs, path string, doc *orderedmap.OrderedMap) error {
	data, err := Encode(doc)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return platform.WriteFileAtomic(fs, path, data)
}

// Mutate loads the document at path, applies fn to it and writes it back.
// Nothing is written when fn returns an error.
func Mutate(fs afero.Fs, path string, fn func(doc *orderedmap.OrderedMap) error) error {
	doc, err := Read(fs, path)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return fmt.Errorf("updating %s: %w", path, err)
	}
	return Write(fs, path, doc)
}

// Object returns the nested object found by following keys from doc.
// With no keys it returns doc itself.
func Object(doc *orderedmap.OrderedMap, keys ...string) (*orderedmap.OrderedMap, error) {
	cur := doc
	for i, key := range keys {
		raw, ok := cur.Get(key)
		if !ok {
			return nil, &KeyNotFoundError{Keys: keys[:i+1]}
		}
		next, ok := asObject(raw)
		if !ok {
			return nil, &TypeError{Keys: keys[:i+1], Want: "an object", Got: raw}
		}
		// Store the pointer back so later writes through next are visible in
		// cur, whichever representation the decoder produced. Set keeps the
		// key's position.
		cur.Set(key, next)
		cur = next
	}
	return cur, nil
}

// String returns the string stored under the key path.
func String(doc *orderedmap.OrderedMap, keys ...string) (string, error) {
	if len(keys) == 0 {
		return "", fmt.Errorf("empty key path")
	}
	parent, err := Object(doc, keys[:len(keys)-1]...)
	if err != nil {
		return "", err
	}
	last := keys[len(keys)-1]
	raw, ok := parent.Get(last)
	if !ok {
		return "", &KeyNotFoundError{Keys: keys}
	}
	s, ok := raw.(string)
	if !ok {
		return "", &TypeError{Keys: keys, Want: "a string", Got: raw}
	}
	return s, nil
}

// SetString replaces the string stored under an existing key path.
func SetString(doc *orderedmap.OrderedMap, value string, keys ...string) error {
	if _, err := String(doc, keys...); err != nil {
		return err
	}
	parent, err := Object(doc, keys[:len(keys)-1]...)
	if err != nil {
		return err
	}
	parent.Set(keys[len(keys)-1], value)
	return nil
}

func asObject(v any) (*orderedmap.OrderedMap, bool) {
	switch m := v.(type) {
	case *orderedmap.OrderedMap:
		return m, m != nil
	case orderedmap.OrderedMap:
		return &m, true
	default:
		return nil, false
	}
}
