package jsondoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/keboola/go-utils/pkg/orderedmap"
)

// indent is the indentation used when writing documents back.
const indent = "  "

// Encode serializes doc with two-space indentation and a trailing newline.
// Strings are written without HTML escaping, so values such as "a && b" or
// ">=8.0.0" keep their bytes.
func Encode(doc *orderedmap.OrderedMap) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, doc, 0); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v any, depth int) error {
	if m, ok := asObject(v); ok {
		return encodeObject(buf, m, depth)
	}
	if list, ok := v.([]any); ok {
		return encodeArray(buf, list, depth)
	}
	return encodeLeaf(buf, v)
}

func encodeObject(buf *bytes.Buffer, m *orderedmap.OrderedMap, depth int) error {
	keys := m.Keys()
	if len(keys) == 0 {
		buf.WriteString("{}")
		return nil
	}

	buf.WriteString("{\n")
	for i, key := range keys {
		if i > 0 {
			buf.WriteString(",\n")
		}
		buf.WriteString(strings.Repeat(indent, depth+1))
		if err := encodeLeaf(buf, key); err != nil {
			return err
		}
		buf.WriteString(": ")
		value, _ := m.Get(key)
		if err := encodeValue(buf, value, depth+1); err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
	}
	buf.WriteString("\n" + strings.Repeat(indent, depth) + "}")
	return nil
}

func encodeArray(buf *bytes.Buffer, list []any, depth int) error {
	if len(list) == 0 {
		buf.WriteString("[]")
		return nil
	}

	buf.WriteString("[\n")
	for i, item := range list {
		if i > 0 {
			buf.WriteString(",\n")
		}
		buf.WriteString(strings.Repeat(indent, depth+1))
		if err := encodeValue(buf, item, depth+1); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
	}
	buf.WriteString("\n" + strings.Repeat(indent, depth) + "]")
	return nil
}

// encodeLeaf writes a scalar. The encoder appends a newline, which is dropped.
func encodeLeaf(buf *bytes.Buffer, v any) error {
	var leaf bytes.Buffer
	enc := json.NewEncoder(&leaf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(leaf.Bytes(), []byte("\n")))
	return nil
}
