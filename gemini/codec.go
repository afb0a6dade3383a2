package gemini

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
)

// Parse decodes a schema. The input can be raw JSON bytes, a decoded
// map[string]any, a *Schema (deep copied) or any JSON-marshalable value.
// Property order follows the JSON document; decoded Go maps carry no order, so
// their keys come back sorted.
func Parse(v any) (*Schema, error) {
	var data []byte
	switch t := v.(type) {
	case nil:
		return nil, ErrNilSchema
	case *Schema:
		if t == nil {
			return nil, ErrNilSchema
		}
		return t.Clone(), nil
	case []byte:
		data = t
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return nil, fmt.Errorf("gemini: cannot marshal input: %w", err)
		}
		data = b
	}
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, ErrNilSchema
	}
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("gemini: invalid JSON: %w", err)
	}
	normalizeTypes(&s)
	return &s, nil
}

// Load reads a schema file. Files ending in .yaml or .yml are decoded as YAML,
// everything else as JSON.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gemini: reading %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(data)
	}
}

// Marshal encodes s as compact JSON.
func Marshal(s *Schema) ([]byte, error) { return json.Marshal(s) }

// MarshalIndent encodes s as indented JSON.
func MarshalIndent(s *Schema, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(s, prefix, indent)
}

func normalizeTypes(s *Schema) {
	if s == nil {
		return
	}
	s.Type = ParseType(string(s.Type))
	normalizeTypes(s.Items)
	if s.Properties == nil {
		return
	}
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		normalizeTypes(pair.Value)
	}
}
