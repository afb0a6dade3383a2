package gemini_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Elransh/gemini-zod/gemini"
)

const userJSON = `{
  "type": "object",
  "description": "a user",
  "properties": {
    "name": {"type": "STRING"},
    "age": {"type": "integer", "nullable": true},
    "tags": {"type": "ARRAY", "items": {"type": "STRING", "enum": ["a", "b"]}}
  },
  "required": ["name", "tags"]
}`

func TestParse_JSONKeepsOrderAndNormalizesTypes(t *testing.T) {
	s, err := gemini.Parse([]byte(userJSON))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s.Type != gemini.TypeObject || s.Description != "a user" {
		t.Fatalf("unexpected root: %+v", s)
	}
	if got := s.PropertyNames(); !reflect.DeepEqual(got, []string{"name", "age", "tags"}) {
		t.Fatalf("property order lost: %v", got)
	}
	age, _ := s.Property("age")
	if age.Type != gemini.TypeInteger || !age.Nullable {
		t.Fatalf("unexpected age: %+v", age)
	}
	tags, _ := s.Property("tags")
	if tags.Items == nil || !reflect.DeepEqual(tags.Items.Enum, []string{"a", "b"}) {
		t.Fatalf("unexpected tags: %+v", tags)
	}
	if !reflect.DeepEqual(s.Required, []string{"name", "tags"}) {
		t.Fatalf("unexpected required: %v", s.Required)
	}
}

func TestParse_InputShapes(t *testing.T) {
	fromMap, err := gemini.Parse(map[string]any{
		"type":       "OBJECT",
		"properties": map[string]any{"b": map[string]any{"type": "string"}, "a": map[string]any{"type": "number"}},
	})
	if err != nil {
		t.Fatalf("parse map: %v", err)
	}
	if got := fromMap.PropertyNames(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("map input should come back sorted: %v", got)
	}

	orig := &gemini.Schema{Type: gemini.TypeString}
	copied, err := gemini.Parse(orig)
	if err != nil || copied == orig || !copied.Equal(orig) {
		t.Fatalf("*Schema input should be deep copied: %v %v", copied, err)
	}

	for _, in := range []any{nil, []byte(""), []byte("null"), (*gemini.Schema)(nil)} {
		if _, err := gemini.Parse(in); !errors.Is(err, gemini.ErrNilSchema) {
			t.Fatalf("expected ErrNilSchema for %#v, got %v", in, err)
		}
	}
	if _, err := gemini.Parse([]byte(`{"type":`)); err == nil {
		t.Fatalf("expected invalid JSON error")
	}
}

func TestMarshal_EmptyPropertiesAndOmittedFields(t *testing.T) {
	s := &gemini.Schema{Type: gemini.TypeObject, Properties: gemini.NewProperties()}
	b, err := gemini.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"type":"OBJECT","properties":{}}` {
		t.Fatalf("unexpected JSON: %s", b)
	}

	b, err = gemini.Marshal(&gemini.Schema{Type: gemini.TypeObject, Nullable: true})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"type":"OBJECT","nullable":true}` {
		t.Fatalf("unexpected JSON: %s", b)
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	s, err := gemini.Parse([]byte(userJSON))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	b, err := gemini.MarshalIndent(s, "", "  ")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := gemini.Parse(b)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if !back.Equal(s) {
		t.Fatalf("JSON round trip changed the schema:\n%s", b)
	}
}

const userYAML = `
type: object
properties:
  zeta:
    type: string
    description: last letter
  alpha:
    type: array
    items:
      type: number
required: [zeta]
`

func TestParseYAML_KeepsOrder(t *testing.T) {
	s, err := gemini.ParseYAML([]byte(userYAML))
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}
	if got := s.PropertyNames(); !reflect.DeepEqual(got, []string{"zeta", "alpha"}) {
		t.Fatalf("property order lost: %v", got)
	}
	zeta, _ := s.Property("zeta")
	if zeta.Type != gemini.TypeString || zeta.Description != "last letter" {
		t.Fatalf("unexpected zeta: %+v", zeta)
	}
	alpha, _ := s.Property("alpha")
	if alpha.Items == nil || alpha.Items.Type != gemini.TypeNumber {
		t.Fatalf("unexpected alpha: %+v", alpha)
	}

	if _, err := gemini.ParseYAML([]byte("")); !errors.Is(err, gemini.ErrNilSchema) {
		t.Fatalf("expected ErrNilSchema, got %v", err)
	}
	if _, err := gemini.ParseYAML([]byte("type: [unterminated")); err == nil {
		t.Fatalf("expected YAML error")
	}
}

func TestParseYAML_KeepsScalarText(t *testing.T) {
	s, err := gemini.ParseYAML([]byte("type: STRING\ndescription: 2024-01-02\nnullable: true\nenum: [2024-01-02, yes, 2001-12-14t21:59:43.10-05:00, !!binary aGk=]\n"))
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}
	if s.Description != "2024-01-02" {
		t.Fatalf("description rewritten: %q", s.Description)
	}
	want := []string{"2024-01-02", "yes", "2001-12-14t21:59:43.10-05:00", "aGk="}
	if !reflect.DeepEqual(s.Enum, want) {
		t.Fatalf("enum rewritten: %q", s.Enum)
	}
	if !s.Nullable {
		t.Fatalf("bool scalar not decoded")
	}
}

func TestMarshalYAML_RoundTrip(t *testing.T) {
	s, err := gemini.ParseYAML([]byte(userYAML))
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}
	out, err := yaml.Marshal(s)
	if err != nil {
		t.Fatalf("marshal yaml: %v", err)
	}
	if strings.Index(string(out), "zeta") > strings.Index(string(out), "alpha") {
		t.Fatalf("YAML output lost property order:\n%s", out)
	}
	back, err := gemini.ParseYAML(out)
	if err != nil {
		t.Fatalf("reparse yaml: %v", err)
	}
	if !back.Equal(s) {
		t.Fatalf("YAML round trip changed the schema:\n%s", out)
	}
}

func TestLoad_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "user.json")
	yamlPath := filepath.Join(dir, "user.YML")
	if err := os.WriteFile(jsonPath, []byte(userJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(yamlPath, []byte(userYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	js, err := gemini.Load(jsonPath)
	if err != nil || js.Description != "a user" {
		t.Fatalf("load json: %v %+v", err, js)
	}
	ys, err := gemini.Load(yamlPath)
	if err != nil || len(ys.PropertyNames()) != 2 {
		t.Fatalf("load yaml: %v %+v", err, ys)
	}
	if _, err := gemini.Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
