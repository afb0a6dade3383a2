package jsonschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elransh/gemini-zod/gemini"
	"github.com/Elransh/gemini-zod/jsonschema"
)

const order = `{
  "type": "OBJECT",
  "description": "an order",
  "properties": {
    "id": {"type": "STRING"},
    "status": {"type": "STRING", "enum": ["open", "closed"], "nullable": true},
    "lines": {"type": "ARRAY", "items": {"type": "INTEGER"}},
    "note": {"type": "STRING", "nullable": true}
  },
  "required": ["id", "lines"]
}`

func mustParse(t *testing.T, js string) *gemini.Schema {
	t.Helper()
	s, err := gemini.Parse([]byte(js))
	require.NoError(t, err)
	return s
}

func TestFromGemini_Shape(t *testing.T) {
	out := jsonschema.FromGemini(mustParse(t, order))
	require.NotNil(t, out)

	assert.Equal(t, "object", out.Type)
	assert.Equal(t, "an order", out.Description)
	assert.Equal(t, []string{"id", "lines"}, out.Required)
	require.Len(t, out.Properties, 4)

	assert.Equal(t, "string", out.Properties["id"].Type)
	assert.Empty(t, out.Properties["id"].Types)

	status := out.Properties["status"]
	assert.Empty(t, status.Type)
	assert.Equal(t, []string{"string", "null"}, status.Types)
	assert.Equal(t, []any{"open", "closed", nil}, status.Enum)

	lines := out.Properties["lines"]
	assert.Equal(t, "array", lines.Type)
	require.NotNil(t, lines.Items)
	assert.Equal(t, "integer", lines.Items.Type)

	assert.Nil(t, out.AdditionalProperties)
}

func TestFromGemini_UnknownAndNil(t *testing.T) {
	assert.Nil(t, jsonschema.FromGemini(nil))

	out := jsonschema.FromGemini(&gemini.Schema{Type: "DATE", Description: "when"})
	assert.Empty(t, out.Type)
	assert.Empty(t, out.Types)
	assert.Equal(t, "when", out.Description)
}

func TestDocument_ValidatesInstances(t *testing.T) {
	doc := jsonschema.Document(mustParse(t, order), jsonschema.Options{Strict: true})
	assert.Equal(t, jsonschema.Draft, doc.Schema)

	resolved, err := doc.Resolve(nil)
	require.NoError(t, err)

	good := map[string]any{
		"id":     "o-1",
		"status": nil,
		"lines":  []any{1.0, 2.0},
	}
	assert.NoError(t, resolved.Validate(good))

	missing := map[string]any{"id": "o-1"}
	assert.Error(t, resolved.Validate(missing))

	badEnum := map[string]any{"id": "o-1", "lines": []any{}, "status": "lost"}
	assert.Error(t, resolved.Validate(badEnum))

	extra := map[string]any{"id": "o-1", "lines": []any{}, "color": "red"}
	assert.Error(t, resolved.Validate(extra))
}
