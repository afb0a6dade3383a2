// Package jsonschema exports Gemini response schemas as JSON Schema
// (draft 2020-12), so the same contract can validate model output with any
// JSON Schema tooling.
package jsonschema

import (
	"strings"

	js "github.com/google/jsonschema-go/jsonschema"

	"github.com/Elransh/gemini-zod/gemini"
)

// Draft is the dialect written to "$schema" by Document.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Options tunes the export.
type Options struct {
	// Strict forbids properties not listed in an object schema.
	Strict bool
}

// FromGemini converts s with default options.
func FromGemini(s *gemini.Schema) *js.Schema { return Options{}.Convert(s) }

// Document converts s and marks the root with the draft URI.
func Document(s *gemini.Schema, opts Options) *js.Schema {
	out := opts.Convert(s)
	if out == nil {
		out = &js.Schema{}
	}
	out.Schema = Draft
	return out
}

// Convert maps s onto JSON Schema. Type tags are lowercased; a nullable node
// accepts "null" as a second type (and as an enum member). Unknown tags
// produce a schema without type constraints.
func (o Options) Convert(s *gemini.Schema) *js.Schema {
	if s == nil {
		return nil
	}
	out := &js.Schema{Description: s.Description}
	if s.Type.Known() {
		t := strings.ToLower(string(s.Type))
		if s.Nullable {
			out.Types = []string{t, "null"}
		} else {
			out.Type = t
		}
	}
	if len(s.Enum) > 0 {
		out.Enum = make([]any, 0, len(s.Enum)+1)
		for _, v := range s.Enum {
			out.Enum = append(out.Enum, v)
		}
		if s.Nullable {
			out.Enum = append(out.Enum, nil)
		}
	}
	if s.Items != nil {
		out.Items = o.Convert(s.Items)
	}
	if s.Properties != nil {
		out.Properties = make(map[string]*js.Schema, s.Properties.Len())
		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			out.Properties[pair.Key] = o.Convert(pair.Value)
		}
		if o.Strict {
			out.AdditionalProperties = &js.Schema{Not: &js.Schema{}}
		}
	}
	if len(s.Required) > 0 {
		out.Required = append([]string(nil), s.Required...)
	}
	return out
}
