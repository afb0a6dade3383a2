package gemini

import (
	"slices"
	"sort"

	"google.golang.org/genai"
)

// ToGenAI converts s into the Go SDK representation. Property order is
// carried in PropertyOrdering, which the API honors when generating output.
func ToGenAI(s *Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:        genai.Type(s.Type),
		Description: s.Description,
		Enum:        slices.Clone(s.Enum),
		Required:    slices.Clone(s.Required),
		Items:       ToGenAI(s.Items),
	}
	if s.Nullable {
		nullable := true
		out.Nullable = &nullable
	}
	if s.Properties != nil {
		out.Properties = make(map[string]*genai.Schema, s.Properties.Len())
		out.PropertyOrdering = make([]string, 0, s.Properties.Len())
		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			out.Properties[pair.Key] = ToGenAI(pair.Value)
			out.PropertyOrdering = append(out.PropertyOrdering, pair.Key)
		}
	}
	return out
}

// FromGenAI converts an SDK schema back. Properties listed in PropertyOrdering
// come first in that order, the rest follow sorted by name. Fields the flat
// format cannot express (formats, ranges, anyOf, ...) are dropped.
func FromGenAI(g *genai.Schema) *Schema {
	if g == nil {
		return nil
	}
	out := &Schema{
		Type:        ParseType(string(g.Type)),
		Description: g.Description,
		Nullable:    g.Nullable != nil && *g.Nullable,
		Enum:        slices.Clone(g.Enum),
		Required:    slices.Clone(g.Required),
		Items:       FromGenAI(g.Items),
	}
	if g.Properties != nil {
		out.Properties = NewProperties()
		for _, name := range g.PropertyOrdering {
			if p, ok := g.Properties[name]; ok {
				out.Properties.Set(name, FromGenAI(p))
			}
		}
		rest := make([]string, 0, len(g.Properties))
		for name := range g.Properties {
			if _, done := out.Properties.Get(name); !done {
				rest = append(rest, name)
			}
		}
		sort.Strings(rest)
		for _, name := range rest {
			out.Properties.Set(name, FromGenAI(g.Properties[name]))
		}
	}
	return out
}
