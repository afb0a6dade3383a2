// Package gemini models the flat response schema accepted by the Gemini
// structured-output API.
//
// A Schema is a plain tree: objects hold Properties (insertion ordered) and a
// Required list, arrays hold a single Items node. Schemas are decoded from
// JSON or YAML with Parse/ParseYAML/Load, checked with Check and bridged to the
// official SDK with ToGenAI/FromGenAI.
package gemini

import (
	"slices"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Type is the discriminating type tag of a schema node.
type Type string

const (
	TypeObject  Type = "OBJECT"
	TypeArray   Type = "ARRAY"
	TypeString  Type = "STRING"
	TypeNumber  Type = "NUMBER"
	TypeInteger Type = "INTEGER"
	TypeBoolean Type = "BOOLEAN"
)

// Known reports whether t is one of the six supported tags.
func (t Type) Known() bool {
	switch t {
	case TypeObject, TypeArray, TypeString, TypeNumber, TypeInteger, TypeBoolean:
		return true
	}
	return false
}

// ParseType normalizes a type tag. Known tags are accepted in any letter case
// ("string" is what the JavaScript SDK emits); unknown tags are kept verbatim.
func ParseType(s string) Type {
	if t := Type(strings.ToUpper(s)); t.Known() {
		return t
	}
	return Type(s)
}

// Properties is the insertion-ordered property map of an object schema.
type Properties = orderedmap.OrderedMap[string, *Schema]

// NewProperties returns an empty property map.
func NewProperties() *Properties { return orderedmap.New[string, *Schema]() }

// Schema is a node of the response schema tree.
type Schema struct {
	Type        Type        `json:"type,omitempty"`
	Description string      `json:"description,omitempty"`
	Nullable    bool        `json:"nullable,omitempty"`
	Enum        []string    `json:"enum,omitempty"`
	Properties  *Properties `json:"properties,omitempty"`
	Required    []string    `json:"required,omitempty"`
	Items       *Schema     `json:"items,omitempty"`
}

// PropertyNames returns property names in insertion order.
func (s *Schema) PropertyNames() []string {
	if s == nil || s.Properties == nil {
		return nil
	}
	names := make([]string, 0, s.Properties.Len())
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Property looks up a property by name.
func (s *Schema) Property(name string) (*Schema, bool) {
	if s == nil || s.Properties == nil {
		return nil, false
	}
	return s.Properties.Get(name)
}

// SetProperty adds or replaces a property, creating the map when needed.
// Replacing keeps the original position.
func (s *Schema) SetProperty(name string, p *Schema) {
	if s.Properties == nil {
		s.Properties = NewProperties()
	}
	s.Properties.Set(name, p)
}

// IsRequired reports whether name is listed in Required.
func (s *Schema) IsRequired(name string) bool {
	return s != nil && slices.Contains(s.Required, name)
}

// Clone returns a deep copy of s.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	c := &Schema{
		Type:        s.Type,
		Description: s.Description,
		Nullable:    s.Nullable,
		Enum:        slices.Clone(s.Enum),
		Required:    slices.Clone(s.Required),
		Items:       s.Items.Clone(),
	}
	if s.Properties != nil {
		c.Properties = NewProperties()
		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			c.Properties.Set(pair.Key, pair.Value.Clone())
		}
	}
	return c
}

// Equal reports whether s and o describe the same tree. Property order is
// significant; an absent Required list equals an empty one, while absent and
// empty Properties differ.
func (s *Schema) Equal(o *Schema) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.Type != o.Type || s.Description != o.Description || s.Nullable != o.Nullable {
		return false
	}
	if !slices.Equal(s.Enum, o.Enum) || !slices.Equal(s.Required, o.Required) {
		return false
	}
	if !s.Items.Equal(o.Items) {
		return false
	}
	if (s.Properties == nil) != (o.Properties == nil) {
		return false
	}
	if s.Properties == nil {
		return true
	}
	if s.Properties.Len() != o.Properties.Len() {
		return false
	}
	a, b := s.Properties.Oldest(), o.Properties.Oldest()
	for ; a != nil && b != nil; a, b = a.Next(), b.Next() {
		if a.Key != b.Key || !a.Value.Equal(b.Value) {
			return false
		}
	}
	return true
}
