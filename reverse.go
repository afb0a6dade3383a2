package geminizod

import (
	"github.com/Elransh/gemini-zod/gemini"
	"github.com/Elransh/gemini-zod/zod"
)

// Builder constructs source schema nodes of type N for Reverse. Supplying a
// Builder keeps Reverse independent of any particular schema library.
type Builder[N any] interface {
	Array(elem N) N
	Object(fields []Field[N]) N
	String() N
	Number() N
	Boolean() N
	Any() N
	Optional(n N) N
	Nullable(n N) N
	Describe(n N, description string) N
}

// Field is a named object field handed to Builder.Object.
type Field[N any] struct {
	Name string
	Node N
}

// Reverse rebuilds s with b. Properties are visited in insertion order; a
// property missing from Required is wrapped with Optional. Unknown type tags
// and nil nodes become b.Any().
func Reverse[N any](s *gemini.Schema, b Builder[N]) N {
	if s == nil {
		return b.Any()
	}
	var n N
	switch s.Type {
	case gemini.TypeArray:
		n = b.Array(Reverse(s.Items, b))
	case gemini.TypeObject:
		var fields []Field[N]
		if s.Properties != nil {
			fields = make([]Field[N], 0, s.Properties.Len())
			for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
				f := Reverse(pair.Value, b)
				if !s.IsRequired(pair.Key) {
					f = b.Optional(f)
				}
				fields = append(fields, Field[N]{Name: pair.Key, Node: f})
			}
		}
		n = b.Object(fields)
	case gemini.TypeString:
		n = b.String()
	case gemini.TypeNumber, gemini.TypeInteger:
		n = b.Number()
	case gemini.TypeBoolean:
		n = b.Boolean()
	default:
		n = b.Any()
	}
	return decorateReverse(n, s, b)
}

// ToZod converts a Gemini response schema into a zod schema.
func ToZod(s *gemini.Schema) zod.Schema {
	return Reverse[zod.Schema](s, ZodBuilder{})
}

// ZodBuilder builds zod schemas.
type ZodBuilder struct{}

var _ Builder[zod.Schema] = ZodBuilder{}

func (ZodBuilder) Array(elem zod.Schema) zod.Schema { return zod.Array(elem) }

func (ZodBuilder) Object(fields []Field[zod.Schema]) zod.Schema {
	defs := make([]zod.FieldDef, len(fields))
	for i, f := range fields {
		defs[i] = zod.Field(f.Name, f.Node)
	}
	return zod.Object(defs...)
}

func (ZodBuilder) String() zod.Schema                         { return zod.String() }
func (ZodBuilder) Number() zod.Schema                         { return zod.Number() }
func (ZodBuilder) Boolean() zod.Schema                        { return zod.Boolean() }
func (ZodBuilder) Any() zod.Schema                            { return zod.Any() }
func (ZodBuilder) Optional(n zod.Schema) zod.Schema           { return zod.Optional(n) }
func (ZodBuilder) Nullable(n zod.Schema) zod.Schema           { return zod.Nullable(n) }
func (ZodBuilder) Describe(n zod.Schema, d string) zod.Schema { return zod.Describe(n, d) }
