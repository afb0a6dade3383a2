package geminizod

import (
	"fmt"
	"reflect"

	"github.com/spf13/cast"

	"github.com/Elransh/gemini-zod/gemini"
	"github.com/Elransh/gemini-zod/zod"
)

// ToGemini converts a zod schema into a Gemini response schema. It never
// fails: constructs without a Gemini counterpart become a nullable object
// with no properties.
func ToGemini(s zod.Schema) *gemini.Schema {
	base, mods := zod.Unwrap(s)
	return decorateGemini(convertBase(base), base, mods)
}

// convertBase builds the target node for a schema that carries no wrapper.
func convertBase(s zod.Schema) *gemini.Schema {
	switch zod.KindOf(s) {
	case zod.KindArray:
		return &gemini.Schema{
			Type:  gemini.TypeArray,
			Items: ToGemini(s.(*zod.ArraySchema).Element()),
		}
	case zod.KindObject:
		return convertObject(s.(*zod.ObjectSchema))
	case zod.KindString:
		return &gemini.Schema{Type: gemini.TypeString}
	case zod.KindNumber:
		return &gemini.Schema{Type: gemini.TypeNumber}
	case zod.KindBoolean:
		return &gemini.Schema{Type: gemini.TypeBoolean}
	case zod.KindEnum:
		return &gemini.Schema{Type: gemini.TypeString, Enum: s.(*zod.EnumSchema).Values()}
	case zod.KindLiteral:
		// Every literal becomes a string enum, whatever its scalar type.
		return &gemini.Schema{
			Type: gemini.TypeString,
			Enum: []string{literalString(s.(*zod.LiteralSchema).Value())},
		}
	default:
		return &gemini.Schema{Type: gemini.TypeObject, Nullable: true}
	}
}

func convertObject(o *zod.ObjectSchema) *gemini.Schema {
	out := &gemini.Schema{Type: gemini.TypeObject, Properties: gemini.NewProperties()}
	for _, f := range o.Fields() {
		out.Properties.Set(f.Name, ToGemini(f.Schema))
		if _, mods := zod.Unwrap(f.Schema); mods.Required() {
			out.Required = append(out.Required, f.Name)
		}
	}
	return out
}

// literalString renders a literal value as an enum member. Named string types
// keep their value; a nil literal renders as "null".
func literalString(v any) string {
	if v == nil {
		return "null"
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return rv.String()
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}
