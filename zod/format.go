package zod

import (
	"fmt"
	"strings"
	"unicode"

	json "github.com/goccy/go-json"
)

// Format renders s in zod notation, for example
//
//	z.object({ id: z.string(), tags: z.array(z.string()).optional() })
//
// The output is meant for humans; it is not parsed back.
func Format(s Schema) string {
	b := &strings.Builder{}
	writeSchema(b, s)
	return b.String()
}

func writeSchema(b *strings.Builder, s Schema) {
	if IsNil(s) {
		b.WriteString("z.unknown()")
		return
	}
	switch t := s.(type) {
	case *StringSchema:
		b.WriteString("z.string()")
	case *NumberSchema:
		b.WriteString("z.number()")
	case *BooleanSchema:
		b.WriteString("z.boolean()")
	case *AnySchema:
		b.WriteString("z.any()")
	case *ArraySchema:
		b.WriteString("z.array(")
		writeSchema(b, t.elem)
		b.WriteString(")")
	case *ObjectSchema:
		if len(t.fields) == 0 {
			b.WriteString("z.object({})")
			break
		}
		b.WriteString("z.object({ ")
		for i, f := range t.fields {
			if i > 0 {
				b.WriteString(", ")
			}
			writeKey(b, f.Name)
			b.WriteString(": ")
			writeSchema(b, f.Schema)
		}
		b.WriteString(" })")
	case *EnumSchema:
		b.WriteString("z.enum([")
		for i, v := range t.values {
			if i > 0 {
				b.WriteString(", ")
			}
			writeValue(b, v)
		}
		b.WriteString("])")
	case *LiteralSchema:
		b.WriteString("z.literal(")
		writeValue(b, t.value)
		b.WriteString(")")
	case *OptionalSchema:
		writeSchema(b, t.inner)
		b.WriteString(".optional()")
	case *NullableSchema:
		writeSchema(b, t.inner)
		b.WriteString(".nullable()")
	case *DefaultSchema:
		writeSchema(b, t.inner)
		b.WriteString(".default(")
		writeValue(b, t.value)
		b.WriteString(")")
	case *UnrecognizedSchema:
		b.WriteString("z.unknown()")
		if t.name != "" {
			fmt.Fprintf(b, " /* %s */", t.name)
		}
	}
	if d := s.Description(); d != "" {
		b.WriteString(".describe(")
		writeValue(b, d)
		b.WriteString(")")
	}
}

func writeKey(b *strings.Builder, k string) {
	if isIdent(k) {
		b.WriteString(k)
		return
	}
	writeValue(b, k)
}

func writeValue(b *strings.Builder, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(b, "%v", v)
		return
	}
	b.Write(data)
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || r == '$' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
