// Package gen renders Go source for a Gemini response schema: a struct type
// to decode model output into, and the equivalent zod schema value.
package gen

import (
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"strconv"
	"strings"
	"unicode"

	"github.com/stoewer/go-strcase"

	geminizod "github.com/Elransh/gemini-zod"
	"github.com/Elransh/gemini-zod/gemini"
)

const zodImport = "github.com/Elransh/gemini-zod/zod"

var (
	// ErrPackage is returned for an empty or invalid package name.
	ErrPackage = errors.New("gen: invalid package name")
	// ErrName is returned when the type name cannot form a Go identifier.
	ErrName = errors.New("gen: invalid type name")
)

// Options controls the generated file.
type Options struct {
	Package string // package clause of the generated file
	Name    string // root type name; converted to UpperCamelCase
}

// Render returns a gofmt'ed Go file for s.
func Render(opts Options, s *gemini.Schema) ([]byte, error) {
	if s == nil {
		return nil, gemini.ErrNilSchema
	}
	if !token.IsIdentifier(opts.Package) {
		return nil, fmt.Errorf("%w: %q", ErrPackage, opts.Package)
	}
	name := identifier(opts.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: %q", ErrName, opts.Name)
	}

	r := &renderer{used: map[string]bool{name: true, name + "Schema": true}}
	r.declare(name, s)

	var b strings.Builder
	b.WriteString("// Code generated by geminizod. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", opts.Package)
	fmt.Fprintf(&b, "import %q\n\n", zodImport)
	for _, d := range r.decls {
		b.WriteString(d)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "// %sSchema validates %s values.\n", name, name)
	fmt.Fprintf(&b, "var %sSchema zod.Schema = %s\n", name, geminizod.Reverse[string](s, exprBuilder{}))

	out, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("gen: formatting output: %w", err)
	}
	return out, nil
}

type renderer struct {
	used  map[string]bool
	decls []string
}

// declare emits a named type for s. Types it depends on are declared after
// it.
func (r *renderer) declare(name string, s *gemini.Schema) {
	idx := len(r.decls)
	r.decls = append(r.decls, "")

	var b strings.Builder
	writeComment(&b, "", s.Description)
	if s.Type == gemini.TypeObject && s.Properties != nil && s.Properties.Len() > 0 {
		fmt.Fprintf(&b, "type %s struct {\n", name)
		r.writeFields(&b, name, s)
		b.WriteString("}\n")
	} else {
		fmt.Fprintf(&b, "type %s %s\n", name, r.goType(name, s))
	}
	r.decls[idx] = b.String()
}

func (r *renderer) writeFields(b *strings.Builder, owner string, s *gemini.Schema) {
	seen := map[string]bool{}
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		field := unique(seen, fieldName(pair.Key))
		p := pair.Value
		optional := !s.IsRequired(pair.Key)
		typ := r.goType(owner+field, p)
		if pointerable(p) && (optional || (p != nil && p.Nullable)) {
			typ = "*" + typ
		}
		tag := pair.Key
		if optional {
			tag += ",omitempty"
		}
		if p != nil {
			writeComment(b, "\t", p.Description)
		}
		fmt.Fprintf(b, "\t%s %s %s\n", field, typ, structTag(tag))
	}
}

// goType returns the Go type for s, declaring named struct types for nested
// objects on the way. hint names those types.
func (r *renderer) goType(hint string, s *gemini.Schema) string {
	if s == nil {
		return "any"
	}
	switch s.Type {
	case gemini.TypeString:
		return "string"
	case gemini.TypeNumber:
		return "float64"
	case gemini.TypeInteger:
		return "int64"
	case gemini.TypeBoolean:
		return "bool"
	case gemini.TypeArray:
		return "[]" + r.goType(hint+"Item", s.Items)
	case gemini.TypeObject:
		if s.Properties == nil || s.Properties.Len() == 0 {
			return "map[string]any"
		}
		name := r.typeName(hint)
		r.declare(name, s)
		return name
	default:
		return "any"
	}
}

func (r *renderer) typeName(hint string) string {
	name := hint
	for i := 2; r.used[name]; i++ {
		name = hint + strconv.Itoa(i)
	}
	r.used[name] = true
	return name
}

// pointerable reports whether a missing or null value needs a pointer to be
// told apart from the zero value.
func pointerable(s *gemini.Schema) bool {
	if s == nil {
		return false
	}
	switch s.Type {
	case gemini.TypeString, gemini.TypeNumber, gemini.TypeInteger, gemini.TypeBoolean:
		return true
	case gemini.TypeObject:
		return s.Properties != nil && s.Properties.Len() > 0
	}
	return false
}

func fieldName(key string) string {
	if n := identifier(key); n != "" {
		return n
	}
	return "Field"
}

// identifier turns s into an exported Go identifier, or "" when nothing
// usable is left.
func identifier(s string) string {
	n := strcase.UpperCamelCase(strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, s))
	n = strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, n)
	if n == "" {
		return ""
	}
	if !unicode.IsUpper([]rune(n)[0]) {
		n = "F" + n
	}
	return n
}

func unique(seen map[string]bool, name string) string {
	n := name
	for i := 2; seen[n]; i++ {
		n = name + strconv.Itoa(i)
	}
	seen[n] = true
	return n
}

func structTag(jsonName string) string {
	tag := `json:"` + jsonName + `"`
	if strings.ContainsAny(jsonName, "`\"\\") {
		return strconv.Quote(`json:` + strconv.Quote(jsonName))
	}
	return "`" + tag + "`"
}

func writeComment(b *strings.Builder, indent, text string) {
	if text == "" {
		return
	}
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		fmt.Fprintf(b, "%s// %s\n", indent, strings.TrimRight(line, " \t\r"))
	}
}
