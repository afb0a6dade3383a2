// Package zod models zod-style validation schemas as an immutable tree.
//
// Nodes are created with constructors (String, Object, Optional, ...) and are
// never mutated afterwards: Describe and the modifier constructors return new
// nodes. The set of node types is closed. KindOf classifies every node, and
// constructs without a dedicated type (unions, records, tuples, ...) are
// represented by Unrecognized.
//
// Example
//
//	user := zod.Object(
//	    zod.Field("id", zod.String()),
//	    zod.Field("nickname", zod.Optional(zod.String())),
//	    zod.Field("role", zod.Enum("admin", "member")),
//	    zod.Field("tags", zod.Array(zod.String())),
//	)
//	fmt.Println(zod.Format(user))
package zod

// Schema is a node of the source schema tree. A nil node, typed or untyped,
// is treated as an unrecognized construct.
type Schema interface {
	// Description returns the human readable description attached with
	// Describe, or "".
	Description() string

	withDescription(d string) Schema
}

type meta struct{ description string }

func (m meta) Description() string { return m.description }

// FieldDef is a named object field.
type FieldDef struct {
	Name   string
	Schema Schema
}

// Field pairs a field name with its schema for Object.
func Field(name string, s Schema) FieldDef { return FieldDef{Name: name, Schema: s} }

// StringSchema accepts strings.
type StringSchema struct{ meta }

// NumberSchema accepts numbers.
type NumberSchema struct{ meta }

// BooleanSchema accepts booleans.
type BooleanSchema struct{ meta }

// AnySchema accepts any value, including a missing one.
type AnySchema struct{ meta }

// ArraySchema accepts arrays whose elements match a single element schema.
type ArraySchema struct {
	meta
	elem Schema
}

// ObjectSchema accepts objects with a fixed, ordered set of fields.
type ObjectSchema struct {
	meta
	fields []FieldDef
}

// EnumSchema accepts one of a fixed list of strings.
type EnumSchema struct {
	meta
	values []string
}

// LiteralSchema accepts exactly one scalar value.
type LiteralSchema struct {
	meta
	value any
}

// OptionalSchema accepts a missing value in addition to its inner schema.
type OptionalSchema struct {
	meta
	inner Schema
}

// NullableSchema accepts null in addition to its inner schema.
type NullableSchema struct {
	meta
	inner Schema
}

// DefaultSchema substitutes a default value when the input is missing.
type DefaultSchema struct {
	meta
	inner Schema
	value any
}

// UnrecognizedSchema stands for any construct this package does not model.
type UnrecognizedSchema struct {
	meta
	name string
}

// String returns a string schema.
func String() *StringSchema { return &StringSchema{} }

// Number returns a number schema.
func Number() *NumberSchema { return &NumberSchema{} }

// Boolean returns a boolean schema.
func Boolean() *BooleanSchema { return &BooleanSchema{} }

// Any returns a schema that accepts everything.
func Any() *AnySchema { return &AnySchema{} }

// Array returns an array schema with the given element schema.
func Array(elem Schema) *ArraySchema { return &ArraySchema{elem: elem} }

// Object returns an object schema. Fields keep their declaration order; a
// repeated name keeps the position of its first declaration and the schema of
// its last one.
func Object(fields ...FieldDef) *ObjectSchema {
	out := make([]FieldDef, 0, len(fields))
	pos := make(map[string]int, len(fields))
	for _, f := range fields {
		if i, ok := pos[f.Name]; ok {
			out[i].Schema = f.Schema
			continue
		}
		pos[f.Name] = len(out)
		out = append(out, f)
	}
	return &ObjectSchema{fields: out}
}

// Enum returns an enumeration over the given values. An enum without values
// places no constraint on the string and converts to a plain STRING.
func Enum(values ...string) *EnumSchema {
	return &EnumSchema{values: append([]string{}, values...)}
}

// Literal returns a schema accepting only v.
func Literal(v any) *LiteralSchema { return &LiteralSchema{value: v} }

// Optional marks s as accepting a missing value.
func Optional(s Schema) *OptionalSchema { return &OptionalSchema{inner: s} }

// Nullable marks s as accepting null.
func Nullable(s Schema) *NullableSchema { return &NullableSchema{inner: s} }

// Default wraps s with a default value.
func Default(s Schema, v any) *DefaultSchema { return &DefaultSchema{inner: s, value: v} }

// Unrecognized returns a placeholder for a construct named name (for example
// "union" or "record").
func Unrecognized(name string) *UnrecognizedSchema { return &UnrecognizedSchema{name: name} }

// Describe returns a copy of s carrying description d.
func Describe(s Schema, d string) Schema {
	if IsNil(s) {
		return nil
	}
	return s.withDescription(d)
}

// Element returns the element schema.
func (a *ArraySchema) Element() Schema { return a.elem }

// Fields returns the fields in declaration order.
func (o *ObjectSchema) Fields() []FieldDef { return append([]FieldDef(nil), o.fields...) }

// Len returns the number of fields.
func (o *ObjectSchema) Len() int { return len(o.fields) }

// Field looks a field up by name.
func (o *ObjectSchema) Field(name string) (Schema, bool) {
	for _, f := range o.fields {
		if f.Name == name {
			return f.Schema, true
		}
	}
	return nil, false
}

// Values returns the enumeration values in order.
func (e *EnumSchema) Values() []string { return append([]string(nil), e.values...) }

// Value returns the literal value.
func (l *LiteralSchema) Value() any { return l.value }

// Unwrap returns the wrapped schema.
func (o *OptionalSchema) Unwrap() Schema { return o.inner }

// Unwrap returns the wrapped schema.
func (n *NullableSchema) Unwrap() Schema { return n.inner }

// Unwrap returns the wrapped schema.
func (d *DefaultSchema) Unwrap() Schema { return d.inner }

// DefaultValue returns the value used when input is missing.
func (d *DefaultSchema) DefaultValue() any { return d.value }

// Name returns the construct name given to Unrecognized.
func (u *UnrecognizedSchema) Name() string { return u.name }

func (s *StringSchema) withDescription(d string) Schema  { return &StringSchema{meta{d}} }
func (s *NumberSchema) withDescription(d string) Schema  { return &NumberSchema{meta{d}} }
func (s *BooleanSchema) withDescription(d string) Schema { return &BooleanSchema{meta{d}} }
func (s *AnySchema) withDescription(d string) Schema     { return &AnySchema{meta{d}} }
func (s *ArraySchema) withDescription(d string) Schema   { return &ArraySchema{meta{d}, s.elem} }
func (s *ObjectSchema) withDescription(d string) Schema  { return &ObjectSchema{meta{d}, s.fields} }
func (s *EnumSchema) withDescription(d string) Schema    { return &EnumSchema{meta{d}, s.values} }
func (s *LiteralSchema) withDescription(d string) Schema { return &LiteralSchema{meta{d}, s.value} }

func (s *OptionalSchema) withDescription(d string) Schema { return &OptionalSchema{meta{d}, s.inner} }
func (s *NullableSchema) withDescription(d string) Schema { return &NullableSchema{meta{d}, s.inner} }
func (s *DefaultSchema) withDescription(d string) Schema {
	return &DefaultSchema{meta{d}, s.inner, s.value}
}
func (s *UnrecognizedSchema) withDescription(d string) Schema {
	return &UnrecognizedSchema{meta{d}, s.name}
}

// IsNil reports whether s is nil or a nil pointer of one of the node types.
func IsNil(s Schema) bool {
	switch t := s.(type) {
	case nil:
		return true
	case *StringSchema:
		return t == nil
	case *NumberSchema:
		return t == nil
	case *BooleanSchema:
		return t == nil
	case *AnySchema:
		return t == nil
	case *ArraySchema:
		return t == nil
	case *ObjectSchema:
		return t == nil
	case *EnumSchema:
		return t == nil
	case *LiteralSchema:
		return t == nil
	case *OptionalSchema:
		return t == nil
	case *NullableSchema:
		return t == nil
	case *DefaultSchema:
		return t == nil
	case *UnrecognizedSchema:
		return t == nil
	}
	return false
}
