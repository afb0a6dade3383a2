package zod

// Modifiers summarizes the Optional/Nullable/Default chain that Unwrap peels
// off a schema.
type Modifiers struct {
	Depth int  // number of wrappers peeled
	Outer Kind // outermost wrapper kind; KindUnrecognized when Depth == 0

	Optional   bool
	Nullable   bool
	HasDefault bool
	Default    any // value of the outermost Default wrapper

	// Description is the outermost non-empty description found on a wrapper.
	Description string
}

// Required reports whether a field holding the unwrapped schema is required.
// Only an outermost Optional wrapper removes requiredness; Nullable and Default
// keep the field required.
func (m Modifiers) Required() bool {
	return m.Depth == 0 || m.Outer != KindOptional
}

// ForcesNullable reports whether the chain makes the value nullable. Every
// wrapper kind does.
func (m Modifiers) ForcesNullable() bool { return m.Depth > 0 }

// Unwrap peels every Optional, Nullable and Default wrapper from s and
// returns the innermost schema together with a summary of the chain. A nil
// pointer anywhere in the chain ends it with a nil schema.
func Unwrap(s Schema) (Schema, Modifiers) {
	var m Modifiers
	for {
		if IsNil(s) {
			return nil, m
		}
		var inner Schema
		switch w := s.(type) {
		case *OptionalSchema:
			m.Optional = true
			inner = w.inner
		case *NullableSchema:
			m.Nullable = true
			inner = w.inner
		case *DefaultSchema:
			if !m.HasDefault {
				m.HasDefault = true
				m.Default = w.value
			}
			inner = w.inner
		default:
			return s, m
		}
		if m.Depth == 0 {
			m.Outer = KindOf(s)
		}
		if m.Description == "" {
			m.Description = s.Description()
		}
		m.Depth++
		s = inner
	}
}

// IsOptional reports whether s accepts a missing value.
func IsOptional(s Schema) bool {
	if IsNil(s) {
		return false
	}
	switch t := s.(type) {
	case *OptionalSchema, *DefaultSchema, *AnySchema:
		return true
	case *NullableSchema:
		return IsOptional(t.inner)
	}
	return false
}
