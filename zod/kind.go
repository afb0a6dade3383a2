package zod

// Kind identifies a schema node type.
type Kind int

const (
	KindUnrecognized Kind = iota
	KindObject
	KindArray
	KindString
	KindNumber
	KindBoolean
	KindEnum
	KindLiteral
	KindOptional
	KindNullable
	KindDefault
	KindAny
)

var kindNames = [...]string{
	KindUnrecognized: "unrecognized",
	KindObject:       "object",
	KindArray:        "array",
	KindString:       "string",
	KindNumber:       "number",
	KindBoolean:      "boolean",
	KindEnum:         "enum",
	KindLiteral:      "literal",
	KindOptional:     "optional",
	KindNullable:     "nullable",
	KindDefault:      "default",
	KindAny:          "any",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unrecognized"
	}
	return kindNames[k]
}

// IsWrapper reports whether k is one of the single-child modifier kinds.
func (k Kind) IsWrapper() bool {
	return k == KindOptional || k == KindNullable || k == KindDefault
}

// KindOf classifies s. A nil schema, typed or not, is unrecognized.
func KindOf(s Schema) Kind {
	if IsNil(s) {
		return KindUnrecognized
	}
	switch s.(type) {
	case *ObjectSchema:
		return KindObject
	case *ArraySchema:
		return KindArray
	case *StringSchema:
		return KindString
	case *NumberSchema:
		return KindNumber
	case *BooleanSchema:
		return KindBoolean
	case *EnumSchema:
		return KindEnum
	case *LiteralSchema:
		return KindLiteral
	case *OptionalSchema:
		return KindOptional
	case *NullableSchema:
		return KindNullable
	case *DefaultSchema:
		return KindDefault
	case *AnySchema:
		return KindAny
	default:
		return KindUnrecognized
	}
}
