package kubeopenapi

import "fmt"

// AmbiguityStrategy configures how oneOf/anyOf composites are imported. A
// response schema has no union type, so some branch information is lost
// either way.
type AmbiguityStrategy int

const (
	// AmbiguityPlaceholder imports a union as a nullable object without
	// properties.
	AmbiguityPlaceholder AmbiguityStrategy = iota
	// AmbiguityFirstBranch imports the first branch of the union.
	AmbiguityFirstBranch
)

// Options controls import behavior for OpenAPI v3 schemas.
type Options struct {
	// Version selects a CRD version by name. Empty picks the storage
	// version, then the first served one.
	Version string
	// Ref names a schema under $defs, definitions or components.schemas to
	// import instead of the document root.
	Ref string
	// NullableOptional marks properties missing from required as nullable,
	// matching what the zod converter emits for optional fields.
	NullableOptional bool
	Ambiguity        AmbiguityStrategy
}

// Diag carries non-fatal warnings produced during import.
type Diag interface {
	HasWarnings() bool
	Warnings() []string
}

type simpleDiag struct{ ws []string }

func (d *simpleDiag) HasWarnings() bool        { return len(d.ws) > 0 }
func (d *simpleDiag) Warnings() []string       { return append([]string(nil), d.ws...) }
func (d *simpleDiag) warnf(f string, a ...any) { d.ws = append(d.ws, fmt.Sprintf(f, a...)) }
