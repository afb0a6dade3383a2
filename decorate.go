package geminizod

import (
	"github.com/Elransh/gemini-zod/gemini"
	"github.com/Elransh/gemini-zod/zod"
)

// decorateGemini copies nullability and description from the source chain
// onto out. A wrapper chain always forces nullable; otherwise an unset
// nullable is filled from the base schema's optionality.
func decorateGemini(out *gemini.Schema, base zod.Schema, mods zod.Modifiers) *gemini.Schema {
	switch {
	case mods.ForcesNullable():
		out.Nullable = true
	case !out.Nullable:
		out.Nullable = zod.IsOptional(base)
	}
	if d := mods.Description; d != "" {
		out.Description = d
	} else if base != nil && base.Description() != "" {
		out.Description = base.Description()
	}
	return out
}

// decorateReverse wraps n in Nullable and attaches the description, in that
// order.
func decorateReverse[N any](n N, s *gemini.Schema, b Builder[N]) N {
	if s.Nullable {
		n = b.Nullable(n)
	}
	if s.Description != "" {
		n = b.Describe(n, s.Description)
	}
	return n
}
