package zod_test

import (
	"testing"

	"github.com/Elransh/gemini-zod/zod"
)

func TestUnwrap_PlainSchema(t *testing.T) {
	s := zod.String()
	base, m := zod.Unwrap(s)
	if base != zod.Schema(s) {
		t.Fatalf("plain schema should come back unchanged")
	}
	if m.Depth != 0 || m.Outer != zod.KindUnrecognized || m.ForcesNullable() || !m.Required() {
		t.Fatalf("unexpected modifiers for plain schema: %+v", m)
	}
}

func TestUnwrap_Chain(t *testing.T) {
	s := zod.Describe(
		zod.Nullable(zod.Describe(zod.Default(zod.Optional(zod.Number()), 3), "inner")),
		"outer",
	)
	base, m := zod.Unwrap(s)
	if zod.KindOf(base) != zod.KindNumber {
		t.Fatalf("unexpected base: %v", zod.KindOf(base))
	}
	if m.Depth != 3 || m.Outer != zod.KindNullable {
		t.Fatalf("unexpected depth/outer: %+v", m)
	}
	if !m.Optional || !m.Nullable || !m.HasDefault || m.Default != 3 {
		t.Fatalf("flags not collected: %+v", m)
	}
	if m.Description != "outer" {
		t.Fatalf("outermost description should win, got %q", m.Description)
	}
	if !m.Required() {
		t.Fatalf("nullable outer wrapper keeps the field required")
	}
	if !m.ForcesNullable() {
		t.Fatalf("wrapped chain forces nullable")
	}
}

func TestUnwrap_InnerDescriptionWhenOuterEmpty(t *testing.T) {
	s := zod.Optional(zod.Describe(zod.Nullable(zod.String()), "inner"))
	_, m := zod.Unwrap(s)
	if m.Description != "inner" {
		t.Fatalf("expected inner wrapper description, got %q", m.Description)
	}
}

func TestModifiers_RequiredRule(t *testing.T) {
	cases := []struct {
		name     string
		s        zod.Schema
		required bool
	}{
		{"optional", zod.Optional(zod.String()), false},
		{"nullable", zod.Nullable(zod.String()), true},
		{"default", zod.Default(zod.String(), "x"), true},
		{"nullable(optional)", zod.Nullable(zod.Optional(zod.String())), true},
		{"optional(nullable)", zod.Optional(zod.Nullable(zod.String())), false},
		{"default(optional)", zod.Default(zod.Optional(zod.String()), "x"), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, m := zod.Unwrap(tc.s)
			if m.Required() != tc.required {
				t.Fatalf("Required mismatch: got=%v want=%v", m.Required(), tc.required)
			}
		})
	}
}

func TestIsOptional(t *testing.T) {
	cases := []struct {
		name string
		s    zod.Schema
		want bool
	}{
		{"string", zod.String(), false},
		{"optional", zod.Optional(zod.String()), true},
		{"default", zod.Default(zod.String(), "x"), true},
		{"nullable", zod.Nullable(zod.String()), false},
		{"nullable(optional)", zod.Nullable(zod.Optional(zod.String())), true},
		{"any", zod.Any(), true},
		{"unrecognized", zod.Unrecognized("union"), false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := zod.IsOptional(tc.s); got != tc.want {
				t.Fatalf("IsOptional mismatch: got=%v want=%v", got, tc.want)
			}
		})
	}
}

func TestUnwrap_TypedNil(t *testing.T) {
	base, m := zod.Unwrap(zod.Nullable((*zod.StringSchema)(nil)))
	if base != nil {
		t.Fatalf("expected nil base, got %T", base)
	}
	if m.Depth != 1 || m.Outer != zod.KindNullable || !m.Required() {
		t.Fatalf("unexpected modifiers: %+v", m)
	}
	if zod.IsOptional((*zod.OptionalSchema)(nil)) {
		t.Fatalf("typed nil should not be optional")
	}
	if zod.Describe((*zod.ArraySchema)(nil), "d") != nil {
		t.Fatalf("describing a typed nil should give nil")
	}
}
