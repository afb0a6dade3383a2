package zod_test

import (
	"testing"

	"github.com/Elransh/gemini-zod/zod"
)

func TestKindOf_AllKinds(t *testing.T) {
	cases := []struct {
		name string
		s    zod.Schema
		want zod.Kind
	}{
		{"object", zod.Object(), zod.KindObject},
		{"array", zod.Array(zod.String()), zod.KindArray},
		{"string", zod.String(), zod.KindString},
		{"number", zod.Number(), zod.KindNumber},
		{"boolean", zod.Boolean(), zod.KindBoolean},
		{"enum", zod.Enum("a"), zod.KindEnum},
		{"literal", zod.Literal("x"), zod.KindLiteral},
		{"optional", zod.Optional(zod.String()), zod.KindOptional},
		{"nullable", zod.Nullable(zod.String()), zod.KindNullable},
		{"default", zod.Default(zod.String(), "d"), zod.KindDefault},
		{"any", zod.Any(), zod.KindAny},
		{"unrecognized", zod.Unrecognized("union"), zod.KindUnrecognized},
		{"nil", nil, zod.KindUnrecognized},
		{"typed nil", (*zod.ObjectSchema)(nil), zod.KindUnrecognized},
		{"described", zod.Describe(zod.Number(), "n"), zod.KindNumber},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := zod.KindOf(tc.s); got != tc.want {
				t.Fatalf("KindOf mismatch: got=%v want=%v", got, tc.want)
			}
		})
	}
}

func TestKind_StringAndWrapper(t *testing.T) {
	if zod.KindDefault.String() != "default" {
		t.Fatalf("unexpected name: %q", zod.KindDefault.String())
	}
	if zod.Kind(99).String() != "unrecognized" {
		t.Fatalf("out of range kinds should render as unrecognized")
	}
	for _, k := range []zod.Kind{zod.KindOptional, zod.KindNullable, zod.KindDefault} {
		if !k.IsWrapper() {
			t.Fatalf("%v should be a wrapper", k)
		}
	}
	if zod.KindArray.IsWrapper() || zod.KindAny.IsWrapper() {
		t.Fatalf("array/any are not wrappers")
	}
}
