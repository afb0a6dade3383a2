// Package geminizod converts between zod-style validation schemas and the flat
// response schema of the Gemini structured-output API.
//
//   - ToGemini: zod.Schema -> *gemini.Schema (forward)
//   - ToZod / Reverse: *gemini.Schema -> zod.Schema, or any tree produced by a
//     caller-supplied Builder (reverse)
//   - ResponseSchemaFromZod / GenerationConfig: wrap the forward result for a
//     request's response-format configuration
//
// Both converters are total: unsupported source constructs become a
// permissive nullable object, unknown target tags become an accept-anything
// leaf. The conversion is lossy on purpose:
//
//   - Optional, Nullable and Default all collapse into "nullable"; only an
//     outermost Optional removes a field from "required".
//   - Literals of any scalar type become a one-element string enum.
//   - INTEGER and NUMBER both reverse to zod.Number.
//   - Enums do not survive the reverse direction.
//
// Typical usage:
//
//	user := zod.Object(
//	    zod.Field("name", zod.String()),
//	    zod.Field("age", zod.Optional(zod.Number())),
//	)
//	cfg := geminizod.GenerationConfig(user)
//	// cfg.ResponseMIMEType == "application/json"
//
//	s, _ := gemini.Load("schema.json")
//	fmt.Println(zod.Format(geminizod.ToZod(s)))
package geminizod
