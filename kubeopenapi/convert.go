package kubeopenapi

import (
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Elransh/gemini-zod/gemini"
)

type importer struct {
	opts     Options
	defs     defIndex
	d        *simpleDiag
	visiting map[string]bool
}

// placeholder stands for a schema the response format cannot express.
func placeholder() *gemini.Schema {
	return &gemini.Schema{Type: gemini.TypeObject, Nullable: true}
}

func (im *importer) schema(n *yaml.Node, path string) *gemini.Schema {
	n = resolveAlias(n)
	if !isMapping(n) {
		if boolVal(n) {
			// The schema "true" accepts anything.
			return placeholder()
		}
		im.d.warnf("%s: schema is not an object; imported as placeholder", pointer(path))
		return placeholder()
	}

	var out *gemini.Schema
	switch {
	case scalar(lookup(n, "$ref")) != "":
		out = im.ref(scalar(lookup(n, "$ref")), path)
	case lookup(n, "allOf") != nil:
		out = im.allOf(n, path)
	case lookup(n, "oneOf") != nil:
		out = im.union(lookup(n, "oneOf"), path+"/oneOf")
	case lookup(n, "anyOf") != nil:
		out = im.union(lookup(n, "anyOf"), path+"/anyOf")
	default:
		out = im.typed(n, path)
	}

	if d := scalar(lookup(n, "description")); d != "" {
		out.Description = d
	}
	if boolVal(lookup(n, "nullable")) {
		out.Nullable = true
	}
	return out
}

// typed imports a schema that is described by its own keywords.
func (im *importer) typed(n *yaml.Node, path string) *gemini.Schema {
	if boolVal(lookup(n, "x-kubernetes-int-or-string")) {
		im.d.warnf("%s: int-or-string imported as STRING", pointer(path))
		return &gemini.Schema{Type: gemini.TypeString}
	}

	t, nullable := schemaType(lookup(n, "type"))
	if t == "" {
		switch {
		case lookup(n, "properties") != nil || lookup(n, "additionalProperties") != nil ||
			boolVal(lookup(n, "x-kubernetes-preserve-unknown-fields")):
			t = "object"
		case lookup(n, "items") != nil:
			t = "array"
		case lookup(n, "enum") != nil:
			t = "string"
		default:
			return placeholder()
		}
	}

	var out *gemini.Schema
	switch t {
	case "string":
		out = &gemini.Schema{Type: gemini.TypeString, Enum: enumValues(lookup(n, "enum"))}
	case "integer":
		out = &gemini.Schema{Type: gemini.TypeInteger}
	case "number":
		out = &gemini.Schema{Type: gemini.TypeNumber}
	case "boolean":
		out = &gemini.Schema{Type: gemini.TypeBoolean}
	case "array":
		out = &gemini.Schema{Type: gemini.TypeArray}
		if it := lookup(n, "items"); it != nil {
			if it.Kind == yaml.SequenceNode {
				im.d.warnf("%s: tuple items imported from the first element", pointer(path))
				if first := items(it); len(first) > 0 {
					out.Items = im.schema(first[0], path+"/items/0")
				}
			} else {
				out.Items = im.schema(it, path+"/items")
			}
		}
		if out.Items == nil {
			im.d.warnf("%s: array without items; elements imported as placeholder", pointer(path))
			out.Items = placeholder()
		}
	case "object":
		out = im.object(n, path)
	case "null":
		return placeholder()
	default:
		im.d.warnf("%s: unsupported type %q imported as placeholder", pointer(path), t)
		return placeholder()
	}
	if lookup(n, "enum") != nil && t != "string" {
		im.d.warnf("%s: enum on %s dropped", pointer(path), t)
	}
	out.Nullable = out.Nullable || nullable
	return out
}

func (im *importer) object(n *yaml.Node, path string) *gemini.Schema {
	out := &gemini.Schema{Type: gemini.TypeObject}
	props := lookup(n, "properties")
	each(props, func(name string, v *yaml.Node) {
		out.SetProperty(name, im.schema(v, path+"/properties/"+escapePointer(name)))
	})
	if out.Properties == nil {
		if ap := lookup(n, "additionalProperties"); ap != nil && !(ap.Kind == yaml.ScalarNode && ap.Value == "false") {
			im.d.warnf("%s: additionalProperties cannot be expressed; map values are dropped", pointer(path))
		} else if boolVal(lookup(n, "x-kubernetes-preserve-unknown-fields")) {
			im.d.warnf("%s: preserved unknown fields cannot be expressed", pointer(path))
		}
	}

	seen := map[string]bool{}
	for _, r := range items(lookup(n, "required")) {
		name := r.Value
		switch {
		case seen[name]:
			continue
		case lookup(props, name) == nil:
			im.d.warnf("%s: required property %q is not declared; dropped", pointer(path), name)
			continue
		}
		seen[name] = true
		out.Required = append(out.Required, name)
	}

	if im.opts.NullableOptional && out.Properties != nil {
		for pair := out.Properties.Oldest(); pair != nil; pair = pair.Next() {
			if !seen[pair.Key] {
				pair.Value.Nullable = true
			}
		}
	}
	return out
}

func (im *importer) ref(ref, path string) *gemini.Schema {
	def, ok := im.defs[ref]
	if !ok {
		im.d.warnf("%s: $ref %q not found; imported as placeholder", pointer(path), ref)
		return placeholder()
	}
	if im.visiting[ref] {
		im.d.warnf("%s: cyclic $ref to %s; imported as placeholder", pointer(path), refName(ref))
		return placeholder()
	}
	im.visiting[ref] = true
	defer delete(im.visiting, ref)
	return im.schema(def, ref[1:])
}

// allOf merges the branches: object properties and required names are
// combined, the first branch fixes the type.
func (im *importer) allOf(n *yaml.Node, path string) *gemini.Schema {
	var out *gemini.Schema
	for i, b := range items(lookup(n, "allOf")) {
		part := im.schema(b, path+"/allOf/"+strconv.Itoa(i))
		if out == nil {
			out = part
			continue
		}
		mergeInto(out, part)
	}
	if out == nil {
		return placeholder()
	}
	// Sibling keywords refine the merged result.
	if isMapping(n) && (lookup(n, "properties") != nil || lookup(n, "type") != nil) {
		mergeInto(out, im.typed(n, path))
	}
	return out
}

func mergeInto(dst, src *gemini.Schema) {
	if dst.Type != src.Type {
		return
	}
	if dst.Description == "" {
		dst.Description = src.Description
	}
	if src.Properties != nil {
		for pair := src.Properties.Oldest(); pair != nil; pair = pair.Next() {
			dst.SetProperty(pair.Key, pair.Value)
		}
	}
	for _, r := range src.Required {
		if !dst.IsRequired(r) {
			dst.Required = append(dst.Required, r)
		}
	}
	if dst.Items == nil {
		dst.Items = src.Items
	}
}

func (im *importer) union(branches *yaml.Node, path string) *gemini.Schema {
	bs := items(branches)
	if len(bs) == 0 {
		return placeholder()
	}
	if len(bs) == 1 || im.opts.Ambiguity == AmbiguityFirstBranch {
		if len(bs) > 1 {
			im.d.warnf("%s: %d branches; imported the first", pointer(path), len(bs))
		}
		return im.schema(bs[0], path+"/0")
	}
	im.d.warnf("%s: union of %d branches imported as placeholder", pointer(path), len(bs))
	return placeholder()
}

// schemaType reads "type", which may also be an OpenAPI 3.1 list such as
// [string, "null"].
func schemaType(n *yaml.Node) (t string, nullable bool) {
	if n == nil {
		return "", false
	}
	if n.Kind != yaml.SequenceNode {
		return n.Value, false
	}
	for _, c := range items(n) {
		if c.Value == "null" {
			nullable = true
		} else if t == "" {
			t = c.Value
		}
	}
	return t, nullable
}

func enumValues(n *yaml.Node) []string {
	var out []string
	for _, c := range items(n) {
		if isNull(c) {
			continue
		}
		out = append(out, c.Value)
	}
	return out
}

func pointer(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
