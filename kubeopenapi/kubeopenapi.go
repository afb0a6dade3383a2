// Package kubeopenapi imports OpenAPI v3 schemas, such as the
// openAPIV3Schema of a Kubernetes CustomResourceDefinition, as Gemini
// response schemas.
//
// Property order follows the source document. Constructs the response format
// cannot express (maps, unions, recursive $refs, ...) are imported as
// placeholders and reported through Diag.
package kubeopenapi

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/Elransh/gemini-zod/gemini"
)

var (
	// ErrEmptyDocument is returned when the input holds no schema document.
	ErrEmptyDocument = errors.New("kubeopenapi: empty document")
	// ErrRefNotFound is returned when Options.Ref names no definition.
	ErrRefNotFound = errors.New("kubeopenapi: definition not found")
	// ErrNotFound is returned when a bundle holds no matching CRD.
	ErrNotFound = errors.New("kubeopenapi: CRD not found in YAML bundle")
)

// Import converts an OpenAPI v3 schema into a Gemini response schema.
// The input can be raw JSON or YAML bytes, a *yaml.Node, or any value that
// marshals to JSON (decoded maps carry no order, so their keys come back
// sorted). A CRD document is unwrapped to the openAPIV3Schema of the selected
// version.
func Import(schema any, opts Options) (*gemini.Schema, Diag, error) {
	d := &simpleDiag{}
	root, err := toNode(schema)
	if err != nil {
		return nil, d, err
	}
	s, err := importNode(root, opts, d)
	return s, d, err
}

func toNode(v any) (*yaml.Node, error) {
	var data []byte
	switch t := v.(type) {
	case nil:
		return nil, ErrEmptyDocument
	case *yaml.Node:
		if t.Kind == yaml.DocumentNode {
			if len(t.Content) == 0 {
				return nil, ErrEmptyDocument
			}
			return t.Content[0], nil
		}
		return t, nil
	case []byte:
		data = t
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return nil, fmt.Errorf("kubeopenapi: cannot marshal input: %w", err)
		}
		data = b
	}
	n, err := NewStrictYAMLReader(bytes.NewReader(data)).Next()
	if errors.Is(err, io.EOF) || (err == nil && n == nil) {
		return nil, ErrEmptyDocument
	}
	if err != nil {
		return nil, fmt.Errorf("kubeopenapi: invalid document: %w", err)
	}
	return n, nil
}

func importNode(doc *yaml.Node, opts Options, d *simpleDiag) (*gemini.Schema, error) {
	defs := extractDefs(doc)
	root := doc
	path := ""
	switch {
	case opts.Ref != "":
		ref, n := defs.byName(opts.Ref)
		if n == nil {
			return nil, fmt.Errorf("%w: %s", ErrRefNotFound, opts.Ref)
		}
		root, path = n, ref[1:]
	case lookup(doc, "openAPIV3Schema") != nil:
		root = lookup(doc, "openAPIV3Schema")
	case scalar(lookup(doc, "kind")) == "CustomResourceDefinition":
		root = unwrapCRDSchema(doc, opts.Version)
		if root == nil {
			return nil, fmt.Errorf("kubeopenapi: CRD %q has no openAPIV3Schema", scalar(lookupPath(doc, "metadata", "name")))
		}
	}

	warnNonObjectRoot(root, d)
	im := &importer{opts: opts, defs: defs, d: d, visiting: map[string]bool{}}
	if path != "" {
		im.visiting["#"+path] = true
	}
	return im.schema(root, path), nil
}

// unwrapCRDSchema extracts openAPIV3Schema from a Kubernetes CRD document.
// It picks the named version when given, otherwise the storage version, then
// the first served one, then the first one. Legacy spec.validation is used
// when there are no per-version schemas.
func unwrapCRDSchema(root *yaml.Node, version string) *yaml.Node {
	var storage, served, first *yaml.Node
	for _, v := range items(lookupPath(root, "spec", "versions")) {
		oas := lookupPath(v, "schema", "openAPIV3Schema")
		if oas == nil {
			continue
		}
		if version != "" {
			if scalar(lookup(v, "name")) == version {
				return oas
			}
			continue
		}
		if storage == nil && boolVal(lookup(v, "storage")) {
			storage = oas
		}
		if served == nil && (lookup(v, "served") == nil || boolVal(lookup(v, "served"))) {
			served = oas
		}
		if first == nil {
			first = oas
		}
	}
	for _, n := range []*yaml.Node{storage, served, first} {
		if n != nil {
			return n
		}
	}
	if version != "" {
		return nil
	}
	return lookupPath(root, "spec", "validation", "openAPIV3Schema")
}

// warnNonObjectRoot warns when the root declares a non-object type.
func warnNonObjectRoot(doc *yaml.Node, d *simpleDiag) {
	if t := scalar(lookup(doc, "type")); t != "object" && t != "" {
		d.warnf("root type is %q; response schemas are usually objects", t)
	}
}
