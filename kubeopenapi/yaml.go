package kubeopenapi

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Elransh/gemini-zod/gemini"
)

// ImportYAMLForCRDKind scans a multi-document YAML (e.g., CRD bundle) and imports
// the first CustomResourceDefinition matching the given spec.names.kind.
func ImportYAMLForCRDKind(data []byte, kind string, opts Options) (*gemini.Schema, Diag, error) {
	return importFromBundle(data, opts, func(doc *yaml.Node) bool {
		return scalar(lookupPath(doc, "spec", "names", "kind")) == kind
	}, "kind "+kind)
}

// ImportYAMLForCRDName scans a multi-document YAML and imports the CRD
// with given metadata.name.
func ImportYAMLForCRDName(data []byte, name string, opts Options) (*gemini.Schema, Diag, error) {
	return importFromBundle(data, opts, func(doc *yaml.Node) bool {
		return scalar(lookupPath(doc, "metadata", "name")) == name
	}, "name "+name)
}

func importFromBundle(data []byte, opts Options, match func(*yaml.Node) bool, what string) (*gemini.Schema, Diag, error) {
	d := &simpleDiag{}
	docs, err := NewStrictYAMLReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, d, fmt.Errorf("kubeopenapi: reading bundle: %w", err)
	}
	for _, doc := range docs {
		if scalar(lookup(doc, "kind")) != "CustomResourceDefinition" || !match(doc) {
			continue
		}
		s, err := importNode(doc, opts, d)
		return s, d, err
	}
	return nil, d, fmt.Errorf("%w: %s", ErrNotFound, what)
}
