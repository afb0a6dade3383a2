package kubeopenapi

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// defContainers lists the locations local $refs may point into, as JSON
// Pointer prefixes and the key path under the document root.
var defContainers = []struct {
	prefix string
	path   []string
}{
	{"#/$defs/", []string{"$defs"}},
	{"#/definitions/", []string{"definitions"}},
	{"#/components/schemas/", []string{"components", "schemas"}},
}

// defIndex maps "#/..." references to their schema nodes.
type defIndex map[string]*yaml.Node

// extractDefs indexes every local definition of the document.
func extractDefs(doc *yaml.Node) defIndex {
	idx := defIndex{}
	for _, c := range defContainers {
		each(lookupPath(doc, c.path...), func(name string, v *yaml.Node) {
			idx[c.prefix+escapePointer(name)] = v
		})
	}
	return idx
}

// byName finds a definition by its bare name in any container.
func (idx defIndex) byName(name string) (string, *yaml.Node) {
	for _, c := range defContainers {
		ref := c.prefix + escapePointer(name)
		if n, ok := idx[ref]; ok {
			return ref, n
		}
	}
	return "", nil
}

// refName returns the last token of a local reference for messages.
func refName(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return unescapePointer(ref[i+1:])
	}
	return ref
}
