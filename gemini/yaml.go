package gemini

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML schema document. Mapping order is preserved, so
// properties keep the order they are written in.
func ParseYAML(data []byte) (*Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("gemini: invalid YAML: %w", err)
	}
	if doc.Kind == 0 || (doc.Kind == yaml.DocumentNode && len(doc.Content) == 0) {
		return nil, ErrNilSchema
	}
	buf := &bytes.Buffer{}
	if err := yamlNodeToJSON(buf, &doc); err != nil {
		return nil, fmt.Errorf("gemini: invalid YAML: %w", err)
	}
	return Parse(buf.Bytes())
}

// yamlNodeToJSON re-encodes a YAML node tree as JSON, keeping mapping order.
func yamlNodeToJSON(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return yamlNodeToJSON(buf, n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil {
			return errors.New("dangling alias")
		}
		return yamlNodeToJSON(buf, n.Alias)
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(n.Content[i].Value)
			if err != nil {
				return err
			}
			buf.Write(k)
			buf.WriteByte(':')
			if err := yamlNodeToJSON(buf, n.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, c := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := yamlNodeToJSON(buf, c); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case yaml.ScalarNode:
		// Only JSON-typed scalars are decoded; everything else (timestamps,
		// binary, custom tags) keeps its source text.
		var v any = n.Value
		switch n.ShortTag() {
		case "!!int", "!!float", "!!bool", "!!null":
			if err := n.Decode(&v); err != nil {
				return err
			}
		}
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	}
	return fmt.Errorf("unsupported YAML node kind %d", n.Kind)
}

// MarshalYAML emits s as an ordered YAML mapping.
func (s *Schema) MarshalYAML() (any, error) {
	return s.yamlNode(), nil
}

func (s *Schema) yamlNode() *yaml.Node {
	if s == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	add := func(key string, v *yaml.Node) {
		m.Content = append(m.Content, yamlString(key), v)
	}
	if s.Type != "" {
		add("type", yamlString(string(s.Type)))
	}
	if s.Description != "" {
		add("description", yamlString(s.Description))
	}
	if s.Nullable {
		add("nullable", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(true)})
	}
	if len(s.Enum) > 0 {
		add("enum", yamlStrings(s.Enum))
	}
	if s.Properties != nil {
		props := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			props.Content = append(props.Content, yamlString(pair.Key), pair.Value.yamlNode())
		}
		add("properties", props)
	}
	if len(s.Required) > 0 {
		add("required", yamlStrings(s.Required))
	}
	if s.Items != nil {
		add("items", s.Items.yamlNode())
	}
	return m
}

func yamlString(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func yamlStrings(vs []string) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, v := range vs {
		seq.Content = append(seq.Content, yamlString(v))
	}
	return seq
}
