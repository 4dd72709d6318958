// Package yamlutil wraps YAML encoding and decoding while preserving
// custom tags (such as CloudFormation's !Ref or !GetAtt) through a
// round-trip. Tagged values decode into the Tagged wrapper and encode back
// to their original tag.
package yamlutil

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tagged wraps a value that carried a custom YAML tag.
type Tagged struct {
	Tag   string
	Value any
}

// Decode parses a YAML document into generic Go values. Nodes with custom
// tags are wrapped in Tagged.
func Decode(data string) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	return nodeToValue(doc.Content[0])
}

// Encode renders v as YAML with two-space indentation. Tagged values are
// emitted with their original tags.
func Encode(v any) (string, error) {
	node, err := valueToNode(v)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return "", fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding yaml: %w", err)
	}
	return b.String(), nil
}

// IsYAMLData reports whether v contains any Tagged values, meaning it can
// only round-trip faithfully through YAML.
func IsYAMLData(v any) bool {
	switch val := v.(type) {
	case Tagged:
		return true
	case map[string]any:
		for _, nested := range val {
			if IsYAMLData(nested) {
				return true
			}
		}
	case []any:
		for _, nested := range val {
			if IsYAMLData(nested) {
				return true
			}
		}
	}
	return false
}

func isCustomTag(tag string) bool {
	return strings.HasPrefix(tag, "!") && !strings.HasPrefix(tag, "!!")
}

func nodeToValue(node *yaml.Node) (any, error) {
	if node.Kind == yaml.AliasNode {
		return nodeToValue(node.Alias)
	}

	custom := isCustomTag(node.Tag)
	tag := node.Tag

	var value any
	switch node.Kind {
	case yaml.MappingNode:
		m := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			var key string
			if err := node.Content[i].Decode(&key); err != nil {
				return nil, fmt.Errorf("decoding yaml map key: %w", err)
			}
			v, err := nodeToValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[key] = v
		}
		value = m
	case yaml.SequenceNode:
		s := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := nodeToValue(item)
			if err != nil {
				return nil, err
			}
			s = append(s, v)
		}
		value = s
	case yaml.ScalarNode:
		scalar := *node
		if custom {
			// Let the resolver pick the natural type for the bare value.
			scalar.Tag = ""
			scalar.Style = 0
		}
		var v any
		if err := scalar.Decode(&v); err != nil {
			return nil, fmt.Errorf("decoding yaml scalar: %w", err)
		}
		value = v
	default:
		return nil, fmt.Errorf("unsupported yaml node kind %d", node.Kind)
	}

	if custom {
		return Tagged{Tag: tag, Value: value}, nil
	}
	return value, nil
}

func valueToNode(v any) (*yaml.Node, error) {
	switch val := v.(type) {
	case Tagged:
		node, err := valueToNode(val.Value)
		if err != nil {
			return nil, err
		}
		node.Tag = val.Tag
		node.Style = yaml.TaggedStyle
		return node, nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range keys {
			keyNode := &yaml.Node{}
			if err := keyNode.Encode(k); err != nil {
				return nil, fmt.Errorf("encoding yaml map key: %w", err)
			}
			valNode, err := valueToNode(val[k])
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, keyNode, valNode)
		}
		return node, nil
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range val {
			itemNode, err := valueToNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, itemNode)
		}
		return node, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(v); err != nil {
			return nil, fmt.Errorf("encoding yaml value: %w", err)
		}
		return node, nil
	}
}
