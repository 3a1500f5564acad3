package contract

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is an ordered key/value document. Keys serialize in insertion
// order and a key that was never set is absent from the output.
type Document struct {
	keys   []string
	values map[string]any
}

func NewDocument() *Document {
	return &Document{values: make(map[string]any)}
}

// Set stores value under key. Setting an existing key keeps its position.
func (d *Document) Set(key string, value any) *Document {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
	return d
}

func (d *Document) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

func (d *Document) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

func (d *Document) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

func (d *Document) Len() int {
	return len(d.keys)
}

// MarshalYAML emits a mapping node whose keys follow insertion order.
func (d *Document) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range d.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(d.values[key]); err != nil {
			return nil, fmt.Errorf("failed to encode key %q: %w", key, err)
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}
