package contract

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hari-data/hari/internal/yamlutil"
)

// roundTrip marshals v and decodes it back into generic YAML values.
func roundTrip(t *testing.T, v any) map[string]any {
	t.Helper()
	out, err := yamlutil.Marshal(v)
	require.NoError(t, err)
	return parse(t, out)
}

func parse(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, yaml.Unmarshal(data, &m))
	return m
}

// mappingKeys returns the keys of the top-level mapping of data, in order.
func mappingKeys(t *testing.T, data []byte) []string {
	t.Helper()
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal(data, &node))
	require.Len(t, node.Content, 1)
	mapping := node.Content[0]
	require.Equal(t, yaml.MappingNode, mapping.Kind)

	var keys []string
	for i := 0; i < len(mapping.Content); i += 2 {
		keys = append(keys, mapping.Content[i].Value)
	}
	return keys
}

func subDocument(t *testing.T, doc *Document, key string) *Document {
	t.Helper()
	v, ok := doc.Get(key)
	require.True(t, ok, "missing key %q", key)
	sub, ok := v.(*Document)
	require.True(t, ok, "key %q is not a document", key)
	return sub
}
