package config

import (
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// leafKeys lists dotted keys of every non-object property in schema.
func leafKeys(prefix string, schema *jsonschema.Schema) []string {
	if schema.Properties == nil || schema.Properties.Len() == 0 {
		return []string{prefix}
	}
	var keys []string
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		key := pair.Key
		if prefix != "" {
			key = prefix + "." + key
		}
		keys = append(keys, leafKeys(key, pair.Value)...)
	}
	return keys
}

func TestSchemaProvider_CoversEveryConfigKey(t *testing.T) {
	isolateXDG(t)

	documented := make(map[string]bool)
	for _, info := range NewSchemaProvider().GetSchema() {
		assert.False(t, documented[info.Key], "duplicate key %s", info.Key)
		documented[info.Key] = true
		assert.NotEmpty(t, info.Description, info.Key)
		assert.NotEmpty(t, info.Section, info.Key)
		assert.NotEmpty(t, info.Type, info.Key)
	}

	keys := leafKeys("", Schema())
	require.NotEmpty(t, keys)
	for _, key := range keys {
		assert.True(t, documented[key], "config key %s has no schema entry", key)
	}
	assert.Len(t, documented, len(keys))
}

func TestSchemaProvider_Defaults(t *testing.T) {
	isolateXDG(t)

	byKey := make(map[string]string)
	for _, info := range NewSchemaProvider().GetSchema() {
		byKey[info.Key] = info.Default
	}
	assert.Equal(t, "60", byKey["resize.frame_rate"])
	assert.Equal(t, "0.25", byKey["drag_drop.edge_ratio"])
	assert.Equal(t, "last", byKey["snapshots.auto_save_name"])
	assert.Equal(t, "5m0s", byKey["database.max_idle_time"])
	assert.Equal(t, "q, ctrl+c", byKey["keys.quit"])
}
