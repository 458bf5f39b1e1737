package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSchemaUsesYAMLKeys(t *testing.T) {
	t.Parallel()

	schema := ConfigSchema()
	require.NotNil(t, schema.Properties)

	for _, key := range []string{"style", "nightly", "language", "palette_file", "log_level"} {
		_, ok := schema.Properties.Get(key)
		assert.True(t, ok, key)
	}
	assert.Equal(t, []string{"style"}, schema.Required)

	style, ok := schema.Properties.Get("style")
	require.True(t, ok)
	assert.Contains(t, style.Enum, "deep_sea")
}

func TestPaletteSchemaRequiresEveryColor(t *testing.T) {
	t.Parallel()

	schema := PaletteSchema()
	assert.ElementsMatch(t,
		[]string{"primary", "secondary", "buttons", "text_body", "text_headers", "starred"},
		schema.Required)

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"pattern":"^#[0-9a-fA-F]{6}([0-9a-fA-F]{2})?$"`)
}
