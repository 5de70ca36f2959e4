package scriptmeta

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataDocument_WireShape(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	doc := MetadataDocument{
		"Weather": {Version: "1.2.0", Type: TypeWidget, Hash: "6aefe2c4", LastUpdated: ts},
	}

	data, err := doc.Marshal()
	require.NoError(t, err)

	assert.Contains(t, string(data), `"version": "1.2.0"`)
	assert.Contains(t, string(data), `"type": "widget"`)
	assert.Contains(t, string(data), `"hash": "6aefe2c4"`)
	assert.Contains(t, string(data), `"lastUpdated": "2025-06-01T12:30:00Z"`)

	back, err := UnmarshalMetadata(data)
	require.NoError(t, err)
	require.Contains(t, back, "Weather")
	assert.Equal(t, doc["Weather"].Version, back["Weather"].Version)
	assert.True(t, ts.Equal(back["Weather"].LastUpdated))
}

func TestUnmarshalMetadata_EmptyObject(t *testing.T) {
	doc, err := UnmarshalMetadata([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, doc)
	assert.NotNil(t, doc)
}

func TestMetadataDocument_Clone(t *testing.T) {
	doc := MetadataDocument{
		"Foo": {Version: "1.0.0", Type: TypeScript},
	}
	cp := doc.Clone()
	cp["Foo"].Version = "2.0.0"
	cp["Bar"] = &ScriptRecord{Version: "1.0.0", Type: TypeHelper}

	assert.Equal(t, "1.0.0", doc["Foo"].Version)
	assert.NotContains(t, doc, "Bar")
}

func TestRemotePath(t *testing.T) {
	assert.Equal(t, "widgets/Weather.js", RemotePath(TypeWidget, "Weather"))
	assert.Equal(t, "helpers/Cache.js", RemotePath(TypeHelper, "Cache"))
	assert.Equal(t, "scripts/Backup.js", RemotePath(TypeScript, "Backup"))
}

func TestParseScriptType(t *testing.T) {
	for _, s := range []string{"widget", "helper", "script"} {
		typ, err := ParseScriptType(s)
		require.NoError(t, err)
		assert.True(t, typ.Valid())
	}
	_, err := ParseScriptType("applet")
	assert.Error(t, err)
}
