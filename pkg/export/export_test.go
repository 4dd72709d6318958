package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edt-labs/edt/pkg/encoding/yamlutil"
)

func TestMakeExportSafe(t *testing.T) {
	ts := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	in := map[string]any{
		"when":   ts,
		"name":   "x",
		"count":  3,
		"nested": []any{ts, "y"},
		"tagged": yamlutil.Tagged{Tag: "!Ref", Value: "Bucket"},
	}
	got := MakeExportSafe(in).(map[string]any)

	assert.Equal(t, "2024-01-15T12:00:00Z", got["when"])
	assert.Equal(t, "x", got["name"])
	assert.Equal(t, 3, got["count"])
	assert.Equal(t, []any{"2024-01-15T12:00:00Z", "y"}, got["nested"])
	assert.Equal(t, "Bucket", got["tagged"])
}

func TestWrapForExportExplicit(t *testing.T) {
	data := map[string]any{"a": 1}

	yamlOut, err := WrapForExport(data, "yaml")
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", yamlOut)

	jsonOut, err := WrapForExport(data, "JSON")
	require.NoError(t, err)
	assert.Contains(t, jsonOut, `"a": 1`)

	rawOut, err := WrapForExport("plain", "raw")
	require.NoError(t, err)
	assert.Equal(t, "plain", rawOut)

	_, err = WrapForExport(data, "raw")
	assert.Error(t, err)
}

func TestWrapForExportAuto(t *testing.T) {
	plain := map[string]any{"a": 1}
	got, err := WrapForExport(plain, "true")
	require.NoError(t, err)
	assert.Contains(t, got, `"a": 1`)

	tagged := map[string]any{"a": yamlutil.Tagged{Tag: "!Ref", Value: "B"}}
	got, err = WrapForExport(tagged, "true")
	require.NoError(t, err)
	assert.Equal(t, "a: !Ref B\n", got)
}

func TestWrapForExportFalsy(t *testing.T) {
	got, err := WrapForExport("as-is", "false")
	require.NoError(t, err)
	assert.Equal(t, "as-is", got)
}

func TestWrapForExportInvalidSelector(t *testing.T) {
	_, err := WrapForExport("x", "sideways")
	assert.Error(t, err)
}
