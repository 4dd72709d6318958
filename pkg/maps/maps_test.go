package maps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstNonEmptyValue(t *testing.T) {
	m := map[string]any{"a": "", "b": nil, "c": "found", "d": "later"}
	assert.Equal(t, "found", FirstNonEmptyValue(m, "a", "b", "c", "d"))
	assert.Nil(t, FirstNonEmptyValue(m, "a", "b", "missing"))
}

func TestDeduplicate(t *testing.T) {
	m := map[string]any{
		"tags": []any{"x", "y", "x", "z", "y"},
		"nested": map[string]any{
			"ids": []any{1, 1, 2},
		},
		"plain": "value",
	}
	got := Deduplicate(m)

	assert.Equal(t, []any{"x", "y", "z"}, got["tags"])
	assert.Equal(t, []any{1, 2}, got["nested"].(map[string]any)["ids"])
	assert.Equal(t, "value", got["plain"])
}

func TestAllValues(t *testing.T) {
	m := map[string]any{
		"a": 1,
		"b": map[string]any{"c": 2},
		"d": []any{3, map[string]any{"e": 4}},
	}
	assert.Equal(t, []any{1, 2, 3, 4}, AllValues(m))
}

func TestFlatten(t *testing.T) {
	m := map[string]any{
		"a": map[string]any{
			"b": 1,
			"c": map[string]any{"d": 2},
		},
		"e": []any{"x", "y"},
		"f": 3,
	}
	got := Flatten(m, "", ".")

	want := map[string]any{
		"a.b":   1,
		"a.c.d": 2,
		"e.0":   "x",
		"e.1":   "y",
		"f":     3,
	}
	assert.Equal(t, want, got)
}

func TestFlattenCustomSeparator(t *testing.T) {
	m := map[string]any{"a": map[string]any{"b": 1}}
	assert.Equal(t, map[string]any{"a/b": 1}, Flatten(m, "", "/"))
}

func TestZipMap(t *testing.T) {
	got := ZipMap([]string{"a", "b", "c"}, []string{"1", "2"})
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, got)
}

func TestUnhump(t *testing.T) {
	m := map[string]any{
		"deviceType": "sensor",
		"metaData":   map[string]any{"createdAt": "now"},
	}
	got := Unhump(m, "")
	assert.Equal(t, "sensor", got["device_type"])
	assert.Equal(t, "now", got["meta_data"].(map[string]any)["created_at"])
}

func TestUnhumpDropWithoutPrefix(t *testing.T) {
	m := map[string]any{"awsRegion": "us-east-1", "other": "x"}
	got := Unhump(m, "aws")
	assert.Equal(t, map[string]any{"aws_region": "us-east-1"}, got)
}

func TestFilter(t *testing.T) {
	m := map[string]any{"a": 1, "b": 2, "c": 3}

	kept, rest := Filter(m, []string{"a", "b"}, []string{"b"})
	assert.Equal(t, map[string]any{"a": 1}, kept)
	assert.Equal(t, map[string]any{"b": 2, "c": 3}, rest)

	kept, rest = Filter(m, nil, nil)
	assert.Len(t, kept, 3)
	assert.Empty(t, rest)
}

func TestToStruct(t *testing.T) {
	type target struct {
		Name  string `mapstructure:"name"`
		Count int    `mapstructure:"count"`
	}

	var out target
	require.NoError(t, ToStruct(map[string]any{"name": "x", "count": 3}, &out))
	assert.Equal(t, target{Name: "x", Count: 3}, out)

	err := ToStruct(map[string]any{"count": "not a number"}, &out)
	assert.Error(t, err)
}
