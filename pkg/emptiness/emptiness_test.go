package emptiness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNothing(t *testing.T) {
	var nilMap map[string]any
	var nilPtr *int

	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"whitespace string", "  \t\n", true},
		{"non-empty string", "x", false},
		{"zero int", 0, false},
		{"false", false, false},
		{"empty map", map[string]any{}, true},
		{"nil map", nilMap, true},
		{"non-empty map", map[string]any{"a": 1}, false},
		{"empty slice", []any{}, true},
		{"slice of empties", []any{nil, "", []any{}}, true},
		{"nested empty slices", []any{[]any{""}}, true},
		{"slice with content", []any{nil, "x"}, false},
		{"nil pointer", nilPtr, true},
		{"string slice", []string{""}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNothing(tt.v))
		})
	}
}

func TestAllNonEmpty(t *testing.T) {
	got := AllNonEmpty(nil, "", "a", 0, []any{}, "b")
	assert.Equal(t, []any{"a", 0, "b"}, got)
}

func TestAreNothing(t *testing.T) {
	assert.True(t, AreNothing(nil, "", map[string]any{}))
	assert.False(t, AreNothing(nil, "x"))
	assert.True(t, AreNothing())
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", FirstNonEmpty("", nil, "a", "b"))
	assert.Nil(t, FirstNonEmpty("", nil))
}

func TestAnyNonEmpty(t *testing.T) {
	m := map[string]any{"a": "", "b": "val", "c": "other"}
	assert.Equal(t, map[string]any{"b": "val"}, AnyNonEmpty(m, "a", "b", "c"))
	assert.Empty(t, AnyNonEmpty(m, "a", "missing"))
}

func TestNonEmptyByKey(t *testing.T) {
	m := map[string]any{"a": "", "b": "val", "c": 3}
	got := NonEmptyByKey(m, "a", "b", "c", "d")
	assert.Equal(t, []map[string]any{{"b": "val"}, {"c": 3}}, got)
}
