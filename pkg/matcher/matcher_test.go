package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPartialMatch(t *testing.T) {
	assert.True(t, IsPartialMatch("Hello World", "world", false))
	assert.True(t, IsPartialMatch("pre", "PREFIX", false))
	assert.False(t, IsPartialMatch("alpha", "beta", false))
	assert.False(t, IsPartialMatch("", "x", false))
	assert.False(t, IsPartialMatch("x", "  ", false))
}

func TestIsPartialMatchPrefixOnly(t *testing.T) {
	assert.True(t, IsPartialMatch("prefix", "pre", true))
	assert.True(t, IsPartialMatch("pre", "prefix", true))
	assert.False(t, IsPartialMatch("suffix", "fix", true))
}

func TestIsNonEmptyMatch(t *testing.T) {
	assert.True(t, IsNonEmptyMatch("ABC", "abc"))
	assert.False(t, IsNonEmptyMatch("abc", "abd"))
	assert.False(t, IsNonEmptyMatch("", ""))
	assert.False(t, IsNonEmptyMatch("1", 1))

	assert.True(t, IsNonEmptyMatch(
		map[string]any{"a": 1, "b": 2},
		map[string]any{"b": 2, "a": 1},
	))
	assert.False(t, IsNonEmptyMatch(
		map[string]any{"a": 1},
		map[string]any{"a": 2},
	))

	assert.True(t, IsNonEmptyMatch([]string{"b", "a"}, []string{"a", "b"}))
	assert.False(t, IsNonEmptyMatch([]string{"a"}, []string{"a", "b"}))
}
