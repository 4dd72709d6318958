package tomlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	got, err := Decode("title = \"demo\"\n\n[server]\nport = 8080\n")
	require.NoError(t, err)

	assert.Equal(t, "demo", got["title"])
	server, ok := got["server"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, int64(8080), server["port"])
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode("= broken")
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	got, err := Encode(map[string]any{"title": "demo"})
	require.NoError(t, err)
	assert.Contains(t, got, "title = 'demo'")
}

func TestRoundTrip(t *testing.T) {
	in := map[string]any{"name": "x", "count": int64(3)}
	encoded, err := Encode(in)
	require.NoError(t, err)
	decoded, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, in, decoded)
}
