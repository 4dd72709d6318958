package base64util

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeUnwrapped(t *testing.T) {
	got, err := Encode("hello", false)
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("hello")), got)

	got, err = Encode([]byte{0x01, 0x02}, false)
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte{0x01, 0x02}), got)

	_, err = Encode(42, false)
	assert.Error(t, err)
}

func TestEncodeWrapped(t *testing.T) {
	got, err := Encode(map[string]any{"a": 1}, true)
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(got)
	require.NoError(t, err)
	assert.Contains(t, string(decoded), `"a": 1`)
}

func TestDecode(t *testing.T) {
	out, err := Decode(base64.StdEncoding.EncodeToString([]byte("payload")))
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), out)

	_, err = Decode("%%% not base64 %%%")
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	encoded, err := Encode("round trip", false)
	require.NoError(t, err)
	decoded, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, "round trip", string(decoded))
}
