// Package base64util encodes and decodes base64 payloads, optionally
// normalizing the data for export first.
package base64util

import (
	"encoding/base64"
	"fmt"

	"github.com/edt-labs/edt/pkg/export"
)

// Encode renders data as standard base64. When wrap is true the data is
// first normalized and encoded through the export wrapper (YAML for tagged
// data, JSON otherwise); when false the data must already be a string or
// byte slice.
func Encode(data any, wrap bool) (string, error) {
	var raw []byte
	if wrap {
		wrapped, err := export.WrapForExport(data, "true")
		if err != nil {
			return "", err
		}
		raw = []byte(wrapped)
	} else {
		switch v := data.(type) {
		case string:
			raw = []byte(v)
		case []byte:
			raw = v
		default:
			return "", fmt.Errorf("unwrapped base64 encoding requires string or bytes, got %T", data)
		}
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Decode parses a standard base64 string.
func Decode(encoded string) ([]byte, error) {
	out, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding base64: %w", err)
	}
	return out, nil
}
