// Package tomlutil wraps TOML encoding and decoding.
package tomlutil

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
)

// Decode parses a TOML document into a generic map.
func Decode(data string) (map[string]any, error) {
	var m map[string]any
	if err := toml.Unmarshal([]byte(data), &m); err != nil {
		return nil, fmt.Errorf("decoding toml: %w", err)
	}
	return m, nil
}

// Encode renders v as TOML. The top-level value must be a map or struct,
// per the TOML data model.
func Encode(v any) (string, error) {
	out, err := toml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding toml: %w", err)
	}
	return string(out), nil
}
