// Package jsonutil wraps JSON encoding and decoding with the defaults the
// rest of the toolkit expects: two-space indentation and stable (sorted)
// map key order, both adjustable per call.
package jsonutil

import (
	"fmt"

	"github.com/goccy/go-json"
)

type encodeConfig struct {
	indent   bool
	sortKeys bool
}

// Option adjusts Encode behavior.
type Option func(*encodeConfig)

// WithIndent toggles two-space indentation. Default on.
func WithIndent(on bool) Option {
	return func(c *encodeConfig) { c.indent = on }
}

// WithSortKeys toggles sorted map key order. Default on; when off, map
// keys are emitted in iteration order.
func WithSortKeys(on bool) Option {
	return func(c *encodeConfig) { c.sortKeys = on }
}

// Decode parses a JSON document into generic Go values.
func Decode(data string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	return v, nil
}

// Encode renders v as JSON, two-space indented with sorted map keys
// unless options say otherwise.
func Encode(v any, opts ...Option) (string, error) {
	cfg := encodeConfig{indent: true, sortKeys: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	var encOpts []json.EncodeOptionFunc
	if !cfg.sortKeys {
		encOpts = append(encOpts, json.UnorderedMap())
	}

	var (
		out []byte
		err error
	)
	if cfg.indent {
		out, err = json.MarshalIndentWithOption(v, "", "  ", encOpts...)
	} else {
		out, err = json.MarshalWithOption(v, encOpts...)
	}
	if err != nil {
		return "", fmt.Errorf("encoding json: %w", err)
	}
	return string(out), nil
}

// EncodeCompact renders v as JSON without indentation.
func EncodeCompact(v any) (string, error) {
	return Encode(v, WithIndent(false))
}
