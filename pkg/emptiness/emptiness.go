// Package emptiness reports whether dynamically typed values carry any
// content. A value is "nothing" when it is nil, an empty or all-whitespace
// string, an empty collection, or a collection whose elements are all
// nothing themselves.
package emptiness

import (
	"reflect"
	"strings"
)

// IsNothing reports whether v is considered empty. Slice and array
// emptiness is evaluated recursively: a slice counts as nothing when every
// element is nothing at any depth, so a slice holding only empty slices or
// blank strings is itself nothing.
func IsNothing(v any) bool {
	if v == nil {
		return true
	}

	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val) == ""
	case bool:
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return IsNothing(rv.Elem().Interface())
	case reflect.Map:
		return rv.Len() == 0
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if !IsNothing(rv.Index(i).Interface()) {
				return false
			}
		}
		return true
	}

	return false
}

// AllNonEmpty returns the values that are not nothing, in argument order.
func AllNonEmpty(vals ...any) []any {
	nonEmpty := make([]any, 0, len(vals))
	for _, v := range vals {
		if !IsNothing(v) {
			nonEmpty = append(nonEmpty, v)
		}
	}
	return nonEmpty
}

// AreNothing reports whether every value is nothing.
func AreNothing(vals ...any) bool {
	return len(AllNonEmpty(vals...)) == 0
}

// FirstNonEmpty returns the first value that is not nothing, or nil when
// all values are empty.
func FirstNonEmpty(vals ...any) any {
	nonEmpty := AllNonEmpty(vals...)
	if len(nonEmpty) == 0 {
		return nil
	}
	return nonEmpty[0]
}

// AnyNonEmpty returns a single-entry map holding the first key whose value
// in m is not nothing, or an empty map when no key qualifies.
func AnyNonEmpty(m map[string]any, keys ...string) map[string]any {
	for _, k := range keys {
		if v, ok := m[k]; ok && !IsNothing(v) {
			return map[string]any{k: v}
		}
	}
	return map[string]any{}
}

// NonEmptyByKey returns one single-entry map per requested key whose value
// in m is not nothing, in key order.
func NonEmptyByKey(m map[string]any, keys ...string) []map[string]any {
	var out []map[string]any
	for _, k := range keys {
		if v, ok := m[k]; ok && !IsNothing(v) {
			out = append(out, map[string]any{k: v})
		}
	}
	return out
}
