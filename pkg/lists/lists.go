// Package lists provides helpers for flattening and filtering slices.
package lists

import "reflect"

// Flatten collapses arbitrarily nested slices and arrays into a single
// flat slice, preserving element order.
func Flatten(items []any) []any {
	flat := make([]any, 0, len(items))
	for _, item := range items {
		flat = appendFlat(flat, item)
	}
	return flat
}

func appendFlat(dst []any, v any) []any {
	rv := reflect.ValueOf(v)
	if v == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return append(dst, v)
	}
	for i := 0; i < rv.Len(); i++ {
		dst = appendFlat(dst, rv.Index(i).Interface())
	}
	return dst
}

// Filter keeps items permitted by the allowlist and not named by the
// denylist. An empty allowlist permits everything; the denylist always
// wins.
func Filter(items, allowlist, denylist []string) []string {
	allowed := make(map[string]struct{}, len(allowlist))
	for _, a := range allowlist {
		allowed[a] = struct{}{}
	}
	denied := make(map[string]struct{}, len(denylist))
	for _, d := range denylist {
		denied[d] = struct{}{}
	}

	filtered := make([]string, 0, len(items))
	for _, item := range items {
		if _, deny := denied[item]; deny {
			continue
		}
		if len(allowed) > 0 {
			if _, ok := allowed[item]; !ok {
				continue
			}
		}
		filtered = append(filtered, item)
	}
	return filtered
}
