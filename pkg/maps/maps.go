// Package maps provides helpers for flattening, filtering and reshaping
// string-keyed maps.
package maps

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/iancoleman/strcase"

	"github.com/edt-labs/edt/pkg/emptiness"
)

// FirstNonEmptyValue returns the value of the first key whose entry in m
// is not empty, or nil when no key qualifies.
func FirstNonEmptyValue(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && !emptiness.IsNothing(v) {
			return v
		}
	}
	return nil
}

// Deduplicate returns a copy of m with duplicate elements removed from
// slice values, preserving first occurrence. Nested maps are deduplicated
// recursively.
func Deduplicate(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch val := v.(type) {
		case []any:
			var deduped []any
			for _, elem := range val {
				if !containsValue(deduped, elem) {
					deduped = append(deduped, elem)
				}
			}
			out[k] = deduped
		case map[string]any:
			out[k] = Deduplicate(val)
		default:
			out[k] = v
		}
	}
	return out
}

func containsValue(list []any, v any) bool {
	for _, elem := range list {
		if reflect.DeepEqual(elem, v) {
			return true
		}
	}
	return false
}

// AllValues collects every leaf value from a nested map, descending into
// nested maps and into maps inside slices. Keys are walked in sorted order
// so the result is deterministic.
func AllValues(m map[string]any) []any {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var values []any
	for _, k := range keys {
		switch v := m[k].(type) {
		case map[string]any:
			values = append(values, AllValues(v)...)
		case []any:
			for _, item := range v {
				if nested, ok := item.(map[string]any); ok {
					values = append(values, AllValues(nested)...)
				} else {
					values = append(values, item)
				}
			}
		default:
			values = append(values, v)
		}
	}
	return values
}

// Flatten converts a nested map into a flat map whose keys join the path
// segments with sep. Slice values expand one entry per element with the
// element index as a path segment; index segments always join with "."
// regardless of sep.
func Flatten(m map[string]any, parentKey, sep string) map[string]any {
	flat := make(map[string]any)
	for k, v := range m {
		key := k
		if parentKey != "" {
			key = parentKey + sep + k
		}
		switch val := v.(type) {
		case map[string]any:
			for fk, fv := range Flatten(val, key, sep) {
				flat[fk] = fv
			}
		case []any:
			for i, item := range val {
				child := map[string]any{strconv.Itoa(i): item}
				for fk, fv := range Flatten(child, key, ".") {
					flat[fk] = fv
				}
			}
		default:
			flat[key] = v
		}
	}
	return flat
}

// ZipMap pairs keys from a with values from b positionally, stopping when
// b runs out.
func ZipMap(a, b []string) map[string]string {
	zipped := make(map[string]string, len(a))
	for i, key := range a {
		if i >= len(b) {
			break
		}
		zipped[key] = b[i]
	}
	return zipped
}

// Unhump converts camelCase keys to snake_case recursively. When
// dropWithoutPrefix is non-empty, top-level keys lacking that prefix are
// dropped.
func Unhump(m map[string]any, dropWithoutPrefix string) map[string]any {
	unhumped := make(map[string]any, len(m))
	for k, v := range m {
		if dropWithoutPrefix != "" && !strings.HasPrefix(k, dropWithoutPrefix) {
			continue
		}
		key := strcase.ToSnake(k)
		if nested, ok := v.(map[string]any); ok {
			unhumped[key] = Unhump(nested, "")
			continue
		}
		unhumped[key] = v
	}
	return unhumped
}

// Filter splits m into entries permitted by the allowlist and not named by
// the denylist (kept) and everything else (rest). An empty allowlist
// permits every key; the denylist always wins.
func Filter(m map[string]any, allowlist, denylist []string) (kept, rest map[string]any) {
	allowed := make(map[string]struct{}, len(allowlist))
	for _, a := range allowlist {
		allowed[a] = struct{}{}
	}
	denied := make(map[string]struct{}, len(denylist))
	for _, d := range denylist {
		denied[d] = struct{}{}
	}

	kept = make(map[string]any)
	rest = make(map[string]any)
	for k, v := range m {
		_, deny := denied[k]
		_, allow := allowed[k]
		if deny || (len(allowed) > 0 && !allow) {
			rest[k] = v
			continue
		}
		kept[k] = v
	}
	return kept, rest
}

// ToStruct decodes a generic map into a struct, honoring mapstructure
// field tags.
func ToStruct(m map[string]any, out any) error {
	if err := mapstructure.Decode(m, out); err != nil {
		return fmt.Errorf("decoding map into %T: %w", out, err)
	}
	return nil
}
