// Package matcher provides loose equality checks used when correlating
// values from different sources.
package matcher

import (
	"reflect"
	"sort"
	"strings"

	"github.com/edt-labs/edt/pkg/emptiness"
	"github.com/edt-labs/edt/pkg/encoding/jsonutil"
	"github.com/edt-labs/edt/pkg/export"
)

// IsPartialMatch reports whether either string contains the other,
// case-insensitively. Empty values never match. With prefixOnly set, only
// prefix containment counts.
func IsPartialMatch(a, b string, prefixOnly bool) bool {
	if emptiness.IsNothing(a) || emptiness.IsNothing(b) {
		return false
	}

	af := strings.ToLower(a)
	bf := strings.ToLower(b)

	if prefixOnly {
		return strings.HasPrefix(af, bf) || strings.HasPrefix(bf, af)
	}
	return strings.Contains(af, bf) || strings.Contains(bf, af)
}

// IsNonEmptyMatch reports whether two non-empty values of the same type
// are equal. Strings compare case-insensitively, maps compare by their
// sorted-key JSON form, and string slices compare order-insensitively.
func IsNonEmptyMatch(a, b any) bool {
	if emptiness.IsNothing(a) || emptiness.IsNothing(b) {
		return false
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	switch av := a.(type) {
	case string:
		return strings.EqualFold(av, b.(string))
	case map[string]any:
		aj, errA := jsonutil.EncodeCompact(export.MakeExportSafe(av))
		bj, errB := jsonutil.EncodeCompact(export.MakeExportSafe(b))
		return errA == nil && errB == nil && aj == bj
	case []string:
		bv := b.([]string)
		if len(av) != len(bv) {
			return false
		}
		as := append([]string(nil), av...)
		bs := append([]string(nil), bv...)
		sort.Strings(as)
		sort.Strings(bs)
		return reflect.DeepEqual(as, bs)
	default:
		return reflect.DeepEqual(a, b)
	}
}
