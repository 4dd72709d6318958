// Package export normalizes arbitrary data for serialization and wraps it
// in an output encoding.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/edt-labs/edt/pkg/encoding/jsonutil"
	"github.com/edt-labs/edt/pkg/encoding/yamlutil"
	"github.com/edt-labs/edt/pkg/strutil"
)

// MakeExportSafe recursively converts data into values every codec can
// represent: times become ISO-8601 strings, yaml-tagged wrappers are
// unwrapped, and other non-scalar leaves fall back to their string form.
func MakeExportSafe(data any) any {
	return makeSafe(data, false)
}

func makeSafe(data any, keepTags bool) any {
	switch v := data.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = makeSafe(val, keepTags)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = makeSafe(val, keepTags)
		}
		return out
	case yamlutil.Tagged:
		if keepTags {
			return yamlutil.Tagged{Tag: v.Tag, Value: makeSafe(v.Value, keepTags)}
		}
		return makeSafe(v.Value, keepTags)
	case time.Time:
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// WrapForExport normalizes data and encodes it per the selector: "yaml",
// "json", "raw", or any truthy/falsy string. Truthy auto-selects YAML when
// the data carries yaml tags and JSON otherwise; falsy and "raw" require
// string input and return it untouched.
func WrapForExport(data any, encoding string) (string, error) {
	switch {
	case strings.EqualFold(encoding, "yaml"):
		return yamlutil.Encode(makeSafe(data, true))
	case strings.EqualFold(encoding, "json"):
		return jsonutil.Encode(MakeExportSafe(data))
	case strings.EqualFold(encoding, "raw"):
		return rawString(data)
	}

	allow, err := strutil.StrToBool(encoding)
	if err != nil {
		return "", fmt.Errorf("invalid encoding selector %q", encoding)
	}
	if !allow {
		return rawString(data)
	}

	if yamlutil.IsYAMLData(data) {
		return yamlutil.Encode(makeSafe(data, true))
	}
	return jsonutil.Encode(MakeExportSafe(data))
}

func rawString(data any) (string, error) {
	s, ok := data.(string)
	if !ok {
		return "", fmt.Errorf("raw export requires a string, got %T", data)
	}
	return s, nil
}
