// Package strutil provides string sanitation, truncation and boolean
// coercion helpers.
package strutil

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// SanitizeKey replaces every character of key that is neither alphanumeric
// nor the delimiter itself with the delimiter.
func SanitizeKey(key, delim string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range key {
		if isAlnum(r) || string(r) == delim {
			b.WriteRune(r)
		} else {
			b.WriteString(delim)
		}
	}
	return b.String()
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Truncate shortens msg to at most maxLength characters, appending ender
// when truncation happens. The ender counts toward the limit; when the
// limit is smaller than the ender itself, only the ender is returned.
func Truncate(msg string, maxLength int, ender string) string {
	if len(msg) <= maxLength {
		return msg
	}
	cut := maxLength - len(ender)
	if cut < 0 {
		cut = 0
	}
	return msg[:cut] + ender
}

// LowerFirst lowers the first character of the input.
func LowerFirst(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// UpperFirst uppers the first character of the input.
func UpperFirst(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// IsURL reports whether the trimmed input is a well-formed URL.
func IsURL(s string) bool {
	return validate.Var(strings.TrimSpace(s), "url") == nil
}

// StrToBool converts a string representation of truth to a boolean.
// Accepted truthy values are y, yes, t, true, on and 1; falsy values are
// n, no, f, false, off and 0, all case-insensitive.
func StrToBool(val string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "y", "yes", "t", "true", "on", "1":
		return true, nil
	case "n", "no", "f", "false", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid truth value %q", val)
}

// StrToBoolOr converts like StrToBool but falls back to def on invalid
// input.
func StrToBoolOr(val string, def bool) bool {
	b, err := StrToBool(val)
	if err != nil {
		return def
	}
	return b
}
