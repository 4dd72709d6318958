// Package numwords converts numbers to words, ordinals, currency phrases
// and Roman numerals.
package numwords

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/divan/num2words"
)

// ErrRomanRange is returned when a number falls outside the representable
// Roman numeral range 1..3999.
var ErrRomanRange = errors.New("number must be between 1 and 3999")

// ErrInvalidRoman is returned when input is not a canonical Roman numeral.
var ErrInvalidRoman = errors.New("invalid roman numeral")

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// ToRoman renders n (1..3999) as a Roman numeral.
func ToRoman(n int) (string, error) {
	if n < 1 || n > 3999 {
		return "", ErrRomanRange
	}
	var b strings.Builder
	for _, entry := range romanTable {
		for n >= entry.value {
			b.WriteString(entry.symbol)
			n -= entry.value
		}
	}
	return b.String(), nil
}

// FromRoman parses a canonical Roman numeral. Non-canonical forms such as
// "IIII" are rejected by round-tripping the parsed value.
func FromRoman(numeral string) (int, error) {
	cleaned := strings.ToUpper(strings.TrimSpace(numeral))
	if cleaned == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRoman, numeral)
	}

	values := map[byte]int{'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000}
	total := 0
	for i := 0; i < len(cleaned); i++ {
		v, ok := values[cleaned[i]]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidRoman, numeral)
		}
		if i+1 < len(cleaned) && values[cleaned[i+1]] > v {
			total -= v
		} else {
			total += v
		}
	}

	canonical, err := ToRoman(total)
	if err != nil || canonical != cleaned {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRoman, numeral)
	}
	return total, nil
}

// Words renders an integer as English words.
func Words(n int) string {
	return num2words.Convert(n)
}

// ordinalWords maps cardinal word endings to their ordinal forms.
var ordinalWords = map[string]string{
	"one": "first", "two": "second", "three": "third", "five": "fifth",
	"eight": "eighth", "nine": "ninth", "twelve": "twelfth",
}

// Ordinal renders an integer as ordinal words ("forty-second"). Only the
// final word of the cardinal phrase changes form.
func Ordinal(n int) string {
	words := Words(n)

	// Locate the last word across both space and hyphen separators.
	idx := strings.LastIndexAny(words, " -")
	prefix, last := "", words
	if idx >= 0 {
		prefix, last = words[:idx+1], words[idx+1:]
	}

	switch {
	case ordinalWords[last] != "":
		last = ordinalWords[last]
	case strings.HasSuffix(last, "y"):
		last = strings.TrimSuffix(last, "y") + "ieth"
	default:
		last += "th"
	}
	return prefix + last
}

// Currency renders a dollar amount as words: "forty-two dollars and fifty
// cents". Negative amounts are prefixed with "minus".
func Currency(amount float64) string {
	prefix := ""
	if amount < 0 {
		prefix = "minus "
		amount = -amount
	}

	dollars := int(amount)
	cents := int(math.Round((amount - float64(dollars)) * 100))
	if cents == 100 {
		dollars++
		cents = 0
	}

	dollarUnit := "dollars"
	if dollars == 1 {
		dollarUnit = "dollar"
	}
	centUnit := "cents"
	if cents == 1 {
		centUnit = "cent"
	}

	if cents == 0 {
		return fmt.Sprintf("%s%s %s", prefix, Words(dollars), dollarUnit)
	}
	return fmt.Sprintf("%s%s %s and %s %s", prefix, Words(dollars), dollarUnit, Words(cents), centUnit)
}
