package numwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRoman(t *testing.T) {
	tests := map[int]string{
		1:    "I",
		4:    "IV",
		9:    "IX",
		42:   "XLII",
		1994: "MCMXCIV",
		3999: "MMMCMXCIX",
	}
	for n, want := range tests {
		got, err := ToRoman(n)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestToRomanRange(t *testing.T) {
	for _, n := range []int{0, -1, 4000} {
		_, err := ToRoman(n)
		assert.ErrorIs(t, err, ErrRomanRange)
	}
}

func TestFromRoman(t *testing.T) {
	tests := map[string]int{
		"I":         1,
		"iv":        4,
		" XLII ":    42,
		"MCMXCIV":   1994,
		"MMMCMXCIX": 3999,
	}
	for numeral, want := range tests {
		got, err := FromRoman(numeral)
		require.NoError(t, err, numeral)
		assert.Equal(t, want, got)
	}
}

func TestFromRomanRejectsNonCanonical(t *testing.T) {
	for _, numeral := range []string{"", "IIII", "VX", "ABC", "XXXXX"} {
		_, err := FromRoman(numeral)
		assert.ErrorIs(t, err, ErrInvalidRoman, numeral)
	}
}

func TestRomanRoundTrip(t *testing.T) {
	for n := 1; n <= 3999; n += 37 {
		numeral, err := ToRoman(n)
		require.NoError(t, err)
		back, err := FromRoman(numeral)
		require.NoError(t, err)
		assert.Equal(t, n, back)
	}
}

func TestWords(t *testing.T) {
	assert.Equal(t, "zero", Words(0))
	assert.Equal(t, "seven", Words(7))
}

func TestOrdinal(t *testing.T) {
	assert.Equal(t, "first", Ordinal(1))
	assert.Equal(t, "second", Ordinal(2))
	assert.Equal(t, "third", Ordinal(3))
	assert.Equal(t, "fourth", Ordinal(4))
	assert.Equal(t, "ninth", Ordinal(9))
	assert.Equal(t, "twelfth", Ordinal(12))
	assert.Equal(t, "twentieth", Ordinal(20))
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "one dollar", Currency(1.0))
	assert.Equal(t, "one dollar and one cent", Currency(1.01))
	assert.Contains(t, Currency(42.50), "dollars and fifty cents")
	assert.Contains(t, Currency(-3.0), "minus ")
}
