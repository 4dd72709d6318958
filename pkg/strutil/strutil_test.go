package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeKey(t *testing.T) {
	assert.Equal(t, "a_b_c", SanitizeKey("a b-c", "_"))
	assert.Equal(t, "abc123", SanitizeKey("abc123", "_"))
	assert.Equal(t, "a-b-c", SanitizeKey("a b.c", "-"))
	assert.Equal(t, "héllo_wörld", SanitizeKey("héllo wörld", "_"))
	assert.Equal(t, "日本語_key", SanitizeKey("日本語 key", "_"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10, "..."))
	assert.Equal(t, "hello w...", Truncate("hello world and more", 10, "..."))
	assert.Equal(t, "exact", Truncate("exact", 5, "..."))
}

func TestTruncateLimitShorterThanEnder(t *testing.T) {
	assert.Equal(t, "...", Truncate("hello", 2, "..."))
	assert.Equal(t, "...", Truncate("hello", 3, "..."))
	assert.Equal(t, "h...", Truncate("hello", 4, "..."))
}

func TestFirstCharCasing(t *testing.T) {
	assert.Equal(t, "hello", LowerFirst("Hello"))
	assert.Equal(t, "Hello", UpperFirst("hello"))
	assert.Equal(t, "", LowerFirst(""))
	assert.Equal(t, "", UpperFirst(""))
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.com/path"))
	assert.True(t, IsURL("  https://example.com  "))
	assert.False(t, IsURL("not a url"))
	assert.False(t, IsURL(""))
}

func TestStrToBool(t *testing.T) {
	truthy := []string{"y", "YES", "t", "True", "on", "1"}
	for _, v := range truthy {
		got, err := StrToBool(v)
		assert.NoError(t, err, v)
		assert.True(t, got, v)
	}

	falsy := []string{"n", "No", "f", "FALSE", "off", "0"}
	for _, v := range falsy {
		got, err := StrToBool(v)
		assert.NoError(t, err, v)
		assert.False(t, got, v)
	}

	_, err := StrToBool("maybe")
	assert.Error(t, err)

	assert.True(t, StrToBoolOr("maybe", true))
	assert.False(t, StrToBoolOr("maybe", false))
}

func TestCaseConversion(t *testing.T) {
	assert.Equal(t, "some_field_name", ToSnake("SomeFieldName"))
	assert.Equal(t, "someFieldName", ToCamel("some_field_name"))
	assert.Equal(t, "SomeFieldName", ToPascal("some_field_name"))
	assert.Equal(t, "some-field-name", ToKebab("SomeFieldName"))
	assert.Equal(t, "SOME_FIELD_NAME", ToScreamingSnake("someFieldName"))
}

func TestInflection(t *testing.T) {
	assert.Equal(t, "entries", Pluralize("entry"))
	assert.Equal(t, "entry", Singularize("entries"))
}

func TestHumanizeTitleize(t *testing.T) {
	assert.Equal(t, "Employee salary", Humanize("employee_salary"))
	assert.Equal(t, "Employee Salary", Titleize("employee_salary"))
	assert.Equal(t, "Device Type", TitleizeName("deviceType"))
}

func TestOrdinalize(t *testing.T) {
	tests := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th",
		11: "11th", 12: "12th", 13: "13th",
		21: "21st", 102: "102nd", 113: "113th",
	}
	for n, want := range tests {
		assert.Equal(t, want, Ordinalize(n))
	}
}
