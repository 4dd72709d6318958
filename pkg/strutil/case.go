package strutil

import (
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// ToSnake converts the input to snake_case.
func ToSnake(s string) string { return strcase.ToSnake(s) }

// ToCamel converts the input to camelCase.
func ToCamel(s string) string { return strcase.ToLowerCamel(s) }

// ToPascal converts the input to PascalCase.
func ToPascal(s string) string { return strcase.ToCamel(s) }

// ToKebab converts the input to kebab-case.
func ToKebab(s string) string { return strcase.ToKebab(s) }

// ToScreamingSnake converts the input to SCREAMING_SNAKE_CASE.
func ToScreamingSnake(s string) string { return strcase.ToScreamingSnake(s) }

// Pluralize returns the plural form of a word.
func Pluralize(s string) string { return inflection.Plural(s) }

// Singularize returns the singular form of a word.
func Singularize(s string) string { return inflection.Singular(s) }

// Humanize turns an identifier into a readable phrase: underscores and
// case boundaries become spaces and the first word is capitalized.
func Humanize(s string) string {
	words := strings.ReplaceAll(strcase.ToSnake(s), "_", " ")
	return UpperFirst(words)
}

// Titleize turns an identifier into Title Case words.
func Titleize(s string) string {
	return titleCaser.String(strings.ReplaceAll(strcase.ToSnake(s), "_", " "))
}

// TitleizeName converts a camelCase name into a Title Case name.
func TitleizeName(name string) string {
	return Titleize(strcase.ToSnake(name))
}

// Ordinalize renders an integer with its ordinal suffix (1st, 2nd, 3rd,
// 11th, ...).
func Ordinalize(n int) string {
	suffix := "th"
	abs := n
	if abs < 0 {
		abs = -abs
	}
	if abs%100 < 11 || abs%100 > 13 {
		switch abs % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
