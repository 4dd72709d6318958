// Package docstring parses Google-style docstrings into structured records.
//
// The parser is a single pass over the input text: whitespace is
// normalized, section headers (Args:, Returns:, Raises:, ...) are located,
// the text between headers is sliced into spans, and each span is parsed
// independently. Parsing never fails; missing or malformed content yields
// empty defaults.
package docstring

import (
	"regexp"
	"sort"
	"strings"
)

// Arg describes a single documented parameter.
type Arg struct {
	Type        string
	Description string
}

// Raise describes a single documented exception.
type Raise struct {
	Name        string
	Description string
}

// Parsed holds the structured contents of a Google-style docstring.
// A Parsed value is built fresh per Parse call and never mutated after
// return.
type Parsed struct {
	ShortDescription string
	LongDescription  string
	Args             map[string]Arg
	Returns          string
	Raises           []Raise
	Examples         []string
}

// Section header patterns. Each matches the first occurrence of a header
// line anchored at the start of a line, singular or plural,
// case-insensitive.
var sectionPatterns = []struct {
	name string
	re   *regexp.Regexp
}{
	{"args", regexp.MustCompile(`(?im)^[ \t]*Args?:[ \t]*$`)},
	{"returns", regexp.MustCompile(`(?im)^[ \t]*Returns?:[ \t]*$`)},
	{"raises", regexp.MustCompile(`(?im)^[ \t]*Raises?:[ \t]*$`)},
	{"examples", regexp.MustCompile(`(?im)^[ \t]*Examples?:[ \t]*$`)},
	{"yields", regexp.MustCompile(`(?im)^[ \t]*Yields?:[ \t]*$`)},
	{"attributes", regexp.MustCompile(`(?im)^[ \t]*Attributes?:[ \t]*$`)},
	{"note", regexp.MustCompile(`(?im)^[ \t]*Note:[ \t]*$`)},
	{"warning", regexp.MustCompile(`(?im)^[ \t]*Warning:[ \t]*$`)},
}

var (
	// paramPattern matches "name (type): description" with the type group
	// optional.
	paramPattern = regexp.MustCompile(`^\s*(\w+)\s*(?:\(([^)]+)\))?\s*:\s*(.*)$`)

	// exceptionPattern matches "ExceptionType: description" where the name
	// may be dotted (module.ErrorType).
	exceptionPattern = regexp.MustCompile(`^\s*(\w+(?:\.\w+)*):\s*(.*)$`)

	paragraphSplit = regexp.MustCompile(`\n\s*\n`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// Parse extracts structured documentation from a Google-style docstring.
// Empty or all-whitespace input returns the zero record.
func Parse(text string) Parsed {
	var result Parsed
	if strings.TrimSpace(text) == "" {
		return result
	}

	text = normalize(text)
	sections := splitSections(text)

	if desc, ok := sections["description"]; ok {
		result.ShortDescription, result.LongDescription = parseDescription(desc)
	}
	if args, ok := sections["args"]; ok {
		result.Args = parseArgs(args)
	}
	if ret, ok := sections["returns"]; ok {
		result.Returns = cleanText(ret)
	}
	if raises, ok := sections["raises"]; ok {
		result.Raises = parseRaises(raises)
	}
	if examples, ok := sections["examples"]; ok {
		result.Examples = parseExamples(examples)
	}

	return result
}

// normalize strips leading and trailing blank lines and removes the common
// indentation prefix from the remaining lines.
func normalize(text string) string {
	lines := strings.Split(text, "\n")

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ""
	}

	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if minIndent < 0 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent > 0 {
		for i, line := range lines {
			if strings.TrimSpace(line) == "" {
				lines[i] = ""
				continue
			}
			lines[i] = line[minIndent:]
		}
	}

	return strings.Join(lines, "\n")
}

type sectionMarker struct {
	start int
	end   int
	name  string
}

// splitSections partitions the docstring body around recognized section
// headers. Only the first occurrence of each header type participates in
// the split; a repeated header of the same type falls inside the span of
// whatever section precedes it and is treated as ordinary content.
func splitSections(text string) map[string]string {
	sections := make(map[string]string)

	var markers []sectionMarker
	for _, sp := range sectionPatterns {
		if loc := sp.re.FindStringIndex(text); loc != nil {
			markers = append(markers, sectionMarker{start: loc[0], end: loc[1], name: sp.name})
		}
	}

	if len(markers) == 0 {
		sections["description"] = strings.TrimSpace(text)
		return sections
	}

	sort.Slice(markers, func(i, j int) bool { return markers[i].start < markers[j].start })

	sections["description"] = strings.TrimSpace(text[:markers[0].start])
	for i, m := range markers {
		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1].start
		}
		sections[m.name] = strings.TrimSpace(text[m.end:end])
	}

	return sections
}

// parseDescription splits the pre-section text into a one-line summary and
// the extended description. When the first paragraph spans multiple lines
// and its first line ends with a period, only that line is the summary and
// the rest of the paragraph folds into the long description; otherwise the
// whole first paragraph is the summary.
func parseDescription(text string) (short, long string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ""
	}

	paragraphs := paragraphSplit.Split(text, -1)
	short = strings.TrimSpace(paragraphs[0])

	var longParts []string
	shortLines := strings.Split(short, "\n")
	if len(shortLines) > 1 && strings.HasSuffix(strings.TrimSpace(shortLines[0]), ".") {
		short = strings.TrimSpace(shortLines[0])
		longParts = append(longParts, strings.Join(shortLines[1:], "\n"))
	}
	longParts = append(longParts, paragraphs[1:]...)

	var kept []string
	for _, p := range longParts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}

	return short, strings.Join(kept, "\n\n")
}

// parseArgs scans the Args span line by line. A line matching the parameter
// pattern starts a new entry; subsequent non-blank, non-matching lines join
// the current entry's description with single spaces. Lines with no
// parameter context are dropped.
func parseArgs(text string) map[string]Arg {
	args := make(map[string]Arg)

	var (
		current   string
		currType  string
		descLines []string
	)
	flush := func() {
		if current != "" {
			args[current] = Arg{Type: currType, Description: strings.TrimSpace(strings.Join(descLines, " "))}
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if m := paramPattern.FindStringSubmatch(line); m != nil {
			flush()
			current = strings.TrimSpace(m[1])
			currType = strings.TrimSpace(m[2])
			descLines = []string{strings.TrimSpace(m[3])}
			continue
		}
		if current != "" && strings.TrimSpace(line) != "" {
			descLines = append(descLines, strings.TrimSpace(line))
		}
	}
	flush()

	return args
}

// parseRaises scans the Raises span with the same strategy as parseArgs but
// keeps entries ordered, since the same exception type may appear more than
// once.
func parseRaises(text string) []Raise {
	var raises []Raise

	var (
		current   string
		descLines []string
	)
	flush := func() {
		if current != "" {
			raises = append(raises, Raise{Name: current, Description: strings.TrimSpace(strings.Join(descLines, " "))})
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if m := exceptionPattern.FindStringSubmatch(line); m != nil {
			flush()
			current = strings.TrimSpace(m[1])
			descLines = []string{strings.TrimSpace(m[2])}
			continue
		}
		if current != "" && strings.TrimSpace(line) != "" {
			descLines = append(descLines, strings.TrimSpace(line))
		}
	}
	flush()

	return raises
}

// parseExamples splits the Examples span into blocks on blank lines. Each
// block is whitespace-collapsed and trimmed; empty blocks are dropped.
func parseExamples(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var examples []string
	for _, block := range paragraphSplit.Split(text, -1) {
		if cleaned := cleanText(block); cleaned != "" {
			examples = append(examples, cleaned)
		}
	}
	return examples
}

// cleanText collapses runs of whitespace to single spaces and trims the
// result.
func cleanText(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}
