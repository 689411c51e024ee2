package wording

import "strings"

// DefaultDelimiter separates all but the last two phrases.
const DefaultDelimiter = ", "

// Compose joins phrases into an English enumeration. All but the last
// phrase are joined with delimiter, and the last is attached with
// conjunction surrounded by single spaces. There is no delimiter before the
// conjunction: "a, b or c".
func Compose(phrases []string, delimiter, conjunction string) string {
	switch len(phrases) {
	case 0:
		return ""
	case 1:
		return phrases[0]
	}

	last := len(phrases) - 1
	return strings.Join(phrases[:last], delimiter) + " " + conjunction + " " + phrases[last]
}

// Or composes phrases as alternatives: "a number, a string or a boolean".
func Or(phrases []string) string {
	return Compose(phrases, DefaultDelimiter, "or")
}
