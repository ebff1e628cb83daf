package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeQuery prepares user input for classification and lookup:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//
// Inner whitespace is left as typed; the spell-check length rule counts it.
func NormalizeQuery(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// TitleCase upper-cases the first letter of every word ("ice cream" -> "Ice Cream").
func TitleCase(text string) string {
	// cases.Caser is stateful, so a fresh one is built per call.
	return cases.Title(language.English).String(text)
}
