package classify

import (
	"regexp"
	"strings"
)

var exponentRe = regexp.MustCompile(`\^(\d+)`)

// RenderFormula rewrites a math query into LaTeX display markup.
// The expression is never evaluated:
//  1. x^2 becomes x^{2}
//  2. "**" markers are removed
//  3. backslashes are doubled
func RenderFormula(query string) string {
	out := exponentRe.ReplaceAllString(query, "^{$1}")
	out = strings.ReplaceAll(out, "**", "")
	return strings.ReplaceAll(out, `\`, `\\`)
}
