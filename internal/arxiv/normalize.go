// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"regexp"
	"strings"
)

// whitespacePattern matches any run of whitespace, including newlines.
var whitespacePattern = regexp.MustCompile(`\s+`)

// titleSubstitutions maps LaTeX escape sequences that appear in arXiv
// titles to their Unicode equivalents. Entries are literal substrings,
// applied across the whole string in table order, after whitespace
// collapsing.
var titleSubstitutions = []struct {
	from, to string
}{
	{`$\sim$`, "~"},
	{`\'e`, "é"},
	{`\"o`, "ö"},
	{`\"u`, "ü"},
}

// NormalizeTitle collapses every whitespace run to a single space, trims
// the result, and applies the substitution table in order. It is a total
// function over any input and idempotent.
func NormalizeTitle(s string) string {
	s = strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
	for _, sub := range titleSubstitutions {
		s = strings.ReplaceAll(s, sub.from, sub.to)
	}
	return s
}
