package citetext

import "regexp"

// issnRegex matches an ISSN-shaped substring (NNNN-NNNC, C possibly the
// check character X) together with an immediately following parenthesized
// qualifier such as "(Print)" or "(Online)", if present.
var issnRegex = regexp.MustCompile(`(?i)\d{4}-\d{3}[\dX](?:\s*\([^)]+\))?`)

// SplitISSN extracts every ISSN-shaped substring from raw, each still
// carrying its trailing parenthesized qualifier if one immediately
// follows it in the source text.
func SplitISSN(raw string) []string {
	return issnRegex.FindAllString(raw, -1)
}
