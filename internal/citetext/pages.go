package citetext

import (
	"strings"
	"unicode"
)

// FormatPages combines a start and end page string into one "pages"
// value, completing a truncated end page (e.g. "1234", "45" ->
// "1234-1245") and carrying an alphabetic prefix from start onto end
// when end has no prefix and fewer digits than start (e.g. "R575", "82"
// -> "R575-R582").
func FormatPages(start, end string) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)

	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start
	case start == end:
		return start
	}

	startPrefix, startNum := splitPrefixAndNumber(start)
	endPrefix, endNum := splitPrefixAndNumber(end)

	// Differing, non-empty prefixes on both sides: nothing sensible to
	// complete, leave the range as given.
	if startPrefix != endPrefix && startPrefix != "" && endPrefix != "" {
		return start + "-" + end
	}

	if startNum == "" || endNum == "" {
		return start + "-" + end
	}

	// start carries a prefix end lacks, and end is shorter: carry the
	// prefix across (e.g. "R575"-"82" -> "R575-R582").
	if startPrefix != "" && endPrefix == "" && len(endNum) < len(startNum) {
		completed := startNum[:len(startNum)-len(endNum)] + endNum
		return start + "-" + startPrefix + completed
	}

	// Plain digit completion: a shorter end page re-uses start's leading
	// digits (e.g. "1234"-"45" -> "1234-1245").
	if len(endNum) < len(startNum) {
		completed := startNum[:len(startNum)-len(endNum)] + endNum
		if completed == startNum {
			return start
		}
		return start + "-" + completed
	}

	return start + "-" + end
}

// splitPrefixAndNumber splits input at its first decimal digit (any
// rune for which unicode.IsDigit holds): everything
// before is the prefix, everything from that point on (digits and any
// trailing non-digits) is the number part.
func splitPrefixAndNumber(input string) (prefix, number string) {
	for i, r := range input {
		if unicode.IsDigit(r) {
			return input[:i], input[i:]
		}
	}
	return input, ""
}
