package citetext

import "strings"

// SplitName is the parsed shape of a single author's full name.
type SplitName struct {
	// Name is the original full string, trimmed.
	Name string
	// Family is the surname, or the entire string for a mononym.
	Family string
	// Given is the first given-name token, empty for a mononym.
	Given string
	// Middle joins any remaining given-name tokens, empty for a mononym
	// or a name with only one given-name token.
	Middle string
}

// SplitAuthorName parses a full author name the same way across every
// format parser:
//
//   - If it contains a comma, split once on the first comma: the left
//     side is the family name, the right side (trimmed, split on
//     whitespace) gives the given name (first token) and middle name
//     (remaining tokens joined with a space).
//   - Else if it contains whitespace, the last whitespace-separated
//     token is the family name; the preceding tokens give given/middle
//     the same way.
//   - Else the whole string is a mononym: Family is set, Given/Middle
//     are empty.
func SplitAuthorName(full string) SplitName {
	trimmed := strings.TrimSpace(full)
	result := SplitName{Name: trimmed}

	if idx := strings.Index(trimmed, ","); idx >= 0 {
		result.Family = strings.TrimSpace(trimmed[:idx])
		rest := strings.Fields(strings.TrimSpace(trimmed[idx+1:]))
		if len(rest) > 0 {
			result.Given = rest[0]
			result.Middle = strings.Join(rest[1:], " ")
		}
		return result
	}

	fields := strings.Fields(trimmed)
	switch len(fields) {
	case 0:
		result.Family = trimmed
	case 1:
		result.Family = fields[0]
	default:
		result.Family = fields[len(fields)-1]
		result.Given = fields[0]
		result.Middle = strings.Join(fields[1:len(fields)-1], " ")
	}
	return result
}
