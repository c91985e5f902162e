package citetext

import "strings"

// doiURLPrefixes are the known ways a DOI arrives dressed up as a URL or
// scheme, checked case-insensitively, longest/most-specific first so that
// "https://dx.doi.org/" is stripped before the shorter "doi.org/" could
// partially match the remainder.
var doiURLPrefixes = []string{
	"https://dx.doi.org/",
	"http://dx.doi.org/",
	"https://doi.org/",
	"http://doi.org/",
	"doi.org/",
	"doi:",
}

// NormalizeDOI lowercases, strips known URL/scheme prefixes and a
// trailing " [doi]" suffix, trims surrounding whitespace, and then keeps
// only the substring starting at the first "10." occurrence. If the
// cleaned result does not begin with "10.", the empty string is returned
// to signal the value should be discarded rather than stored as a DOI.
func NormalizeDOI(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ToLower(s)

	for _, prefix := range doiURLPrefixes {
		if strings.HasPrefix(s, prefix) {
			s = s[len(prefix):]
			break
		}
	}

	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, " [doi]")
	s = strings.TrimSpace(s)

	if idx := strings.Index(s, "10."); idx >= 0 {
		s = s[idx:]
	}

	if !strings.HasPrefix(s, "10.") {
		return ""
	}
	return s
}
