package dedupe

import (
	"regexp"
	"strings"

	"github.com/revidiumhq/biblib/internal/citation"
	"github.com/revidiumhq/biblib/internal/citetext"
)

// preprocessed is the compact comparison key derived from one citation.
// Its fields are comparison-only: none of this is stored back onto the
// source Citation.
type preprocessed struct {
	idx int

	normTitle       string
	normJournal     string
	normJournalAbbr string
	normVolume      string
	normPages       string
	year            int
	hasYear         bool
	doiLC           string
	issnsNorm       []string
}

var nonAlphaNumRegex = regexp.MustCompile(`[^a-z0-9]`)

var conferenceSuffixRegex = regexp.MustCompile(`(?i)\. Conference.*$`)

var digitRunRegex = regexp.MustCompile(`\d+`)

var issnQualifierRegex = regexp.MustCompile(`\s*\([^)]*\)`)

// preprocess builds the comparison key for one citation.
func preprocess(idx int, c *citation.Citation) preprocessed {
	p := preprocessed{
		idx:             idx,
		normTitle:       normalizeTitle(c.Title),
		normJournal:     normalizeJournal(c.Journal),
		normJournalAbbr: normalizeJournal(c.JournalAbbr),
		normVolume:      normalizeVolume(c.Volume),
		normPages:       normalizePages(c.Pages),
		doiLC:           strings.ToLower(c.DOI),
	}
	if c.Date != nil {
		p.year = c.Date.Year
		p.hasYear = true
	}
	for _, raw := range c.ISSN {
		if norm := normalizeISSN(raw); norm != "" {
			p.issnsNorm = append(p.issnsNorm, norm)
		}
	}
	return p
}

// normalizeTitle applies the full cleanup chain used only for
// comparison: unicode-escape decode, entity decode, tag strip,
// Greek-to-ASCII, lowercase, and removal of every non-alphanumeric rune.
func normalizeTitle(title string) string {
	cleaned := citetext.CleanForComparison(title)
	cleaned = strings.ToLower(cleaned)
	return nonAlphaNumRegex.ReplaceAllString(cleaned, "")
}

// normalizeJournal strips anything from ". Conference" onward
// (case-insensitive), lowercases, and removes non-alphanumeric runes.
func normalizeJournal(journal string) string {
	stripped := conferenceSuffixRegex.ReplaceAllString(journal, "")
	stripped = strings.ToLower(stripped)
	return nonAlphaNumRegex.ReplaceAllString(stripped, "")
}

// normalizeVolume returns the first contiguous digit run, or "" if none.
func normalizeVolume(volume string) string {
	return digitRunRegex.FindString(volume)
}

// normalizePages lowercases and removes all whitespace.
func normalizePages(pages string) string {
	lowered := strings.ToLower(pages)
	return strings.Join(strings.Fields(lowered), "")
}

// normalizeISSN strips a parenthesized qualifier, uppercases, and keeps
// the result only if it still matches the ISSN shape.
func normalizeISSN(raw string) string {
	stripped := issnQualifierRegex.ReplaceAllString(raw, "")
	upper := strings.ToUpper(strings.TrimSpace(stripped))
	if !issnShapeRegex.MatchString(upper) {
		return ""
	}
	return upper
}

var issnShapeRegex = regexp.MustCompile(`^\d{4}-\d{3}[\dX]$`)
