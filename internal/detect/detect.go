// Package detect classifies a buffer as one of the four citation formats
// by sniffing its first bytes, without attempting a full parse.
package detect

import (
	"regexp"
	"strings"

	"github.com/revidiumhq/biblib/citeformat"
	"github.com/revidiumhq/biblib/internal/citecsv"
	"github.com/revidiumhq/biblib/internal/citetext"
)

const sniffWindow = 4096

var (
	risTagLine = regexp.MustCompile(`(?m)^[A-Z]{2}  - `)
	risTYLine  = regexp.MustCompile(`(?m)^TY  - `)
	// pubmedTagLine matches the 4-character-wide tag field (the tag,
	// right-padded with spaces to 4 columns) followed by "- ", for a
	// handful of tags common near the start of a PubMed/MEDLINE record.
	pubmedTagLine = regexp.MustCompile(`(?m)^(?:PMID|FAU|LID|AID)- |^PMC - |^(?:TI|AU|AB|JT|TA|DP|PG|VI|IP|IS|LA|MH|OT|AD)  - `)
)

// Detect sniffs input and reports which format it appears to be, or
// false if none of the four formats is recognized.
func Detect(input string) (citeformat.CitationFormat, bool) {
	input = citetext.StripBOM(input)
	window := input
	if len(window) > sniffWindow {
		window = window[:sniffWindow]
	}

	trimmedStart := strings.TrimLeft(window, " \t\r\n")
	if strings.HasPrefix(trimmedStart, "<?xml") ||
		strings.HasPrefix(trimmedStart, "<xml") ||
		strings.HasPrefix(trimmedStart, "<records") {
		return citeformat.EndNoteXML, true
	}

	if risTagLine.MatchString(window) && risTYLine.MatchString(window) {
		return citeformat.Ris, true
	}

	if pubmedTagLine.MatchString(window) {
		return citeformat.PubMed, true
	}

	if looksLikeCSV(window) {
		return citeformat.CSV, true
	}

	return 0, false
}

// looksLikeCSV checks whether the first line of window contains a
// canonical CSV header cell or one of its aliases.
func looksLikeCSV(window string) bool {
	firstLine := window
	if idx := strings.IndexAny(window, "\r\n"); idx != -1 {
		firstLine = window[:idx]
	}
	if strings.TrimSpace(firstLine) == "" {
		return false
	}

	for _, delim := range []string{",", ";", "\t"} {
		cells := strings.Split(firstLine, delim)
		if len(cells) < 2 {
			continue
		}
		if citecsv.HeaderRowLooksCanonical(cells) {
			return true
		}
	}
	return false
}
