// Package pubmed implements a parser for the PubMed/MEDLINE tagged
// format: a four-character tag field, a "- " separator, six-space
// continuation lines, and blank-line-delimited records.
package pubmed

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/revidiumhq/biblib/citeerr"
	"github.com/revidiumhq/biblib/citeformat"
	"github.com/revidiumhq/biblib/internal/citation"
	"github.com/revidiumhq/biblib/internal/citetext"
)

type event struct {
	tag   string
	value string
}

// Parse parses PubMed/MEDLINE-formatted text into citations.
func Parse(input string) ([]citation.Citation, *citeerr.ParseError) {
	input = citetext.StripBOM(input)
	if strings.TrimSpace(input) == "" {
		return []citation.Citation{}, nil
	}

	lines := citetext.SplitLines(input)

	var citations []citation.Citation
	var events []event
	recordStartByte := -1
	recordStartLine := 0

	flush := func(end int) *citeerr.ParseError {
		if len(events) == 0 {
			return nil
		}
		c, verr := buildCitation(events)
		if verr != nil {
			return citeerr.AtLine(recordStartLine, citeformat.PubMed, *verr).WithSpan(citeerr.NewSourceSpan(recordStartByte, end))
		}
		citations = append(citations, c)
		events = nil
		recordStartByte = -1
		return nil
	}

	for _, line := range lines {
		text := line.Text

		if strings.TrimSpace(text) == "" {
			if perr := flush(line.Start); perr != nil {
				return nil, perr
			}
			continue
		}

		if strings.HasPrefix(text, "      ") {
			if len(events) > 0 {
				events[len(events)-1].value = events[len(events)-1].value + " " + strings.TrimSpace(text)
			}
			continue
		}

		tag, value, ok := splitTagLine(text)
		if !ok {
			continue
		}
		if recordStartByte == -1 {
			recordStartByte = line.Start
			recordStartLine = line.Number
		}
		events = append(events, event{tag: tag, value: value})
	}

	if perr := flush(len(input)); perr != nil {
		return nil, perr
	}

	return citations, nil
}

// splitTagLine splits a PubMed-style line into its 4-character tag
// field (right-trimmed) and value, recognizing the "- " separator that
// begins at byte offset 4.
func splitTagLine(text string) (tag, value string, ok bool) {
	if len(text) < 6 {
		return "", "", false
	}
	if text[4] != '-' || text[5] != ' ' {
		return "", "", false
	}
	t := strings.TrimRight(text[:4], " ")
	if t == "" || !isUpperAlpha(t) {
		return "", "", false
	}
	return t, text[6:], true
}

func isUpperAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

var monthAbbrev = map[string]int{
	"Jan": 1, "Feb": 2, "Mar": 3, "Apr": 4, "May": 5, "Jun": 6,
	"Jul": 7, "Aug": 8, "Sep": 9, "Oct": 10, "Nov": 11, "Dec": 12,
}

var dpRegex = regexp.MustCompile(`^(\d{4})(?: (\w+)(?: (\d+))?)?`)

func buildCitation(events []event) (citation.Citation, *citeerr.ValueError) {
	c := citation.Citation{ExtraFields: map[string][]string{}}
	ac := &authorCollector{}

	var title, bookTitle string
	haveTitle, haveBookTitle := false, false
	var lidDOIs, aidDOIs []string

	for _, e := range events {
		switch e.tag {
		case "PMID":
			c.PMID = e.value
		case "TI":
			title, haveTitle = e.value, true
		case "BTI":
			bookTitle, haveBookTitle = e.value, true
		case "AB":
			c.AbstractText = e.value
		case "JT":
			c.Journal = e.value
		case "TA":
			c.JournalAbbr = e.value
		case "VI":
			c.Volume = e.value
		case "IP":
			c.Issue = e.value
		case "PG":
			c.Pages = e.value
		case "IS":
			c.ISSN = append(c.ISSN, citetext.SplitISSN(e.value)...)
		case "PMC":
			c.PMCID = e.value
		case "LA":
			c.Language = e.value
		case "MH":
			c.MeshTerms = append(c.MeshTerms, e.value)
		case "OT":
			c.Keywords = append(c.Keywords, e.value)
		case "DP":
			date, verr := parsePubMedDate(e.value)
			if verr != nil {
				return citation.Citation{}, verr
			}
			c.Date = date
		case "FAU":
			ac.onFAU(e.value)
		case "AU":
			ac.onAU(e.value)
		case "AD":
			ac.onAD(e.value)
		case "LID":
			if strings.HasSuffix(e.value, " [doi]") {
				lidDOIs = append(lidDOIs, strings.TrimSuffix(e.value, " [doi]"))
			}
		case "AID":
			if strings.HasSuffix(e.value, " [doi]") {
				aidDOIs = append(aidDOIs, strings.TrimSuffix(e.value, " [doi]"))
			}
		}
	}

	c.Authors = ac.finish()

	if haveTitle && strings.TrimSpace(title) != "" {
		c.Title = title
	} else if haveBookTitle && strings.TrimSpace(bookTitle) != "" {
		c.Title = bookTitle
	} else {
		ve := citeerr.MissingValue(citeerr.FieldTitle, "TI")
		return citation.Citation{}, &ve
	}

	for _, raw := range append(lidDOIs, aidDOIs...) {
		if norm := citetext.NormalizeDOI(raw); norm != "" {
			c.DOI = norm
			break
		}
	}

	return c, nil
}

func parsePubMedDate(value string) (*citation.Date, *citeerr.ValueError) {
	value = strings.TrimSpace(value)
	m := dpRegex.FindStringSubmatch(value)
	if m == nil {
		ve := citeerr.BadValue(citeerr.FieldDate, "DP", value, "expected YYYY[ Mon[ DD]]")
		return nil, &ve
	}

	year, err := strconv.Atoi(m[1])
	if err != nil {
		ve := citeerr.BadValue(citeerr.FieldDate, "DP", value, "year is not a 4-digit integer")
		return nil, &ve
	}

	d := &citation.Date{Year: year}
	if m[2] != "" {
		if month, ok := monthAbbrev[m[2]]; ok {
			mv := month
			d.Month = &mv
		}
	}
	if m[3] != "" {
		if day, err := strconv.Atoi(m[3]); err == nil && day >= 1 && day <= 31 {
			d.Day = &day
		}
	}
	return d, nil
}
