// Package ris implements a parser for the RIS tagged reference format:
// a line-oriented state machine with two states (Outside a record,
// InRecord), continuation lines, and priority-ordered field fallbacks.
package ris

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/revidiumhq/biblib/citeerr"
	"github.com/revidiumhq/biblib/citeformat"
	"github.com/revidiumhq/biblib/internal/citation"
	"github.com/revidiumhq/biblib/internal/citetext"
)

// tagLineRegex matches a data line: two letters/digits, two spaces, a
// dash, then the value (the single space before the value is present on
// every real-world tag line except bare sentinels like "ER  -", so it is
// optional here).
var tagLineRegex = regexp.MustCompile(`^([A-Z][A-Z0-9])  -(?: (.*))?$`)

type state int

const (
	stateOutside state = iota
	stateInRecord
)

// record accumulates tag values for the citation currently being built.
type record struct {
	values    map[string][]string // tag -> ordered values, one per source line
	startByte int
	startLine int
}

func newRecord(startByte, startLine int) *record {
	return &record{values: make(map[string][]string), startByte: startByte, startLine: startLine}
}

func (r *record) push(tag, value string) {
	r.values[tag] = append(r.values[tag], value)
}

// appendContinuation concatenates text onto the last value pushed under
// tag, with a single space separator, per the RIS continuation rule. A
// blank continuation line is a no-op: it must not leave a trailing
// space on the accumulated value.
func (r *record) appendContinuation(tag, text string) {
	if text == "" {
		return
	}
	vs := r.values[tag]
	if len(vs) == 0 {
		return
	}
	vs[len(vs)-1] = vs[len(vs)-1] + " " + text
	r.values[tag] = vs
}

func (r *record) first(tags ...string) (tag, value string, ok bool) {
	for _, t := range tags {
		if vs, present := r.values[t]; present && len(vs) > 0 {
			return t, vs[0], true
		}
	}
	return "", "", false
}

// Parse parses RIS-formatted text into citations.
func Parse(input string) ([]citation.Citation, *citeerr.ParseError) {
	input = citetext.StripBOM(input)
	if strings.TrimSpace(input) == "" {
		return []citation.Citation{}, nil
	}

	lines := citetext.SplitLines(input)

	var citations []citation.Citation
	st := stateOutside
	var cur *record
	lastTag := ""

	emit := func(end int) *citeerr.ParseError {
		c, err := buildCitation(cur)
		if err != nil {
			return err.WithSpan(citeerr.NewSourceSpan(cur.startByte, end))
		}
		citations = append(citations, c)
		return nil
	}

	for _, line := range lines {
		text := line.Text

		if m := tagLineRegex.FindStringSubmatch(text); m != nil {
			tag, value := m[1], m[2]

			switch {
			case tag == "TY" && st == stateOutside:
				cur = newRecord(line.Start, line.Number)
				cur.push("TY", value)
				st = stateInRecord
				lastTag = "TY"
				continue
			case tag == "TY" && st == stateInRecord:
				// A new record started without a terminating ER line:
				// lenient termination of the prior record.
				if perr := emit(line.Start); perr != nil {
					return nil, perr
				}
				cur = newRecord(line.Start, line.Number)
				cur.push("TY", value)
				lastTag = "TY"
				continue
			case tag == "ER" && st == stateInRecord:
				if perr := emit(line.End); perr != nil {
					return nil, perr
				}
				cur = nil
				st = stateOutside
				lastTag = ""
				continue
			case st == stateInRecord:
				cur.push(tag, value)
				lastTag = tag
				continue
			default:
				// A tagged line outside a record other than TY: ignore.
				continue
			}
		}

		// Not a recognized tag line: continuation, if we're inside a
		// record and have a tag to attach to. Blank lines attach as an
		// empty continuation (a no-op append of "").
		if st == stateInRecord && lastTag != "" {
			cur.appendContinuation(lastTag, strings.TrimSpace(text))
		}
	}

	if st == stateInRecord {
		if perr := emit(len(input)); perr != nil {
			return nil, perr
		}
	}

	return citations, nil
}

func buildCitation(r *record) (citation.Citation, *citeerr.ParseError) {
	c := citation.Citation{ExtraFields: map[string][]string{}}

	if _, ty, ok := r.first("TY"); ok {
		c.CitationType = resolveCitationType(ty)
	}

	_, title, ok := r.first("TI", "T1")
	if !ok || strings.TrimSpace(title) == "" {
		return citation.Citation{}, errAt(r, citeerr.MissingValue(citeerr.FieldTitle, "TI"))
	}
	c.Title = title

	for _, tag := range []string{"AU", "A1", "A2", "A3", "A4"} {
		for _, v := range r.values[tag] {
			for _, piece := range splitAuthors(v) {
				piece = strings.TrimSpace(piece)
				if piece == "" {
					continue
				}
				sn := citetext.SplitAuthorName(piece)
				c.Authors = append(c.Authors, citation.Author{
					Name:       sn.Name,
					GivenName:  sn.Given,
					MiddleName: sn.Middle,
				})
			}
		}
	}

	if _, jf, ok := r.first("JF", "T2", "JO"); ok {
		c.Journal = jf
	}
	if _, ja, ok := r.first("JA", "J2"); ok {
		c.JournalAbbr = ja
	}

	if tag, dv, ok := r.first("PY", "Y1"); ok {
		date, err := parseRISDate(tag, dv)
		if err != nil {
			return citation.Citation{}, errAt(r, *err)
		}
		c.Date = date
	}

	if _, vl, ok := r.first("VL"); ok {
		c.Volume = vl
	}
	if _, is, ok := r.first("IS"); ok {
		c.Issue = is
	}

	_, sp, spOk := r.first("SP")
	_, ep, epOk := r.first("EP")
	if spOk || epOk {
		c.Pages = citetext.FormatPages(sp, ep)
	}

	if _, doTag, ok := r.first("DO"); ok {
		if norm := citetext.NormalizeDOI(doTag); norm != "" {
			c.DOI = norm
		}
	}

	if _, ab, ok := r.first("AB", "N2"); ok {
		c.AbstractText = ab
	}

	for _, kw := range r.values["KW"] {
		c.Keywords = append(c.Keywords, kw)
	}

	for _, sn := range r.values["SN"] {
		c.ISSN = append(c.ISSN, citetext.SplitISSN(sn)...)
	}

	for _, tag := range []string{"UR", "L1", "L2", "L3", "L4", "LK"} {
		c.URLs = append(c.URLs, r.values[tag]...)
	}

	if c.DOI == "" {
		for _, u := range c.URLs {
			if idx := strings.Index(u, "doi.org/"); idx >= 0 {
				if norm := citetext.NormalizeDOI(u[idx+len("doi.org/"):]); norm != "" {
					c.DOI = norm
					break
				}
			}
		}
	}

	return c, nil
}

func errAt(r *record, ve citeerr.ValueError) *citeerr.ParseError {
	return citeerr.AtLine(r.startLine, citeformat.Ris, ve)
}

// splitAuthors splits a single AU-family value into individual author
// names, in order, on ';' first, then ' & ', then ' and '. Commas are
// never split on: they are part of "Last, First".
func splitAuthors(value string) []string {
	var pieces []string
	for _, semiPart := range strings.Split(value, ";") {
		for _, ampPart := range strings.Split(semiPart, " & ") {
			pieces = append(pieces, strings.Split(ampPart, " and ")...)
		}
	}
	return pieces
}

var yearMonthDayRegex = regexp.MustCompile(`^(\d{4})(?:/(\d{1,2})?(?:/(\d{1,2})?)?.*)?$`)

func parseRISDate(tag, value string) (*citation.Date, *citeerr.ValueError) {
	value = strings.TrimSpace(value)
	m := yearMonthDayRegex.FindStringSubmatch(value)
	if m == nil {
		ve := citeerr.BadValue(citeerr.FieldDate, tag, value, "expected YYYY[/MM[/DD]]")
		return nil, &ve
	}

	year, err := strconv.Atoi(m[1])
	if err != nil {
		ve := citeerr.BadValue(citeerr.FieldDate, tag, value, "year is not a 4-digit integer")
		return nil, &ve
	}

	d := &citation.Date{Year: year}
	if m[2] != "" {
		if month, err := strconv.Atoi(m[2]); err == nil && month >= 1 && month <= 12 {
			d.Month = &month
		}
	}
	if m[3] != "" {
		if day, err := strconv.Atoi(m[3]); err == nil && day >= 1 && day <= 31 {
			d.Day = &day
		}
	}
	return d, nil
}
