// Package citecsv implements a configurable delimited-text parser with
// header-alias resolution, mapping rows of a CSV/TSV/semicolon-separated
// export into citations.
package citecsv

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/revidiumhq/biblib/citeerr"
	"github.com/revidiumhq/biblib/citeformat"
	"github.com/revidiumhq/biblib/internal/citation"
	"github.com/revidiumhq/biblib/internal/citetext"
)

// candidateDelimiters is the set auto-detection chooses among.
var candidateDelimiters = []rune{',', ';', '\t'}

// Parse parses delimited text into citations using DefaultConfig.
func Parse(input string) ([]citation.Citation, *citeerr.ParseError) {
	return ParseWithConfig(input, DefaultConfig())
}

// ParseWithConfig parses delimited text into citations under cfg.
func ParseWithConfig(input string, cfg Config) ([]citation.Citation, *citeerr.ParseError) {
	input = citetext.StripBOM(input)
	if strings.TrimSpace(input) == "" {
		return []citation.Citation{}, nil
	}

	delim := cfg.delimiter()
	if cfg.AutoDetect {
		delim = detectDelimiter(input)
	}

	r := csv.NewReader(strings.NewReader(input))
	r.Comma = delim
	r.FieldsPerRecord = -1
	if cfg.Flexible {
		r.FieldsPerRecord = -1
	}
	r.LazyQuotes = false

	rows, err := r.ReadAll()
	if err != nil {
		ve := citeerr.Syntax(err.Error())
		return nil, citeerr.WithoutPosition(citeformat.CSV, ve)
	}
	if len(rows) == 0 {
		return []citation.Citation{}, nil
	}

	aliases := cfg.aliases()

	header := rows[0]
	dataRows := rows[1:]
	hasHeader := looksLikeHeaderRow(aliases, header)
	if !hasHeader {
		// No recognizable header: treat every row, including the first,
		// as data, with positional extra_fields keys.
		header = nil
		dataRows = rows
	}

	columns := make([]string, len(header))
	for i, cell := range header {
		columns[i] = resolveHeader(aliases, cell)
	}

	firstDataLine := 2
	if !hasHeader {
		firstDataLine = 1
	}

	var citations []citation.Citation
	for lineNum, row := range dataRows {
		if !cfg.Flexible && header != nil && len(row) != len(header) {
			ve := citeerr.Syntax("row has a different number of columns than the header")
			return nil, citeerr.AtLine(lineNum+firstDataLine, citeformat.CSV, ve)
		}

		c, verr := buildCitation(row, header, columns, cfg)
		if verr != nil {
			return nil, citeerr.AtLine(lineNum+firstDataLine, citeformat.CSV, *verr)
		}
		citations = append(citations, c)
	}

	if citations == nil {
		citations = []citation.Citation{}
	}
	return citations, nil
}

// detectDelimiter samples the first few non-empty lines of input and
// picks the candidate delimiter that produces the most consistent column
// count across those lines.
func detectDelimiter(input string) rune {
	lines := strings.Split(input, "\n")
	var sample []string
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		sample = append(sample, l)
		if len(sample) >= 5 {
			break
		}
	}
	if len(sample) == 0 {
		return ','
	}

	best := candidateDelimiters[0]
	bestScore := -1
	for _, d := range candidateDelimiters {
		counts := make([]int, len(sample))
		for i, l := range sample {
			counts[i] = strings.Count(l, string(d))
		}
		if consistentAndNonZero(counts) && counts[0] > bestScore {
			bestScore = counts[0]
			best = d
		}
	}
	return best
}

func consistentAndNonZero(counts []int) bool {
	if len(counts) == 0 || counts[0] == 0 {
		return false
	}
	for _, c := range counts[1:] {
		if c != counts[0] {
			return false
		}
	}
	return true
}

// buildCitation maps one data row to a citation. header is nil when the
// input had no recognizable header row, in which case every cell becomes
// a positional extra_fields entry.
func buildCitation(row, header, columns []string, cfg Config) (citation.Citation, *citeerr.ValueError) {
	c := citation.Citation{ExtraFields: map[string][]string{}}

	cell := func(i int) string {
		if i >= len(row) {
			return ""
		}
		v := row[i]
		if cfg.Trim {
			v = strings.TrimSpace(v)
		}
		return v
	}

	var titleSeen bool

	for i := range row {
		value := cell(i)
		if value == "" {
			continue
		}

		var canonical, rawHeader string
		if header != nil && i < len(columns) {
			canonical = columns[i]
			rawHeader = header[i]
		}

		switch canonical {
		case HeaderTitle:
			c.Title = value
			titleSeen = true
		case HeaderAuthors:
			for _, piece := range strings.Split(value, ";") {
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
		case HeaderYear:
			if year, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
				c.Date = &citation.Date{Year: year}
			}
		case HeaderJournal:
			c.Journal = value
		case HeaderVolume:
			c.Volume = value
		case HeaderIssue:
			c.Issue = value
		case HeaderPages:
			c.Pages = value
		case HeaderDOI:
			c.DOI = citetext.NormalizeDOI(value)
		case HeaderAbstract:
			c.AbstractText = value
		case HeaderKeywords:
			for _, kw := range strings.Split(value, ";") {
				kw = strings.TrimSpace(kw)
				if kw != "" {
					c.Keywords = append(c.Keywords, kw)
				}
			}
		default:
			key := rawHeader
			if key == "" {
				key = "column_" + strconv.Itoa(i+1)
			}
			c.ExtraFields[key] = append(c.ExtraFields[key], value)
		}
	}

	if !titleSeen {
		if cfg.Flexible {
			return c, nil
		}
		ve := citeerr.MissingValue(citeerr.FieldTitle, "title")
		return citation.Citation{}, &ve
	}

	return c, nil
}
