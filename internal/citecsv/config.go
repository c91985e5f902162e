package citecsv

import "strings"

// Canonical header names a CSV row's columns may resolve to.
const (
	HeaderTitle    = "title"
	HeaderAuthors  = "authors"
	HeaderYear     = "year"
	HeaderJournal  = "journal"
	HeaderVolume   = "volume"
	HeaderIssue    = "issue"
	HeaderPages    = "pages"
	HeaderDOI      = "doi"
	HeaderAbstract = "abstract"
	HeaderKeywords = "keywords"
)

var canonicalHeaders = []string{
	HeaderTitle, HeaderAuthors, HeaderYear, HeaderJournal, HeaderVolume,
	HeaderIssue, HeaderPages, HeaderDOI, HeaderAbstract, HeaderKeywords,
}

// defaultAliases maps each canonical header to the alternate spellings
// recognized case-insensitively, drawn from common export conventions
// (EndNote/Zotero/PubMed-style column names).
func defaultAliases() map[string][]string {
	return map[string][]string{
		HeaderTitle:    {"title", "article title", "document title"},
		HeaderAuthors:  {"authors", "author", "author(s)"},
		HeaderYear:     {"year", "publication year", "pub year", "date"},
		HeaderJournal:  {"journal", "journal name", "source", "secondary title", "publication title"},
		HeaderVolume:   {"volume", "vol"},
		HeaderIssue:    {"issue", "number"},
		HeaderPages:    {"pages", "page numbers", "start page"},
		HeaderDOI:      {"doi", "digital object identifier"},
		HeaderAbstract: {"abstract", "abstract note"},
		HeaderKeywords: {"keywords", "tags", "keyword"},
	}
}

// Config controls how a delimited buffer is read and mapped to citations.
type Config struct {
	// Delimiter separates columns; defaults to ',' if zero.
	Delimiter rune
	// Quote is the quoting character; stdlib encoding/csv only supports
	// '"', so this field exists for documentation purposes and is not
	// consulted by the parser.
	Quote rune
	// Trim trims leading/trailing whitespace from every cell.
	Trim bool
	// Flexible tolerates rows with a different column count than the
	// header and does not require a non-empty title cell.
	Flexible bool
	// HeaderAliases overrides or extends the default canonical-header
	// alias table. A nil map uses defaultAliases().
	HeaderAliases map[string][]string
	// AutoDetect samples the input to choose a delimiter, ignoring
	// Delimiter. Whether the first row is a header is decided by the same
	// header-name check whether or not AutoDetect is set.
	AutoDetect bool
}

// DefaultConfig returns the zero-value-equivalent configuration: comma
// delimiter, double-quote quoting, no trimming, strict column counts,
// default header aliases, auto-detection disabled.
func DefaultConfig() Config {
	return Config{Delimiter: ',', Quote: '"'}
}

func (c Config) delimiter() rune {
	if c.Delimiter == 0 {
		return ','
	}
	return c.Delimiter
}

func (c Config) aliases() map[string][]string {
	if c.HeaderAliases != nil {
		return c.HeaderAliases
	}
	return defaultAliases()
}

// resolveHeader maps a raw header cell to its canonical field name, or
// "" if it matches no canonical name or alias.
func resolveHeader(aliases map[string][]string, raw string) string {
	norm := strings.ToLower(strings.TrimSpace(raw))
	for _, canonical := range canonicalHeaders {
		if norm == canonical {
			return canonical
		}
	}
	for canonical, alts := range aliases {
		for _, alt := range alts {
			if norm == strings.ToLower(alt) {
				return canonical
			}
		}
	}
	return ""
}

// looksLikeHeaderRow reports whether any cell in row matches a canonical
// or aliased header name.
func looksLikeHeaderRow(aliases map[string][]string, row []string) bool {
	for _, cell := range row {
		if resolveHeader(aliases, cell) != "" {
			return true
		}
	}
	return false
}

// HeaderRowLooksCanonical reports whether any cell in row matches a
// canonical header name or one of its default aliases. Exported for use
// by the format detector, which sniffs a buffer's first line without
// constructing a Config.
func HeaderRowLooksCanonical(row []string) bool {
	return looksLikeHeaderRow(defaultAliases(), row)
}
