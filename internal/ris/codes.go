package ris

// typeCodes maps RIS type codes (the TY value) to their
// canonical citation_type names. A code not present here passes through
// verbatim as the citation type.
var typeCodes = map[string]string{
	"JOUR":    "Journal Article",
	"BOOK":    "Book",
	"CHAP":    "Book Chapter",
	"CONF":    "Conference Paper",
	"THES":    "Thesis",
	"RPRT":    "Report",
	"GEN":     "Generic",
	"ABST":    "Abstract",
	"NEWS":    "Newspaper Article",
	"MGZN":    "Magazine Article",
	"PAT":     "Patent",
	"COMP":    "Computer Program",
	"DATA":    "Dataset",
	"ELEC":    "Electronic Source",
	"STAT":    "Statute",
	"MANSCPT": "Manuscript",
	"UNPB":    "Unpublished Work",
	"WEB":     "Web Page",
}

// resolveCitationType maps a RIS TY code to its canonical name, passing
// unknown codes through unchanged.
func resolveCitationType(code string) string {
	if name, ok := typeCodes[code]; ok {
		return name
	}
	return code
}
