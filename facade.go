package biblib

import (
	"github.com/revidiumhq/biblib/citeerr"
	"github.com/revidiumhq/biblib/internal/citecsv"
	"github.com/revidiumhq/biblib/internal/detect"
	"github.com/revidiumhq/biblib/internal/endnote"
	"github.com/revidiumhq/biblib/internal/pubmed"
	"github.com/revidiumhq/biblib/internal/ris"
)

// CitationParser is satisfied by every format parser in this module.
type CitationParser interface {
	Parse(input string) ([]Citation, *citeerr.ParseError)
}

// RISParser parses the RIS tagged reference format.
type RISParser struct{}

func (RISParser) Parse(input string) ([]Citation, *citeerr.ParseError) { return ris.Parse(input) }

// PubMedParser parses the PubMed/MEDLINE tagged format.
type PubMedParser struct{}

func (PubMedParser) Parse(input string) ([]Citation, *citeerr.ParseError) {
	return pubmed.Parse(input)
}

// EndNoteXMLParser parses EndNote's XML export format.
type EndNoteXMLParser struct{}

func (EndNoteXMLParser) Parse(input string) ([]Citation, *citeerr.ParseError) {
	return endnote.Parse(input)
}

// CSVParser parses configurable delimited text under DefaultConfig.
// Construct a CSVParser with a non-zero Config to customize delimiter,
// quoting, or header aliases.
type CSVParser struct {
	Config citecsv.Config
}

func (p CSVParser) Parse(input string) ([]Citation, *citeerr.ParseError) {
	return citecsv.ParseWithConfig(input, p.Config)
}

// parserFor returns the CitationParser that handles format.
func parserFor(format CitationFormat) CitationParser {
	switch format {
	case Ris:
		return RISParser{}
	case PubMed:
		return PubMedParser{}
	case EndNoteXML:
		return EndNoteXMLParser{}
	case CSV:
		return CSVParser{Config: citecsv.DefaultConfig()}
	default:
		return nil
	}
}

// DetectAndParse sniffs content's format and parses it with the matching
// parser. Returns CitationError wrapping ErrUnknownFormat if the format
// cannot be classified, or wrapping the parser's *ParseError on failure.
func DetectAndParse(content string) ([]Citation, CitationFormat, *citeerr.CitationError) {
	format, ok := detect.Detect(content)
	if !ok {
		return nil, 0, &citeerr.CitationError{}
	}

	citations, perr := parserFor(format).Parse(content)
	if perr != nil {
		return nil, format, &citeerr.CitationError{Parse: perr}
	}
	return citations, format, nil
}

// ParseWithDiagnostics parses input with parser and, on failure, renders
// a plain-text diagnostic string via RenderDiagnostic instead of
// returning the structured error. filename is included in the rendered
// message for the caller's convenience; it is not otherwise interpreted.
func ParseWithDiagnostics(parser CitationParser, input, filename string) ([]Citation, string) {
	citations, perr := parser.Parse(input)
	if perr != nil {
		return nil, RenderDiagnostic(filename, input, perr)
	}
	return citations, ""
}
