// Package citeerr defines the structured error hierarchy shared by every
// format parser: a byte-offset SourceSpan, a taxonomy of ValueError kinds,
// and the ParseError/CitationError wrapper types that carry them.
package citeerr

import (
	"errors"
	"fmt"

	"github.com/revidiumhq/biblib/citeformat"
)

// Field name constants for consistent error reporting across parsers.
const (
	FieldTitle        = "title"
	FieldAuthor       = "author"
	FieldDate         = "date"
	FieldJournal      = "journal"
	FieldJournalAbbr  = "journal_abbr"
	FieldDOI          = "doi"
	FieldVolume       = "volume"
	FieldIssue        = "issue"
	FieldPages        = "pages"
	FieldAbstract     = "abstract"
	FieldKeywords     = "keywords"
	FieldYear         = "year"
	FieldPMID         = "pmid"
	FieldPMCID        = "pmc_id"
	FieldISSN         = "issn"
	FieldLanguage     = "language"
	FieldPublisher    = "publisher"
	FieldURLs         = "urls"
	FieldMeshTerms    = "mesh_terms"
	FieldCitationType = "citation_type"
)

// SourceSpan is a half-open byte range [Start, End) into the original
// input. Start is inclusive, End is exclusive; Start <= End <= len(input).
type SourceSpan struct {
	Start int
	End   int
}

// NewSourceSpan builds a SourceSpan.
func NewSourceSpan(start, end int) SourceSpan {
	return SourceSpan{Start: start, End: end}
}

// ValueError is the taxonomy of field-level parse failures. Exactly one
// of the typed variants below is ever constructed; Kind reports which.
type ValueError struct {
	Kind ValueErrorKind

	// Syntax
	Message string

	// MissingValue / BadValue / MultipleValues
	Field string
	Key   string

	// BadValue
	Value  string
	Reason string

	// MultipleValues
	Values []string
}

// ValueErrorKind enumerates the ValueError variants.
type ValueErrorKind int

const (
	KindSyntax ValueErrorKind = iota
	KindMissingValue
	KindBadValue
	KindMultipleValues
)

// Syntax builds a ValueError for malformed input.
func Syntax(msg string) ValueError {
	return ValueError{Kind: KindSyntax, Message: msg}
}

// MissingValue builds a ValueError for a required field absent from an
// otherwise well-formed record.
func MissingValue(field, key string) ValueError {
	return ValueError{Kind: KindMissingValue, Field: field, Key: key}
}

// BadValue builds a ValueError for a present but unparseable value.
func BadValue(field, key, value, reason string) ValueError {
	return ValueError{Kind: KindBadValue, Field: field, Key: key, Value: value, Reason: reason}
}

// MultipleValues builds a ValueError for a scalar field that appeared
// more than once.
func MultipleValues(field, key string, values []string) ValueError {
	return ValueError{Kind: KindMultipleValues, Field: field, Key: key, Values: values}
}

func (e ValueError) Error() string {
	switch e.Kind {
	case KindSyntax:
		return fmt.Sprintf("bad syntax: %s", e.Message)
	case KindMissingValue:
		return fmt.Sprintf("missing value for %s", e.Key)
	case KindBadValue:
		return fmt.Sprintf("bad value for %s: %q (%s)", e.Key, e.Value, e.Reason)
	case KindMultipleValues:
		return fmt.Sprintf("second value found for %s but only one value is allowed", e.Key)
	default:
		return "unknown value error"
	}
}

// ParseError carries a ValueError plus its location in the original
// input: a 1-based line, an optional 1-based column, and an optional
// byte span covering the entire offending record.
type ParseError struct {
	Line   *int
	Column *int
	Span   *SourceSpan
	Format citeformat.CitationFormat
	Err    ValueError
}

// New builds a ParseError with all location fields set explicitly.
func New(line, column *int, format citeformat.CitationFormat, err ValueError) *ParseError {
	return &ParseError{Line: line, Column: column, Format: format, Err: err}
}

// AtLine builds a ParseError with just a line number.
func AtLine(line int, format citeformat.CitationFormat, err ValueError) *ParseError {
	l := line
	return &ParseError{Line: &l, Format: format, Err: err}
}

// AtPosition builds a ParseError with line and column information.
func AtPosition(line, column int, format citeformat.CitationFormat, err ValueError) *ParseError {
	l, c := line, column
	return &ParseError{Line: &l, Column: &c, Format: format, Err: err}
}

// WithoutPosition builds a ParseError carrying no location information.
func WithoutPosition(format citeformat.CitationFormat, err ValueError) *ParseError {
	return &ParseError{Format: format, Err: err}
}

// WithSpan returns a copy of e with span attached (builder style).
func (e *ParseError) WithSpan(span SourceSpan) *ParseError {
	cp := *e
	cp.Span = &span
	return &cp
}

func (e *ParseError) Error() string {
	loc := ""
	switch {
	case e.Line != nil && e.Column != nil:
		loc = fmt.Sprintf(" at line %d column %d", *e.Line, *e.Column)
	case e.Line != nil:
		loc = fmt.Sprintf(" at line %d", *e.Line)
	case e.Column != nil:
		loc = fmt.Sprintf(" at column %d", *e.Column)
	}
	return fmt.Sprintf("error in %s format%s: %s", e.Format, loc, e.Err.Error())
}

// Unwrap exposes the underlying ValueError for errors.As/errors.Is.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrUnknownFormat is returned by the top-level facade when the format
// detector cannot classify the input.
var ErrUnknownFormat = errors.New("unable to detect citation format from input")

// CitationError wraps either ErrUnknownFormat or a *ParseError, matching
// the two top-level error cases a caller of the public facade can see.
type CitationError struct {
	Parse *ParseError
}

func (e *CitationError) Error() string {
	if e.Parse != nil {
		return e.Parse.Error()
	}
	return ErrUnknownFormat.Error()
}

func (e *CitationError) Unwrap() error {
	if e.Parse != nil {
		return e.Parse
	}
	return ErrUnknownFormat
}
