package biblib

import "github.com/revidiumhq/biblib/citeformat"

// CitationFormat identifies which of the four supported input formats a
// parser reads or a detector classified.
type CitationFormat = citeformat.CitationFormat

// The four supported citation formats, re-exported from citeformat for
// callers who only import the root package.
const (
	Ris        = citeformat.Ris
	PubMed     = citeformat.PubMed
	EndNoteXML = citeformat.EndNoteXML
	CSV        = citeformat.CSV
)
