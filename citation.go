// Package biblib parses bibliographic citation records out of RIS,
// PubMed/MEDLINE, EndNote XML, and delimited text, and deduplicates the
// resulting records by similarity and field agreement.
package biblib

import "github.com/revidiumhq/biblib/internal/citation"

// Citation is the canonical bibliographic record produced by every
// format parser in this module. See internal/citation.Citation for the
// authoritative field documentation; this is a type alias, not a
// distinct type, so values returned by any parser in this module are
// directly usable wherever a Citation is expected.
type Citation = citation.Citation

// Author is one contributor to a Citation.
type Author = citation.Author

// Date is an optional publication date on a Citation.
type Date = citation.Date
