package biblib

import (
	"fmt"
	"strings"

	"github.com/revidiumhq/biblib/citeerr"
)

// RenderDiagnostic formats a ParseError into a plain-text message
// carrying the failing filename, its location, and the offending
// record's source text when a span is available. It has no dependency
// on any rendering library, matching spec's requirement that richer
// diagnostic rendering stay behind a capability boundary outside the
// core.
func RenderDiagnostic(filename, source string, perr *citeerr.ParseError) string {
	var b strings.Builder

	fmt.Fprintf(&b, "error: %s", perr.Err.Error())
	if filename != "" {
		fmt.Fprintf(&b, "\n  --> %s", filename)
		if perr.Line != nil {
			fmt.Fprintf(&b, ":%d", *perr.Line)
			if perr.Column != nil {
				fmt.Fprintf(&b, ":%d", *perr.Column)
			}
		}
	} else if perr.Line != nil {
		fmt.Fprintf(&b, "\n  at line %d", *perr.Line)
	}

	if perr.Span != nil && perr.Span.Start >= 0 && perr.Span.End <= len(source) && perr.Span.Start <= perr.Span.End {
		record := source[perr.Span.Start:perr.Span.End]
		if record != "" {
			b.WriteString("\n\n")
			b.WriteString(record)
		}
	}

	return b.String()
}
