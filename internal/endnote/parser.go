// Package endnote implements a parser for EndNote's XML export format: a
// <records> root holding a sequence of <record> elements, walked with a
// streaming token reader rather than struct-tag unmarshaling, since element
// text is a concatenation of text/CDATA descendants with embedded markup
// (e.g. <style>) stripped out.
package endnote

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/revidiumhq/biblib/citeerr"
	"github.com/revidiumhq/biblib/citeformat"
	"github.com/revidiumhq/biblib/internal/citation"
	"github.com/revidiumhq/biblib/internal/citetext"
)

// Parse parses EndNote XML text into citations.
func Parse(input string) ([]citation.Citation, *citeerr.ParseError) {
	input = citetext.StripBOM(input)
	if strings.TrimSpace(input) == "" {
		return []citation.Citation{}, nil
	}

	dec := xml.NewDecoder(strings.NewReader(input))

	var citations []citation.Citation

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			ve := citeerr.Syntax(err.Error())
			line, _ := dec.InputPos()
			return nil, citeerr.AtLine(line, citeformat.EndNoteXML, ve)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "record" {
			continue
		}

		recordLine, _ := dec.InputPos()
		rec, err := readRecord(dec)
		if err != nil {
			ve := citeerr.Syntax(err.Error())
			return nil, citeerr.AtLine(recordLine, citeformat.EndNoteXML, ve)
		}

		c, verr := buildCitation(rec)
		if verr != nil {
			return nil, citeerr.AtLine(recordLine, citeformat.EndNoteXML, *verr)
		}
		citations = append(citations, c)
	}

	return citations, nil
}

// element is a minimal tree node: its own concatenated text plus any
// children, keyed by local element name (repeated names all kept, in
// document order).
type element struct {
	name     string
	attrs    map[string]string
	children []*element
	// parts holds the element's text runs and child elements in the
	// order the decoder encountered them, so mixed content (text, a
	// nested <style> run, more text) reassembles in source order.
	parts []interface{}
}

func (e *element) childrenNamed(name string) []*element {
	var out []*element
	for _, c := range e.children {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

func (e *element) firstChildNamed(name string) *element {
	for _, c := range e.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// cleanText returns the element's own text content (concatenation of all
// text/CDATA descendants belonging to it, in document order, markup
// stripped, trimmed).
func (e *element) cleanText() string {
	var b strings.Builder
	for _, p := range e.parts {
		switch v := p.(type) {
		case string:
			b.WriteString(v)
		case *element:
			b.WriteString(v.cleanText())
		}
	}
	return citetext.StripMarkup(b.String())
}

// readRecord consumes tokens up to and including the matching </record>,
// building a tree of elements so that text content can be gathered as the
// concatenation of all descendant text/CDATA nodes.
func readRecord(dec *xml.Decoder) (*element, error) {
	root := &element{name: "record"}
	stack := []*element{root}

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			attrs := map[string]string{}
			for _, a := range t.Attr {
				attrs[a.Name.Local] = a.Value
			}
			el := &element{name: t.Name.Local, attrs: attrs}
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, el)
			parent.parts = append(parent.parts, el)
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return root, nil
			}
			if t.Name.Local == "record" {
				return root, nil
			}
		case xml.CharData:
			cur := stack[len(stack)-1]
			cur.parts = append(cur.parts, string(t))
		}
	}
}

func buildCitation(rec *element) (citation.Citation, *citeerr.ValueError) {
	c := citation.Citation{ExtraFields: map[string][]string{}}

	if refType := rec.firstChildNamed("ref-type"); refType != nil {
		if name, ok := refType.attrs["name"]; ok && name != "" {
			c.CitationType = name
		}
	}

	if contributors := rec.firstChildNamed("contributors"); contributors != nil {
		if authorsEl := contributors.firstChildNamed("authors"); authorsEl != nil {
			for _, a := range authorsEl.childrenNamed("author") {
				text := a.cleanText()
				if text == "" {
					continue
				}
				sn := citetext.SplitAuthorName(text)
				c.Authors = append(c.Authors, citation.Author{
					Name:       sn.Name,
					GivenName:  sn.Given,
					MiddleName: sn.Middle,
				})
			}
		}
	}

	var secondaryTitle string
	if titlesEl := rec.firstChildNamed("titles"); titlesEl != nil {
		title := childText(titlesEl, "title")
		altTitle := childText(titlesEl, "alt-title")
		secondaryTitle = childText(titlesEl, "secondary-title")

		switch {
		case title != "":
			c.Title = title
		case altTitle != "":
			c.Title = altTitle
		case secondaryTitle != "":
			c.Title = secondaryTitle
		default:
			ve := citeerr.MissingValue(citeerr.FieldTitle, "title")
			return citation.Citation{}, &ve
		}

		if secondaryTitle != "" {
			c.Journal = secondaryTitle
		}
	} else {
		ve := citeerr.MissingValue(citeerr.FieldTitle, "title")
		return citation.Citation{}, &ve
	}

	if periodical := rec.firstChildNamed("periodical"); periodical != nil {
		if fullTitle := childText(periodical, "full-title"); fullTitle != "" {
			c.Journal = fullTitle
		}
		if abbr := childText(periodical, "abbr-1"); abbr != "" {
			c.JournalAbbr = abbr
		}
	}

	if datesEl := rec.firstChildNamed("dates"); datesEl != nil {
		if yearText := childText(datesEl, "year"); yearText != "" {
			if year, err := strconv.Atoi(strings.TrimSpace(yearText)); err == nil {
				c.Date = &citation.Date{Year: year}
			}
		}
	}

	c.Volume = childText(rec, "volume")
	c.Issue = childText(rec, "number")
	c.Pages = childText(rec, "pages")
	c.AbstractText = childText(rec, "abstract")
	c.Language = childText(rec, "language")
	c.Publisher = childText(rec, "publisher")

	if isbn := childText(rec, "isbn"); isbn != "" {
		c.ISSN = append(c.ISSN, citetext.SplitISSN(isbn)...)
	}

	if ern := childText(rec, "electronic-resource-num"); ern != "" {
		if norm := citetext.NormalizeDOI(ern); norm != "" {
			c.DOI = norm
		}
	}

	if urlsEl := rec.firstChildNamed("urls"); urlsEl != nil {
		collectURLs(urlsEl, &c.URLs)
	}

	if keywordsEl := rec.firstChildNamed("keywords"); keywordsEl != nil {
		for _, kw := range keywordsEl.childrenNamed("keyword") {
			if text := kw.cleanText(); text != "" {
				c.Keywords = append(c.Keywords, text)
			}
		}
	}

	if custom2 := childText(rec, "custom2"); custom2 != "" {
		if strings.Contains(custom2, "PMC") {
			c.PMCID = custom2
		} else {
			c.ExtraFields["custom2"] = append(c.ExtraFields["custom2"], custom2)
		}
	}

	return c, nil
}

// childText returns the cleaned text of the first child named name, or ""
// if absent.
func childText(e *element, name string) string {
	child := e.firstChildNamed(name)
	if child == nil {
		return ""
	}
	return child.cleanText()
}

// collectURLs walks every descendant <url> under urls (EndNote nests them
// under <related-urls> or similar wrapper elements) and appends its text.
func collectURLs(e *element, out *[]string) {
	for _, c := range e.children {
		if c.name == "url" {
			if text := c.cleanText(); text != "" {
				*out = append(*out, text)
			}
			continue
		}
		collectURLs(c, out)
	}
}
