package pubmed

import (
	"strings"

	"github.com/revidiumhq/biblib/internal/citation"
	"github.com/revidiumhq/biblib/internal/citetext"
)

// authorCollector reconciles the two parallel PubMed author streams,
// FAU (full name) and AU (short name), plus AD (affiliation) lines, into
// a single ordered author list.
//
// Algorithm (walking tags in source order):
//  1. On FAU x: flush any pending full name as an author, then hold x as
//     pending.
//  2. On AU x: if a full name is pending and its surname matches x's
//     surname (case-insensitively), emit one author from the pending
//     full name and clear it. Otherwise flush the pending full name (if
//     any), then emit an author from x directly.
//  3. On AD x: attach x as an affiliation on the most recently emitted
//     author; repeated AD lines before the next author all attach to
//     that same author.
//  4. At end of record: flush any still-pending full name.
type authorCollector struct {
	authors      []citation.Author
	pendingFull  string
	pendingIsSet bool
}

func (ac *authorCollector) onFAU(full string) {
	ac.flushPending()
	ac.pendingFull = full
	ac.pendingIsSet = true
}

func (ac *authorCollector) onAU(short string) {
	if ac.pendingIsSet {
		fullSurname := citetext.SplitAuthorName(ac.pendingFull).Family
		auSurname := firstToken(short)
		if strings.EqualFold(fullSurname, auSurname) {
			ac.emitFull(ac.pendingFull)
			ac.pendingFull = ""
			ac.pendingIsSet = false
			return
		}
		ac.flushPending()
	}
	ac.emitFull(short)
}

func (ac *authorCollector) onAD(affiliation string) {
	if len(ac.authors) == 0 {
		return
	}
	last := &ac.authors[len(ac.authors)-1]
	last.Affiliations = append(last.Affiliations, affiliation)
}

func (ac *authorCollector) flushPending() {
	if !ac.pendingIsSet {
		return
	}
	ac.emitFull(ac.pendingFull)
	ac.pendingFull = ""
	ac.pendingIsSet = false
}

func (ac *authorCollector) emitFull(name string) {
	sn := citetext.SplitAuthorName(name)
	if sn.Name == "" {
		return
	}
	ac.authors = append(ac.authors, citation.Author{
		Name:       sn.Name,
		GivenName:  sn.Given,
		MiddleName: sn.Middle,
	})
}

// finish flushes any pending full name and returns the reconciled
// author list.
func (ac *authorCollector) finish() []citation.Author {
	ac.flushPending()
	return ac.authors
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
