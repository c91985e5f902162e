package pubmed

import (
	"testing"

	"github.com/revidiumhq/biblib/citeerr"
)

func TestParse_Empty(t *testing.T) {
	cites, err := Parse("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cites) != 0 {
		t.Fatalf("expected 0 citations, got %d", len(cites))
	}
}

func TestParse_FAUAUReconciliation(t *testing.T) {
	input := "PMID- 1\n" +
		"TI  - T\n" +
		"FAU - Watson, James Dewey\n" +
		"AU  - Watson JD\n" +
		"AD  - Cambridge\n" +
		"ER  -\n"

	cites, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cites) != 1 {
		t.Fatalf("expected 1 citation, got %d", len(cites))
	}
	c := cites[0]
	if len(c.Authors) != 1 {
		t.Fatalf("expected 1 author, got %d: %+v", len(c.Authors), c.Authors)
	}
	a := c.Authors[0]
	if a.Name != "Watson, James Dewey" {
		t.Errorf("Name = %q", a.Name)
	}
	if len(a.Affiliations) != 1 || a.Affiliations[0] != "Cambridge" {
		t.Errorf("Affiliations = %v", a.Affiliations)
	}
}

func TestParse_AUOnlyNoFAUMatch(t *testing.T) {
	input := "PMID- 2\n" +
		"TI  - T\n" +
		"FAU - Watson, James Dewey\n" +
		"AU  - Crick FHC\n" +
		"\n"

	cites, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cites[0].Authors) != 2 {
		t.Fatalf("expected 2 authors, got %d: %+v", len(cites[0].Authors), cites[0].Authors)
	}
}

func TestParse_MultipleRecords(t *testing.T) {
	input := "PMID- 1\n" +
		"TI  - First\n" +
		"\n" +
		"PMID- 2\n" +
		"TI  - Second\n" +
		"\n"

	cites, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cites) != 2 {
		t.Fatalf("expected 2 citations, got %d", len(cites))
	}
	if cites[0].Title != "First" || cites[1].Title != "Second" {
		t.Errorf("titles = %q, %q", cites[0].Title, cites[1].Title)
	}
}

func TestParse_MissingTitleFallsBackToBTI(t *testing.T) {
	input := "PMID- 1\n" +
		"BTI - A Book\n" +
		"\n"

	cites, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cites[0].Title != "A Book" {
		t.Errorf("Title = %q", cites[0].Title)
	}
}

func TestParse_MissingTitleErrors(t *testing.T) {
	input := "PMID- 1\n" +
		"JT  - Some Journal\n" +
		"\n"

	_, err := Parse(input)
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Err.Kind != citeerr.KindMissingValue {
		t.Errorf("expected MissingValue, got %v", err.Err.Kind)
	}
}

func TestParse_DOIFromLID(t *testing.T) {
	input := "PMID- 1\n" +
		"TI  - T\n" +
		"LID - 10.1/abc [doi]\n" +
		"\n"

	cites, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cites[0].DOI != "10.1/abc" {
		t.Errorf("DOI = %q", cites[0].DOI)
	}
}

func TestParse_DateWithMonth(t *testing.T) {
	input := "PMID- 1\n" +
		"TI  - T\n" +
		"DP  - 2023 Jan 15\n" +
		"\n"

	cites, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := cites[0].Date
	if d == nil || d.Year != 2023 || d.Month == nil || *d.Month != 1 || d.Day == nil || *d.Day != 15 {
		t.Errorf("Date = %+v", d)
	}
}

func TestParse_ContinuationLine(t *testing.T) {
	input := "PMID- 1\n" +
		"TI  - A Long\n" +
		"      Title\n" +
		"\n"

	cites, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cites[0].Title != "A Long Title" {
		t.Errorf("Title = %q", cites[0].Title)
	}
}
