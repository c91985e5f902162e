package endnote

import "testing"

func TestParse_Empty(t *testing.T) {
	cites, err := Parse("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cites) != 0 {
		t.Fatalf("expected 0 citations, got %d", len(cites))
	}
}

func TestParse_Minimal(t *testing.T) {
	input := `<?xml version="1.0"?>
<xml><records>
<record>
<ref-type name="Journal Article">17</ref-type>
<contributors><authors>
<author>Smith, John</author>
<author>Doe, Jane</author>
</authors></contributors>
<titles><title>Machine Learning in Healthcare</title></titles>
<dates><year>2023</year></dates>
</record>
</records></xml>`

	cites, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cites) != 1 {
		t.Fatalf("expected 1 citation, got %d", len(cites))
	}
	c := cites[0]
	if c.Title != "Machine Learning in Healthcare" {
		t.Errorf("Title = %q", c.Title)
	}
	if c.CitationType != "Journal Article" {
		t.Errorf("CitationType = %q", c.CitationType)
	}
	if len(c.Authors) != 2 || c.Authors[0].Name != "Smith, John" || c.Authors[1].Name != "Doe, Jane" {
		t.Errorf("Authors = %+v", c.Authors)
	}
	if c.Date == nil || c.Date.Year != 2023 {
		t.Errorf("Date = %+v", c.Date)
	}
}

func TestParse_TitleFallbackChain(t *testing.T) {
	input := `<records><record>
<titles><secondary-title>Fallback Journal Name</secondary-title></titles>
</record></records>`

	cites, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cites[0].Title != "Fallback Journal Name" {
		t.Errorf("Title = %q", cites[0].Title)
	}
	if cites[0].Journal != "Fallback Journal Name" {
		t.Errorf("Journal = %q", cites[0].Journal)
	}
}

func TestParse_MissingTitle(t *testing.T) {
	input := `<records><record>
<volume>3</volume>
</record></records>`

	_, err := Parse(input)
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Err.Key != "title" {
		t.Errorf("Key = %q", err.Err.Key)
	}
}

func TestParse_MarkupStrippedFromText(t *testing.T) {
	input := `<records><record>
<titles><title>A <style face="italic">Study</style> of Things</title></titles>
</record></records>`

	cites, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cites[0].Title != "A Study of Things" {
		t.Errorf("Title = %q", cites[0].Title)
	}
}

func TestParse_PeriodicalAndCustom2PMCID(t *testing.T) {
	input := `<records><record>
<titles><title>T</title></titles>
<periodical><full-title>Nature</full-title><abbr-1>Nat.</abbr-1></periodical>
<custom2>PMC1234567</custom2>
</record></records>`

	cites, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := cites[0]
	if c.Journal != "Nature" || c.JournalAbbr != "Nat." {
		t.Errorf("Journal = %q, JournalAbbr = %q", c.Journal, c.JournalAbbr)
	}
	if c.PMCID != "PMC1234567" {
		t.Errorf("PMCID = %q", c.PMCID)
	}
}

func TestParse_Custom2WithoutPMCGoesToExtraFields(t *testing.T) {
	input := `<records><record>
<titles><title>T</title></titles>
<custom2>some-local-id</custom2>
</record></records>`

	cites, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := cites[0]
	if c.PMCID != "" {
		t.Errorf("PMCID = %q, want empty", c.PMCID)
	}
	if got := c.ExtraFields["custom2"]; len(got) != 1 || got[0] != "some-local-id" {
		t.Errorf("ExtraFields[custom2] = %v", got)
	}
}

func TestParse_URLsAndKeywords(t *testing.T) {
	input := `<records><record>
<titles><title>T</title></titles>
<urls><related-urls><url>https://example.com/a</url></related-urls></urls>
<keywords><keyword>genomics</keyword><keyword>ai</keyword></keywords>
</record></records>`

	cites, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := cites[0]
	if len(c.URLs) != 1 || c.URLs[0] != "https://example.com/a" {
		t.Errorf("URLs = %v", c.URLs)
	}
	if len(c.Keywords) != 2 || c.Keywords[0] != "genomics" || c.Keywords[1] != "ai" {
		t.Errorf("Keywords = %v", c.Keywords)
	}
}

func TestParse_ElectronicResourceNumDOI(t *testing.T) {
	input := `<records><record>
<titles><title>T</title></titles>
<electronic-resource-num>https://doi.org/10.1/abc</electronic-resource-num>
</record></records>`

	cites, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cites[0].DOI != "10.1/abc" {
		t.Errorf("DOI = %q", cites[0].DOI)
	}
}

func TestParse_MultipleRecords(t *testing.T) {
	input := `<records>
<record><titles><title>First</title></titles></record>
<record><titles><title>Second</title></titles></record>
</records>`

	cites, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cites) != 2 || cites[0].Title != "First" || cites[1].Title != "Second" {
		t.Errorf("cites = %+v", cites)
	}
}
