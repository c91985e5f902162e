package dedupe

import "testing"

func TestNormalizeTitle(t *testing.T) {
	got := normalizeTitle("Machine Learning in Healthcare!")
	want := "machinelearninginhealthcare"
	if got != want {
		t.Errorf("normalizeTitle = %q, want %q", got, want)
	}
}

func TestNormalizeJournal_StripsConferenceSuffix(t *testing.T) {
	got := normalizeJournal("Proceedings of ACM. Conference on Data Science 2020")
	want := "proceedingsofacm"
	if got != want {
		t.Errorf("normalizeJournal = %q, want %q", got, want)
	}
}

func TestNormalizeVolume_FirstDigitRun(t *testing.T) {
	got := normalizeVolume("Vol. 12A")
	if got != "12" {
		t.Errorf("normalizeVolume = %q, want %q", got, "12")
	}
}

func TestNormalizeVolume_NoDigits(t *testing.T) {
	if got := normalizeVolume("n/a"); got != "" {
		t.Errorf("normalizeVolume = %q, want empty", got)
	}
}

func TestNormalizePages_RemovesWhitespace(t *testing.T) {
	got := normalizePages("100 - 110")
	if got != "100-110" {
		t.Errorf("normalizePages = %q", got)
	}
}

func TestNormalizeISSN_StripsQualifierAndValidatesShape(t *testing.T) {
	got := normalizeISSN("1234-5678 (Print)")
	if got != "1234-5678" {
		t.Errorf("normalizeISSN = %q, want %q", got, "1234-5678")
	}
	if got := normalizeISSN("not-an-issn"); got != "" {
		t.Errorf("normalizeISSN = %q, want empty", got)
	}
}
