package citetext

import "testing"

func TestFormatPages(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       string
	}{
		{"both empty", "", "", ""},
		{"only start", "123", "", "123"},
		{"equal", "45", "45", "45"},
		{"alphabetic prefix carried", "R575", "82", "R575-R582"},
		{"digit completion", "1234", "45", "1234-1245"},
		{"full end given", "1234", "1256", "1234-1256"},
		{"differing prefixes left alone", "A1", "B2", "A1-B2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPages(tt.start, tt.end); got != tt.want {
				t.Errorf("FormatPages(%q, %q) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
