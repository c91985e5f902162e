package citetext

import "testing"

func TestNormalizeDOI(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"https URL with doi suffix", "https://doi.org/10.1234/Foo [doi]", "10.1234/foo"},
		{"dx.doi.org URL", "http://dx.doi.org/10.1/abc", "10.1/abc"},
		{"doi scheme", "doi:10.5/xyz", "10.5/xyz"},
		{"bare doi.org prefix", "doi.org/10.9/q", "10.9/q"},
		{"already clean", "10.1000/182", "10.1000/182"},
		{"surrounding whitespace", "  10.1000/182  ", "10.1000/182"},
		{"nonsense discarded", "nonsense", ""},
		{"empty discarded", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDOI(tt.in); got != tt.want {
				t.Errorf("NormalizeDOI(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
