package citetext

import "testing"

func TestCleanForComparison(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"unicode escape", "Caf<U+00E9>", "Café"},
		{"named entities", "A &amp; B &lt;tag&gt;", "A & B"},
		{"strips markup after decode", "A &amp; <i>B</i>", "A & B"},
		{"greek letters", "α-synuclein and β-catenin", "a-synuclein and b-catenin"},
		{"sharp s", "Straße", "Strabe"},
		{"numeric entity", "5&#176;C", "5°C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanForComparison(tt.in); got != tt.want {
				t.Errorf("CleanForComparison(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
