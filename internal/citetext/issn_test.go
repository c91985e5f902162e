package citetext

import (
	"reflect"
	"testing"
)

func TestSplitISSN(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single with qualifier", "1234-5678 (Print)", []string{"1234-5678 (Print)"}},
		{"single plain", "1234-5678", []string{"1234-5678"}},
		{"x check digit", "1234-567X", []string{"1234-567X"}},
		{"lowercase x check digit", "1234-567x", []string{"1234-567x"}},
		{"two issns", "1234-5678 (Print); 8765-432X (Online)", []string{"1234-5678 (Print)", "8765-432X (Online)"}},
		{"no match", "no issn here", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitISSN(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitISSN(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}
