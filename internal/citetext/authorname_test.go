package citetext

import "testing"

func TestSplitAuthorName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want SplitName
	}{
		{
			name: "comma separated with middle initial",
			in:   "Smith, John A.",
			want: SplitName{Name: "Smith, John A.", Family: "Smith", Given: "John", Middle: "A."},
		},
		{
			name: "mononym",
			in:   "Anonymous",
			want: SplitName{Name: "Anonymous", Family: "Anonymous"},
		},
		{
			name: "space separated",
			in:   "Timothy C Yu",
			want: SplitName{Name: "Timothy C Yu", Family: "Yu", Given: "Timothy", Middle: "C"},
		},
		{
			name: "space separated two tokens",
			in:   "Jane Doe",
			want: SplitName{Name: "Jane Doe", Family: "Doe", Given: "Jane"},
		},
		{
			name: "comma with single given token",
			in:   "Doe, Jane",
			want: SplitName{Name: "Doe, Jane", Family: "Doe", Given: "Jane"},
		},
		{
			name: "trims surrounding whitespace",
			in:   "  Smith, John  ",
			want: SplitName{Name: "Smith, John", Family: "Smith", Given: "John"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitAuthorName(tt.in)
			if got != tt.want {
				t.Errorf("SplitAuthorName(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
