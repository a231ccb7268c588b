package main

import "testing"

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Typos within edit distance 2
		{"mrge", "merge"},
		{"merg", "merge"},
		{"meerge", "merge"},
		{"reslove", "resolve"},
		{"resolv", "resolve"},
		{"expnd", "expand"},
		{"chek", "check"},
		{"lokup", "lookup"},
		{"mc", "mcp"},
		{"versio", "version"},
		{"hep", "help"},

		// Too far - no suggestion (distance > 2)
		{"xyz", ""},
		{"foobar", ""},
		{"resolvification", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := suggestCommand(tt.input)
			if got != tt.expected {
				t.Errorf("suggestCommand(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"merge", "merge", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"merge", "mrge", 1},
		{"check", "chek", 1},
		{"kitten", "sitting", 3},
	}

	for _, tt := range tests {
		if got := editDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("editDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
