package engine

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases", input: "GM", want: "gm"},
		{name: "trims_surrounding_whitespace", input: "  Round 1  ", want: "round1"},
		{name: "removes_internal_spaces", input: "Mock Round", want: "mockround"},
		{name: "ampersand_becomes_and", input: "AI & ML", want: "aiandml"},
		{name: "ampersand_without_spaces", input: "AI&ML", want: "aiandml"},
		{name: "spelled_out_and_matches", input: "ai and ml", want: "aiandml"},
		{name: "empty_stays_empty", input: "", want: ""},
		{name: "whitespace_only", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"AI & ML", "  Round 1 ", "GM", "", "2024 All Rounds", "ai&ml extra"}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
