package speech

import "testing"

// TestNormalize tests markdown stripping and whitespace normalization.
func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain text",
			raw:  "Hello",
			want: "Hello",
		},
		{
			name: "emphasis stripped",
			raw:  "**Photosynthesis** is a _process_ used by plants.",
			want: "Photosynthesis is a process used by plants.",
		},
		{
			name: "heading markers stripped",
			raw:  "# Chapter 1\n\nMatter in Our Surroundings",
			want: "Chapter 1 Matter in Our Surroundings",
		},
		{
			name: "list markers stripped",
			raw:  "- evaporation\n- condensation\n- sublimation",
			want: "evaporation condensation sublimation",
		},
		{
			name: "inline code kept as words",
			raw:  "use the `formula` here",
			want: "use the formula here",
		},
		{
			name: "fenced code dropped",
			raw:  "Before\n\n```\nx := 42\n```\n\nAfter",
			want: "Before After",
		},
		{
			name: "link text kept",
			raw:  "see [NCERT](https://example.com) for details",
			want: "see NCERT for details",
		},
		{
			name: "image dropped",
			raw:  "![diagram](diagram.png) The water cycle",
			want: "The water cycle",
		},
		{
			name: "whitespace collapsed",
			raw:  "  one  \n\n two\tthree  ",
			want: "one two three",
		},
		{
			name: "control characters removed",
			raw:  "leftright​end",
			want: "left right end",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
		{
			name: "markdown only",
			raw:  "****",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

// TestNormalizeIsIdempotent tests that normalizing twice changes nothing,
// so normalized text can itself be used as a cache key.
func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"**Hello** world",
		"# Heading\n\nbody text",
		"plain already",
	}
	for _, raw := range inputs {
		once := Normalize(raw)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", raw, twice, once)
		}
	}
}
