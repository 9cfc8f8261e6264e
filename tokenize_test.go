package mood

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		desc     string
	}{
		{"Hello, World!", "hello world", "punctuation stripped"},
		{"I can't sleep...", "i can't sleep", "apostrophes preserved"},
		{"self-harm", "self-harm", "hyphens preserved"},
		{"  lots\tof   space \n", "lots of space", "whitespace collapsed"},
		{"Café résumé", "cafe resume", "diacritics folded"},
		{"don’t", "don't", "curly apostrophe sanitized"},
		{"!!!", "", "punctuation-only input"},
		{"", "", "empty input"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
		desc     string
	}{
		{"I feel good today.", []string{"i", "feel", "good", "today"}, "simple sentence"},
		{"", nil, "empty input"},
		{"   \n\t ", nil, "whitespace-only input"},
		{"?!.,;", nil, "punctuation-only input"},
		{"don't stop", []string{"don't", "stop"}, "contractions survive"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.input, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Tokenize(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
		desc     string
	}{
		{
			"I slept badly. Work was awful! Feeling ok now?",
			[]string{"I slept badly", "Work was awful", "Feeling ok now"},
			"mixed terminators",
		},
		{
			"One sentence with no terminator",
			[]string{"One sentence with no terminator"},
			"no terminator",
		},
		{
			"First line\nSecond thought. Third.",
			[]string{"First line Second thought", "Third"},
			"newlines become spaces",
		},
		{
			"What?! Really?!?",
			[]string{"What", "Really"},
			"terminator runs collapse",
		},
		{"", nil, "empty input"},
		{"...", nil, "punctuation only"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := SplitSentences(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitSentences(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRuleSegmenterMatchesSplitSentences(t *testing.T) {
	text := "Bad day. Really bad day! Tomorrow might be better."
	var seg Segmenter = ruleSegmenter{}
	if got, want := seg.Segment(text), SplitSentences(text); !reflect.DeepEqual(got, want) {
		t.Errorf("ruleSegmenter.Segment = %v, want %v", got, want)
	}
}

func TestPunktSegmenter(t *testing.T) {
	seg, err := NewPunktSegmenter()
	if err != nil {
		t.Fatalf("NewPunktSegmenter: %v", err)
	}

	got := seg.Segment("I met Dr. Smith today. It went fine.")
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences (abbreviation-aware), got %d: %v", len(got), got)
	}
}
