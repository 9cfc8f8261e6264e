package mood

import (
	"math"
	"reflect"
	"testing"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	eng, err := NewEngine()
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return eng
}

func TestLabelThresholds(t *testing.T) {
	tests := []struct {
		comparative float64
		expected    Label
	}{
		{2.0, Positive},
		{0.81, Positive},
		{0.8, Neutral}, // boundary is strict
		{0, Neutral},
		{-0.8, Neutral}, // boundary is strict
		{-0.81, Negative},
		{-2.0, Negative},
	}

	for _, tt := range tests {
		if got := labelFor(tt.comparative); got != tt.expected {
			t.Errorf("labelFor(%v) = %v, want %v", tt.comparative, got, tt.expected)
		}
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	eng := newTestEngine(t)

	for _, input := range []string{"", "   \n\t ", "?!..."} {
		a := eng.Analyze(input)

		if a.Score != 0 || a.Comparative != 0 {
			t.Errorf("Analyze(%q) score=%v comparative=%v, want zeros", input, a.Score, a.Comparative)
		}
		if a.Label != Neutral {
			t.Errorf("Analyze(%q) label = %v, want neutral", input, a.Label)
		}
		if len(a.Tokens) != 0 || len(a.Signals) != 0 || len(a.Phrases) != 0 {
			t.Errorf("Analyze(%q) produced tokens/signals/phrases from nothing", input)
		}
		if a.Risk.Crisis || len(a.Risk.Flags) != 0 {
			t.Errorf("Analyze(%q) risk = %+v, want no flags", input, a.Risk)
		}
		for em, v := range a.Emotions {
			if v != 0 {
				t.Errorf("Analyze(%q) emotion %s = %v, want 0", input, em, v)
			}
		}
	}
}

func TestAnalyzeLabelMatchesComparative(t *testing.T) {
	eng := newTestEngine(t)

	inputs := []string{
		"I feel really good today",
		"everything is terrible and I hate it",
		"the meeting is at noon",
		"not good",
		"I am so grateful and happy and proud of myself",
		"tired",
	}

	for _, input := range inputs {
		a := eng.Analyze(input)
		if want := labelFor(a.Comparative); a.Label != want {
			t.Errorf("Analyze(%q) label %v does not match comparative %v", input, a.Label, a.Comparative)
		}
	}
}

func TestAnalyzeComparative(t *testing.T) {
	eng := newTestEngine(t)

	a := eng.Analyze("good")
	if math.Abs(a.Comparative-2) > 1e-9 {
		t.Errorf("comparative = %v, want 2", a.Comparative)
	}
	if a.Label != Positive {
		t.Errorf("label = %v, want positive", a.Label)
	}

	// Comparative is score over sqrt(token count).
	b := eng.Analyze("good good good good")
	wantScore := 2.0 + 2.5 + 3.0 + 3.0 // repetition boost caps at 1.5x
	if math.Abs(b.Score-wantScore) > 1e-9 {
		t.Errorf("score = %v, want %v", b.Score, wantScore)
	}
	if math.Abs(b.Comparative-wantScore/2) > 1e-9 {
		t.Errorf("comparative = %v, want %v", b.Comparative, wantScore/2)
	}
}

func TestEmotionVector(t *testing.T) {
	eng := newTestEngine(t)

	a := eng.Analyze("happy happy anxious")

	if v := a.Emotions[Joy]; math.Abs(v-1) > 1e-9 {
		t.Errorf("joy = %v, want 1", v)
	}
	if v := a.Emotions[Anxiety]; math.Abs(v-0.5) > 1e-9 {
		t.Errorf("anxiety = %v, want 0.5", v)
	}
	for _, em := range []Emotion{Sadness, Anger, Stress, Calm} {
		if a.Emotions[em] != 0 {
			t.Errorf("%s = %v, want 0", em, a.Emotions[em])
		}
	}
	if got := a.DominantEmotion(); got != Joy {
		t.Errorf("dominant = %v, want joy", got)
	}
}

func TestDominantEmotionTieBreak(t *testing.T) {
	eng := newTestEngine(t)

	// sadness and anger tie at 1; enumeration order prefers sadness.
	a := eng.Analyze("sad angry")
	if got := a.DominantEmotion(); got != Sadness {
		t.Errorf("dominant = %v, want sadness on tie", got)
	}

	// No emotion tokens at all: no dominant category.
	b := eng.Analyze("the meeting is at noon")
	if got := b.DominantEmotion(); got != Emotion("") {
		t.Errorf("dominant = %v, want empty", got)
	}
}

func TestMaskingDetection(t *testing.T) {
	eng := newTestEngine(t)

	masked := eng.Analyze("Everything feels hopeless. I am so tired of failing. But I'm fine.")
	if !masked.MaskingPossible {
		t.Errorf("masking not flagged; sentences: %+v", masked.Sentences)
	}
	if masked.Shift <= 0 {
		t.Errorf("shift = %v, want positive (late upbeat turn)", masked.Shift)
	}

	sunny := eng.Analyze("Today was good. I felt happy. Things are calm.")
	if sunny.MaskingPossible {
		t.Error("uniformly positive text flagged as masking")
	}

	single := eng.Analyze("I feel fine")
	if single.MaskingPossible || single.Shift != 0 {
		t.Errorf("single sentence: masking=%v shift=%v, want false/0", single.MaskingPossible, single.Shift)
	}
}

func TestSentenceBreakdown(t *testing.T) {
	eng := newTestEngine(t)

	a := eng.Analyze("Work was awful. The evening got better.")
	if len(a.Sentences) != 2 {
		t.Fatalf("got %d sentences, want 2", len(a.Sentences))
	}

	first, second := a.Sentences[0], a.Sentences[1]
	if first.Comparative >= 0 {
		t.Errorf("first sentence comparative = %v, want negative", first.Comparative)
	}
	if second.Comparative <= 0 {
		t.Errorf("second sentence comparative = %v, want positive", second.Comparative)
	}
	if want := second.Comparative - first.Comparative; math.Abs(a.Shift-want) > 1e-9 {
		t.Errorf("shift = %v, want %v", a.Shift, want)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	eng := newTestEngine(t)

	text := "I was so stressed this week. no one cares. But I'm dead lol, it's fine."
	a := eng.Analyze(text)
	b := eng.Analyze(text)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated analysis differs:\n%+v\n%+v", a, b)
	}
}

func TestIntensityClamped(t *testing.T) {
	eng := newTestEngine(t)

	a := eng.Analyze("hopeless hopeless hopeless despair")
	if a.Intensity != 1 {
		t.Errorf("intensity = %v, want clamp at 1", a.Intensity)
	}
	if b := eng.Analyze("the meeting is at noon"); b.Intensity != 0 {
		t.Errorf("intensity = %v, want 0", b.Intensity)
	}
}

func TestNewEngineConfigErrors(t *testing.T) {
	if _, err := NewEngine(WithConfigFile("/nonexistent/tables.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func BenchmarkAnalyze(b *testing.B) {
	eng, err := NewEngine()
	if err != nil {
		b.Fatal(err)
	}
	text := "Work has been so stressful lately. I feel exhausted and on edge. " +
		"Talking to my sister helped though, and I'm hopeful next week gets better."

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = eng.Analyze(text)
	}
}
