package mood

// A Label classifies the overall tone of a piece of text.
type Label string

const (
	Positive Label = "positive"
	Neutral  Label = "neutral"
	Negative Label = "negative"
)

// labelFor maps a comparative score onto a Label. The thresholds are
// strict: boundary values resolve to Neutral.
func labelFor(comparative float64) Label {
	switch {
	case comparative > 0.8:
		return Positive
	case comparative < -0.8:
		return Negative
	default:
		return Neutral
	}
}

// An Emotion names one of the tracked emotion categories.
type Emotion string

const (
	Joy     Emotion = "joy"
	Sadness Emotion = "sadness"
	Anger   Emotion = "anger"
	Anxiety Emotion = "anxiety"
	Stress  Emotion = "stress"
	Calm    Emotion = "calm"
)

// emotionOrder fixes the enumeration order used for tie-breaking and for
// deterministic iteration over the emotion vector.
var emotionOrder = []Emotion{Joy, Sadness, Anger, Anxiety, Stress, Calm}

// A RiskType classifies a risk pattern.
type RiskType string

const (
	RiskSelfHarm     RiskType = "self-harm"
	RiskHarmToOthers RiskType = "harm-to-others"
	RiskCrisis       RiskType = "crisis"
)

// Soft flags emitted by the ambiguous "i'm dead" special case and by the
// precursor trend check. None of these set RiskSummary.Crisis on their own.
const (
	FlagAmbiguousImDead = "ambiguous-im-dead"
	FlagWatchImDead     = "watch-im-dead"
	FlagRiskTrend       = "risk-trend"
)

// A RiskSummary reports every safety signal found in a single text.
type RiskSummary struct {
	SelfHarm     bool `json:"selfHarm"`
	HarmToOthers bool `json:"harmToOthers"`
	// Crisis is true when SelfHarm or HarmToOthers is true, or when any
	// crisis-type pattern matched.
	Crisis bool `json:"crisis"`
	// Flags holds the labels of every matched pattern plus any soft flags,
	// deduplicated in first-seen order.
	Flags []string `json:"flags,omitempty"`
	// PrecursorTerms lists the matched precursor-vocabulary tokens in the
	// order they appear.
	PrecursorTerms []string `json:"precursorTerms,omitempty"`
	// PrecursorScore is min(1, count / max(5, tokens/5)).
	PrecursorScore float64 `json:"precursorScore"`
}

// HasFlag reports whether the summary carries the named flag.
func (r RiskSummary) HasFlag(flag string) bool {
	for _, f := range r.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// A SentenceScore is the lexical breakdown of a single sentence. It carries
// no emotion vector or risk summary; those are whole-text properties.
type SentenceScore struct {
	Text        string   `json:"text"`
	Score       float64  `json:"score"`
	Comparative float64  `json:"comparative"`
	Label       Label    `json:"label"`
	Tokens      []string `json:"tokens,omitempty"`
	Signals     []string `json:"signals,omitempty"`
}

// An Analysis is the engine's sole output: every field is derived from one
// input string and the engine's immutable tables. Analyses are never cached
// or merged across calls; the trend fields describe sentences within this
// call only.
type Analysis struct {
	// Score is the summed lexical score plus phrase overrides.
	Score float64 `json:"score"`
	// Comparative is Score normalized by the square root of the token
	// count, so the label thresholds are independent of text length.
	Comparative float64 `json:"comparative"`
	Label       Label   `json:"label"`

	Tokens  []string `json:"tokens,omitempty"`
	Signals []string `json:"signals,omitempty"`
	Phrases []string `json:"phrases,omitempty"`

	// Emotions holds one normalized value in [0,1] per category.
	Emotions map[Emotion]float64 `json:"emotions"`

	Risk RiskSummary `json:"risk"`

	Sentences []SentenceScore `json:"sentences,omitempty"`

	// Intensity is |Comparative| clamped to [0,1].
	Intensity float64 `json:"intensity"`
	// Shift is the last sentence's comparative minus the first's.
	Shift float64 `json:"shift"`
	// MaskingPossible is set when the text ends upbeat
	// (last comparative > 0.2) after a predominantly negative lead
	// (mean of the earlier comparatives < -0.5). Flagged for human review.
	MaskingPossible bool `json:"maskingPossible"`
}

// DominantEmotion returns the category with the highest value, ties broken
// by enumeration order (joy before sadness before anger, and so on). It
// returns "" when every category is zero.
func (a *Analysis) DominantEmotion() Emotion {
	var dominant Emotion
	best := 0.0
	for _, e := range emotionOrder {
		if v := a.Emotions[e]; v > best {
			best = v
			dominant = e
		}
	}
	return dominant
}
