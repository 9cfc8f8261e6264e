package mood

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// An Engine analyzes free-text journal entries and chat messages entirely
// from local lexical rules: no network, no model runtime. Every call is
// synchronous, side-effect-free, and deterministic; an Engine is safe for
// concurrent use once constructed.
type Engine struct {
	lex       *Lexicon
	risk      *riskDetector
	segmenter Segmenter
	log       *logrus.Entry
}

// An Option adjusts engine construction.
//
// For example, to segment with Punkt instead of the rule splitter:
//
//	seg, _ := mood.NewPunktSegmenter()
//	eng, err := mood.NewEngine(mood.UsingSegmenter(seg))
type Option func(*engineOpts)

type engineOpts struct {
	logger       *logrus.Logger
	segmenter    Segmenter
	configPath   string
	humorMarkers []string
}

// WithLogger routes engine logging to the given logger. The default logger
// only emits errors.
func WithLogger(logger *logrus.Logger) Option {
	return func(o *engineOpts) { o.logger = logger }
}

// UsingSegmenter replaces the rule-based sentence splitter.
func UsingSegmenter(s Segmenter) Option {
	return func(o *engineOpts) { o.segmenter = s }
}

// WithConfigFile overlays an external YAML table file on the built-in
// defaults before validation.
func WithConfigFile(path string) Option {
	return func(o *engineOpts) { o.configPath = path }
}

// WithHumorMarkers replaces the co-occurrence vocabulary used to downgrade
// "i'm dead" to the ambiguous flag. An empty set means every occurrence
// raises the cautious watch flag.
func WithHumorMarkers(markers ...string) Option {
	return func(o *engineOpts) { o.humorMarkers = markers }
}

// NewEngine builds an engine from the built-in tables plus any options.
// Table misconfiguration fails here, once, so Analyze can stay total.
func NewEngine(opts ...Option) (*Engine, error) {
	base := engineOpts{
		segmenter:    ruleSegmenter{},
		humorMarkers: defaultHumorMarkers(),
	}
	for _, apply := range opts {
		apply(&base)
	}

	lex := newDefaultLexicon()
	riskPatterns := defaultRiskPatterns()

	if base.configPath != "" {
		overlay, err := loadConfigFile(base.configPath)
		if err != nil {
			return nil, fmt.Errorf("loading config %q: %w", base.configPath, err)
		}
		riskPatterns = overlay.apply(lex, riskPatterns)
		if len(overlay.HumorMarkers) > 0 {
			base.humorMarkers = overlay.HumorMarkers
		}
	}

	if err := lex.compile(); err != nil {
		return nil, err
	}
	if err := lex.validate(); err != nil {
		return nil, fmt.Errorf("invalid lexicon: %w", err)
	}

	detector, err := newRiskDetector(riskPatterns, base.humorMarkers, lex.precursors)
	if err != nil {
		return nil, fmt.Errorf("invalid risk table: %w", err)
	}

	logger := base.logger
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.ErrorLevel)
	}

	return &Engine{
		lex:       lex,
		risk:      detector,
		segmenter: base.segmenter,
		log:       logger.WithField("component", "mood-engine"),
	}, nil
}

// Analyze scores a single UTF-8 text and returns a fresh Analysis. It is
// total over string input: empty, whitespace-only, and punctuation-only
// inputs degrade to a neutral, flag-free result rather than failing.
func (e *Engine) Analyze(text string) *Analysis {
	tokens := Tokenize(text)
	normalized := Normalize(text)

	lexScore, signals := e.lex.scoreTokens(tokens)
	phraseScore, phrases := e.lex.matchPhrases(normalized)
	score := lexScore + phraseScore

	var comparative float64
	if len(tokens) > 0 {
		comparative = score / math.Sqrt(float64(len(tokens)))
	}
	label := labelFor(comparative)

	a := &Analysis{
		Score:       score,
		Comparative: comparative,
		Label:       label,
		Tokens:      tokens,
		Signals:     signals,
		Phrases:     phrases,
		Emotions:    e.emotionVector(tokens),
		Sentences:   e.scoreSentences(text),
		Intensity:   math.Min(math.Abs(comparative), 1),
	}

	if n := len(a.Sentences); n >= 2 {
		first := a.Sentences[0].Comparative
		last := a.Sentences[n-1].Comparative
		a.Shift = last - first

		earlier := make([]float64, n-1)
		for i := 0; i < n-1; i++ {
			earlier[i] = a.Sentences[i].Comparative
		}
		earlierAvg := stat.Mean(earlier, nil)
		a.MaskingPossible = last > 0.2 && earlierAvg < -0.5
	}

	a.Risk = e.risk.detect(text, tokens)
	if a.Risk.PrecursorScore > 0.4 && (label == Negative || comparative < -0.8) {
		a.Risk.Flags = append(a.Risk.Flags, FlagRiskTrend)
	}

	if a.Risk.Crisis {
		e.log.WithFields(logrus.Fields{
			"flags": a.Risk.Flags,
			"label": a.Label,
		}).Warn("crisis pattern matched")
	} else {
		e.log.WithFields(logrus.Fields{
			"score":       a.Score,
			"comparative": a.Comparative,
			"label":       a.Label,
			"signals":     len(a.Signals),
		}).Debug("analyzed text")
	}

	return a
}

// emotionVector counts category membership per token and normalizes by the
// maximum raw count, flooring the divisor at one so empty input never
// divides by zero.
func (e *Engine) emotionVector(tokens []string) map[Emotion]float64 {
	counts := make([]float64, len(emotionOrder))
	index := make(map[Emotion]int, len(emotionOrder))
	for i, em := range emotionOrder {
		index[em] = i
	}

	for _, tok := range tokens {
		for _, em := range e.lex.emotionIndex[tok] {
			counts[index[em]]++
		}
	}

	maxCount := math.Max(1, floats.Max(counts))

	vector := make(map[Emotion]float64, len(emotionOrder))
	for i, em := range emotionOrder {
		vector[em] = counts[i] / maxCount
	}
	return vector
}

// scoreSentences independently re-runs the lexical scorer per sentence.
// Phrase overrides, emotion counting, and risk detection stay whole-text.
func (e *Engine) scoreSentences(text string) []SentenceScore {
	raw := e.segmenter.Segment(text)
	if len(raw) == 0 {
		return nil
	}

	out := make([]SentenceScore, 0, len(raw))
	for _, sentence := range raw {
		tokens := Tokenize(sentence)
		score, signals := e.lex.scoreTokens(tokens)

		var comparative float64
		if len(tokens) > 0 {
			comparative = score / math.Sqrt(float64(len(tokens)))
		}

		out = append(out, SentenceScore{
			Text:        sentence,
			Score:       score,
			Comparative: comparative,
			Label:       labelFor(comparative),
			Tokens:      tokens,
			Signals:     signals,
		})
	}
	return out
}
