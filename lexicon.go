package mood

import (
	"fmt"
	"regexp"
)

// A Lexicon bundles every static scoring table: token polarities, phrase
// overrides, intensifiers, negations, emotion-category membership, and the
// precursor vocabulary. It is built once at engine construction and is
// read-only afterwards, so concurrent calls need no locking.
type Lexicon struct {
	words        map[string]float64
	intensifiers map[string]float64
	negations    map[string]bool
	precursors   map[string]bool

	// phrases keeps table order so matched-phrase output is deterministic.
	phrases []phraseEntry

	// emotionIndex inverts the category sets into a single token lookup,
	// built once so per-token emotion counting is one map hit.
	emotions     map[Emotion][]string
	emotionIndex map[string][]Emotion
}

type phraseEntry struct {
	phrase  string
	weight  float64
	pattern *regexp.Regexp
}

// phraseOverrideFactor scales every phrase occurrence on top of its table
// weight.
const phraseOverrideFactor = 1.2

// newDefaultLexicon builds the built-in English wellness lexicon.
func newDefaultLexicon() *Lexicon {
	lex := &Lexicon{
		words:        defaultWords(),
		intensifiers: defaultIntensifiers(),
		negations:    defaultNegations(),
		precursors:   defaultPrecursors(),
		emotions:     defaultEmotions(),
	}
	for _, p := range defaultPhrases() {
		lex.phrases = append(lex.phrases, phraseEntry{phrase: p.phrase, weight: p.weight})
	}
	return lex
}

// compile builds the phrase patterns and the inverted emotion index. Called
// once after defaults and any external overlay have been merged.
func (l *Lexicon) compile() error {
	for i := range l.phrases {
		pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(l.phrases[i].phrase) + `\b`)
		if err != nil {
			return fmt.Errorf("compiling phrase %q: %w", l.phrases[i].phrase, err)
		}
		l.phrases[i].pattern = pattern
	}

	l.emotionIndex = make(map[string][]Emotion)
	for _, e := range emotionOrder {
		for _, w := range l.emotions[e] {
			l.emotionIndex[w] = append(l.emotionIndex[w], e)
		}
	}
	return nil
}

// validate fails fast on table misconfiguration so per-call analysis can
// stay total.
func (l *Lexicon) validate() error {
	if len(l.words) == 0 {
		return fmt.Errorf("lexicon has no words")
	}
	for word, factor := range l.intensifiers {
		if factor < 1 {
			return fmt.Errorf("intensifier %q has factor %v, want >= 1", word, factor)
		}
	}
	for _, e := range emotionOrder {
		if len(l.emotions[e]) == 0 {
			return fmt.Errorf("emotion category %q has no member tokens", e)
		}
	}
	return nil
}

// Weight returns the polarity weight for a token, zero when unlisted.
func (l *Lexicon) Weight(token string) float64 { return l.words[token] }

// IsNegation reports whether token opens a negation window. Contracted
// negations ("didn't", "can't") count regardless of table membership.
func (l *Lexicon) IsNegation(token string) bool {
	if l.negations[token] {
		return true
	}
	return len(token) > 3 && token[len(token)-3:] == "n't"
}

// IntensifierWeight returns the multiplicative boost for token, zero when
// token is not an intensifier.
func (l *Lexicon) IntensifierWeight(token string) float64 { return l.intensifiers[token] }

// defaultWords maps tokens onto signed polarity weights in roughly -4..+3.
// Vocabulary skews toward how people describe their own state in journals
// and support chats rather than product reviews.
func defaultWords() map[string]float64 {
	return map[string]float64{
		// positive
		"good": 2, "great": 3, "better": 2, "best": 3,
		"happy": 3, "glad": 2, "wonderful": 3, "amazing": 3,
		"love": 3, "loved": 3, "like": 1, "liked": 1,
		"hope": 2, "hopeful": 2, "grateful": 3, "thankful": 2,
		"thanks": 2, "helped": 2, "helpful": 2, "safe": 2,
		"calm": 2, "calmer": 2, "relaxed": 2, "peaceful": 2,
		"strong": 2, "stronger": 2, "confident": 2, "brave": 2,
		"okay": 1, "fine": 1, "alright": 1, "steady": 1,
		"improving": 2, "improved": 2, "progress": 2, "healing": 2,
		"support": 2, "supported": 2, "comfort": 2, "comforted": 2,
		"smile": 2, "smiled": 2, "laughing": 2, "laughed": 2,
		"fun": 2, "nice": 2, "excited": 3, "proud": 3,
		"joy": 3, "enjoy": 2, "enjoyed": 2, "rested": 2,
		"motivated": 2, "optimistic": 2, "content": 2, "relieved": 2,
		"accomplished": 3, "energized": 2, "connected": 2, "appreciated": 2,
		"cheerful": 2, "delighted": 3, "grounded": 2,

		// negative
		"sad": -2, "depressed": -3, "hopeless": -4, "anxious": -2,
		"worried": -2, "worry": -2, "scared": -3, "afraid": -3,
		"angry": -3, "furious": -4, "hate": -3, "hated": -3,
		"terrible": -3, "awful": -3, "horrible": -3, "worst": -4,
		"bad": -2, "painful": -3, "hurt": -3, "hurting": -3,
		"suffering": -3, "miserable": -3, "lonely": -2, "alone": -2,
		"empty": -3, "numb": -2, "worthless": -4, "useless": -3,
		"failure": -3, "failing": -3, "burden": -3, "guilty": -2,
		"ashamed": -3, "shame": -2, "panic": -3, "panicking": -3,
		"overwhelmed": -3, "stressed": -2, "stress": -2, "exhausted": -2,
		"crying": -2, "cried": -2, "tears": -2, "broken": -3,
		"trapped": -3, "stuck": -2, "lost": -2, "tired": -1,
		"upset": -2, "frustrated": -2, "frustrating": -2, "annoyed": -2,
		"dread": -3, "despair": -4, "grief": -3, "grieving": -3,
		"pain": -2, "insomnia": -2, "nightmare": -2, "nightmares": -2,
		"helpless": -3, "isolated": -2, "meaningless": -3, "pointless": -3,
		"terrified": -4, "rage": -3, "resent": -2, "bitter": -2,
		"nervous": -2, "uneasy": -2, "tense": -2, "drained": -2,
		"heartbroken": -4, "devastated": -4, "disgusted": -3, "mad": -2,
		"irritated": -2, "pressure": -2, "burnout": -3, "fear": -2,
	}
}

// defaultPhrases lists fixed multi-word overrides. Weights are applied
// additively on top of token scoring, scaled by phraseOverrideFactor per
// occurrence.
func defaultPhrases() []phraseEntry {
	return []phraseEntry{
		{phrase: "no one cares", weight: -3},
		{phrase: "nobody cares", weight: -3},
		{phrase: "can't go on", weight: -4},
		{phrase: "can't take it", weight: -3},
		{phrase: "can't cope", weight: -3},
		{phrase: "can't sleep", weight: -2},
		{phrase: "give up", weight: -3},
		{phrase: "giving up", weight: -3},
		{phrase: "fed up", weight: -2},
		{phrase: "falling apart", weight: -3},
		{phrase: "let down", weight: -2},
		{phrase: "on edge", weight: -2},
		{phrase: "no point", weight: -3},
		{phrase: "what's the point", weight: -3},
		{phrase: "hate myself", weight: -4},
		{phrase: "so done", weight: -2},
		{phrase: "at peace", weight: 3},
		{phrase: "looking forward", weight: 3},
		{phrase: "feel better", weight: 2},
		{phrase: "a lot better", weight: 2},
		{phrase: "proud of myself", weight: 3},
		{phrase: "not alone", weight: 2},
	}
}

// defaultIntensifiers maps closed-class amplifiers onto multiplicative
// boosts. The boost is consumed by the next sentiment token and otherwise
// decays by 0.9 per non-sentiment token.
func defaultIntensifiers() map[string]float64 {
	return map[string]float64{
		"very":         1.5,
		"really":       1.4,
		"so":           1.3,
		"extremely":    1.8,
		"incredibly":   1.7,
		"absolutely":   1.6,
		"completely":   1.5,
		"totally":      1.4,
		"deeply":       1.5,
		"utterly":      1.8,
		"super":        1.5,
		"unbelievably": 1.7,
	}
}

// defaultNegations lists words that open a decaying 3-token inversion
// window. Tokens ending in "n't" are handled in IsNegation.
func defaultNegations() map[string]bool {
	set := map[string]bool{}
	for _, w := range []string{
		"not", "no", "never", "neither", "nor", "cannot",
		"nobody", "nothing", "nowhere", "none", "without",
		"hardly", "barely", "scarcely",
	} {
		set[w] = true
	}
	return set
}

// defaultEmotions defines category membership. Used for presence counting
// only, never polarity.
func defaultEmotions() map[Emotion][]string {
	return map[Emotion][]string{
		Joy: {
			"happy", "glad", "joy", "excited", "smile", "smiled",
			"laughing", "laughed", "fun", "grateful", "proud", "love",
			"loved", "delighted", "cheerful", "enjoyed",
		},
		Sadness: {
			"sad", "crying", "cried", "tears", "grief", "grieving",
			"lonely", "miserable", "heartbroken", "down", "empty",
			"loss", "hopeless", "devastated",
		},
		Anger: {
			"angry", "furious", "rage", "hate", "hated", "annoyed",
			"frustrated", "frustrating", "irritated", "resent",
			"bitter", "mad",
		},
		Anxiety: {
			"anxious", "worried", "worry", "scared", "afraid", "panic",
			"panicking", "nervous", "dread", "terrified", "uneasy",
			"fear",
		},
		Stress: {
			"stressed", "stress", "overwhelmed", "pressure", "exhausted",
			"burnout", "tired", "deadline", "deadlines", "busy", "tense",
			"drained",
		},
		Calm: {
			"calm", "calmer", "relaxed", "peaceful", "rested", "okay",
			"fine", "steady", "settled", "grounded", "breathing",
			"content",
		},
	}
}

// defaultPrecursors is the fixed vocabulary tracked for risk-trend
// detection, distinct from explicit crisis-pattern matches.
func defaultPrecursors() map[string]bool {
	set := map[string]bool{}
	for _, w := range []string{
		"hopeless", "trapped", "numb", "empty", "tired", "worthless",
		"helpless", "isolated", "exhausted", "meaningless", "pointless",
	} {
		set[w] = true
	}
	return set
}
