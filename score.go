package mood

import "math"

// boostDecay shrinks a pending intensifier boost for every non-sentiment
// token it has to cross, flooring at the identity boost.
const boostDecay = 0.9

// negationSpan is the token budget of a freshly opened negation window.
const negationSpan = 3

// scanState is the mutable state threaded through one left-to-right pass of
// scoreTokens. A fresh value is created per call; nothing is shared.
type scanState struct {
	negateWindow int
	boost        float64
	lastToken    string
	repeatCount  int
}

// scoreTokens walks tokens left to right applying polarity weights,
// negation-window inversion, intensifier boosting, and same-token repetition
// amplification. It returns the summed score and the matched lexicon tokens
// in order.
//
// The consumption order matters: an intensifier boost is spent on the next
// sentiment-bearing token only (decaying across non-sentiment tokens), while
// a negation window survives up to negationSpan tokens regardless of what
// sits in between. Intensifiers do not consume a negation tick.
func (l *Lexicon) scoreTokens(tokens []string) (float64, []string) {
	st := scanState{boost: 1}
	var score float64
	var signals []string

	for _, token := range tokens {
		if w := l.IntensifierWeight(token); w > 0 {
			st.boost = math.Max(st.boost, w)
			continue
		}

		if l.IsNegation(token) {
			st.negateWindow = negationSpan
			continue
		}

		base, ok := l.words[token]
		if !ok {
			st.boost = math.Max(1, st.boost*boostDecay)
			if st.negateWindow > 0 {
				st.negateWindow--
			}
			continue
		}

		if token == st.lastToken {
			st.repeatCount++
		} else {
			st.repeatCount = 0
			st.lastToken = token
		}
		repeatBoost := 1 + math.Min(2, float64(st.repeatCount))*0.25

		s := base * st.boost * repeatBoost
		if st.negateWindow > 0 {
			s = -s
			st.negateWindow--
		}

		score += s
		signals = append(signals, token)
		st.boost = 1
	}

	return score, signals
}

// matchPhrases counts non-overlapping whole-word occurrences of every table
// phrase in the normalized text. Each occurrence contributes its weight
// times phraseOverrideFactor; the result is additive to token scoring, not a
// replacement for it.
func (l *Lexicon) matchPhrases(normalized string) (float64, []string) {
	var override float64
	var matched []string

	for _, entry := range l.phrases {
		n := len(entry.pattern.FindAllStringIndex(normalized, -1))
		for i := 0; i < n; i++ {
			override += entry.weight * phraseOverrideFactor
			matched = append(matched, entry.phrase)
		}
	}

	return override, matched
}
