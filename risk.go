package mood

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// A RiskPattern pairs a regular expression with its risk type and the flag
// label it raises. Patterns run against the raw (non-normalized) text,
// case-insensitively; every matching pattern fires. Ordering only affects
// flag de-duplication, never priority.
type RiskPattern struct {
	Pattern string
	Type    RiskType
	Flag    string
}

// defaultRiskPatterns is the built-in safety pattern table. False positives
// are preferred over false negatives throughout: a wrongly raised flag costs
// a human a look, a missed one can cost far more.
func defaultRiskPatterns() []RiskPattern {
	return []RiskPattern{
		{`\b(cut(ting)?|hurt(ing)?|harm(ing)?|burn(ing)?|hit(ting)?)\s+myself\b`, RiskSelfHarm, "self-harm-direct"},
		{`\bself[- ]?harm\b`, RiskSelfHarm, "self-harm-direct"},
		{`\b(kill(ing)?\s+myself|suicide|suicidal)\b`, RiskSelfHarm, "suicidal-ideation"},
		{`\bend\s+(my\s+life|it\s+all)\b`, RiskSelfHarm, "suicidal-ideation"},
		{`\b(want\s+to\s+die|better\s+off\s+dead|no\s+reason\s+to\s+live|take\s+my\s+own\s+life|not\s+want\s+to\s+be\s+alive)\b`, RiskSelfHarm, "suicidal-ideation"},
		{`\b(kill|hurt|shoot|stab|attack|strangle)\s+(him|her|them|someone|everyone|people)\b`, RiskHarmToOthers, "harm-others-threat"},
		{`\bmake\s+(him|her|them)\s+pay\b`, RiskHarmToOthers, "harm-others-threat"},
		{`\b(tonight|right\s+now)\b.*\b(do\s+it|end\s+it|the\s+plan)\b`, RiskCrisis, "crisis-immediate"},
		{`\b(goodbye\s+forever|final\s+goodbye|say(ing)?\s+goodbye\s+to\s+everyone)\b`, RiskCrisis, "crisis-immediate"},
		{`\b(wrote|writing)\s+a\s+(suicide\s+)?note\b`, RiskCrisis, "crisis-immediate"},
		{`\bhave\s+a\s+plan\s+to\s+(die|end|hurt|kill)\b`, RiskCrisis, "crisis-immediate"},
		{`\b(overdose|od'?d|took\s+(all\s+the|too\s+many)\s+pills)\b`, RiskCrisis, "crisis-overdose"},
	}
}

// imDeadPattern matches the standalone "i'm dead" family (i'm/i am/im). It
// is evaluated separately from the main table because the phrase is common
// hyperbole; humor context decides which soft flag is raised.
var imDeadPattern = regexp.MustCompile(`(?i)\b(i'?m|i\s+am)\s+dead\b`)

// defaultHumorMarkers is the co-occurrence vocabulary that downgrades
// "i'm dead" to the ambiguous flag. The set is a tunable safety parameter
// (see WithHumorMarkers); missing markers err toward the more cautious
// watch flag.
func defaultHumorMarkers() []string {
	return []string{
		"lol", "lmao", "lmfao", "rofl", "haha", "hahaha", "jk",
		"😂", "🤣", "😆",
	}
}

type compiledRiskPattern struct {
	re   *regexp.Regexp
	kind RiskType
	flag string
}

// A riskDetector holds the compiled safety tables. Compiled once at engine
// construction; read-only per call.
type riskDetector struct {
	patterns     []compiledRiskPattern
	humorMarkers []string
	precursors   map[string]bool
}

func newRiskDetector(patterns []RiskPattern, humorMarkers []string, precursors map[string]bool) (*riskDetector, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("risk pattern table is empty")
	}

	d := &riskDetector{humorMarkers: humorMarkers, precursors: precursors}
	for _, p := range patterns {
		re, err := regexp.Compile(`(?i)` + p.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compiling risk pattern %q: %w", p.Pattern, err)
		}
		d.patterns = append(d.patterns, compiledRiskPattern{re: re, kind: p.Type, flag: p.Flag})
	}
	return d, nil
}

// detect runs every pattern against the raw text and counts precursor terms
// among the tokens. The risk-trend flag is not raised here: it depends on
// the whole-text label, so the aggregator attaches it.
func (d *riskDetector) detect(raw string, tokens []string) RiskSummary {
	var sum RiskSummary
	seen := map[string]bool{}

	for _, p := range d.patterns {
		if !p.re.MatchString(raw) {
			continue
		}
		switch p.kind {
		case RiskSelfHarm:
			sum.SelfHarm = true
		case RiskHarmToOthers:
			sum.HarmToOthers = true
		case RiskCrisis:
			sum.Crisis = true
		}
		if !seen[p.flag] {
			seen[p.flag] = true
			sum.Flags = append(sum.Flags, p.flag)
		}
	}
	sum.Crisis = sum.Crisis || sum.SelfHarm || sum.HarmToOthers

	// "i'm dead" is a soft flag either way; it never sets Crisis.
	if imDeadPattern.MatchString(raw) {
		flag := FlagWatchImDead
		lowered := strings.ToLower(raw)
		for _, marker := range d.humorMarkers {
			if strings.Contains(lowered, marker) {
				flag = FlagAmbiguousImDead
				break
			}
		}
		if !seen[flag] {
			seen[flag] = true
			sum.Flags = append(sum.Flags, flag)
		}
	}

	count := 0
	for _, tok := range tokens {
		if d.precursors[tok] {
			count++
			sum.PrecursorTerms = append(sum.PrecursorTerms, tok)
		}
	}
	if count > 0 {
		den := math.Max(5, float64(len(tokens))/5)
		sum.PrecursorScore = math.Min(1, float64(count)/den)
	}

	return sum
}
