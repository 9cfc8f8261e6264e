package mood

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// A ConfigFile is the external YAML overlay merged on top of the built-in
// tables. Every section is optional; entries with an existing key replace
// the default, new keys extend it. A word weight of zero removes the word.
type ConfigFile struct {
	Words        []WordWeight        `yaml:"words,omitempty"`
	Phrases      []PhraseWeight      `yaml:"phrases,omitempty"`
	Intensifiers []IntensifierEntry  `yaml:"intensifiers,omitempty"`
	Negations    []string            `yaml:"negations,omitempty"`
	Emotions     map[string][]string `yaml:"emotions,omitempty"`
	Precursors   []string            `yaml:"precursors,omitempty"`
	RiskPatterns []RiskPatternEntry  `yaml:"risk_patterns,omitempty"`
	HumorMarkers []string            `yaml:"humor_markers,omitempty"`
}

// A WordWeight is a single lexicon overlay entry.
type WordWeight struct {
	Word   string  `yaml:"word"`
	Weight float64 `yaml:"weight"`
}

// A PhraseWeight is a phrase-table overlay entry.
type PhraseWeight struct {
	Phrase string  `yaml:"phrase"`
	Weight float64 `yaml:"weight"`
}

// An IntensifierEntry is an intensifier overlay entry.
type IntensifierEntry struct {
	Word   string  `yaml:"word"`
	Factor float64 `yaml:"factor"`
}

// A RiskPatternEntry is an additional risk pattern; the regex is compiled
// case-insensitively at engine construction.
type RiskPatternEntry struct {
	Pattern string `yaml:"pattern"`
	Type    string `yaml:"type"` // self-harm, harm-to-others, or crisis
	Flag    string `yaml:"flag"`
}

func loadConfigFile(path string) (*ConfigFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg ConfigFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	return &cfg, nil
}

// apply merges the overlay into the lexicon in place and returns the merged
// risk pattern list. Must run before Lexicon.compile.
func (c *ConfigFile) apply(lex *Lexicon, patterns []RiskPattern) []RiskPattern {
	for _, w := range c.Words {
		word := strings.ToLower(w.Word)
		if w.Weight == 0 {
			delete(lex.words, word)
		} else {
			lex.words[word] = w.Weight
		}
	}

	for _, p := range c.Phrases {
		phrase := strings.ToLower(p.Phrase)
		replaced := false
		for i := range lex.phrases {
			if lex.phrases[i].phrase == phrase {
				lex.phrases[i].weight = p.Weight
				replaced = true
				break
			}
		}
		if !replaced {
			lex.phrases = append(lex.phrases, phraseEntry{phrase: phrase, weight: p.Weight})
		}
	}

	for _, in := range c.Intensifiers {
		lex.intensifiers[strings.ToLower(in.Word)] = in.Factor
	}

	for _, n := range c.Negations {
		lex.negations[strings.ToLower(n)] = true
	}

	for name, members := range c.Emotions {
		category := Emotion(strings.ToLower(name))
		for _, m := range members {
			lex.emotions[category] = append(lex.emotions[category], strings.ToLower(m))
		}
	}

	for _, p := range c.Precursors {
		lex.precursors[strings.ToLower(p)] = true
	}

	for _, rp := range c.RiskPatterns {
		patterns = append(patterns, RiskPattern{
			Pattern: rp.Pattern,
			Type:    RiskType(rp.Type),
			Flag:    rp.Flag,
		})
	}

	return patterns
}
