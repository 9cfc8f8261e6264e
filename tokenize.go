package mood

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// sanitizer maps typographic quote variants onto their ASCII forms before
// normalization, so contractions like "don’t" survive the character filter.
var sanitizer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"&rsquo;", "'")

// foldDiacritics strips combining marks so accented input ("café") keeps its
// base letters through normalization instead of losing the rune.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases text, folds diacritics, replaces every character
// outside [a-z0-9\s'-] with a space, collapses whitespace, and trims.
func Normalize(text string) string {
	folded, _, err := transform.String(foldDiacritics, sanitizer.Replace(text))
	if err != nil {
		folded = sanitizer.Replace(text)
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '\'', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize splits the normalized form of text on whitespace, dropping empty
// tokens. Empty or whitespace-only input yields an empty slice.
func Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}

var sentenceBoundary = regexp.MustCompile(`[.!?]+\s*`)

// SplitSentences replaces newlines with spaces, then splits on runs of
// sentence-terminating punctuation, trimming and dropping empties.
func SplitSentences(text string) []string {
	flat := strings.ReplaceAll(text, "\n", " ")

	var out []string
	for _, part := range sentenceBoundary.Split(flat, -1) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// A Segmenter splits raw text into sentences. The engine's default is the
// rule segmenter backing SplitSentences; callers that feed long journal
// entries with abbreviations can swap in a PunktSegmenter.
type Segmenter interface {
	Segment(text string) []string
}

type ruleSegmenter struct{}

func (ruleSegmenter) Segment(text string) []string { return SplitSentences(text) }

// A PunktSegmenter performs trained, abbreviation-aware sentence
// segmentation for English.
type PunktSegmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunktSegmenter loads the English Punkt training data.
func NewPunktSegmenter() (*PunktSegmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	return &PunktSegmenter{tokenizer: tokenizer}, nil
}

// Segment splits text into trimmed, non-empty sentences.
func (p *PunktSegmenter) Segment(text string) []string {
	var out []string
	for _, s := range p.tokenizer.Tokenize(text) {
		if trimmed := strings.TrimSpace(s.Text); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
