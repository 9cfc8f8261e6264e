package mood

import (
	"fmt"
	"strings"

	"github.com/bbalet/stopwords"
)

// crisisReply is the fixed safety-escalation message. It is terminal:
// whenever risk.crisis is set, this is returned regardless of every other
// signal, and downstream consumers must deliver it even if other subsystems
// are degraded.
const crisisReply = "I'm really concerned about your safety right now, and I want you to " +
	"have real support: please call or text 988 (Suicide & Crisis Lifeline) to reach a " +
	"trained counselor, or call 911 if you are in immediate danger. I'm staying right " +
	"here with you."

// ambiguousImDeadReply is the clarifying check-in for the ambiguous
// "i'm dead" soft flag.
const ambiguousImDeadReply = "I want to make sure I'm reading you right - when you say " +
	"you're \"dead\", is that a figure of speech, or is something heavier going on? " +
	"I'm here either way."

// genericPrompt is the fallback when no dominant emotion can be selected.
const genericPrompt = "Whenever you're ready, tell me a little more about how today has felt."

// snippetMaxTokens bounds the quoted echo of the user's own words.
const snippetMaxTokens = 20

// focusMaxWords bounds the content words reflected back in follow-ups.
const focusMaxWords = 3

var toneByLabel = map[Label]string{
	Positive: "It sounds like things are looking up",
	Neutral:  "Thanks for sharing what's on your mind",
	Negative: "That sounds really heavy",
}

var copingTipByEmotion = map[Emotion]string{
	Joy:     "hold on to what made this moment good - naming it helps it stick.",
	Sadness: "be gentle with yourself today; even a small comforting routine counts.",
	Anger:   "try stepping away for a few slow breaths before responding to what set this off.",
	Anxiety: "try grounding yourself: name five things you can see and four you can hear.",
	Stress:  "pick the single smallest next task and let everything else wait for now.",
	Calm:    "notice what's helping you feel steady so you can come back to it later.",
}

var reflectiveByLabel = map[Label]string{
	Positive: "I'm glad to hear some of that lightness coming through",
	Neutral:  "It sounds like there's a lot sitting underneath what you're saying",
	Negative: "It sounds like things have been weighing on you",
}

var nextStepByEmotion = map[Emotion]string{
	Joy:     "Would you like to jot down what went well, so it's there on harder days?",
	Sadness: "Would reaching out to one person you trust feel possible today?",
	Anger:   "Would it help to write out what you'd say if there were no consequences, just to get it out?",
	Anxiety: "Would you like to try a two-minute breathing exercise with me?",
	Stress:  "Could we pick one thing to take off your plate, even temporarily?",
	Calm:    "Is there anything you'd like to build on while things feel steadier?",
}

// Follow-up keyword sets checked before the reflective fallback. Membership
// is tested against normalized tokens.
var (
	thanksWords    = wordSet("thanks", "thank", "thx", "ty", "appreciate", "appreciated", "grateful")
	agreementWords = wordSet("yes", "yeah", "yep", "ok", "okay", "sure", "alright", "will", "fine")
	refusalWords   = wordSet("no", "nope", "nah", "can't", "cant", "won't", "wont", "never", "stop")
)

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

func containsAny(tokens []string, set map[string]bool) bool {
	for _, tok := range tokens {
		if set[tok] {
			return true
		}
	}
	return false
}

// Reply selects the templated lead-in for an analysis. Crisis always wins;
// the ambiguous "i'm dead" check-in comes next; otherwise the lead-in is
// built from the label's tone descriptor, a short quoted snippet, and a
// coping tip keyed by the dominant emotion.
func (e *Engine) Reply(a *Analysis) string {
	if a == nil {
		return genericPrompt
	}
	if a.Risk.Crisis {
		return crisisReply
	}
	if a.Risk.HasFlag(FlagAmbiguousImDead) {
		return ambiguousImDeadReply
	}

	dominant := a.DominantEmotion()
	tip, ok := copingTipByEmotion[dominant]
	if !ok {
		return genericPrompt
	}

	return fmt.Sprintf("%s. I heard you say %q - %s", toneByLabel[a.Label], snippetFrom(a.Tokens), tip)
}

// FollowUp produces the second-stage conversational reply for the next user
// utterance. The full risk detector re-runs on the new utterance; risk
// status is never inherited from a prior turn. prior is caller-passed turn
// context (the engine keeps no transcript) and only steers the fallback
// tables when the new utterance carries no signal of its own.
func (e *Engine) FollowUp(utterance string, prior *Analysis) string {
	a := e.Analyze(utterance)

	if a.Risk.Crisis {
		return crisisReply
	}
	if a.Risk.HasFlag(FlagAmbiguousImDead) {
		return ambiguousImDeadReply
	}

	switch {
	case containsAny(a.Tokens, thanksWords):
		return "You're welcome - I'm glad it helped a little. I'm here whenever you want to talk more."
	case containsAny(a.Tokens, agreementWords):
		return "Okay, let's take that step together. Small moves still count as moving."
	case containsAny(a.Tokens, refusalWords):
		return "That's completely fine - you get to set the pace. Would something smaller feel more doable?"
	}

	label, dominant := a.Label, a.DominantEmotion()
	if prior != nil && len(a.Signals) == 0 && dominant == "" {
		label = prior.Label
		dominant = prior.DominantEmotion()
	}

	reflective := reflectiveByLabel[label]
	next, ok := nextStepByEmotion[dominant]
	if !ok {
		next = genericPrompt
	}

	if focus := focusWords(utterance); len(focus) > 0 {
		return fmt.Sprintf("%s, especially around %s. %s", reflective, strings.Join(focus, ", "), next)
	}
	return fmt.Sprintf("%s. %s", reflective, next)
}

// snippetFrom quotes back the first tokens of the user's input, bounded by
// snippetMaxTokens.
func snippetFrom(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	n := len(tokens)
	if n > snippetMaxTokens {
		n = snippetMaxTokens
	}
	return strings.Join(tokens[:n], " ")
}

// focusWords strips stopwords from the utterance and keeps the first few
// distinct content words, for reflecting the user's own vocabulary back.
func focusWords(utterance string) []string {
	cleaned := stopwords.CleanString(Normalize(utterance), "en", false)

	var out []string
	seen := map[string]bool{}
	for _, w := range strings.Fields(cleaned) {
		if len(w) <= 2 || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
		if len(out) == focusMaxWords {
			break
		}
	}
	return out
}
