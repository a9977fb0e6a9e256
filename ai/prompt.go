package ai

import (
	"fmt"

	"math-calendar-api/models"
)

// PromptKind is the closed set of text requests the calendar can make.
type PromptKind int

const (
	KindHint PromptKind = iota
	KindExplanation
	KindFunFact
)

func (k PromptKind) String() string {
	switch k {
	case KindHint:
		return "hint"
	case KindExplanation:
		return "explanation"
	case KindFunFact:
		return "fun-fact"
	default:
		return "unknown"
	}
}

// MaxPromptLen is the input budget for upstream prompts. Overlength prompts
// are truncated, not rejected, so the server enforces the same cap
// regardless of what a client sends.
const MaxPromptLen = 800

// BuildPrompt formats the natural-language instruction for a prompt kind
// from the question and month at hand. The hint prompt deliberately forbids
// revealing the answer; only the explanation prompt carries it.
func BuildPrompt(kind PromptKind, q models.DayQuestion, month models.Month) string {
	var prompt string
	switch kind {
	case KindHint:
		prompt = fmt.Sprintf("Give a short, kid-friendly hint (no answers) for this math question. Question: %s. Topic: %s. Do not reveal the answer.", q.Question, q.Topic)
	case KindExplanation:
		prompt = fmt.Sprintf("Give a kid-friendly explanation and the correct answer for this math question. Question: %s. Topic: %s. Correct answer: %s. Keep it short and encouraging.", q.Question, q.Topic, q.Answer)
	case KindFunFact:
		prompt = fmt.Sprintf("Share a fun, 1-2 sentence fact about %s and the theme %s, for kids.", month.Mathematician, month.Theme)
	}
	return Truncate(prompt)
}

// Truncate caps a prompt to the input budget.
func Truncate(prompt string) string {
	runes := []rune(prompt)
	if len(runes) <= MaxPromptLen {
		return prompt
	}
	return string(runes[:MaxPromptLen])
}
