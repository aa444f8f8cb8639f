package stats

import (
	"fmt"
	"strings"
)

// Guidance renders a report as prompt text describing the statistical
// properties the generated note should match.
func Guidance(r Report) string {
	var sb strings.Builder
	sb.WriteString("Statistical properties to match:\n")

	if r.Length != nil {
		sb.WriteString(fmt.Sprintf("- Target length: %.0f characters (range: %.0f-%.0f)\n",
			r.Length.Mean, r.Length.Min, r.Length.Max))
	}
	if r.Sentences != nil {
		sb.WriteString(fmt.Sprintf("- Target sentences: %.1f (range: %.0f-%.0f)\n",
			r.Sentences.Mean, r.Sentences.Min, r.Sentences.Max))
	}
	if r.Vocabulary != nil {
		sb.WriteString(fmt.Sprintf("- Vocabulary size: %d unique words\n", r.Vocabulary.Size))
		sb.WriteString(fmt.Sprintf("- Average word length: %.1f characters\n", r.Vocabulary.AvgWordLength))
		n := len(r.Vocabulary.CommonWords)
		if n > 5 {
			n = 5
		}
		if n > 0 {
			words := make([]string, 0, n)
			for _, wc := range r.Vocabulary.CommonWords[:n] {
				words = append(words, wc.Word)
			}
			sb.WriteString(fmt.Sprintf("- Common words: %s\n", strings.Join(words, ", ")))
		}
	}
	return sb.String()
}

// EnhancePrompt appends statistical guidance to a prompt.
func EnhancePrompt(prompt string, r Report) string {
	return prompt + "\n\n" + Guidance(r)
}
