package stats

import (
	"strings"
	"testing"
)

func sampleReport() Report {
	return Report{
		Length:    &Distribution{Mean: 100, Min: 20, Max: 200, Median: 90},
		Sentences: &Distribution{Mean: 4.5, Min: 1, Max: 9, Median: 4},
		Vocabulary: &VocabularyStats{
			Size:          120,
			AvgWordLength: 4.25,
			CommonWords: []WordCount{
				{Word: "the", Count: 40}, {Word: "patient", Count: 30},
				{Word: "was", Count: 20}, {Word: "seen", Count: 10},
				{Word: "in", Count: 9}, {Word: "clinic", Count: 8},
			},
		},
	}
}

func TestGuidance(t *testing.T) {
	g := Guidance(sampleReport())

	wants := []string{
		"Statistical properties to match:",
		"- Target length: 100 characters (range: 20-200)",
		"- Target sentences: 4.5 (range: 1-9)",
		"- Vocabulary size: 120 unique words",
		"- Average word length: 4.2 characters",
		"- Common words: the, patient, was, seen, in",
	}
	for _, want := range wants {
		if !strings.Contains(g, want) {
			t.Errorf("guidance missing %q:\n%s", want, g)
		}
	}
	if strings.Contains(g, "clinic") {
		t.Errorf("only the top 5 common words should be listed:\n%s", g)
	}
}

func TestGuidance_PartialReport(t *testing.T) {
	g := Guidance(Report{Length: &Distribution{Mean: 50, Min: 50, Max: 50}})
	if strings.Contains(g, "Vocabulary size") || strings.Contains(g, "Target sentences") {
		t.Errorf("absent sections should not be rendered:\n%s", g)
	}
}

func TestEnhancePrompt(t *testing.T) {
	got := EnhancePrompt("Write a note.", sampleReport())
	if !strings.HasPrefix(got, "Write a note.\n\n") {
		t.Errorf("prompt should come first, separated by a blank line: %q", got)
	}
	if !strings.Contains(got, "Statistical properties to match:") {
		t.Errorf("guidance missing: %q", got)
	}
}
