// Package stats computes descriptive statistics over a text corpus, used to
// bias generation prompts toward the shape of real notes.
package stats

import (
	"math"
	"sort"
	"strings"
)

// Kind selects which analyses Analyze runs.
type Kind string

const (
	KindBasic      Kind = "basic"
	KindVocabulary Kind = "vocabulary"
)

// Distribution is a five-number summary of one per-document measure.
// Std is the sample standard deviation.
type Distribution struct {
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// WordCount is one vocabulary entry.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// VocabularyStats summarizes word usage across the whole corpus.
type VocabularyStats struct {
	Size          int         `json:"vocabulary_size"`
	AvgWordLength float64     `json:"avg_word_length"`
	CommonWords   []WordCount `json:"common_words"`
}

// Report is the result of Analyze. Sections not requested are nil.
type Report struct {
	Length     *Distribution    `json:"length_stats,omitempty"`
	Sentences  *Distribution    `json:"sentence_stats,omitempty"`
	Vocabulary *VocabularyStats `json:"vocabulary,omitempty"`
}

const commonWordLimit = 50

// Analyze runs the requested analyses over the corpus. No kinds means all.
// Sentence counts are approximated by counting periods.
func Analyze(texts []string, kinds ...Kind) Report {
	want := func(k Kind) bool {
		if len(kinds) == 0 {
			return true
		}
		for _, kk := range kinds {
			if kk == k {
				return true
			}
		}
		return false
	}

	var r Report
	if want(KindBasic) {
		lengths := make([]float64, len(texts))
		sentences := make([]float64, len(texts))
		for i, t := range texts {
			lengths[i] = float64(len(t))
			sentences[i] = float64(strings.Count(t, "."))
		}
		l := describe(lengths)
		s := describe(sentences)
		r.Length = &l
		r.Sentences = &s
	}
	if want(KindVocabulary) {
		v := analyzeVocabulary(texts)
		r.Vocabulary = &v
	}
	return r
}

func analyzeVocabulary(texts []string) VocabularyStats {
	counts := make(map[string]int)
	order := make(map[string]int) // first-seen rank, keeps ties stable
	var wordLenSum, wordCount int
	for _, t := range texts {
		for _, w := range strings.Fields(t) {
			if _, seen := counts[w]; !seen {
				order[w] = len(order)
			}
			counts[w]++
			wordLenSum += len(w)
			wordCount++
		}
	}

	words := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		words = append(words, WordCount{Word: w, Count: c})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return order[words[i].Word] < order[words[j].Word]
	})
	if len(words) > commonWordLimit {
		words = words[:commonWordLimit]
	}

	var avg float64
	if wordCount > 0 {
		avg = float64(wordLenSum) / float64(wordCount)
	}
	return VocabularyStats{
		Size:          len(counts),
		AvgWordLength: avg,
		CommonWords:   words,
	}
}

func describe(xs []float64) Distribution {
	if len(xs) == 0 {
		return Distribution{}
	}
	var sum float64
	lo, hi := xs[0], xs[0]
	for _, x := range xs {
		sum += x
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	mean := sum / float64(len(xs))

	var sq float64
	for _, x := range xs {
		d := x - mean
		sq += d * d
	}
	var std float64
	if len(xs) > 1 {
		std = math.Sqrt(sq / float64(len(xs)-1))
	}

	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	median := sorted[mid]
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	return Distribution{Mean: mean, Std: std, Min: lo, Max: hi, Median: median}
}
