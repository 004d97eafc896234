// Package filter provides read-only views over word frequency maps.
//
// The two filters are independent: each one derives its own view from the
// same base frequency map, and neither ever mutates it. Raw word and
// sentence counts are computed from the full text and are unaffected here.
package filter

import (
	"unicode/utf8"

	"github.com/verte-zerg/docstat/internal/metrics"
	"github.com/verte-zerg/docstat/internal/model"
)

// ByLength returns the ranked words whose rune length lies inside the
// inclusive interval.
func ByLength(frequencies map[string]int, iv model.Interval) []model.WordCount {
	filtered := make(map[string]int)
	for word, count := range frequencies {
		if iv.Contains(utf8.RuneCountInString(word)) {
			filtered[word] = count
		}
	}
	return metrics.Ranked(filtered)
}

// TopN returns the n most common words using the same frequency and
// alphabetical tie-break as metrics.Ranked. n = 0 yields an empty view; an
// n beyond the distinct word count returns every word.
func TopN(frequencies map[string]int, n int) []model.WordCount {
	if n <= 0 {
		return nil
	}
	ranked := metrics.Ranked(frequencies)
	if n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}

// Frequencies rebuilds a frequency map from a view. It exists for callers
// that deliberately feed one view into another, such as the corpus word
// detail section.
func Frequencies(view []model.WordCount) map[string]int {
	out := make(map[string]int, len(view))
	for _, wc := range view {
		out[wc.Word] = wc.Count
	}
	return out
}
