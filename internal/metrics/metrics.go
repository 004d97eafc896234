// Package metrics derives document statistics from tokenized text.
package metrics

import (
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/verte-zerg/docstat/internal/model"
	"github.com/verte-zerg/docstat/internal/tokenizer"
)

// Compute tokenizes a document and derives its Metrics. Averages are zero
// when their denominator is zero. The input document is not modified.
func Compute(doc model.Document) model.Metrics {
	sentences := tokenizer.Tokenize(doc.Text)

	m := model.Metrics{
		SentenceCount: len(sentences),
		Frequencies:   make(map[string]int),
		WordSentences: make(map[string][]int),
	}
	runeTotal := 0
	for idx, sentence := range sentences {
		m.Sentences = append(m.Sentences, sentence.Raw)
		for _, word := range sentence.Words {
			m.WordCount++
			runeTotal += utf8.RuneCountInString(word)
			canonical := tokenizer.Canonical(word)
			m.Frequencies[canonical]++
			if ids := m.WordSentences[canonical]; len(ids) == 0 || ids[len(ids)-1] != idx {
				m.WordSentences[canonical] = append(ids, idx)
			}
		}
	}
	if m.SentenceCount > 0 {
		m.WordsPerSentence = float64(m.WordCount) / float64(m.SentenceCount)
	}
	if m.WordCount > 0 {
		m.CharsPerWord = float64(runeTotal) / float64(m.WordCount)
	}
	return m
}

// ComputeAll computes metrics for every document on a bounded worker pool.
// Results land by index, so the output order never depends on completion
// order.
func ComputeAll(docs []model.Document, workers int) []model.Metrics {
	out := make([]model.Metrics, len(docs))
	if len(docs) == 0 {
		return out
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(docs) {
		workers = len(docs)
	}

	jobs := make(chan int, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = Compute(docs[i])
			}
		}()
	}
	for i := range docs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return out
}

// Ranked orders a frequency map by descending count, breaking ties by
// ascending word, so output never depends on map iteration order.
func Ranked(frequencies map[string]int) []model.WordCount {
	out := make([]model.WordCount, 0, len(frequencies))
	for word, count := range frequencies {
		out = append(out, model.WordCount{Word: word, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Word < out[j].Word
		}
		return out[i].Count > out[j].Count
	})
	return out
}

// MergeFrequencies sums per-document frequency maps into a corpus map.
func MergeFrequencies(all []model.Metrics) map[string]int {
	merged := make(map[string]int)
	for _, m := range all {
		for word, count := range m.Frequencies {
			merged[word] += count
		}
	}
	return merged
}
