// Package aggregate combines per-document metrics into a display report.
package aggregate

import (
	"fmt"
	"sort"

	"github.com/verte-zerg/docstat/internal/filter"
	"github.com/verte-zerg/docstat/internal/metrics"
	"github.com/verte-zerg/docstat/internal/model"
)

// defaultDetailWords caps the word detail section when no common-words
// filter is configured.
const defaultDetailWords = 5

// Build shapes per-document metrics into table rows plus a totals row and
// the corpus word detail section. Rows are ordered by document name
// ascending. An empty corpus produces a report with no rows and no totals.
//
// The totals averages are arithmetic means of the per-document averages,
// not a recomputation from pooled tokens.
func Build(docs []model.Document, all []model.Metrics, loadErrs []model.LoadError, cfg model.Config) (model.Report, error) {
	if len(docs) != len(all) {
		return model.Report{}, fmt.Errorf("document/metrics count mismatch: %d documents, %d metrics", len(docs), len(all))
	}

	order := sortedByName(docs)
	report := model.Report{Errors: loadErrs}
	var totals model.Totals
	for _, idx := range order {
		doc := docs[idx]
		m := all[idx]
		if m.WordCount < 0 || m.SentenceCount < 0 {
			return model.Report{}, fmt.Errorf("invariant violation: negative count for %s", doc.Name)
		}
		row := model.TableRow{
			Document:         doc.Name,
			WordCount:        m.WordCount,
			SentenceCount:    m.SentenceCount,
			WordsPerSentence: m.WordsPerSentence,
			CharsPerWord:     m.CharsPerWord,
		}
		if cfg.CommonWords != nil {
			row.CommonWords = filter.TopN(m.Frequencies, *cfg.CommonWords)
		} else {
			row.CommonWords = metrics.Ranked(m.Frequencies)
		}
		if cfg.WordLengthInterval != nil {
			row.LengthWords = filter.ByLength(m.Frequencies, *cfg.WordLengthInterval)
		}
		report.Rows = append(report.Rows, row)

		totals.Documents++
		totals.WordCount += m.WordCount
		totals.SentenceCount += m.SentenceCount
		totals.WordsPerSentence += m.WordsPerSentence
		totals.CharsPerWord += m.CharsPerWord
	}

	if totals.Documents > 0 {
		totals.WordsPerSentence /= float64(totals.Documents)
		totals.CharsPerWord /= float64(totals.Documents)
		report.Totals = &totals
		report.Details = buildDetails(docs, all, order, cfg)
	}
	return report, nil
}

// buildDetails selects the corpus-ranked words of interest and collects,
// for each, the documents and sentences containing it. Unlike the table
// views, the selection composes both filters: the length interval narrows
// the candidate set, then the common-words count limits it.
func buildDetails(docs []model.Document, all []model.Metrics, order []int, cfg model.Config) []model.WordDetail {
	merged := metrics.MergeFrequencies(all)
	if cfg.WordLengthInterval != nil {
		merged = filter.Frequencies(filter.ByLength(merged, *cfg.WordLengthInterval))
	}
	limit := defaultDetailWords
	if cfg.CommonWords != nil {
		limit = *cfg.CommonWords
	}
	ranked := filter.TopN(merged, limit)

	details := make([]model.WordDetail, 0, len(ranked))
	for _, wc := range ranked {
		detail := model.WordDetail{Word: wc.Word, Count: wc.Count}
		for _, idx := range order {
			m := all[idx]
			ids, ok := m.WordSentences[wc.Word]
			if !ok {
				continue
			}
			detail.Documents = append(detail.Documents, docs[idx].Name)
			for _, sid := range ids {
				detail.Sentences = append(detail.Sentences, m.Sentences[sid])
			}
		}
		details = append(details, detail)
	}
	return details
}

func sortedByName(docs []model.Document) []int {
	order := make([]int, len(docs))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return docs[order[i]].Name < docs[order[j]].Name
	})
	return order
}
