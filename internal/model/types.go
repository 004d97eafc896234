// Package model defines shared data structures.
package model

// Interval is an inclusive word-length range measured in runes.
type Interval struct {
	Min int
	Max int
}

// Contains reports whether length falls inside the interval.
func (iv Interval) Contains(length int) bool {
	return length >= iv.Min && length <= iv.Max
}

// Config defines analysis settings. The two filters are optional and
// independent; a nil pointer means the filter is not active.
type Config struct {
	Dir                string
	Ext                string
	WordLengthInterval *Interval
	CommonWords        *int
	ColumnWidth        int
	Workers            int
}

// Document is a single loaded text file.
type Document struct {
	Name string
	Text string
}

// WordCount pairs a canonical word with its occurrence count.
type WordCount struct {
	Word  string
	Count int
}

// Metrics holds per-document statistics. Frequencies and WordSentences are
// keyed by the canonical (lower-cased, punctuation-stripped) word form.
type Metrics struct {
	WordCount        int
	SentenceCount    int
	WordsPerSentence float64
	CharsPerWord     float64
	Frequencies      map[string]int
	Sentences        []string
	WordSentences    map[string][]int
}

// TableRow is a per-document display row. CommonWords and LengthWords are
// independent views of the same frequency map; the counts above them always
// reflect the full text.
type TableRow struct {
	Document         string
	WordCount        int
	SentenceCount    int
	WordsPerSentence float64
	CharsPerWord     float64
	CommonWords      []WordCount
	LengthWords      []WordCount
}

// Totals summarizes the whole corpus. The averages are arithmetic means of
// the per-document averages, not a recomputation from pooled tokens.
type Totals struct {
	Documents        int
	WordCount        int
	SentenceCount    int
	WordsPerSentence float64
	CharsPerWord     float64
}

// LoadError records a document that could not be read as text.
type LoadError struct {
	Name string
	Err  error
}

// WordDetail describes one corpus-ranked word: where it occurs and every
// sentence containing it, in document order.
type WordDetail struct {
	Word      string
	Count     int
	Documents []string
	Sentences []string
}

// Report contains everything the renderers need. Totals is nil for an
// empty corpus.
type Report struct {
	Rows    []TableRow
	Totals  *Totals
	Errors  []LoadError
	Details []WordDetail
}
