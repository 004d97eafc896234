package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/docstat/internal/model"
)

func TestTableLinesEmptyCorpus(t *testing.T) {
	lines := TableLines(model.Report{}, model.Config{ColumnWidth: 80})
	if len(lines) != 1 || lines[0] != "No documents found." {
		t.Fatalf("unexpected lines: %v", lines)
	}
}

func TestTableLinesIncludeTotalsRow(t *testing.T) {
	rep := model.Report{
		Rows: []model.TableRow{
			{
				Document:         "a.txt",
				WordCount:        7,
				SentenceCount:    2,
				WordsPerSentence: 3.5,
				CharsPerWord:     3.14,
				CommonWords:      []model.WordCount{{Word: "the", Count: 2}},
			},
		},
		Totals: &model.Totals{
			Documents:        1,
			WordCount:        7,
			SentenceCount:    2,
			WordsPerSentence: 3.5,
			CharsPerWord:     3.14,
		},
	}
	lines := TableLines(rep, model.Config{ColumnWidth: 40})
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "a.txt") {
		t.Fatalf("missing document row: %q", joined)
	}
	if !strings.Contains(joined, "Total") {
		t.Fatalf("missing totals row: %q", joined)
	}
	if !strings.Contains(joined, "the (2)") {
		t.Fatalf("missing common words cell: %q", joined)
	}
}

func TestTableLinesLengthColumnOnlyWhenConfigured(t *testing.T) {
	rep := model.Report{Rows: []model.TableRow{{Document: "a.txt"}}}
	plain := strings.Join(TableLines(rep, model.Config{ColumnWidth: 40}), "\n")
	if strings.Contains(plain, "Words (6-8)") {
		t.Fatalf("length column present without interval: %q", plain)
	}
	cfg := model.Config{ColumnWidth: 40, WordLengthInterval: &model.Interval{Min: 6, Max: 8}}
	withInterval := strings.Join(TableLines(rep, cfg), "\n")
	if !strings.Contains(withInterval, "Words (6-8)") {
		t.Fatalf("missing length column: %q", withInterval)
	}
}

func TestDetailLines(t *testing.T) {
	details := []model.WordDetail{
		{
			Word:      "beautiful",
			Count:     3,
			Documents: []string{"a.txt", "b.txt"},
			Sentences: []string{"What a beautiful day."},
		},
	}
	joined := strings.Join(DetailLines(details, 80), "\n")
	if !strings.Contains(joined, "Beautiful (3)") {
		t.Fatalf("missing title-cased word header: %q", joined)
	}
	if !strings.Contains(joined, "Documents: a.txt, b.txt") {
		t.Fatalf("missing document list: %q", joined)
	}
	if !strings.Contains(joined, "What a beautiful day.") {
		t.Fatalf("missing sentence: %q", joined)
	}
}

func TestRenderWritesAllSections(t *testing.T) {
	n := 5
	cfg := model.Config{ColumnWidth: 60, CommonWords: &n}
	rep := model.Report{
		Rows:   []model.TableRow{{Document: "a.txt", WordCount: 1, SentenceCount: 1}},
		Totals: &model.Totals{Documents: 1, WordCount: 1, SentenceCount: 1},
		Errors: []model.LoadError{{Name: "bad.bin", Err: errFake}},
	}
	var buf bytes.Buffer
	if err := Render(&buf, rep, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"predicates", "a.txt", "Skipped files", "bad.bin"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

var errFake = errTest("binary content")

type errTest string

func (e errTest) Error() string { return string(e) }
