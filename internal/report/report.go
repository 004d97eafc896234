package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/verte-zerg/docstat/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	noteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

var titleCaser = cases.Title(language.English)

// Render writes the full report: the filter summary, the per-document
// table with a totals row, skipped files, and the word detail section.
func Render(w io.Writer, rep model.Report, cfg model.Config) error {
	sections := [][]string{
		SummaryLines(cfg),
		TableLines(rep, cfg),
		ErrorLines(rep.Errors),
		DetailLines(rep.Details, cfg.ColumnWidth),
	}
	first := true
	for _, lines := range sections {
		if len(lines) == 0 {
			continue
		}
		if !first {
			if _, err := fmt.Fprintln(w, ""); err != nil {
				return err
			}
		}
		first = false
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// SummaryLines describes the active filters, mirroring how the analysis
// was requested.
func SummaryLines(cfg model.Config) []string {
	if cfg.WordLengthInterval == nil && cfg.CommonWords == nil {
		return []string{noteStyle.Render("No filters active; showing all words.")}
	}
	lines := []string{"Showing words with the following predicates:"}
	if iv := cfg.WordLengthInterval; iv != nil {
		lines = append(lines, fmt.Sprintf("   i. word lengths within the interval [%d, %d]", iv.Min, iv.Max))
	}
	if n := cfg.CommonWords; n != nil {
		lines = append(lines, fmt.Sprintf("  ii. the %d most common words, most to least common", *n))
	}
	return lines
}

// TableLines lays out the per-document rows and the totals row. Numeric
// columns are right-aligned and never truncated; the word columns wrap to
// the configured width.
func TableLines(rep model.Report, cfg model.Config) []string {
	if len(rep.Rows) == 0 {
		return []string{"No documents found."}
	}

	headers := []string{"Document", "Words", "Sentences", "Avg w/s", "Avg c/w", "Common words"}
	if iv := cfg.WordLengthInterval; iv != nil {
		headers = append(headers, fmt.Sprintf("Words (%d-%d)", iv.Min, iv.Max))
	}
	rows := make([][]string, 0, len(rep.Rows)+1)
	for _, row := range rep.Rows {
		cells := []string{
			row.Document,
			fmt.Sprintf("%d", row.WordCount),
			fmt.Sprintf("%d", row.SentenceCount),
			fmt.Sprintf("%.2f", row.WordsPerSentence),
			fmt.Sprintf("%.2f", row.CharsPerWord),
			wordViewCell(row.CommonWords, cfg.ColumnWidth),
		}
		if cfg.WordLengthInterval != nil {
			cells = append(cells, wordViewCell(row.LengthWords, cfg.ColumnWidth))
		}
		rows = append(rows, cells)
	}
	if t := rep.Totals; t != nil {
		cells := []string{
			"Total",
			fmt.Sprintf("%d", t.WordCount),
			fmt.Sprintf("%d", t.SentenceCount),
			fmt.Sprintf("%.2f", t.WordsPerSentence),
			fmt.Sprintf("%.2f", t.CharsPerWord),
			fmt.Sprintf("%d documents", t.Documents),
		}
		if cfg.WordLengthInterval != nil {
			cells = append(cells, "")
		}
		rows = append(rows, cells)
	}

	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true}
	lines := formatTable(headers, rows, rightAlign)
	if rep.Totals != nil {
		lines = append(lines, noteStyle.Render("Totals averages are means of the per-document averages."))
	}
	return lines
}

// ErrorLines lists documents that were skipped during loading.
func ErrorLines(loadErrs []model.LoadError) []string {
	if len(loadErrs) == 0 {
		return nil
	}
	lines := []string{errorStyle.Render("Skipped files:")}
	for _, loadErr := range loadErrs {
		lines = append(lines, errorStyle.Render(fmt.Sprintf("  %s: %v", loadErr.Name, loadErr.Err)))
	}
	return lines
}

// DetailLines renders the corpus word detail section: each ranked word with
// the documents and sentences containing it, sentences wrapped to width.
func DetailLines(details []model.WordDetail, width int) []string {
	if len(details) == 0 {
		return nil
	}
	lines := []string{titleStyle.Render("Most common words")}
	for _, detail := range details {
		lines = append(lines, "")
		lines = append(lines, titleStyle.Render(fmt.Sprintf("%s (%d)", titleCaser.String(detail.Word), detail.Count)))
		lines = append(lines, "  Documents: "+strings.Join(detail.Documents, ", "))
		for _, sentence := range detail.Sentences {
			for _, wrapped := range strings.Split(WrapText(sentence, width), "\n") {
				lines = append(lines, "  "+wrapped)
			}
		}
	}
	return lines
}

func wordViewCell(view []model.WordCount, width int) string {
	if len(view) == 0 {
		return "-"
	}
	tokens := make([]string, 0, len(view))
	for _, wc := range view {
		tokens = append(tokens, fmt.Sprintf("%s (%d)", wc.Word, wc.Count))
	}
	return WrapWords(tokens, width)
}
