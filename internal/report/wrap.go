package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// WrapWords greedily packs words into lines no wider than width, measured
// in display cells. Wrapping is the primary policy: nothing is dropped. The
// one exception is a single word wider than the whole line, which is
// truncated with a trailing "..." so the column bound always holds.
func WrapWords(words []string, width int) string {
	if width <= 0 {
		return strings.Join(words, " ")
	}
	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, word := range words {
		w := runewidth.StringWidth(word)
		if lineWidth > 0 && lineWidth+1+w > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if w > width {
			word = truncateWord(word, width)
			w = runewidth.StringWidth(word)
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += w
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// WrapText wraps prose at whitespace, collapsing runs of whitespace to
// single spaces.
func WrapText(text string, width int) string {
	return WrapWords(strings.Fields(text), width)
}

func truncateWord(word string, width int) string {
	if width <= 3 {
		return runewidth.Truncate(word, width, "")
	}
	return runewidth.Truncate(word, width, "...")
}
