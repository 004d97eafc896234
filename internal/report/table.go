// Package report renders computed document statistics.
package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// formatTable lays out rows into aligned columns. Cells may contain
// newlines; a multi-line cell expands its logical row into several
// physical lines.
func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	measure := func(i int, cell string) {
		for _, line := range strings.Split(cell, "\n") {
			if w := displayWidth(line); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i, header := range headers {
		measure(i, header)
	}
	for _, row := range rows {
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			measure(i, cell)
		}
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols)...)
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols)...)
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) []string {
	cells := make([][]string, len(widths))
	height := 1
	for i := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		cells[i] = strings.Split(cell, "\n")
		if len(cells[i]) > height {
			height = len(cells[i])
		}
	}

	out := make([]string, 0, height)
	for line := 0; line < height; line++ {
		var b strings.Builder
		for i := 0; i < len(widths); i++ {
			value := ""
			if line < len(cells[i]) {
				value = cells[i][line]
			}
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(padCell(value, widths[i], rightAlignCols[i]))
		}
		out = append(out, strings.TrimRight(b.String(), " "))
	}
	return out
}

func padCell(value string, width int, rightAlign bool) string {
	valueWidth := displayWidth(value)
	if valueWidth >= width {
		return value
	}
	padding := width - valueWidth
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}

func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}
