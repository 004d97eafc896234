// Package reportui provides the Bubble Tea report browser.
package reportui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/docstat/internal/model"
	"github.com/verte-zerg/docstat/internal/report"
)

const (
	tabDocuments = iota
	tabWords
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea report browser.
type Model struct {
	rep model.Report
	cfg model.Config

	tabs      []string
	activeTab int
	docTable  table.Model
	wordsView viewport.Model

	width  int
	height int
}

// NewModel constructs a report browser model.
func NewModel(rep model.Report, cfg model.Config) *Model {
	m := &Model{
		rep:  rep,
		cfg:  cfg,
		tabs: []string{"Documents", "Common words"},
	}
	m.docTable = buildDocTable(rep, 0, 1)
	m.wordsView = viewport.New(0, 0)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "g", "home":
			if m.activeTab == tabDocuments {
				m.docTable.GotoTop()
			} else {
				m.wordsView.GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabDocuments {
				m.docTable.GotoBottom()
			} else {
				m.wordsView.GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == tabDocuments {
				var cmd tea.Cmd
				m.docTable, cmd = m.docTable.Update(msg)
				return m, cmd
			}
			var cmd tea.Cmd
			m.wordsView, cmd = m.wordsView.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.docTable = buildDocTable(m.rep, m.width, bodyHeight)
	m.wordsView.Width = m.width
	m.wordsView.Height = bodyHeight
	m.wordsView.SetContent(renderWords(m.rep, m.cfg, m.width))
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	if count == 0 {
		return
	}
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabDocuments {
		m.docTable.Focus()
	} else {
		m.docTable.Blur()
	}
}

func (m *Model) renderHeader() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	tabs := padLines(lipgloss.JoinHorizontal(lipgloss.Top, parts...), m.width)
	summary := padLines(headerStyle.Render(m.filterSummary()), m.width)
	return tabs + "\n" + summary
}

func (m *Model) filterSummary() string {
	interval := "any"
	if iv := m.cfg.WordLengthInterval; iv != nil {
		interval = fmt.Sprintf("[%d, %d]", iv.Min, iv.Max)
	}
	common := "all"
	if n := m.cfg.CommonWords; n != nil {
		common = fmt.Sprintf("%d", *n)
	}
	return fmt.Sprintf("Filters: word-length=%s  common-words=%s  documents=%d", interval, common, len(m.rep.Rows))
}

func (m *Model) renderFooter() string {
	return headerStyle.Render("Nav: left/right  Scroll: up/down/pgup/pgdn  Top/bottom: g/G  Quit: q")
}

func (m *Model) renderBody() string {
	_, bodyHeight, _ := m.layoutHeights()
	if m.activeTab == tabDocuments {
		if len(m.rep.Rows) == 0 {
			return fitLines("No documents found.", m.width, bodyHeight)
		}
		return fitLines(tableMutedStyle.Render(m.docTable.View()), m.width, bodyHeight)
	}
	if len(m.rep.Details) == 0 {
		return fitLines("No words to show.", m.width, bodyHeight)
	}
	return fitLines(m.wordsView.View(), m.width, bodyHeight)
}

func buildDocTable(rep model.Report, width, height int) table.Model {
	columns := []table.Column{
		{Title: "Document", Width: 24},
		{Title: "Words", Width: 8},
		{Title: "Sentences", Width: 9},
		{Title: "Avg w/s", Width: 8},
		{Title: "Avg c/w", Width: 8},
	}
	rows := make([]table.Row, 0, len(rep.Rows)+1)
	for _, r := range rep.Rows {
		rows = append(rows, table.Row{
			r.Document,
			fmt.Sprintf("%d", r.WordCount),
			fmt.Sprintf("%d", r.SentenceCount),
			fmt.Sprintf("%.2f", r.WordsPerSentence),
			fmt.Sprintf("%.2f", r.CharsPerWord),
		})
	}
	if t := rep.Totals; t != nil {
		rows = append(rows, table.Row{
			"Total",
			fmt.Sprintf("%d", t.WordCount),
			fmt.Sprintf("%d", t.SentenceCount),
			fmt.Sprintf("%.2f", t.WordsPerSentence),
			fmt.Sprintf("%.2f", t.CharsPerWord),
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(maxInt(1, height-1)),
	)
	t.SetWidth(width)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	t.SetStyles(styles)
	return t
}

func renderWords(rep model.Report, cfg model.Config, width int) string {
	lines := report.DetailLines(rep.Details, detailWidth(cfg, width))
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func detailWidth(cfg model.Config, width int) int {
	if cfg.ColumnWidth > 0 && cfg.ColumnWidth < width-2 {
		return cfg.ColumnWidth
	}
	if width > 4 {
		return width - 4
	}
	return width
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
