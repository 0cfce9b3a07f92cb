// Package matchui provides the Bubble Tea match browser.
package matchui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/courtline/internal/model"
	"github.com/verte-zerg/courtline/internal/stats"
)

const (
	tabMatches = iota
	tabSummary
	tabCurves
)

const plotHeight = 10

const dateLayout = "2006-01-02"

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
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea match browser.
type Model struct {
	history model.History
	summary model.Summary

	tabs       []string
	activeTab  int
	viewports  []viewport.Model
	matchTable table.Model

	width  int
	height int
}

// NewModel constructs a match browser over an already loaded history.
func NewModel(history model.History) *Model {
	m := &Model{
		history: history,
		summary: stats.ComputeSummary(history),
		tabs:    []string{"Matches", "Summary", "Curves"},
	}
	m.matchTable = buildMatchTable(history, 0, 1)
	m.initViewports()
	m.renderTabContents()
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
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		if m.activeTab == tabMatches {
			m.matchTable.Focus()
		} else {
			m.matchTable.Blur()
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "g", "home":
			if m.activeTab == tabMatches {
				m.matchTable.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabMatches {
				m.matchTable.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == tabMatches {
				var cmd tea.Cmd
				m.matchTable, cmd = m.matchTable.Update(msg)
				return m, cmd
			}
			vp := m.viewports[m.activeTab]
			var cmd tea.Cmd
			vp, cmd = vp.Update(msg)
			m.viewports[m.activeTab] = vp
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

func (m *Model) initViewports() {
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
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
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = bodyHeight
	}
	m.matchTable.SetWidth(m.width)
	m.matchTable.SetHeight(maxInt(1, bodyHeight-1))
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
	if m.activeTab == tabMatches {
		m.matchTable.Focus()
	} else {
		m.matchTable.Blur()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	tabs := padLines(m.renderTabs(), m.width)
	line := fmt.Sprintf("Matches: %d  Wins: %d  Losses: %d", m.summary.Matches, m.summary.Wins, m.summary.Losses)
	return tabs + "\n" + padLines(headerStyle.Render(line), m.width)
}

func (m *Model) renderFooter() string {
	return headerStyle.Render("Nav: left/right  Scroll: up/down/pgup/pgdn  Quit: q")
}

func (m *Model) renderBody() string {
	_, bodyHeight, _ := m.layoutHeights()
	if m.activeTab == tabMatches {
		if len(m.history) == 0 {
			return fitLines("No matches found.", m.width, bodyHeight)
		}
		return fitLines(tableMutedStyle.Render(m.matchTable.View()), m.width, bodyHeight)
	}
	return fitLines(m.viewports[m.activeTab].View(), m.width, bodyHeight)
}

func (m *Model) renderTabContents() {
	if len(m.viewports) == 0 {
		return
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.viewports[tabSummary].SetContent(renderSummaryTab(m.summary, m.history, width))
	m.viewports[tabCurves].SetContent(renderCurvesTab(m.history, width))
}

func renderSummaryTab(s model.Summary, history model.History, width int) string {
	if s.Matches == 0 {
		return "No matches found."
	}
	cards := []string{
		metricCard("Matches", fmt.Sprintf("%d", s.Matches)),
		metricCard("Win rate", fmt.Sprintf("%.1f%%", s.WinRate*100)),
		metricCard("Avg aces", fmt.Sprintf("%.2f", s.AvgAces)),
		metricCard("Avg DF", fmt.Sprintf("%.2f", s.AvgDoubleFaults)),
	}
	var cardBlock string
	if width < 80 {
		cardBlock = strings.Join(cards, "\n")
	} else {
		cardBlock = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
	rates := []string{
		rateLine(stats.MetricFirstServePct, s.FirstServePct),
		rateLine(stats.MetricFirstServePtsWonPct, s.FirstServePtsWonPct),
		rateLine(stats.MetricSecondServePtsWonPct, s.SecondServePtsWonPct),
		rateLine(stats.MetricBreakPointsSavedPct, s.BreakPointsSavedPct),
	}
	lines := []string{cardBlock, "", "Season rates (volume-weighted)"}
	lines = append(lines, rates...)
	if best, err := stats.TopMatchesByMetric(history, stats.MetricFirstServePct, 1); err == nil && len(best) > 0 {
		bm := stats.ComputeMatchMetrics(best[0])
		lines = append(lines, "", fmt.Sprintf("Best serving day: %s vs %s (%.1f%%)",
			best[0].Date.Format(dateLayout), best[0].Opponent, bm.FirstServePct*100))
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func rateLine(metric string, value float64) string {
	return fmt.Sprintf("%s  %s", headerStyle.Render(stats.MetricLabel(metric)), cardValueStyle.Render(fmt.Sprintf("%.1f%%", value*100)))
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func renderCurvesTab(history model.History, width int) string {
	if len(history) == 0 {
		return "No matches found."
	}
	series := make([]stats.Series, 0, len(stats.MetricNames()))
	for _, metric := range stats.MetricNames() {
		points, err := stats.MetricSeries(history, metric)
		if err != nil {
			return fmt.Sprintf("Failed to build curves: %v", err)
		}
		values := make([]float64, len(points))
		for i, p := range points {
			values[i] = p.Value
		}
		series = append(series, stats.Series{Name: stats.MetricLabel(metric), Values: values})
	}
	start := history[0].Date
	end := history[len(history)-1].Date
	var buf bytes.Buffer
	if err := stats.PlotRatesWithColor(&buf, "Metrics over time", series, start, end, stats.PlotWidthFor(width), plotHeight, true); err != nil {
		return fmt.Sprintf("Failed to render curves: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func buildMatchTable(history model.History, width, height int) table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 10},
		{Title: "Opponent", Width: 18},
		{Title: "Surface", Width: 8},
		{Title: "Result", Width: 6},
		{Title: "Score", Width: 16},
		{Title: "1st Srv", Width: 8},
		{Title: "BP Saved", Width: 8},
	}
	rows := make([]table.Row, 0, len(history))
	for _, rec := range history {
		metrics := stats.ComputeMatchMetrics(rec)
		rows = append(rows, table.Row{
			rec.Date.Format(dateLayout),
			rec.Opponent,
			rec.Surface,
			string(rec.Result),
			rec.Score,
			fmt.Sprintf("%.1f%%", metrics.FirstServePct*100),
			fmt.Sprintf("%.1f%%", metrics.BreakPointsSavedPct*100),
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(maxInt(1, height-1)),
	)
	t.SetWidth(width)
	t.SetStyles(matchTableStyles())
	return t
}

func matchTableStyles() table.Styles {
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
	return styles
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
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
