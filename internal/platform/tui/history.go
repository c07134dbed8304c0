package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ringflight/internal/storage"
)

// maxHistory is the number of runs loaded into the history view.
const maxHistory = 100

// HistoryModel lists this session's finished runs.
type HistoryModel struct {
	runs   []storage.RunRecord
	totals storage.Totals
	err    error
	table  table.Model
	width  int
	height int
}

// NewHistoryModel loads runs from the journal. A nil journal shows an empty view.
func NewHistoryModel(journal *storage.Journal, width, height int) HistoryModel {
	m := HistoryModel{width: width, height: height}

	if journal != nil {
		m.runs, m.err = journal.RecentRuns(maxHistory)
		if m.err == nil {
			m.totals, m.err = journal.Totals()
		}
	}

	m.table = m.createTable()
	return m
}

// createTable builds the table sized to the current window.
func (m HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Course", Width: 10},
		{Title: "Pilot", Width: 10},
		{Title: "Score", Width: 6},
		{Title: "Missed", Width: 7},
		{Title: "Crash", Width: 6},
		{Title: "Time", Width: 9},
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		crash := "-"
		if r.CrashRing >= 0 {
			crash = fmt.Sprintf("%d", r.CrashRing)
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			r.Course,
			r.Pilot,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Missed),
			crash,
			r.CreatedAt.Local().Format("15:04:05"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Update scrolls the table.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = wsm.Width, wsm.Height
		m.table = m.createTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("RUN HISTORY", m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	mutedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	switch {
	case m.err != nil:
		b.WriteString(centerText(boxStyle.Render("Could not read the journal: "+m.err.Error()), m.width))
	case len(m.runs) == 0:
		empty := mutedStyle.Italic(true).Padding(1, 4).Render("No runs yet this session.\nFinish a flight to record one!")
		b.WriteString(centerText(boxStyle.Render(empty), m.width))
	default:
		b.WriteString(centerText(boxStyle.Render(m.table.View()), m.width))
		b.WriteString("\n")
		summary := fmt.Sprintf("Runs: %d  Best: %d  Avg: %.1f  Rings: %d scored, %d missed",
			m.totals.Runs, m.totals.Best, m.totals.AvgScore, m.totals.Scored, m.totals.Missed)
		b.WriteString(centerText(mutedStyle.Render(summary), m.width))
	}

	return b.String()
}

// centerText pads each line of text so it is centered within width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}
