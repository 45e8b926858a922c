package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/catflap/internal/storage"
)

var journalTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229"))

// RenderJournal renders the session summary printed after play: the most
// recent runs as a table followed by aggregate figures.
func RenderJournal(runs []storage.RunRecord, stats storage.SessionStats) string {
	var b strings.Builder
	b.WriteString(journalTitleStyle.Render("THIS SESSION"))
	b.WriteString("\n")

	if len(runs) == 0 {
		b.WriteString(helpStyle.Render("No runs finished."))
		b.WriteString("\n")
		return b.String()
	}

	columns := []table.Column{
		{Title: "Run", Width: 5},
		{Title: "Difficulty", Width: 10},
		{Title: "Score", Width: 7},
		{Title: "Frames", Width: 8},
	}
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", r.ID),
			r.Difficulty,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Frames),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	b.WriteString(t.View())
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("runs %d · best %d · average %.1f\n", stats.Runs, stats.Best, stats.Average))
	return b.String()
}
