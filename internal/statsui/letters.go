package statsui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuitrace/internal/model"
	"github.com/verte-zerg/tuitrace/internal/stats"
)

var letterColumns = []table.Column{
	{Title: "Letter", Width: 6},
	{Title: "Completed", Width: 9},
	{Title: "Attempts", Width: 8},
	{Title: "Lifts/Try", Width: 9},
	{Title: "Avg Time (s)", Width: 12},
}

func newLetterTable() table.Model {
	t := table.New(
		table.WithColumns(letterColumns),
		table.WithHeight(1),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(colorBorder).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1, 0, 0)
	styles.Cell = styles.Cell.Padding(0, 1, 0, 0)
	styles.Selected = styles.Cell.Foreground(colorBright).Bold(true)
	t.SetStyles(styles)
	return t
}

// buildLetterRows lists letters weakest first.
func buildLetterRows(aggs []model.LetterAggregate) []table.Row {
	rows := make([]table.Row, 0, len(aggs))
	for _, agg := range stats.WeakestFirst(aggs) {
		rows = append(rows, table.Row{
			agg.Letter,
			fmt.Sprintf("%.0f%%", stats.CompletionRate(agg)*100),
			strconv.Itoa(agg.Attempts),
			fmt.Sprintf("%.1f", stats.LiftsPerAttempt(agg)),
			fmt.Sprintf("%.1f", stats.AverageSeconds(agg)),
		})
	}
	return rows
}
