package statsui

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuitrace/internal/alphabet"
	"github.com/verte-zerg/tuitrace/internal/difficulty"
	"github.com/verte-zerg/tuitrace/internal/stats"
	"github.com/verte-zerg/tuitrace/internal/store"
	"github.com/verte-zerg/tuitrace/internal/strokes"
)

const (
	gridCellWidth  = 4
	wideCardsWidth = 80
	topLetterCount = 5
)

func renderOverview(report stats.Report, levels map[difficulty.Level]int, window, width int) string {
	if len(report.Sessions) == 0 {
		return "No sessions found."
	}
	blocks := []string{summaryCards(stats.Summarize(report.Sessions), levels, width)}
	if top := stats.TopLettersByAttempts(report.LetterAggsAll, topLetterCount); len(top) > 0 {
		blocks = append(blocks, headerStyle.Render("Most practised: "+strings.Join(top, " ")))
	}
	var curves bytes.Buffer
	if err := stats.RenderCurvesWithWidth(&curves, report.Sessions, window, width); err != nil {
		blocks = append(blocks, "", fmt.Sprintf("Failed to render curves: %v", err))
	} else {
		blocks = append(blocks, "", strings.TrimRight(curves.String(), "\n"))
	}
	return strings.Join(blocks, "\n")
}

// summaryCards puts the totals in one row of cards and the per-difficulty
// counts in a second row, or stacks everything on narrow terminals.
func summaryCards(sum stats.Summary, levels map[difficulty.Level]int, width int) string {
	totals := []string{
		metricCard("Sessions", strconv.Itoa(sum.Sessions)),
		metricCard("Completed", fmt.Sprintf("%.0f%%", sum.CompletionPercent())),
		metricCard("Avg Time", fmt.Sprintf("%.1fs", sum.AverageSeconds())),
		metricCard("Fastest", fmt.Sprintf("%.1fs", sum.Fastest)),
	}
	var perLevel []string
	for _, level := range difficulty.Levels() {
		perLevel = append(perLevel, metricCard(string(level), strconv.Itoa(levels[level])))
	}
	if width < wideCardsWidth {
		return strings.Join(append(totals, perLevel...), "\n")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, totals...),
		lipgloss.JoinHorizontal(lipgloss.Top, perLevel...),
	)
}

func metricCard(label, value string) string {
	return cardStyle.Render(cardTitleStyle.Render(label) + "\n" + cardValueStyle.Render(value))
}

// tracedGrid shows each alphabet as rows of letters. Traced letters are
// highlighted and letters without stroke data are struck through.
type tracedGrid struct {
	traced   *store.TracedLetters
	registry *strokes.Registry
}

func (g tracedGrid) render(lang string, width int) string {
	langs := alphabet.Languages()
	if lang != "" {
		langs = []string{lang}
	}
	perRow := max(1, width/gridCellWidth)
	sections := make([]string, 0, len(langs))
	for _, l := range langs {
		sections = append(sections, g.section(l, perRow))
	}
	return strings.Join(sections, "\n\n")
}

func (g tracedGrid) section(lang string, perRow int) string {
	ids, err := alphabet.Letters(lang)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	done := 0
	if g.traced != nil {
		done = g.traced.Count(lang)
	}
	lines := []string{cardValueStyle.Render(fmt.Sprintf("%s  %d/%d", lang, done, len(ids)))}
	for start := 0; start < len(ids); start += perRow {
		var row strings.Builder
		for _, id := range ids[start:min(start+perRow, len(ids))] {
			row.WriteString(g.cell(lang, id))
		}
		lines = append(lines, row.String())
	}
	return strings.Join(lines, "\n")
}

func (g tracedGrid) cell(lang, id string) string {
	style := untracedStyle
	if g.traced != nil && g.traced.Has(lang, id) {
		style = tracedStyle
	} else if g.registry != nil && !g.registry.Has(id) {
		style = missingStyle
	}
	return style.Render(runewidth.FillRight(id, gridCellWidth))
}
