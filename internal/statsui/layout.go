package statsui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const curveWindowStep = 5

// nextCurveWindow moves up to the next multiple of five.
func nextCurveWindow(n int) int {
	return (max(n, 0)/curveWindowStep + 1) * curveWindowStep
}

// prevCurveWindow moves down to the previous multiple of five, bottoming out
// at a window of one.
func prevCurveWindow(n int) int {
	prev := (n - 1) / curveWindowStep * curveWindowStep
	if prev < curveWindowStep {
		return 1
	}
	return prev
}

// fitBlock pads every line to width and clips or pads the block to exactly
// height rows.
func fitBlock(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	out := make([]string, height)
	for i := range out {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = padRight(line, width)
	}
	return strings.Join(out, "\n")
}

func padRight(line string, width int) string {
	if gap := width - lipgloss.Width(line); gap > 0 {
		return line + strings.Repeat(" ", gap)
	}
	return line
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	tail := "..."
	if width <= len(tail) {
		tail = ""
	}
	return runewidth.Truncate(s, width, tail)
}
