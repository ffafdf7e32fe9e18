package stats

import (
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const (
	minSparklineWidth   = 10
	curveLabelWidth     = 24
	terminalWidthBackup = 80
)

// TerminalWidth returns the stdout width, or a fallback when stdout is not a
// terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

// SparklineWidthFor computes a sparkline width that fits next to the curve
// label and value columns.
func SparklineWidthFor(totalWidth int) int {
	if totalWidth <= 0 {
		return minSparklineWidth
	}
	width := totalWidth - curveLabelWidth
	if width < minSparklineWidth {
		width = minSparklineWidth
	}
	return width
}

func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}
