package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	stripSeparator = " "
	stripMaxLines  = 2
	stripEllipsis  = "…"
)

var (
	tracedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	untracedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	missingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A")).Strikethrough(true)
	currentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true).Underline(true)
)

// stripLetter is one letter of the alphabet strip.
type stripLetter struct {
	id        string
	traced    bool
	traceable bool
}

type stripCell struct {
	s     string
	width int
}

func buildStripCells(letters []stripLetter, current string) []stripCell {
	out := make([]stripCell, 0, len(letters))
	for _, l := range letters {
		style := untracedStyle
		switch {
		case l.id == current:
			style = currentStyle
		case !l.traceable:
			style = missingStyle
		case l.traced:
			style = tracedStyle
		}
		out = append(out, stripCell{
			s:     style.Render(l.id),
			width: runewidth.StringWidth(l.id),
		})
	}
	return out
}

// wrapStripCells splits cells into lines no wider than width, keeping the
// logical letter order.
func wrapStripCells(cells []stripCell, width int) [][]stripCell {
	if len(cells) == 0 {
		return nil
	}
	if width <= 0 {
		return [][]stripCell{cells}
	}
	var lines [][]stripCell
	line := make([]stripCell, 0, len(cells))
	lineWidth := 0
	for _, c := range cells {
		need := c.width
		if len(line) > 0 {
			need += len(stripSeparator)
		}
		if lineWidth+need > width && len(line) > 0 {
			lines = append(lines, line)
			line = make([]stripCell, 0, len(cells))
			lineWidth = 0
			need = c.width
		}
		line = append(line, c)
		lineWidth += need
	}
	return append(lines, line)
}

// renderStrip renders the alphabet strip. Right-to-left alphabets run from
// the right edge of each line.
func renderStrip(letters []stripLetter, current string, width int, rtl bool) string {
	lines := wrapStripCells(buildStripCells(letters, current), width)
	if len(lines) > stripMaxLines {
		lines = lines[:stripMaxLines]
		last := lines[stripMaxLines-1]
		if len(last) > 0 {
			last[len(last)-1] = stripCell{s: untracedStyle.Render(stripEllipsis), width: runewidth.StringWidth(stripEllipsis)}
		}
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		parts := make([]string, len(line))
		for i, c := range line {
			if rtl {
				parts[len(line)-1-i] = c.s
			} else {
				parts[i] = c.s
			}
		}
		out = append(out, strings.Join(parts, stripSeparator))
	}
	return strings.Join(out, "\n")
}
