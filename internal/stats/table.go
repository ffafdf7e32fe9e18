package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// column describes one column of a plain-text table.
type column struct {
	title string
	right bool
}

// textTable lays out rows in columns sized to their widest cell. A table
// whose columns have no titles prints no header line.
type textTable struct {
	columns []column
	rows    [][]string
}

func newTextTable(columns ...column) *textTable {
	return &textTable{columns: columns}
}

// add appends a row. Missing cells are blank and extra cells are dropped.
func (t *textTable) add(cells ...string) {
	row := make([]string, len(t.columns))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

func (t *textTable) hasHeader() bool {
	for _, c := range t.columns {
		if c.title != "" {
			return true
		}
	}
	return false
}

func (t *textTable) widths() []int {
	widths := make([]int, len(t.columns))
	for i, c := range t.columns {
		widths[i] = displayWidth(c.title)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], displayWidth(cell))
		}
	}
	return widths
}

func (t *textTable) lines() []string {
	if len(t.columns) == 0 {
		return nil
	}
	widths := t.widths()
	format := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			if t.columns[i].right {
				parts[i] = runewidth.FillLeft(cell, widths[i])
			} else {
				parts[i] = runewidth.FillRight(cell, widths[i])
			}
		}
		return strings.Join(parts, " ")
	}

	out := make([]string, 0, len(t.rows)+1)
	if t.hasHeader() {
		titles := make([]string, len(t.columns))
		for i, c := range t.columns {
			titles[i] = c.title
		}
		out = append(out, format(titles))
	}
	for _, row := range t.rows {
		out = append(out, format(row))
	}
	return out
}

// writeLines prints each line followed by a newline, stopping at the first
// write error.
func writeLines(w io.Writer, lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
