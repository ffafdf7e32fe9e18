package tui

import (
	"strings"
	"testing"
)

func letters(ids ...string) []stripLetter {
	out := make([]stripLetter, len(ids))
	for i, id := range ids {
		out[i] = stripLetter{id: id, traceable: true}
	}
	return out
}

func TestBuildStripCellsStyles(t *testing.T) {
	in := []stripLetter{
		{id: "A", traceable: true, traced: true},
		{id: "B", traceable: true},
		{id: "C"},
		{id: "D", traceable: true},
	}
	cells := buildStripCells(in, "D")
	if cells[0].s != tracedStyle.Render("A") {
		t.Fatalf("expected traced style for A")
	}
	if cells[1].s != untracedStyle.Render("B") {
		t.Fatalf("expected untraced style for B")
	}
	if cells[2].s != missingStyle.Render("C") {
		t.Fatalf("expected missing style for C")
	}
	if cells[3].s != currentStyle.Render("D") {
		t.Fatalf("expected current style for D")
	}
}

func TestWrapStripCellsRespectsWidth(t *testing.T) {
	cells := buildStripCells(letters("A", "B", "C", "D", "E"), "")
	lines := wrapStripCells(cells, 5)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if len(lines[0]) != 3 || len(lines[1]) != 2 {
		t.Fatalf("unexpected split %d/%d", len(lines[0]), len(lines[1]))
	}
}

func TestWrapStripCellsNoWidth(t *testing.T) {
	cells := buildStripCells(letters("A", "B"), "")
	if lines := wrapStripCells(cells, 0); len(lines) != 1 {
		t.Fatalf("expected a single line, got %d", len(lines))
	}
	if lines := wrapStripCells(nil, 10); lines != nil {
		t.Fatalf("expected no lines")
	}
}

func TestRenderStripTruncatesToTwoLines(t *testing.T) {
	out := renderStrip(letters("A", "B", "C", "D", "E", "F", "G", "H"), "", 3, false)
	lines := strings.Split(out, "\n")
	if len(lines) != stripMaxLines {
		t.Fatalf("expected %d lines, got %d", stripMaxLines, len(lines))
	}
	if !strings.Contains(lines[1], stripEllipsis) {
		t.Fatalf("expected ellipsis on last line: %q", lines[1])
	}
}

func TestRenderStripRTLReversesLines(t *testing.T) {
	ltr := renderStrip(letters("א", "ב", "ג"), "", 20, false)
	rtl := renderStrip(letters("א", "ב", "ג"), "", 20, true)
	if strings.Index(ltr, "א") > strings.Index(ltr, "ג") {
		t.Fatalf("expected logical order for ltr: %q", ltr)
	}
	if strings.Index(rtl, "א") < strings.Index(rtl, "ג") {
		t.Fatalf("expected reversed order for rtl: %q", rtl)
	}
}
