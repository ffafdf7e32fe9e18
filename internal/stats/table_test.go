package stats

import (
	"bytes"
	"testing"
)

func TestTextTableAlignsColumns(t *testing.T) {
	table := newTextTable(
		column{title: "Letter"},
		column{title: "Completed", right: true},
		column{title: "Attempts", right: true},
	)
	table.add("A", "100%", "12")
	table.add("Ж", "50%", "3")

	lines := table.lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Letter Completed Attempts" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "A           100%       12" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Ж            50%        3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestTextTableWithoutHeader(t *testing.T) {
	table := newTextTable(column{}, column{right: true})
	table.add("Seconds", "4.5", "ignored")
	table.add("x")
	lines := table.lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "Seconds 4.5" || lines[1] != "x          " {
		t.Fatalf("unexpected lines: %q", lines)
	}
}

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	if err := writeLines(&buf, "a", "", "b"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != "a\n\nb\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestDisplayWidthCountsWideRunes(t *testing.T) {
	if got := displayWidth("字"); got != 2 {
		t.Fatalf("expected width 2, got %d", got)
	}
	if got := displayWidth("שלום"); got != 4 {
		t.Fatalf("expected width 4, got %d", got)
	}
}
