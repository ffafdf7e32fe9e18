package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/tuitrace/internal/model"
)

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 9}); got != " @" {
		t.Fatalf("unexpected sparkline: %q", got)
	}
	if got := Sparkline([]float64{3, 3, 3}); got != "+++" {
		t.Fatalf("unexpected flat sparkline: %q", got)
	}
}

func TestResample(t *testing.T) {
	got := Resample([]float64{1, 3, 5, 7}, 2)
	if len(got) != 2 || got[0] != 2 || got[1] != 6 {
		t.Fatalf("unexpected resample: %v", got)
	}
	if short := Resample([]float64{1}, 5); len(short) != 1 {
		t.Fatalf("expected short series to be kept, got %v", short)
	}
}

func TestRenderSummaryAndCurves(t *testing.T) {
	sessions := []model.SessionAggregate{
		{SessionID: 1, Completed: true, Lifts: 2, DurationMs: 10000},
		{SessionID: 2, Completed: false, Lifts: 4, DurationMs: 20000},
	}
	var buf bytes.Buffer
	if err := RenderSummary(&buf, sessions); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Sessions: 2", "Completed: 1 (50%)", "Avg time: 15.0s", "Fastest letter: 10.0s", "Avg lifts: 3.0"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in summary:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := RenderCurvesWithWidth(&buf, sessions, 1, 40); err != nil {
		t.Fatalf("render curves: %v", err)
	}
	if !strings.Contains(buf.String(), "Completed %") {
		t.Fatalf("expected completion curve:\n%s", buf.String())
	}
}

func TestRenderLetterTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderLetterTable(&buf, nil); err != nil {
		t.Fatalf("render table: %v", err)
	}
	if !strings.Contains(buf.String(), "No letter stats") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestSummarize(t *testing.T) {
	sum := Summarize([]model.SessionAggregate{
		{Completed: false, DurationMs: 2000, Lifts: 1},
		{Completed: true, DurationMs: 6000, Lifts: 3},
		{Completed: true, DurationMs: 4000},
	})
	if sum.Sessions != 3 || sum.Completed != 2 || sum.Lifts != 4 {
		t.Fatalf("unexpected totals: %+v", sum)
	}
	if sum.Fastest != 4 {
		t.Fatalf("expected fastest completed letter of 4s, got %v", sum.Fastest)
	}
	if sum.AverageSeconds() != 4 {
		t.Fatalf("expected 4s average, got %v", sum.AverageSeconds())
	}
	if empty := Summarize(nil); empty.CompletionPercent() != 0 || empty.AverageSeconds() != 0 {
		t.Fatalf("expected zero summary, got %+v", empty)
	}
}

func TestRenderLetterTableWeakestFirst(t *testing.T) {
	var buf bytes.Buffer
	aggs := []model.LetterAggregate{
		{Letter: "A", Attempts: 2, Completions: 2, DurationMs: 3000},
		{Letter: "B", Attempts: 2, Completions: 1, Lifts: 4, DurationMs: 9000},
	}
	if err := RenderLetterTable(&buf, aggs); err != nil {
		t.Fatalf("render table: %v", err)
	}
	out := buf.String()
	a, b := strings.Index(out, "\nA "), strings.Index(out, "\nB ")
	if a < 0 || b < 0 || b > a {
		t.Fatalf("expected B before A:\n%s", out)
	}
	if !strings.Contains(out, "4.5") {
		t.Fatalf("expected B average time in table:\n%s", out)
	}
}
