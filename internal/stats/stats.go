// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/verte-zerg/tuitrace/internal/model"
)

const sparkChars = " .:-=+*#%@"

// SessionMetrics computes the duration in seconds and a 0/1 completion score
// for a session.
func SessionMetrics(s model.SessionAggregate) (seconds, completion float64) {
	if s.DurationMs > 0 {
		seconds = float64(s.DurationMs) / 1000.0
	}
	if s.Completed {
		completion = 1
	}
	return seconds, completion
}

// CompletionRate is the share of attempts that were completed.
func CompletionRate(agg model.LetterAggregate) float64 {
	if agg.Attempts == 0 {
		return 0
	}
	return float64(agg.Completions) / float64(agg.Attempts)
}

// LiftsPerAttempt is the mean number of pointer lifts per attempt.
func LiftsPerAttempt(agg model.LetterAggregate) float64 {
	if agg.Attempts == 0 {
		return 0
	}
	return float64(agg.Lifts) / float64(agg.Attempts)
}

// MovingAverage smooths values with a trailing mean over at most window
// points. Leading points average over what is available so far.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	var running float64
	for i, v := range values {
		running += v
		if i >= window {
			running -= values[i-window]
		}
		out[i] = running / float64(min(i+1, window))
	}
	return out
}

// Sparkline maps values onto a ramp of ASCII glyphs scaled between the
// series minimum and maximum. A flat series renders as the middle glyph.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := slices.Min(values), slices.Max(values)
	if hi-lo < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	top := float64(len(sparkChars) - 1)
	glyphs := make([]byte, len(values))
	for i, v := range values {
		level := int(math.Round((v - lo) / (hi - lo) * top))
		glyphs[i] = sparkChars[max(0, min(level, len(sparkChars)-1))]
	}
	return string(glyphs)
}

// Resample shrinks values to width points by averaging equal buckets. Series
// already within width are returned as a copy.
func Resample(values []float64, width int) []float64 {
	if len(values) == 0 || width <= 0 {
		return nil
	}
	if len(values) <= width {
		return slices.Clone(values)
	}
	out := make([]float64, width)
	for i := range out {
		lo := i * len(values) / width
		hi := max((i+1)*len(values)/width, lo+1)
		var total float64
		for _, v := range values[lo:hi] {
			total += v
		}
		out[i] = total / float64(hi-lo)
	}
	return out
}

// RenderSummary prints a summary for sessions.
func RenderSummary(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		return writeLines(w, "No sessions found.")
	}
	sum := Summarize(sessions)
	return writeLines(w,
		"Summary",
		fmt.Sprintf("Sessions: %d", sum.Sessions),
		fmt.Sprintf("Completed: %d (%.0f%%)", sum.Completed, sum.CompletionPercent()),
		fmt.Sprintf("Avg time: %.1fs", sum.AverageSeconds()),
		fmt.Sprintf("Fastest letter: %.1fs", sum.Fastest),
		fmt.Sprintf("Avg lifts: %.1f", float64(sum.Lifts)/float64(sum.Sessions)),
		"",
	)
}

// Summary totals a list of sessions.
type Summary struct {
	Sessions  int
	Completed int
	Lifts     int
	Seconds   float64
	// Fastest only considers completed letters and stays zero when none were.
	Fastest float64
}

// Summarize totals the sessions.
func Summarize(sessions []model.SessionAggregate) Summary {
	sum := Summary{Sessions: len(sessions)}
	for _, s := range sessions {
		seconds, _ := SessionMetrics(s)
		sum.Seconds += seconds
		sum.Lifts += s.Lifts
		if !s.Completed {
			continue
		}
		sum.Completed++
		if sum.Fastest == 0 || seconds < sum.Fastest {
			sum.Fastest = seconds
		}
	}
	return sum
}

// CompletionPercent is the completed share of sessions, 0 to 100.
func (s Summary) CompletionPercent() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Sessions) * 100
}

// AverageSeconds is the mean session duration.
func (s Summary) AverageSeconds() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return s.Seconds / float64(s.Sessions)
}

// RenderCurves prints completion and time sparklines sized to the terminal.
func RenderCurves(w io.Writer, sessions []model.SessionAggregate, window int) error {
	return RenderCurvesWithWidth(w, sessions, window, TerminalWidth())
}

// RenderCurvesWithWidth prints the curves sized to totalWidth columns.
func RenderCurvesWithWidth(w io.Writer, sessions []model.SessionAggregate, window, totalWidth int) error {
	if len(sessions) == 0 {
		return nil
	}
	completion := make([]float64, len(sessions))
	seconds := make([]float64, len(sessions))
	for i, s := range sessions {
		sec, done := SessionMetrics(s)
		seconds[i] = sec
		completion[i] = done * 100
	}
	completion = MovingAverage(completion, window)
	seconds = MovingAverage(seconds, window)

	width := SparklineWidthFor(totalWidth)
	table := newTextTable(column{}, column{}, column{right: true})
	table.add("Completed %", Sparkline(Resample(completion, width)), fmt.Sprintf("%.0f", completion[len(completion)-1]))
	table.add("Seconds", Sparkline(Resample(seconds, width)), fmt.Sprintf("%.1f", seconds[len(seconds)-1]))

	lines := append([]string{"Learning Curves"}, table.lines()...)
	return writeLines(w, append(lines, "")...)
}

// RenderLetterTable prints per-letter aggregates, weakest first.
func RenderLetterTable(w io.Writer, aggs []model.LetterAggregate) error {
	if len(aggs) == 0 {
		return writeLines(w, "No letter stats found.")
	}
	table := newTextTable(
		column{title: "Letter"},
		column{title: "Completed", right: true},
		column{title: "Attempts", right: true},
		column{title: "Lifts/Try", right: true},
		column{title: "Avg Time (s)", right: true},
	)
	for _, r := range WeakestFirst(aggs) {
		table.add(
			r.Letter,
			fmt.Sprintf("%.0f%%", CompletionRate(r)*100),
			fmt.Sprintf("%d", r.Attempts),
			fmt.Sprintf("%.1f", LiftsPerAttempt(r)),
			fmt.Sprintf("%.1f", AverageSeconds(r)),
		)
	}
	lines := append([]string{"Per-Letter (Windowed)"}, table.lines()...)
	return writeLines(w, append(lines, "")...)
}

// AverageSeconds is the mean attempt duration in seconds.
func AverageSeconds(agg model.LetterAggregate) float64 {
	if agg.Attempts == 0 {
		return 0
	}
	return float64(agg.DurationMs) / float64(agg.Attempts) / 1000
}

// sortWeakestFirst orders by completion rate, then by lifts per attempt.
func sortWeakestFirst(aggs []model.LetterAggregate) {
	sort.SliceStable(aggs, func(i, j int) bool {
		ci, cj := CompletionRate(aggs[i]), CompletionRate(aggs[j])
		if ci != cj {
			return ci < cj
		}
		li, lj := LiftsPerAttempt(aggs[i]), LiftsPerAttempt(aggs[j])
		if li != lj {
			return li > lj
		}
		return aggs[i].Letter < aggs[j].Letter
	})
}
