package stats

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/tuitrace/internal/difficulty"
	"github.com/verte-zerg/tuitrace/internal/model"
	"github.com/verte-zerg/tuitrace/internal/store"
)

func TestBuildReport(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "tuitrace.db")
	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	var ids []int64
	for i, letter := range []string{"א", "ב", "א"} {
		start := time.Unix(0, 0).Add(time.Duration(i) * time.Minute)
		end := start.Add(30 * time.Second)
		id, err := st.InsertSession(ctx, model.TraceSession{
			StartedAt:  start,
			EndedAt:    end,
			Letter:     letter,
			Lang:       "he",
			Difficulty: difficulty.Medium,
			Completed:  i != 1,
			Samples:    50,
			Lifts:      i,
			DurationMs: end.Sub(start).Milliseconds(),
		})
		if err != nil {
			t.Fatalf("insert session: %v", err)
		}
		ids = append(ids, id)
	}

	cfg := model.StatsConfig{
		Lang:        "he",
		Last:        2,
		CurveWindow: 1,
	}
	report, err := BuildReport(ctx, st, cfg)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(report.Sessions))
	}
	if report.Sessions[0].SessionID != ids[1] || report.Sessions[1].SessionID != ids[2] {
		t.Fatalf("unexpected session ids: %+v", report.Sessions)
	}
	if len(report.WindowSessionIDs) != 1 || report.WindowSessionIDs[0] != ids[2] {
		t.Fatalf("unexpected window session ids: %v", report.WindowSessionIDs)
	}
	if len(report.LetterAggsAll) != 2 {
		t.Fatalf("expected aggregates for 2 letters, got %d", len(report.LetterAggsAll))
	}
	if len(report.LetterAggsWindow) != 1 || report.LetterAggsWindow[0].Letter != "א" {
		t.Fatalf("unexpected window aggregates: %+v", report.LetterAggsWindow)
	}
}
