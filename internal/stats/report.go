package stats

import (
	"context"
	"fmt"

	"github.com/verte-zerg/tuitrace/internal/model"
)

// Source is the store subset a report is built from.
type Source interface {
	ListSessions(ctx context.Context, cfg model.StatsConfig) ([]model.SessionAggregate, error)
	ListLetterAggregatesForSessions(ctx context.Context, sessionIDs []int64) ([]model.LetterAggregate, error)
}

// Report holds the sessions matching a filter together with the per-letter
// totals over all of them and over the trailing curve window.
type Report struct {
	Sessions         []model.SessionAggregate
	WindowSessionIDs []int64
	LetterAggsAll    []model.LetterAggregate
	LetterAggsWindow []model.LetterAggregate
}

// BuildReport loads the sessions matching cfg, keeps the newest cfg.Last of
// them, and aggregates letters for the whole set and for the window.
func BuildReport(ctx context.Context, src Source, cfg model.StatsConfig) (Report, error) {
	sessions, err := src.ListSessions(ctx, cfg)
	if err != nil {
		return Report{}, fmt.Errorf("failed to list sessions: %w", err)
	}
	sessions = tail(sessions, cfg.Last)

	report := Report{
		Sessions:         sessions,
		WindowSessionIDs: sessionIDs(tail(sessions, cfg.CurveWindow)),
	}
	if report.LetterAggsAll, err = src.ListLetterAggregatesForSessions(ctx, sessionIDs(sessions)); err != nil {
		return Report{}, fmt.Errorf("failed to aggregate letters: %w", err)
	}
	if report.LetterAggsWindow, err = src.ListLetterAggregatesForSessions(ctx, report.WindowSessionIDs); err != nil {
		return Report{}, fmt.Errorf("failed to aggregate window letters: %w", err)
	}
	return report, nil
}

// tail returns the last n sessions, or all of them when n is not positive.
func tail(sessions []model.SessionAggregate, n int) []model.SessionAggregate {
	if n <= 0 || len(sessions) <= n {
		return sessions
	}
	return sessions[len(sessions)-n:]
}

func sessionIDs(sessions []model.SessionAggregate) []int64 {
	ids := make([]int64, len(sessions))
	for i, s := range sessions {
		ids[i] = s.SessionID
	}
	return ids
}
