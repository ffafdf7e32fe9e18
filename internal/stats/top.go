package stats

import (
	"sort"

	"github.com/verte-zerg/tuitrace/internal/model"
)

// TopLettersByAttempts returns the top N letters by number of attempts.
func TopLettersByAttempts(aggs []model.LetterAggregate, n int) []string {
	if n <= 0 || len(aggs) == 0 {
		return nil
	}
	items := make([]model.LetterAggregate, len(aggs))
	copy(items, aggs)
	sort.Slice(items, func(i, j int) bool {
		if items[i].Attempts == items[j].Attempts {
			return items[i].Letter < items[j].Letter
		}
		return items[i].Attempts > items[j].Attempts
	})
	if n > len(items) {
		n = len(items)
	}
	out := make([]string, 0, n)
	for _, item := range items[:n] {
		out = append(out, item.Letter)
	}
	return out
}
