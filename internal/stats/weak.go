package stats

import "github.com/verte-zerg/tuitrace/internal/model"

// SelectWeakLetters returns up to top letters that were hardest to complete.
// Letters are ranked by completion rate, then by lifts per attempt. A
// non-positive top selects all letters.
func SelectWeakLetters(aggs []model.LetterAggregate, top int) []string {
	if len(aggs) == 0 {
		return nil
	}
	candidates := WeakestFirst(aggs)
	if top <= 0 || top > len(candidates) {
		top = len(candidates)
	}
	out := make([]string, 0, top)
	for _, agg := range candidates[:top] {
		out = append(out, agg.Letter)
	}
	return out
}

// WeakestFirst returns a copy of aggs ordered from the weakest letter.
func WeakestFirst(aggs []model.LetterAggregate) []model.LetterAggregate {
	out := make([]model.LetterAggregate, len(aggs))
	copy(out, aggs)
	sortWeakestFirst(out)
	return out
}
