package stats

import (
	"testing"

	"github.com/verte-zerg/tuitrace/internal/model"
)

func TestTopLettersByAttempts(t *testing.T) {
	aggs := []model.LetterAggregate{
		{Letter: "B", Attempts: 3},
		{Letter: "A", Attempts: 3},
		{Letter: "C", Attempts: 1},
	}
	top := TopLettersByAttempts(aggs, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 letters, got %d", len(top))
	}
	if top[0] != "A" || top[1] != "B" {
		t.Fatalf("unexpected order: %v", top)
	}
	if TopLettersByAttempts(aggs, 0) != nil {
		t.Fatalf("expected nil for n=0")
	}
}

func TestSelectWeakLetters(t *testing.T) {
	aggs := []model.LetterAggregate{
		{Letter: "A", Attempts: 2, Completions: 2, Lifts: 2},
		{Letter: "B", Attempts: 4, Completions: 1},
		{Letter: "C", Attempts: 2, Completions: 2, Lifts: 8},
	}
	weak := SelectWeakLetters(aggs, 2)
	if len(weak) != 2 || weak[0] != "B" || weak[1] != "C" {
		t.Fatalf("unexpected weak letters: %v", weak)
	}
	if all := SelectWeakLetters(aggs, 0); len(all) != 3 {
		t.Fatalf("expected all letters, got %v", all)
	}
	if SelectWeakLetters(nil, 3) != nil {
		t.Fatalf("expected nil for no aggregates")
	}
}

func TestWeakestFirstCopies(t *testing.T) {
	aggs := []model.LetterAggregate{
		{Letter: "A", Attempts: 1, Completions: 1},
		{Letter: "B", Attempts: 2},
	}
	sorted := WeakestFirst(aggs)
	if sorted[0].Letter != "B" || sorted[1].Letter != "A" {
		t.Fatalf("unexpected order: %v", sorted)
	}
	if aggs[0].Letter != "A" {
		t.Fatalf("input must not be reordered")
	}
}
