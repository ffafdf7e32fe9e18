package generator

import (
	"math/rand"
	"testing"

	"github.com/verte-zerg/tuitrace/internal/model"
)

func TestSequentialCyclesAndSteps(t *testing.T) {
	g := NewWithSource([]string{"A", "B", "C"}, model.OrderSequential, rand.NewSource(1))
	if g.Current() != "" {
		t.Fatalf("expected no current letter before first pick")
	}
	var got []string
	for i := 0; i < 4; i++ {
		got = append(got, g.Next())
	}
	if got[0] != "A" || got[1] != "B" || got[2] != "C" || got[3] != "A" {
		t.Fatalf("unexpected sequence: %v", got)
	}
	if prev := g.Prev(); prev != "C" {
		t.Fatalf("expected previous letter C, got %s", prev)
	}
	if next := g.Next(); next != "A" {
		t.Fatalf("expected to replay A, got %s", next)
	}
}

func TestSeek(t *testing.T) {
	g := NewWithSource([]string{"A", "B", "C"}, model.OrderSequential, rand.NewSource(1))
	if !g.Seek("B") {
		t.Fatalf("expected seek to succeed")
	}
	if g.Next() != "C" {
		t.Fatalf("expected sequence to continue after seeked letter")
	}
	if g.Seek("Z") {
		t.Fatalf("expected seek to unknown letter to fail")
	}
	if g.Current() != "C" {
		t.Fatalf("failed seek must not move, got %s", g.Current())
	}
}

func TestRandomAvoidsImmediateRepeat(t *testing.T) {
	g := NewWithSource([]string{"A", "B"}, model.OrderRandom, rand.NewSource(42))
	prev := g.Next()
	for i := 0; i < 50; i++ {
		cur := g.Next()
		if cur == prev {
			t.Fatalf("letter %s repeated at pick %d", cur, i)
		}
		prev = cur
	}
}

func TestWeightedFavorsFocus(t *testing.T) {
	letters := []string{"A", "B", "C", "D"}
	g := NewWithSource(letters, model.OrderWeak, rand.NewSource(7))
	g.SetFocus([]string{"D"}, 20)
	counts := map[string]int{}
	for i := 0; i < 400; i++ {
		counts[g.Next()]++
	}
	for _, id := range []string{"A", "B", "C"} {
		if counts["D"] <= counts[id] {
			t.Fatalf("expected focus letter to be picked most, got %v", counts)
		}
	}
}

func TestEmptyAndSingle(t *testing.T) {
	if got := New(nil, model.OrderRandom).Next(); got != "" {
		t.Fatalf("expected empty pick, got %q", got)
	}
	g := New([]string{"א"}, model.OrderWeak)
	if g.Next() != "א" || g.Next() != "א" {
		t.Fatalf("expected single letter to repeat")
	}
}
