package statsui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuitrace/internal/difficulty"
	"github.com/verte-zerg/tuitrace/internal/model"
	"github.com/verte-zerg/tuitrace/internal/store"
	"github.com/verte-zerg/tuitrace/internal/strokes"
)

type fakeSource struct {
	sessions []model.SessionAggregate
	aggs     []model.LetterAggregate
	levels   map[difficulty.Level]int
	err      error
	lastCfg  model.StatsConfig
}

func (f *fakeSource) ListSessions(_ context.Context, cfg model.StatsConfig) ([]model.SessionAggregate, error) {
	f.lastCfg = cfg
	return f.sessions, f.err
}

func (f *fakeSource) ListLetterAggregatesForSessions(_ context.Context, _ []int64) ([]model.LetterAggregate, error) {
	return f.aggs, nil
}

func (f *fakeSource) DifficultyCounts(_ context.Context, _ string) (map[difficulty.Level]int, error) {
	return f.levels, nil
}

type memKV struct {
	values map[string]string
}

func (m *memKV) Get(_ context.Context, key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", store.ErrNotFound
	}
	return v, nil
}

func (m *memKV) Put(_ context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

func newSource() *fakeSource {
	return &fakeSource{
		sessions: []model.SessionAggregate{
			{SessionID: 1, Letter: "א", Completed: true, DurationMs: 4000, Lifts: 1},
			{SessionID: 2, Letter: "ב", Completed: false, DurationMs: 9000, Lifts: 3},
			{SessionID: 3, Letter: "ב", Completed: true, DurationMs: 6000, Lifts: 2},
		},
		aggs: []model.LetterAggregate{
			{Letter: "א", Attempts: 1, Completions: 1, Lifts: 1, DurationMs: 4000},
			{Letter: "ב", Attempts: 2, Completions: 1, Lifts: 5, DurationMs: 15000},
		},
		levels: map[difficulty.Level]int{difficulty.Easy: 2},
	}
}

func sized(m *Model) *Model {
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func TestOverviewShowsSummaryCards(t *testing.T) {
	m := sized(NewModel(newSource(), nil, nil, model.StatsConfig{Lang: "he", CurveWindow: 2}))
	out := m.View()
	for _, want := range []string{"Overview", "Sessions", "67%", "Fastest", "4.0s", "easy", "Most practised: ב א"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view:\n%s", want, out)
		}
	}
}

func TestLetterRowsWeakestFirst(t *testing.T) {
	rows := buildLetterRows(newSource().aggs)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "ב" || rows[0][1] != "50%" || rows[0][3] != "2.5" || rows[0][4] != "7.5" {
		t.Fatalf("unexpected first row: %v", rows[0])
	}
}

func TestTracedGridMarksLetters(t *testing.T) {
	traced := store.LoadTracedLetters(context.Background(), &memKV{values: map[string]string{}}, nil)
	traced.Mark(context.Background(), "he", "א")
	m := sized(NewModel(newSource(), traced, strokes.Default(), model.StatsConfig{Lang: "he"}))
	grid := m.grid.render("he", 40)
	if !strings.Contains(grid, "he  1/22") {
		t.Fatalf("expected traced count in grid:\n%s", grid)
	}
	if cell := m.grid.cell("he", "א"); cell != tracedStyle.Render("א   ") || !strings.Contains(grid, cell) {
		t.Fatalf("expected traced style for א, got %q", cell)
	}
	if cell := m.grid.cell("he", "ב"); cell != untracedStyle.Render("ב   ") || !strings.Contains(grid, cell) {
		t.Fatalf("expected untraced style for ב, got %q", cell)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if !strings.Contains(m.View(), "he  1/22") {
		t.Fatalf("expected traced tab to show the grid:\n%s", m.View())
	}
}

func TestTracedGridStrikesMissingLetters(t *testing.T) {
	g := tracedGrid{registry: strokes.NewRegistry(nil)}
	if cell := g.cell("he", "א"); cell != missingStyle.Render("א   ") {
		t.Fatalf("expected missing style, got %q", cell)
	}
	if out := g.render("he", 8); strings.Count(out, "\n") != 11 {
		t.Fatalf("expected header plus 11 rows of 2 letters:\n%s", out)
	}
}

func TestTabNavigationWraps(t *testing.T) {
	m := sized(NewModel(newSource(), nil, nil, model.StatsConfig{}))
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.activeTab != tabTraced {
		t.Fatalf("expected wrap to last tab, got %d", m.activeTab)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.activeTab != tabLetters {
		t.Fatalf("expected letters tab, got %d", m.activeTab)
	}
	if !strings.Contains(m.View(), "Lifts/Try") {
		t.Fatalf("expected letter table in view")
	}
}

func TestFilterAppliesSettings(t *testing.T) {
	src := newSource()
	m := sized(NewModel(src, nil, nil, model.StatsConfig{CurveWindow: 5}))
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if !m.filter.active {
		t.Fatalf("expected filter mode")
	}
	m.filter.inputs[0].SetValue("HE")
	m.filter.inputs[2].SetValue("10")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.filter.active {
		t.Fatalf("expected filter applied, error: %s", m.filter.err)
	}
	if src.lastCfg.Lang != "he" || src.lastCfg.Last != 10 || src.lastCfg.CurveWindow != 5 {
		t.Fatalf("unexpected stats config: %+v", src.lastCfg)
	}
}

func TestFilterRejectsUnknownLanguage(t *testing.T) {
	m := sized(NewModel(newSource(), nil, nil, model.StatsConfig{CurveWindow: 1}))
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	m.filter.inputs[0].SetValue("xx")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.filter.active || m.filter.err == "" {
		t.Fatalf("expected filter error")
	}
}

func TestLoadErrorShownInFooter(t *testing.T) {
	src := newSource()
	src.err = errors.New("boom")
	m := sized(NewModel(src, nil, nil, model.StatsConfig{}))
	if !strings.Contains(m.View(), "boom") {
		t.Fatalf("expected error in view")
	}
}

func TestCurveWindowSteps(t *testing.T) {
	cases := []struct {
		in, next, prev int
	}{
		{1, 5, 1},
		{5, 10, 1},
		{7, 10, 5},
		{10, 15, 5},
	}
	for _, c := range cases {
		if got := nextCurveWindow(c.in); got != c.next {
			t.Fatalf("next(%d) = %d, want %d", c.in, got, c.next)
		}
		if got := prevCurveWindow(c.in); got != c.prev {
			t.Fatalf("prev(%d) = %d, want %d", c.in, got, c.prev)
		}
	}
}
