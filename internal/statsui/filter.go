package statsui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuitrace/internal/model"
)

const dateLayout = "2006-01-02"

type filterField int

const (
	fieldLang filterField = iota
	fieldSince
	fieldLast
	fieldWindow
)

var filterPrompts = [...]string{
	fieldLang:   "Lang: ",
	fieldSince:  "Since (YYYY-MM-DD): ",
	fieldLast:   "Last: ",
	fieldWindow: "Curve window: ",
}

// filterForm edits the stats filters in place of the tab body.
type filterForm struct {
	active bool
	inputs []textinput.Model
	focus  int
	err    string
}

func newFilterForm() filterForm {
	f := filterForm{inputs: make([]textinput.Model, len(filterPrompts))}
	for i, prompt := range filterPrompts {
		input := textinput.New()
		input.Prompt = prompt
		input.Cursor.SetMode(cursor.CursorBlink)
		f.inputs[i] = input
	}
	return f
}

// open fills the inputs from cfg and focuses the first one.
func (f *filterForm) open(cfg model.StatsConfig) tea.Cmd {
	f.active = true
	f.err = ""
	f.set(fieldLang, cfg.Lang)
	f.set(fieldSince, "")
	if cfg.Since != nil {
		f.set(fieldSince, cfg.Since.Format(dateLayout))
	}
	f.set(fieldLast, "")
	if cfg.Last > 0 {
		f.set(fieldLast, strconv.Itoa(cfg.Last))
	}
	f.set(fieldWindow, strconv.Itoa(cfg.CurveWindow))
	return f.focusOn(0)
}

func (f *filterForm) close() {
	f.active = false
	f.err = ""
}

func (f *filterForm) set(field filterField, value string) {
	f.inputs[field].SetValue(strings.TrimSpace(value))
}

func (f *filterForm) value(field filterField) string {
	return strings.TrimSpace(f.inputs[field].Value())
}

func (f *filterForm) focusOn(idx int) tea.Cmd {
	f.focus = (idx + len(f.inputs)) % len(f.inputs)
	var cmd tea.Cmd
	for i := range f.inputs {
		if i != f.focus {
			f.inputs[i].Blur()
			continue
		}
		cmd = f.inputs[i].Focus()
	}
	return cmd
}

func (f *filterForm) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *filterForm) setWidth(width int) {
	for i := range f.inputs {
		f.inputs[i].Width = max(10, width-len([]rune(f.inputs[i].Prompt))-2)
	}
}

// parse reads the inputs into a stats config. A blank field means no filter,
// and a blank window means one session.
func (f *filterForm) parse() (model.StatsConfig, error) {
	cfg := model.StatsConfig{Lang: strings.ToLower(f.value(fieldLang))}
	if v := f.value(fieldSince); v != "" {
		since, err := time.ParseInLocation(dateLayout, v, time.Local)
		if err != nil {
			return cfg, errors.New("invalid since date (expected YYYY-MM-DD)")
		}
		cfg.Since = &since
	}
	var err error
	if cfg.Last, err = optionalInt(f.value(fieldLast), 0); err != nil {
		return cfg, fmt.Errorf("invalid last value: %w", err)
	}
	if cfg.CurveWindow, err = optionalInt(f.value(fieldWindow), 1); err != nil {
		return cfg, fmt.Errorf("invalid curve window: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func optionalInt(s string, fallback int) (int, error) {
	if s == "" {
		return fallback, nil
	}
	return strconv.Atoi(s)
}

func (f *filterForm) view() string {
	lines := make([]string, 0, len(f.inputs)+2)
	lines = append(lines, "Settings (enter to apply, esc to cancel)")
	for _, input := range f.inputs {
		lines = append(lines, input.View())
	}
	if f.err != "" {
		lines = append(lines, errorStyle.Render(f.err))
	}
	return strings.Join(lines, "\n")
}

func filterSummary(cfg model.StatsConfig) string {
	lang, since, last := "any", "any", "all"
	if cfg.Lang != "" {
		lang = cfg.Lang
	}
	if cfg.Since != nil {
		since = cfg.Since.Format(dateLayout)
	}
	if cfg.Last > 0 {
		last = strconv.Itoa(cfg.Last)
	}
	return fmt.Sprintf("Settings: lang=%s  since=%s  last=%s  window=%d", lang, since, last, cfg.CurveWindow)
}
