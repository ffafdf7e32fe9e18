// Package tui provides the Bubble Tea letter tracing interface.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuitrace/internal/alphabet"
	"github.com/verte-zerg/tuitrace/internal/audio"
	"github.com/verte-zerg/tuitrace/internal/difficulty"
	"github.com/verte-zerg/tuitrace/internal/generator"
	"github.com/verte-zerg/tuitrace/internal/model"
	"github.com/verte-zerg/tuitrace/internal/scoreboard"
	"github.com/verte-zerg/tuitrace/internal/store"
	"github.com/verte-zerg/tuitrace/internal/strokes"
	"github.com/verte-zerg/tuitrace/internal/tracing"
)

// Clip names played by the tracing screen.
const (
	ClipCheckpoint = "checkpoint"
	ClipComplete   = "complete"
)

// AdvanceDelay is how long a completed letter stays on screen.
const AdvanceDelay = 1500 * time.Millisecond

const (
	canvasTop      = 2
	canvasReserved = 5
	progressWidth  = 20
)

// SessionRecorder stores finished trace sessions.
type SessionRecorder interface {
	InsertSession(ctx context.Context, session model.TraceSession) (int64, error)
}

// Player plays one sound clip at a time.
type Player interface {
	Play(clip string) error
	StopCurrent()
}

// Submitter sends completed letters to a scoreboard.
type Submitter interface {
	Submit(ctx context.Context, entry scoreboard.Entry) error
}

// Deps are the collaborators of the tracing screen. Sessions, Player and
// Scoreboard are optional.
type Deps struct {
	Registry   *strokes.Registry
	Generator  *generator.Generator
	Traced     *store.TracedLetters
	Sessions   SessionRecorder
	Player     Player
	Scoreboard Submitter
	Logger     *slog.Logger
}

type advanceMsg struct {
	seq int
}

type scoreboardMsg struct {
	letter string
	err    error
}

// Model implements the Bubble Tea tracing UI.
type Model struct {
	config model.Config
	deps   Deps
	level  difficulty.Level
	now    func() time.Time

	width  int
	height int

	letters   []stripLetter
	letter    string
	engine    *tracing.Engine
	inkStarts []int
	startedAt time.Time

	completedPending bool
	checkpointHits   int
	advanceSeq       int

	lastDuration time.Duration
	hasLast      bool

	help     help.Model
	showHelp bool
}

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	levelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	barFullStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	barRestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
)

// NewModel constructs a tracing TUI model. When cfg.Letter is set it is
// traced first, otherwise the generator picks the first letter.
func NewModel(cfg model.Config, deps Deps) *Model {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Registry == nil {
		deps.Registry = strokes.Default()
	}
	m := &Model{
		config: cfg,
		deps:   deps,
		level:  cfg.Difficulty,
		now:    time.Now,
		help:   help.New(),
	}
	m.buildStrip()
	var first string
	if cfg.Letter != "" {
		first = alphabet.Normalize(cfg.Letter)
		if !deps.Generator.Seek(first) {
			m.deps.Logger.Debug("letter is not in the picker", slog.String("letter", first))
		}
	} else {
		first = deps.Generator.Next()
	}
	m.load(first)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case advanceMsg:
		if msg.seq == m.advanceSeq && m.engine.IsComplete() {
			m.load(m.deps.Generator.Next())
		}
		return m, nil
	case scoreboardMsg:
		if msg.err != nil {
			m.deps.Logger.Warn("failed to submit scoreboard entry",
				slog.String("letter", msg.letter),
				slog.String("error", msg.err.Error()))
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.abandon()
		if m.deps.Player != nil {
			m.deps.Player.StopCurrent()
		}
		return m, tea.Quit
	case key.Matches(msg, keys.Next):
		m.abandon()
		m.load(m.deps.Generator.Next())
	case key.Matches(msg, keys.Prev):
		m.abandon()
		m.load(m.deps.Generator.Prev())
	case key.Matches(msg, keys.Reset):
		m.abandon()
		m.restart()
	case key.Matches(msg, keys.Difficulty):
		m.abandon()
		m.level = difficulty.Next(m.level)
		m.load(m.letter)
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.engine.Enabled() || m.engine.IsComplete() {
		return nil
	}
	layout := m.layout()
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !layout.contains(msg.X, msg.Y) {
			return nil
		}
		if !layout.reachable(m.engine.ToleranceRadius()) {
			return nil
		}
		if m.startedAt.IsZero() {
			m.startedAt = m.now()
		}
		m.inkStarts = append(m.inkStarts, len(m.engine.DrawnPoints()))
		m.engine.PointerDown(layout.toPixel(msg.X, msg.Y))
	case tea.MouseActionMotion:
		m.engine.PointerMove(layout.toPixel(msg.X, msg.Y))
	case tea.MouseActionRelease:
		m.engine.PointerUp()
	}
	if m.completedPending {
		m.completedPending = false
		return m.finishLetter()
	}
	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	layout := m.layout()
	lines := []string{
		center(m.renderHeader(), m.width),
		center(m.renderMessage(), m.width),
	}
	lines = append(lines, renderCanvas(layout, m.engine, m.inkStarts)...)
	lines = append(lines, "")
	strip := renderStrip(m.letters, m.letter, m.width-4, alphabet.IsRTL(m.config.Lang))
	for _, line := range strings.Split(strip, "\n") {
		lines = append(lines, center(line, m.width))
	}
	lines = append(lines, center(m.renderFooter(), m.width))
	lines = append(lines, center(m.help.View(keys), m.width))
	return strings.Join(lines, "\n")
}

func (m *Model) layout() canvasLayout {
	return newCanvasLayout(m.width, m.height, canvasTop, canvasReserved, m.engine.CanvasSize())
}

// tooSmall reports whether the canvas cells are too coarse for the current
// tolerance, leaving some checkpoints out of reach.
func (m *Model) tooSmall() bool {
	return m.width > 0 && m.height > 0 && !m.layout().reachable(m.engine.ToleranceRadius())
}

func (m *Model) renderHeader() string {
	progress := m.engine.Progress()
	filled := progress * progressWidth / 100
	bar := barFullStyle.Render(strings.Repeat("█", filled)) +
		barRestStyle.Render(strings.Repeat("░", progressWidth-filled))
	return fmt.Sprintf("%s  %s  %s %3d%%",
		titleStyle.Render(m.letter),
		levelStyle.Render(string(m.level)),
		bar,
		progress)
}

func (m *Model) renderMessage() string {
	switch {
	case m.letter == "":
		return warnStyle.Render("No letters to trace")
	case !m.engine.Enabled():
		return warnStyle.Render(fmt.Sprintf("%s cannot be traced yet, press n for the next letter", m.letter))
	case m.engine.IsComplete():
		return messageStyle.Render("Well done!")
	case m.tooSmall():
		return warnStyle.Render(fmt.Sprintf("Terminal too small for %s: need %d canvas rows, have %d",
			m.level, rowsNeeded(m.engine.CanvasSize(), m.engine.ToleranceRadius()), m.layout().rows))
	case !m.engine.Config().ShowNextCheckpoint && m.checkpointHits == 0:
		return footerStyle.Render("Start at the green end of the first line")
	default:
		return ""
	}
}

func (m *Model) renderFooter() string {
	traced, total := 0, 0
	for _, l := range m.letters {
		if !l.traceable {
			continue
		}
		total++
		if l.traced {
			traced++
		}
	}
	segments := []string{fmt.Sprintf("Traced %d/%d", traced, total)}
	if m.hasLast {
		segments = append(segments, fmt.Sprintf("Last %.1fs", m.lastDuration.Seconds()))
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

// restart clears the ink and starts the current letter over.
func (m *Model) restart() {
	m.inkStarts = nil
	m.startedAt = time.Time{}
	m.completedPending = false
	m.checkpointHits = 0
	m.advanceSeq++
	if m.engine != nil {
		m.engine.Reset()
	}
}

// load switches to letter id and starts a fresh session for it.
func (m *Model) load(id string) {
	m.letter = id
	m.restart()

	var letter *strokes.LetterStrokeData
	if data, ok := m.deps.Registry.Lookup(id); ok {
		letter = &data
	}
	m.engine = tracing.New(tracing.Options{
		Letter:              letter,
		Difficulty:          m.level,
		CanvasSize:          m.config.CanvasSize,
		OnCheckpointReached: m.onCheckpoint,
		OnLetterComplete:    func() { m.completedPending = true },
	})
	if letter != nil {
		m.play(m.config.Lang + "/" + id)
	}
}

func (m *Model) onCheckpoint(_, _ int) {
	m.checkpointHits++
	m.play(ClipCheckpoint)
}

func (m *Model) finishLetter() tea.Cmd {
	ended := m.now()
	duration := ended.Sub(m.startedAt)
	m.record(true, ended)
	m.lastDuration = duration
	m.hasLast = true

	ctx := context.Background()
	if m.deps.Traced != nil && m.deps.Traced.Mark(ctx, m.config.Lang, m.letter) {
		m.buildStrip()
	}
	m.play(ClipComplete)

	cmds := []tea.Cmd{advanceAfter(m.advanceSeq)}
	if m.deps.Scoreboard != nil {
		cmds = append(cmds, submitCmd(m.deps.Scoreboard, scoreboard.Entry{
			Child:       m.config.Child,
			Letter:      m.letter,
			Lang:        m.config.Lang,
			Difficulty:  string(m.level),
			DurationMs:  duration.Milliseconds(),
			CompletedAt: ended.UTC(),
		}))
	}
	return tea.Batch(cmds...)
}

// abandon records an unfinished attempt when the child drew something.
func (m *Model) abandon() {
	if m.engine == nil || !m.engine.Enabled() || m.engine.IsComplete() || m.engine.Samples() == 0 {
		return
	}
	m.record(false, m.now())
}

func (m *Model) record(completed bool, ended time.Time) {
	if m.deps.Sessions == nil {
		return
	}
	started := m.startedAt
	if started.IsZero() {
		started = ended
	}
	session := model.TraceSession{
		StartedAt:  started,
		EndedAt:    ended,
		Letter:     m.letter,
		Lang:       m.config.Lang,
		Difficulty: m.level,
		Completed:  completed,
		Samples:    m.engine.Samples(),
		Lifts:      m.engine.Lifts(),
		DurationMs: ended.Sub(started).Milliseconds(),
	}
	if _, err := m.deps.Sessions.InsertSession(context.Background(), session); err != nil {
		m.deps.Logger.Warn("failed to save session",
			slog.String("letter", m.letter),
			slog.String("error", err.Error()))
	}
}

func (m *Model) play(clip string) {
	if m.deps.Player == nil || !m.config.Sound {
		return
	}
	if err := m.deps.Player.Play(clip); err != nil {
		level := slog.LevelWarn
		if errors.Is(err, audio.ErrClipNotFound) {
			level = slog.LevelDebug
		}
		m.deps.Logger.Log(context.Background(), level, "failed to play clip",
			slog.String("clip", clip),
			slog.String("error", err.Error()))
	}
}

func (m *Model) buildStrip() {
	ids, err := alphabet.Letters(m.config.Lang)
	if err != nil {
		ids = m.deps.Generator.Letters()
	}
	letters := make([]stripLetter, 0, len(ids))
	for _, id := range ids {
		letters = append(letters, stripLetter{
			id:        id,
			traced:    m.deps.Traced != nil && m.deps.Traced.Has(m.config.Lang, id),
			traceable: m.deps.Registry.Has(id),
		})
	}
	m.letters = letters
}

func advanceAfter(seq int) tea.Cmd {
	return tea.Tick(AdvanceDelay, func(time.Time) tea.Msg {
		return advanceMsg{seq: seq}
	})
}

func submitCmd(sub Submitter, entry scoreboard.Entry) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), scoreboard.DefaultTimeout)
		defer cancel()
		return scoreboardMsg{letter: entry.Letter, err: sub.Submit(ctx, entry)}
	}
}

func center(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
