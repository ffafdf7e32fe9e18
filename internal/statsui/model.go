// Package statsui provides the Bubble Tea progress interface.
package statsui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuitrace/internal/difficulty"
	"github.com/verte-zerg/tuitrace/internal/model"
	"github.com/verte-zerg/tuitrace/internal/stats"
	"github.com/verte-zerg/tuitrace/internal/store"
	"github.com/verte-zerg/tuitrace/internal/strokes"
)

const (
	tabOverview = iota
	tabLetters
	tabTraced
)

var tabTitles = []string{"Overview", "Letters", "Traced"}

const (
	fallbackWidth = 80
	navHelp       = "Nav: left/right  Scroll: up/down/pgup/pgdn  Window: -/=  Settings: /  Quit: q"
	filterHelp    = "tab/shift+tab: next field  enter: apply  esc: cancel"
)

// Source is the store subset the progress UI reads.
type Source interface {
	stats.Source
	DifficultyCounts(ctx context.Context, lang string) (map[difficulty.Level]int, error)
}

// Model implements the Bubble Tea progress UI.
type Model struct {
	source Source
	grid   tracedGrid
	cfg    model.StatsConfig

	report      stats.Report
	levelCounts map[difficulty.Level]int
	errMsg      string

	activeTab   int
	viewports   []viewport.Model
	letterTable table.Model
	filter      filterForm

	width  int
	height int
}

// NewModel constructs a progress UI model. traced and registry may be nil,
// in which case the traced grid shows every letter as untraced and
// traceable.
func NewModel(src Source, traced *store.TracedLetters, registry *strokes.Registry, cfg model.StatsConfig) *Model {
	m := &Model{
		source:      src,
		grid:        tracedGrid{traced: traced, registry: registry},
		cfg:         cfg,
		viewports:   make([]viewport.Model, len(tabTitles)),
		letterTable: newLetterTable(),
		filter:      newFilterForm(),
	}
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
	m.reload()
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
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		m.renderTabs()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || (!m.filter.active && msg.String() == "q") {
			return m, tea.Quit
		}
		if m.filter.active {
			return m, m.updateFilter(msg)
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		m.switchTab(-1)
		return tea.ClearScreen
	case "right", "l":
		m.switchTab(1)
		return tea.ClearScreen
	case "=":
		m.setCurveWindow(nextCurveWindow(m.cfg.CurveWindow))
	case "-":
		m.setCurveWindow(prevCurveWindow(m.cfg.CurveWindow))
	case "/":
		return m.filter.open(m.cfg)
	default:
		return m.scroll(msg)
	}
	return nil
}

// scroll forwards navigation keys to the table or the active viewport.
func (m *Model) scroll(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	toTop := key == "g" || key == "home"
	toBottom := key == "G" || key == "end"
	var cmd tea.Cmd
	if m.activeTab == tabLetters {
		switch {
		case toTop:
			m.letterTable.GotoTop()
		case toBottom:
			m.letterTable.GotoBottom()
		default:
			m.letterTable, cmd = m.letterTable.Update(msg)
		}
		return cmd
	}
	vp := &m.viewports[m.activeTab]
	switch {
	case toTop:
		vp.GotoTop()
	case toBottom:
		vp.GotoBottom()
	default:
		*vp, cmd = vp.Update(msg)
	}
	return cmd
}

func (m *Model) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.filter.close()
	case tea.KeyEnter:
		cfg, err := m.filter.parse()
		if err != nil {
			m.filter.err = err.Error()
			return nil
		}
		m.filter.close()
		m.cfg = cfg
		m.reload()
		m.resize()
	case tea.KeyTab:
		return m.filter.focusOn(m.filter.focus + 1)
	case tea.KeyShiftTab:
		return m.filter.focusOn(m.filter.focus - 1)
	default:
		return m.filter.updateInput(msg)
	}
	return nil
}

func (m *Model) setCurveWindow(n int) {
	m.cfg.CurveWindow = n
	m.reload()
	m.resize()
}

func (m *Model) switchTab(delta int) {
	m.activeTab = (m.activeTab + delta + len(tabTitles)) % len(tabTitles)
	if m.activeTab == tabLetters {
		m.letterTable.Focus()
	} else {
		m.letterTable.Blur()
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.heights()
	return strings.Join([]string{
		fitBlock(m.header(), m.width, headerHeight),
		fitBlock(m.body(), m.width, bodyHeight),
		fitBlock(m.footer(), m.width, footerHeight),
	}, "\n")
}

// heights splits the window into the tab bar plus filter line, the body, and
// a footer that grows by a line while a load error is shown.
func (m *Model) heights() (header, body, footer int) {
	header = lipgloss.Height(activeTabStyle.Render("X")) + 1
	footer = 1
	if !m.filter.active && m.errMsg != "" {
		footer++
	}
	return header, max(1, m.height-header-footer), footer
}

func (m *Model) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, body, _ := m.heights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = body
	}
	m.letterTable.SetWidth(m.width)
	m.letterTable.SetHeight(max(1, body-1))
	m.filter.setWidth(m.width)
}

func (m *Model) header() string {
	tabs := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		style := tabStyle
		if i == m.activeTab {
			style = activeTabStyle
		}
		tabs[i] = style.Render(title)
	}
	summary := headerStyle.Render(truncateLine(filterSummary(m.cfg), m.width))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n" + summary
}

func (m *Model) footer() string {
	if m.filter.active {
		return headerStyle.Render(filterHelp)
	}
	help := headerStyle.Render(navHelp)
	if m.errMsg != "" {
		return help + "\n" + errorStyle.Render(m.errMsg)
	}
	return help
}

func (m *Model) body() string {
	switch {
	case m.filter.active:
		return m.filter.view()
	case m.activeTab != tabLetters:
		return m.viewports[m.activeTab].View()
	case len(m.report.Sessions) == 0:
		return "No sessions found."
	case len(m.report.LetterAggsAll) == 0:
		return "No letter stats found."
	default:
		return tableMutedStyle.Render(m.letterTable.View())
	}
}

// reload rebuilds the report for the current filters. On failure the error
// goes to the footer and the tabs keep a placeholder.
func (m *Model) reload() {
	ctx := context.Background()
	report, err := stats.BuildReport(ctx, m.source, m.cfg)
	if err == nil {
		m.levelCounts, err = m.source.DifficultyCounts(ctx, m.cfg.Lang)
	}
	if err != nil {
		m.errMsg = err.Error()
		for i := range m.viewports {
			m.viewports[i].SetContent("Failed to load stats.")
		}
		return
	}
	m.errMsg = ""
	m.report = report
	m.letterTable.SetRows(buildLetterRows(report.LetterAggsAll))
	m.renderTabs()
}

func (m *Model) renderTabs() {
	if m.errMsg != "" {
		return
	}
	width := m.width
	if width <= 0 {
		width = fallbackWidth
	}
	m.viewports[tabOverview].SetContent(renderOverview(m.report, m.levelCounts, m.cfg.CurveWindow, width))
	m.viewports[tabTraced].SetContent(m.grid.render(m.cfg.Lang, width))
}
