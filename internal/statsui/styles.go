package statsui

import "github.com/charmbracelet/lipgloss"

const (
	colorBright = lipgloss.Color("#F0F0F0")
	colorMuted  = lipgloss.Color("#8C8C8C")
	colorDim    = lipgloss.Color("#6E6E6E")
	colorBorder = lipgloss.Color("#4A4A4A")
	colorAccent = lipgloss.Color("#C89A3A")
	colorError  = lipgloss.Color("#FF4D4F")
	colorDone   = lipgloss.Color("#52C41A")
)

var (
	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#B0B0B0")).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(colorBorder)
	activeTabStyle = tabStyle.
			Foreground(colorBright).
			Bold(true).
			BorderForeground(colorAccent)

	headerStyle = lipgloss.NewStyle().Foreground(colorDim)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError)

	cardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(colorBorder)
	cardTitleStyle = lipgloss.NewStyle().Foreground(colorMuted)
	cardValueStyle = lipgloss.NewStyle().Foreground(colorBright).Bold(true)

	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))

	tracedStyle   = lipgloss.NewStyle().Foreground(colorDone).Bold(true)
	untracedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	missingStyle  = lipgloss.NewStyle().Foreground(colorBorder).Strikethrough(true)
)
