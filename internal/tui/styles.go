package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.AdaptiveColor{Light: "#2A7F62", Dark: "#7FD1AE"}
	subtleColor = lipgloss.AdaptiveColor{Light: "#7A7A7A", Dark: "#8A8A8A"}

	paddingStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1D1D1D")).
			Background(accentColor).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(1, 2)

	issueStyle     = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	quoteStyle     = lipgloss.NewStyle().Italic(true)
	labelStyle     = lipgloss.NewStyle().Bold(true)
	faintStyle     = lipgloss.NewStyle().Foreground(subtleColor)
	linkStyle      = lipgloss.NewStyle().Underline(true).Foreground(accentColor)
	noticeStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#A15C00", Dark: "#F2B45A"})
	timerStyle     = lipgloss.NewStyle().Bold(true)
	timerDoneStyle = timerStyle.Foreground(accentColor)
)
