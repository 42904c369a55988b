package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen/mental-detox/internal/app"
)

// View implements tea.Model.
func (m *Model) View() string {
	var body string

	switch m.state {
	case issuesState:
		body = m.issuesC.View()
	case cardState:
		body = m.viewCard()
	case favoritesState:
		body = m.viewFavorites()
	}

	return paddingStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, m.viewStatus()))
}

func (m *Model) viewCard() string {
	lines := []string{titleStyle.Render(appTitle + " · " + m.selected), ""}

	switch {
	case m.record != nil:
		x, _ := paddingStyle.GetFrameSize()
		lines = append(lines, RenderCard(m.record, m.width-x))
	case !m.loading && m.notice == "":
		lines = append(lines, faintStyle.Render(app.MsgNoData))
	}

	lines = append(lines, "", m.helpC.View(m.keymap))

	return strings.Join(lines, "\n")
}

func (m *Model) viewFavorites() string {
	if len(m.favoritesC.Items()) > 0 {
		return m.favoritesC.View()
	}

	return strings.Join([]string{
		titleStyle.Render("Favorites"),
		"",
		faintStyle.Render(app.MsgNoFavorites),
		"",
		m.helpC.View(m.keymap),
	}, "\n")
}

func (m *Model) viewStatus() string {
	timer := "Reflection " + m.timer.String()

	switch {
	case m.timer.Done():
		timer = timerDoneStyle.Render(timer)
	case m.timer.Running():
		timer = timerStyle.Render(timer)
	default:
		timer = faintStyle.Render(timer + " (paused)")
	}

	lines := []string{"", timer}

	switch {
	case m.loading:
		lines = append(lines, m.spinnerC.View()+" Loading...")
	case m.notice != "":
		lines = append(lines, noticeStyle.Render(m.notice))
	}

	return strings.Join(lines, "\n")
}
