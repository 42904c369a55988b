package tui

import (
	"strings"

	"github.com/jsamuelsen/mental-detox/internal/app"
	"github.com/jsamuelsen/mental-detox/internal/domain"
)

// minCardWidth keeps the card readable on narrow terminals.
const minCardWidth = 30

// RenderCard renders rec as a bordered card no wider than width. A width of
// zero or less leaves wrapping to the terminal. Blank quote and reference
// are skipped; a missing video or tip shows its placeholder.
func RenderCard(rec *domain.Record, width int) string {
	if rec == nil {
		return ""
	}

	sections := []string{issueStyle.Render(rec.Issue)}

	if rec.Quote != "" {
		sections = append(sections, quoteStyle.Render("“"+rec.Quote+"”"))
	}

	if rec.Reference != "" {
		sections = append(sections, faintStyle.Render("- "+rec.Reference))
	}

	sections = append(sections, renderVideo(rec), renderTip(rec))

	style := cardStyle
	if width > 0 {
		style = style.Width(max(width-cardStyle.GetHorizontalBorderSize(), minCardWidth))
	}

	return style.Render(strings.Join(sections, "\n\n"))
}

func renderVideo(rec *domain.Record) string {
	url, ok := rec.VideoURL().Get()
	if !ok {
		return labelStyle.Render("Video") + "\n" + faintStyle.Render(app.MsgNoVideo)
	}

	label := "Video"
	if rec.VideoTitle != "" {
		label += ": " + rec.VideoTitle
	}

	return labelStyle.Render(label) + "\n" + linkStyle.Render(url)
}

func renderTip(rec *domain.Record) string {
	if rec.Tip == "" {
		return labelStyle.Render("Tip") + "\n" + faintStyle.Render(app.MsgNoTip)
	}

	return labelStyle.Render("Tip") + "\n" + rec.Tip
}
