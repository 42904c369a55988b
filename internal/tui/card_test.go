package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen/mental-detox/internal/app"
	"github.com/jsamuelsen/mental-detox/internal/domain"
)

func TestRenderCard(t *testing.T) {
	tests := []struct {
		name    string
		record  domain.Record
		want    []string
		notWant []string
	}{
		{
			name: "full record",
			record: domain.Record{
				Issue:      "Anxiety",
				Quote:      "This too shall pass.",
				Reference:  "Persian adage",
				VideoTitle: "Box breathing",
				VideoLink:  "https://youtu.be/abc123",
				Tip:        "Breathe slowly.",
			},
			want: []string{
				"Anxiety", "This too shall pass.", "Persian adage",
				"Box breathing", "https://www.youtube.com/watch?v=abc123", "Breathe slowly.",
			},
			notWant: []string{app.MsgNoVideo, app.MsgNoTip},
		},
		{
			name:    "unplayable video and no tip",
			record:  domain.Record{Issue: "Stress", Quote: "Slow down.", VideoTitle: "Walk", VideoLink: "https://example.com/notyoutube"},
			want:    []string{"Stress", "Slow down.", app.MsgNoVideo, app.MsgNoTip},
			notWant: []string{"example.com"},
		},
		{
			name:    "reference without quote",
			record:  domain.Record{Issue: "Anxiety", Reference: "Dan Millman", Tip: "Breathe."},
			want:    []string{"Anxiety", "Dan Millman", "Breathe.", app.MsgNoVideo},
			notWant: []string{"“", app.MsgNoTip},
		},
		{
			name:    "issue only",
			record:  domain.Record{Issue: "Grief"},
			want:    []string{"Grief", app.MsgNoVideo, app.MsgNoTip},
			notWant: []string{"“"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderCard(&tt.record, 0)

			for _, s := range tt.want {
				assert.Contains(t, out, s)
			}

			for _, s := range tt.notWant {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRenderCard_Nil(t *testing.T) {
	assert.Empty(t, RenderCard(nil, 80))
}
