package theme

import (
	"git.lost.host/meutraa/clash/internal/game"
	"github.com/charmbracelet/lipgloss"
)

const (
	noteSym  = "⬤"
	fieldSym = "─"

	// Feedback below this alpha is drawn faint
	fadeAlpha = 0.5
)

var (
	sideColors = [game.Players]lipgloss.Color{
		lipgloss.Color("#22d3ee"), // left, cyan
		lipgloss.Color("#ff6b6b"), // right, coral
	}
	gradeColors = map[game.Judgement]lipgloss.Color{
		game.Perfect: lipgloss.Color("#facc15"),
		game.Good:    lipgloss.Color("#4ade80"),
		game.Miss:    lipgloss.Color("#9ca3af"),
	}
	fieldColor  = lipgloss.Color("#4b5563")
	statusColor = lipgloss.Color("#e5e7eb")
)

type DefaultTheme struct {
	notes, keys, scores [game.Players]lipgloss.Style
	field, status       lipgloss.Style
}

func NewDefaultTheme() *DefaultTheme {
	t := &DefaultTheme{
		field:  lipgloss.NewStyle().Foreground(fieldColor),
		status: lipgloss.NewStyle().Foreground(statusColor).Italic(true),
	}
	for side, c := range sideColors {
		t.notes[side] = lipgloss.NewStyle().Foreground(c)
		t.keys[side] = lipgloss.NewStyle().Foreground(c).Bold(true)
		t.scores[side] = lipgloss.NewStyle().Foreground(c).Bold(true).Padding(0, 1)
	}
	return t
}

func (t *DefaultTheme) RenderNote(lane int) string {
	return t.notes[game.PlayerOf(lane)].Render(noteSym)
}

func (t *DefaultTheme) RenderHitField(lane int) string {
	return t.field.Render(fieldSym)
}

func (t *DefaultTheme) RenderKey(lane int, label string) string {
	return t.keys[game.PlayerOf(lane)].Render(label)
}

func (t *DefaultTheme) RenderFeedback(grade game.Judgement, label string, alpha float64) string {
	s := lipgloss.NewStyle().Foreground(gradeColors[grade])
	if alpha < fadeAlpha {
		s = s.Faint(true)
	} else if grade == game.Perfect {
		s = s.Bold(true)
	}
	return s.Render(label)
}

func (t *DefaultTheme) RenderScore(player int, text string) string {
	if player < 0 || player >= game.Players {
		return t.status.Render(text)
	}
	return t.scores[player].Render(text)
}

func (t *DefaultTheme) RenderStatus(text string) string {
	return t.status.Render(text)
}
