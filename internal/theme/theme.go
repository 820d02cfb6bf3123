package theme

import "git.lost.host/meutraa/clash/internal/game"

type Theme interface {
	RenderNote(lane int) string
	RenderHitField(lane int) string
	RenderKey(lane int, label string) string
	RenderFeedback(grade game.Judgement, label string, alpha float64) string
	RenderScore(player int, text string) string
	RenderStatus(text string) string
}
