package render

import (
	"fmt"
	"io"

	"git.lost.host/meutraa/clash/internal/score"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	boardHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")).Padding(0, 1)
	boardRank   = lipgloss.NewStyle().Width(6).Align(lipgloss.Right).Foreground(lipgloss.Color("#9ca3af"))
	boardName   = lipgloss.NewStyle().Width(10).PaddingLeft(2)
	boardScore  = lipgloss.NewStyle().Width(10).Align(lipgloss.Right).Bold(true)
)

// WriteLeaderboard prints the board, best first.
func WriteLeaderboard(w io.Writer, entries []score.Entry) error {
	if _, err := fmt.Fprintln(w, boardHeader.Render("Leaderboard")); nil != err {
		return err
	}
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "  no rounds played yet")
		return err
	}
	for i, e := range entries {
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			boardRank.Render(humanize.Ordinal(i+1)),
			boardName.Render(e.Name),
			boardScore.Render(humanize.Comma(int64(e.Score))),
		)
		if _, err := fmt.Fprintln(w, line); nil != err {
			return err
		}
	}
	return nil
}
