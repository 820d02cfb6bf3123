package round

import (
	"time"

	"git.lost.host/meutraa/clash/internal/game"
	"github.com/hako/durafmt"
)

const TieLabel = "Tie!"

var playerLabels = [game.Players]string{"Player 1", "Player 2"}

type Outcome struct {
	Reason       Phase
	Winner       int // -1 on a tie
	Label        string
	WinningScore int
	Players      [game.Players]game.PlayerState
}

func newOutcome(reason Phase, r *game.Round) Outcome {
	winner, best := r.Winner()
	o := Outcome{
		Reason:       reason,
		Winner:       winner,
		Label:        TieLabel,
		WinningScore: best,
		Players:      r.Players,
	}
	if winner >= 0 {
		o.Label = playerLabels[winner]
	}
	return o
}

func (o Outcome) Tie() bool {
	return o.Winner < 0
}

// Headline is the short announcement, "Player 1 Wins!" or "Tie!".
func (o Outcome) Headline() string {
	if o.Tie() {
		return TieLabel
	}
	return o.Label + " Wins!"
}

func (o Outcome) Status() string {
	if o.Reason == Cleared {
		return "Finished — " + o.Label
	}
	return "Round Over — " + o.Headline()
}

func formatSeconds(s float64) string {
	return durafmt.Parse(time.Duration(s * float64(time.Second))).LimitFirstN(2).String()
}
