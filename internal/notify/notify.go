// Package notify announces finished rounds outside the playfield.
package notify

import (
	"git.lost.host/meutraa/clash/internal/round"
	"github.com/charmbracelet/log"
	"github.com/gen2brain/beeep"
)

const Title = "Beat Clash"

// Message is the announcement for a finished round.
func Message(o round.Outcome) string {
	if o.Tie() {
		return "It's a Tie ✨🤝!"
	}
	return o.Label + " Wins 🎉🪄🎁!"
}

// Desktop shows a system notification. Failures are logged and otherwise
// ignored.
type Desktop struct {
	notify func(title, message, icon string) error
}

func NewDesktop() *Desktop {
	return &Desktop{notify: func(title, message, icon string) error {
		return beeep.Notify(title, message, icon)
	}}
}

func (d *Desktop) RoundOver(o round.Outcome) {
	if err := d.notify(Title, Message(o), ""); nil != err {
		log.Warn("unable to show notification", "err", err)
	}
}

type Log struct{}

func (Log) RoundOver(o round.Outcome) {
	log.Info(Message(o), "reason", o.Reason, "score", o.WinningScore,
		"p1", o.Players[0].Score, "p2", o.Players[1].Score)
}

// Multi fans an outcome out to several notifiers in order.
type Multi []round.Notifier

func (m Multi) RoundOver(o round.Outcome) {
	for _, n := range m {
		n.RoundOver(o)
	}
}
