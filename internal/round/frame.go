package round

import (
	"git.lost.host/meutraa/clash/internal/game"
	"git.lost.host/meutraa/clash/internal/judge"
)

// Geometry describes the playfield the renderer draws into.
type Geometry struct {
	HitLineY  float64
	Height    float64
	NoteSpeed float64 // Units per second
	Margin    float64 // Notes this far outside the field are still reported
}

func DefaultGeometry(height float64) Geometry {
	return Geometry{
		HitLineY:  height - 120,
		Height:    height,
		NoteSpeed: game.NoteSpeed,
		Margin:    40,
	}
}

type NotePosition struct {
	Lane int
	Time float64
	Y    float64
}

type FeedbackView struct {
	judge.Feedback
	Age   float64
	Alpha float64 // 1 when new, fading to 0
	Rise  float64 // Upward drift from the hit line
}

// Frame is everything a renderer needs for one tick.
type Frame struct {
	Now       float64
	Phase     Phase
	EndTime   float64
	Status    string
	Notes     []NotePosition
	Feedback  []FeedbackView
	Players   [game.Players]game.PlayerState
	Remaining int
}

// Frame reports the visible notes and live feedback at the current round
// time. Once the round is over the time is frozen at its last reading.
func (m *Machine) Frame(g Geometry) Frame {
	now := m.now
	if m.phase == Running {
		now = m.source.Now()
	}
	f := Frame{
		Now:       now,
		Phase:     m.phase,
		EndTime:   m.round.EndTime,
		Status:    m.status,
		Players:   m.round.Players,
		Remaining: m.round.Remaining(),
	}

	for _, note := range m.round.Notes {
		if note.Consumed {
			continue
		}
		y := g.HitLineY - (note.Time-now)*g.NoteSpeed
		if y <= -g.Margin {
			// Sorted, everything after is further up
			break
		}
		if y < g.Height+g.Margin {
			f.Notes = append(f.Notes, NotePosition{Lane: note.Lane, Time: note.Time, Y: y})
		}
	}

	m.fx.prune(now)
	for _, fx := range m.fx {
		age := now - fx.At
		alpha := 1 - age*1.6
		if alpha < 0 {
			alpha = 0
		} else if alpha > 1 {
			alpha = 1
		}
		f.Feedback = append(f.Feedback, FeedbackView{Feedback: fx, Age: age, Alpha: alpha, Rise: age * 40})
	}
	return f
}
