// Package judge matches lane inputs to notes and scores the result.
package judge

import (
	"math"

	"git.lost.host/meutraa/clash/internal/game"
	"github.com/charmbracelet/log"
)

type Kind int

const (
	KindHit Kind = iota
	KindMiss
)

// Feedback is a transient event for the renderer, one per resolved note
// or stray input.
type Feedback struct {
	Kind  Kind
	Grade game.Judgement
	Lane  int
	Label string
	At    float64 // Round time the event happened
}

// Cue is a short tone request for the audio backend.
type Cue struct {
	Frequency float64 // Hz
	Duration  float64 // seconds
}

var cues = map[game.Judgement]Cue{
	game.Perfect: {Frequency: 1200, Duration: 0.06},
	game.Good:    {Frequency: 800, Duration: 0.06},
	game.Miss:    {Frequency: 220, Duration: 0.04},
}

func CueFor(j game.Judgement) Cue {
	return cues[j]
}

type FeedbackSink interface {
	Push(f Feedback)
}

type CueSink interface {
	Cue(c Cue)
}

// Engine judges inputs against a round. Either sink may be nil.
type Engine struct {
	Feedback FeedbackSink
	Cues     CueSink
}

// Judge resolves a press on lane at round time now. The nearest
// unconsumed note in the lane is consumed when it is inside the judgement
// window, otherwise the press is a miss and no note is consumed. Lanes
// outside the keymap are ignored and report false.
func (e *Engine) Judge(r *game.Round, lane int, now float64) (game.Judgement, bool) {
	if !game.ValidLane(lane) {
		return game.Miss, false
	}
	note, delta := closest(r.Notes, lane, now)
	grade, ok := game.Grade(delta)
	if note == nil || !ok {
		log.Debug("stray input", "lane", lane, "now", now, "delta", delta)
		e.resolve(r, lane, game.Miss, now)
		return game.Miss, true
	}
	note.Consumed = true
	e.resolve(r, lane, grade, now)
	return grade, true
}

// Sweep misses every unconsumed note that scrolled more than the judgement
// window past the hit line, returning how many it resolved. Consumed notes
// are skipped, so repeated sweeps at the same instant change nothing.
func (e *Engine) Sweep(r *game.Round, now float64) int {
	missed := 0
	for i := range r.Notes {
		note := &r.Notes[i]
		if note.Time-now >= -game.JudgementWindow {
			// Sorted, nothing later can be late
			break
		}
		if note.Consumed {
			continue
		}
		note.Consumed = true
		e.resolve(r, note.Lane, game.Miss, now)
		missed++
	}
	return missed
}

func (e *Engine) resolve(r *game.Round, lane int, j game.Judgement, now float64) {
	r.Players[game.PlayerOf(lane)].Apply(j)

	if e.Feedback != nil {
		f := Feedback{Kind: KindHit, Grade: j, Lane: lane, Label: j.String(), At: now}
		if !j.Hit() {
			f.Kind = KindMiss
			f.Label = "MISS"
		}
		e.Feedback.Push(f)
	}
	if e.Cues != nil {
		e.Cues.Cue(CueFor(j))
	}
}

// closest returns the unconsumed note in lane nearest to now and the
// absolute distance to it.
func closest(notes []game.Note, lane int, now float64) (*game.Note, float64) {
	var best *game.Note
	distance := math.Inf(1)
	for i := range notes {
		note := &notes[i]
		if note.Consumed || note.Lane != lane {
			continue
		}
		d := math.Abs(note.Time - now)
		if d < distance {
			distance = d
			best = note
		} else if best != nil {
			// already found the closest, later notes only get further
			break
		}
	}
	return best, distance
}
