// Package beatmap generates randomized note sequences from a tempo and a
// density.
package beatmap

import (
	"math"
	"sort"

	"git.lost.host/meutraa/clash/internal/game"
)

// Rand is the randomness the generator draws from. *math/rand.Rand
// satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

type Params struct {
	Tempo         float64 // Beats per minute, clamped to at least 1
	Density       float64 // Probability of a note per side per beat, 0..1
	OffsetMs      float64 // Delay before the first beat, milliseconds
	RoundLength   float64 // Seconds, <= 0 means the whole track
	TrackDuration float64 // Seconds, ignored unless HasTrack
	HasTrack      bool
	Fallback      float64 // Probability of a single note on a beat where both sides were empty
}

func DefaultParams() Params {
	return Params{
		Tempo:    120,
		Density:  0.6,
		Fallback: game.FallbackProbability,
	}
}

// Step returns the seconds per beat.
func (p Params) Step() float64 {
	return 60 / math.Max(1, p.Tempo)
}

// End returns the effective end of the beatmap in seconds.
func (p Params) End() float64 {
	duration := game.DefaultRoundLength
	if p.HasTrack {
		duration = p.TrackDuration
	}
	if p.RoundLength > 0 {
		return math.Min(p.RoundLength, duration)
	}
	return duration
}

// Start returns the offset in seconds. The first beat is one step after it.
func (p Params) Start() float64 {
	return math.Max(0, p.OffsetMs/1000)
}

// Generate walks the beat instants between Start()+Step() and
// End()-TrailingGuard and rolls notes for both sides at each one. The
// result is sorted by time.
func Generate(p Params, rnd Rand) []game.Note {
	density := clamp01(p.Density)
	fallback := clamp01(p.Fallback)
	step := p.Step()
	end := p.End() - game.TrailingGuard

	notes := []game.Note{}
	for i := 1; ; i++ {
		// Multiplying avoids accumulating float error over long tracks
		t := p.Start() + float64(i)*step
		if t >= end {
			break
		}
		added := false
		for side := 0; side < game.Players; side++ {
			if rnd.Float64() < density {
				notes = append(notes, game.Note{Time: t, Lane: randomLane(rnd, side)})
				added = true
			}
		}
		if !added && rnd.Float64() < fallback {
			side := 0
			if rnd.Float64() >= 0.5 {
				side = 1
			}
			notes = append(notes, game.Note{Time: t, Lane: randomLane(rnd, side)})
		}
	}

	Sort(notes)
	return notes
}

// Sort orders notes by time, keeping the left-then-right order of notes
// on the same beat.
func Sort(notes []game.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Time < notes[j].Time
	})
}

// Counts returns how many notes each player has to play.
func Counts(notes []game.Note) [game.Players]int {
	var counts [game.Players]int
	for i := range notes {
		counts[notes[i].Player()]++
	}
	return counts
}

func randomLane(rnd Rand, side int) int {
	return game.SideLane(side, rnd.Intn(game.LanesPerPlayer))
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
