package game

import "math"

type PlayerState struct {
	Score    int
	Combo    int
	MaxCombo int

	Perfects int
	Goods    int
	Misses   int
}

// Apply records a judgement against the player. Score arithmetic saturates
// at zero and at math.MaxInt.
func (p *PlayerState) Apply(j Judgement) {
	p.Score = addSaturating(p.Score, j.Points())
	switch j {
	case Perfect:
		p.Perfects++
	case Good:
		p.Goods++
	default:
		p.Misses++
		p.Combo = 0
		return
	}
	if p.Combo < math.MaxInt {
		p.Combo++
	}
	if p.Combo > p.MaxCombo {
		p.MaxCombo = p.Combo
	}
}

func addSaturating(a, delta int) int {
	if delta > 0 && a > math.MaxInt-delta {
		return math.MaxInt
	}
	if r := a + delta; r > 0 {
		return r
	}
	return 0
}
