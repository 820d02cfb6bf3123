package game

import (
	"math"
	"testing"
)

func TestApplyFloorsScoreAtZero(t *testing.T) {
	p := PlayerState{Score: 3, Combo: 7}
	p.Apply(Miss)
	if p.Score != 0 {
		t.Errorf("score after miss = %d, want 0", p.Score)
	}
	if p.Combo != 0 {
		t.Errorf("combo after miss = %d, want 0", p.Combo)
	}
	if p.Misses != 1 {
		t.Errorf("misses = %d, want 1", p.Misses)
	}
}

func TestApplyHitsBuildCombo(t *testing.T) {
	var p PlayerState
	for _, j := range []Judgement{Perfect, Good, Perfect, Miss, Good} {
		p.Apply(j)
	}
	if p.Score != 100+50+100-5+50 {
		t.Errorf("score = %d, want %d", p.Score, 295)
	}
	if p.Combo != 1 {
		t.Errorf("combo = %d, want 1", p.Combo)
	}
	if p.MaxCombo != 3 {
		t.Errorf("max combo = %d, want 3", p.MaxCombo)
	}
	if p.Perfects != 2 || p.Goods != 2 || p.Misses != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/2/1", p.Perfects, p.Goods, p.Misses)
	}
}

func TestApplySaturatesAtMaxInt(t *testing.T) {
	p := PlayerState{Score: math.MaxInt - 10}
	p.Apply(Perfect)
	if p.Score != math.MaxInt {
		t.Errorf("score = %d, want MaxInt", p.Score)
	}
}

func TestGrade(t *testing.T) {
	tests := []struct {
		delta float64
		want  Judgement
		ok    bool
	}{
		{0, Perfect, true},
		{0.07, Perfect, true},
		{-0.07, Perfect, true},
		{0.0701, Good, true},
		{0.18, Good, true},
		{-0.18, Good, true},
		{0.1801, Miss, false},
		{3, Miss, false},
	}
	for _, test := range tests {
		got, ok := Grade(test.delta)
		if got != test.want || ok != test.ok {
			t.Errorf("Grade(%v) = %v, %v; want %v, %v", test.delta, got, ok, test.want, test.ok)
		}
	}
}

func TestPlayerOf(t *testing.T) {
	for lane := 0; lane < Lanes; lane++ {
		want := 0
		if lane >= LanesPerPlayer {
			want = 1
		}
		if got := PlayerOf(lane); got != want {
			t.Errorf("PlayerOf(%d) = %d, want %d", lane, got, want)
		}
	}
	if ValidLane(-1) || ValidLane(Lanes) {
		t.Error("lanes outside [0, Lanes) must be invalid")
	}
}

func TestWinner(t *testing.T) {
	r := Round{}
	r.Players[0].Score = 100
	r.Players[1].Score = 100
	if w, s := r.Winner(); w != -1 || s != 100 {
		t.Errorf("tie winner = %d, %d; want -1, 100", w, s)
	}
	r.Players[1].Score = 150
	if w, s := r.Winner(); w != 1 || s != 150 {
		t.Errorf("winner = %d, %d; want 1, 150", w, s)
	}
}

func TestRemainingOnRoundValue(t *testing.T) {
	round := func() Round {
		return Round{Notes: []Note{{Time: 1}, {Time: 2, Consumed: true}, {Time: 3}}}
	}
	if n := round().Remaining(); n != 2 {
		t.Errorf("remaining = %d, want 2", n)
	}
}
