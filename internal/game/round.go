package game

// Round is the state of one play session. The round state machine owns it
// and hands it to the judge by pointer.
type Round struct {
	Notes   []Note // Sorted by Time for the whole round
	Players [Players]PlayerState
	EndTime float64 // Resolved once at start, seconds from the round start
}

// Remaining counts the notes that have not been hit or missed.
func (r Round) Remaining() int {
	n := 0
	for i := range r.Notes {
		if !r.Notes[i].Consumed {
			n++
		}
	}
	return n
}

// ResetPlayers zeroes both players' scores, combos and statistics.
func (r *Round) ResetPlayers() {
	r.Players = [Players]PlayerState{}
}

// Rewind marks every note unconsumed so the same beatmap can be replayed.
func (r *Round) Rewind() {
	for i := range r.Notes {
		r.Notes[i].Consumed = false
	}
}

// Winner returns the winning player's index, or -1 on a tie, together with
// the highest score.
func (r *Round) Winner() (int, int) {
	a, b := r.Players[0].Score, r.Players[1].Score
	switch {
	case a > b:
		return 0, a
	case b > a:
		return 1, b
	}
	return -1, a
}
