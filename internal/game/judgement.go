package game

type Judgement int

const (
	Miss Judgement = iota
	Good
	Perfect
)

func (j Judgement) String() string {
	switch j {
	case Perfect:
		return "Perfect"
	case Good:
		return "Good"
	}
	return "Miss"
}

func (j Judgement) Hit() bool {
	return j != Miss
}

// Points is the signed score delta applied to the owning player.
func (j Judgement) Points() int {
	switch j {
	case Perfect:
		return PerfectPoints
	case Good:
		return GoodPoints
	}
	return -MissPenalty
}

// Grade classifies an absolute timing delta in seconds. The second return
// is false when the delta is outside the judgement window.
func Grade(delta float64) (Judgement, bool) {
	if delta < 0 {
		delta = -delta
	}
	switch {
	case delta <= PerfectWindow:
		return Perfect, true
	case delta <= JudgementWindow:
		return Good, true
	}
	return Miss, false
}
