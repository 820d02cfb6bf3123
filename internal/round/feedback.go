package round

import (
	"git.lost.host/meutraa/clash/internal/game"
	"git.lost.host/meutraa/clash/internal/judge"
)

type feedbackQueue []judge.Feedback

func (q *feedbackQueue) Push(f judge.Feedback) {
	*q = append(*q, f)
}

// prune drops events older than the feedback lifetime.
func (q *feedbackQueue) prune(now float64) {
	kept := (*q)[:0]
	for _, f := range *q {
		if now-f.At <= game.FeedbackLifetime {
			kept = append(kept, f)
		}
	}
	*q = kept
}
