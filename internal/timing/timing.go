// Package timing provides the round clock: seconds elapsed since the
// round's logical start, read either from the audio playback clock or from
// the process's monotonic clock when no track is loaded.
package timing

import "time"

// Source reports seconds since the round start. Readings never decrease
// within a round.
type Source interface {
	Now() float64
}

// AudioClock is the part of the audio backend the timing source reads.
type AudioClock interface {
	CurrentClockTime() float64
}

// Audio derives round time from the playback clock. StartAt is the clock
// instant the track was scheduled to begin, so readings are negative during
// the lead-in.
type Audio struct {
	clock   AudioClock
	startAt float64
	last    monotonic
}

func NewAudio(clock AudioClock, startAt float64) *Audio {
	return &Audio{clock: clock, startAt: startAt}
}

func (a *Audio) Now() float64 {
	return a.last.observe(a.clock.CurrentClockTime() - a.startAt)
}

func (a *Audio) StartAt() float64 {
	return a.startAt
}

// WallClock derives round time from a monotonic time.Time captured at
// round start.
type WallClock struct {
	now   func() time.Time
	start time.Time
	last  monotonic
}

// NewWallClock captures the start instant from now, which defaults to
// time.Now.
func NewWallClock(now func() time.Time) *WallClock {
	if now == nil {
		now = time.Now
	}
	return &WallClock{now: now, start: now()}
}

func (w *WallClock) Now() float64 {
	return w.last.observe(w.now().Sub(w.start).Seconds())
}

type monotonic struct {
	value float64
	set   bool
}

func (m *monotonic) observe(v float64) float64 {
	if m.set && v < m.value {
		return m.value
	}
	m.value, m.set = v, true
	return v
}
