// Package round drives a play session: it starts the clock, applies inputs
// and per-frame miss sweeps through the judge, detects the end of the round
// and hands the result to the leaderboard.
package round

import (
	"math/rand"
	"time"

	"git.lost.host/meutraa/clash/internal/beatmap"
	"git.lost.host/meutraa/clash/internal/game"
	"git.lost.host/meutraa/clash/internal/judge"
	"git.lost.host/meutraa/clash/internal/timing"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

type Phase int

const (
	Idle Phase = iota
	Running
	TimedOut
	Cleared
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case TimedOut:
		return "timed out"
	case Cleared:
		return "cleared"
	}
	return "idle"
}

// Terminal reports whether the round ended on its own.
func (p Phase) Terminal() bool {
	return p == TimedOut || p == Cleared
}

// ErrNoClock is returned by Start when the track cannot provide timing and
// no wall clock was configured.
var ErrNoClock = errors.New("no timing source available")

// Transport is the audio backend as seen by the round.
type Transport interface {
	timing.AudioClock
	// ScheduleStart begins playback at the given clock instant
	ScheduleStart(at float64) bool
	// Stop halts playback, stopping twice is a no-op
	Stop()
	// Duration of the track in seconds
	Duration() float64
}

// Gateway receives the winning score of every finished round.
type Gateway interface {
	Save(name string, score int) error
}

type Notifier interface {
	RoundOver(o Outcome)
}

type Options struct {
	Track    Transport        // nil when no track is loaded
	Clock    func() time.Time // wall clock, required without a track
	Scores   Gateway          // optional
	Notifier Notifier         // optional
	Cues     judge.CueSink    // optional
	Rand     beatmap.Rand     // defaults to a time seeded source
}

// Machine owns the round. It is not safe for concurrent use; inputs and
// ticks must be delivered from one goroutine, inputs first.
type Machine struct {
	opts   Options
	round  game.Round
	engine judge.Engine
	fx     feedbackQueue

	phase       Phase
	source      timing.Source
	now         float64
	roundLength float64
	outcome     *Outcome
	status      string
}

func NewMachine(opts Options) *Machine {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	m := &Machine{opts: opts, status: "Ready"}
	m.engine = judge.Engine{Feedback: &m.fx, Cues: opts.Cues}
	return m
}

func (m *Machine) Phase() Phase {
	return m.phase
}

// Round returns a snapshot of the round state. The note slice is shared.
func (m *Machine) Round() game.Round {
	return m.round
}

// Outcome of the last finished round, nil while none finished.
func (m *Machine) Outcome() *Outcome {
	return m.outcome
}

func (m *Machine) Status() string {
	return m.status
}

// SetTrack swaps the audio track. A running round is stopped first.
func (m *Machine) SetTrack(t Transport) {
	m.Stop()
	m.opts.Track = t
	if t != nil {
		m.status = "Track loaded — set BPM and generate beatmap."
	}
}

// Generate builds a new beatmap for the loaded track and replaces the
// current one.
func (m *Machine) Generate(p beatmap.Params) []game.Note {
	p.HasTrack = m.opts.Track != nil
	if p.HasTrack {
		p.TrackDuration = m.opts.Track.Duration()
	}
	notes := beatmap.Generate(p, m.opts.Rand)
	m.roundLength = p.RoundLength
	m.Load(notes)
	counts := beatmap.Counts(notes)
	log.Info("generated beatmap", "tempo", p.Tempo, "density", p.Density,
		"offset", p.OffsetMs, "end", p.End(), "left", counts[0], "right", counts[1])
	return notes
}

// Load replaces the beatmap wholesale and returns the machine to Idle.
// The notes are copied and sorted by time.
func (m *Machine) Load(notes []game.Note) {
	if m.phase == Running {
		log.Warn("beatmap replaced during a round, stopping it")
	}
	m.halt()
	m.round.Notes = append([]game.Note(nil), notes...)
	beatmap.Sort(m.round.Notes)
	m.round.ResetPlayers()
	m.fx = m.fx[:0]
	m.phase = Idle
	m.status = "Beatmap ready — press PLAY (or SPACE) to start."
}

// SetRoundLength sets the requested round length in seconds used by the
// next Start, 0 meaning the whole track.
func (m *Machine) SetRoundLength(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	m.roundLength = seconds
}

// OnBeginRequested starts a round unless one is already running.
func (m *Machine) OnBeginRequested() error {
	if m.phase == Running {
		return nil
	}
	return m.Start()
}

// Start resolves the end time, zeroes both players and starts the clock.
// Starting after a finished round replays the same beatmap.
func (m *Machine) Start() error {
	if m.phase == Running {
		return nil
	}
	if m.opts.Clock == nil && m.opts.Track == nil {
		return ErrNoClock
	}

	m.halt()
	m.round.Rewind()
	m.round.ResetPlayers()
	m.fx = m.fx[:0]
	m.outcome = nil
	m.source = nil

	if track := m.opts.Track; track != nil {
		startAt := track.CurrentClockTime() + game.LeadIn
		if track.ScheduleStart(startAt) {
			m.source = timing.NewAudio(track, startAt)
			m.round.EndTime = track.Duration()
			if m.roundLength > 0 && m.roundLength < m.round.EndTime {
				m.round.EndTime = m.roundLength
			}
		} else {
			log.Warn("track refused to start, using the wall clock")
		}
	}
	if m.source == nil {
		if m.opts.Clock == nil {
			m.phase = Idle
			m.status = "No timing source"
			return ErrNoClock
		}
		m.source = timing.NewWallClock(m.opts.Clock)
		m.round.EndTime = game.DefaultRoundLength
		if m.roundLength > 0 {
			m.round.EndTime = m.roundLength
		}
	}

	m.now = m.source.Now()
	m.phase = Running
	m.status = "Playing... (round ends at " + formatSeconds(m.round.EndTime) + ")"
	log.Info("round started", "end", m.round.EndTime, "notes", len(m.round.Notes))
	return nil
}

// OnInput judges a lane press. It reports false without touching any state
// when no round is running, no beatmap is loaded or the lane is unknown.
func (m *Machine) OnInput(lane int) (game.Judgement, bool) {
	if m.phase != Running || len(m.round.Notes) == 0 {
		return game.Miss, false
	}
	m.now = m.source.Now()
	return m.engine.Judge(&m.round, lane, m.now)
}

// Tick advances one frame and reports whether another frame should be
// scheduled. Inputs for the frame must be applied before calling it.
func (m *Machine) Tick() bool {
	if m.phase != Running {
		return false
	}
	m.now = m.source.Now()

	if m.now >= m.round.EndTime {
		m.finish(TimedOut)
		return false
	}
	m.engine.Sweep(&m.round, m.now)
	if m.round.Remaining() == 0 {
		m.finish(Cleared)
		return false
	}
	return true
}

// Stop abandons a running round without recording a score.
func (m *Machine) Stop() {
	wasRunning := m.phase == Running
	m.halt()
	if wasRunning {
		m.phase = Idle
		m.status = "Stopped"
		log.Info("round stopped")
	}
}

// Reset returns to Idle with cleared scores and combos. Nothing is saved.
func (m *Machine) Reset() {
	m.halt()
	m.round.ResetPlayers()
	m.fx = m.fx[:0]
	m.phase = Idle
	m.status = "Ready — generate map and press PLAY"
}

func (m *Machine) finish(reason Phase) {
	m.phase = reason
	o := newOutcome(reason, &m.round)
	m.outcome = &o

	if m.opts.Scores != nil {
		if err := m.opts.Scores.Save(o.Label, o.WinningScore); nil != err {
			log.Error("unable to save score", "err", err)
		}
	}
	m.halt()
	m.status = o.Status()
	log.Info("round over", "reason", reason, "winner", o.Label, "score", o.WinningScore)

	if m.opts.Notifier != nil {
		m.opts.Notifier.RoundOver(o)
	}
}

// halt stops playback, safe to call in any phase.
func (m *Machine) halt() {
	if m.opts.Track != nil {
		m.opts.Track.Stop()
	}
}
