// Package audio is the playback backend: it decodes the track, keeps a
// sample clock running on the speaker, schedules the track against that
// clock and plays hit cues.
package audio

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"git.lost.host/meutraa/clash/internal/judge"
	"github.com/charmbracelet/log"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const (
	DefaultSampleRate = beep.SampleRate(44100)
	cueGain           = 0.12
	cueFloor          = 0.0001
)

// Speaker owns the output device. The clock counts every sample mixed since
// Init, so it only moves while the device is pulling audio.
type Speaker struct {
	rate    beep.SampleRate
	clock   *sampleClock
	limiter *rate.Limiter
	play    func(s ...beep.Streamer)
}

var initOnce sync.Once

// NewSpeaker initializes the output device at the given sample rate and
// starts the clock.
func NewSpeaker(sr beep.SampleRate) (*Speaker, error) {
	var err error
	initOnce.Do(func() {
		bufferSize := sr.N(time.Second / 60)
		log.Info("initializing speaker", "rate", sr, "buffer", bufferSize)
		err = speaker.Init(sr, bufferSize)
	})
	if nil != err {
		return nil, errors.Wrap(err, "unable to initialize speaker")
	}
	s := newSpeaker(sr, speaker.Play)
	speaker.Play(s.clock)
	return s, nil
}

func newSpeaker(sr beep.SampleRate, play func(s ...beep.Streamer)) *Speaker {
	return &Speaker{
		rate:    sr,
		clock:   &sampleClock{rate: sr},
		limiter: rate.NewLimiter(rate.Every(25*time.Millisecond), 4),
		play:    play,
	}
}

// CurrentClockTime returns seconds of audio mixed since the speaker
// started.
func (s *Speaker) CurrentClockTime() float64 {
	return s.clock.seconds()
}

// Cue plays a short decaying sine. Bursts, such as a sweep missing many
// notes in one frame, are thinned out rather than summed into clipping.
func (s *Speaker) Cue(c judge.Cue) {
	if !s.limiter.Allow() {
		log.Debug("cue dropped", "frequency", c.Frequency)
		return
	}
	s.play(tone(s.rate, c.Frequency, c.Duration))
}

// Clear stops everything, including the clock.
func (s *Speaker) Clear() {
	speaker.Clear()
}

type sampleClock struct {
	rate    beep.SampleRate
	samples int64
}

func (c *sampleClock) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{}
	}
	atomic.AddInt64(&c.samples, int64(len(samples)))
	return len(samples), true
}

func (c *sampleClock) Err() error {
	return nil
}

func (c *sampleClock) seconds() float64 {
	return float64(atomic.LoadInt64(&c.samples)) / float64(c.rate)
}

// tone is a sine at freq Hz whose gain ramps exponentially from cueGain to
// cueFloor over duration seconds.
func tone(sr beep.SampleRate, freq, duration float64) beep.Streamer {
	n := sr.N(time.Duration(duration * float64(time.Second)))
	i := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if i >= n {
			return 0, false
		}
		k := 0
		for ; k < len(samples) && i < n; k++ {
			gain := cueGain * math.Pow(cueFloor/cueGain, float64(i)/float64(n))
			v := gain * math.Sin(2*math.Pi*freq*float64(i)/float64(sr))
			samples[k] = [2]float64{v, v}
			i++
		}
		return k, true
	})
}
