package audio

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
)

var ErrUnsupported = errors.New("unsupported audio format")

// Track is a decoded song scheduled against the speaker clock.
type Track struct {
	Name string

	speaker *Speaker
	stream  beep.StreamSeekCloser
	format  beep.Format
	ctrl    *beep.Ctrl
}

// Open decodes an .mp3, .ogg or .wav file.
func (s *Speaker) Open(path string) (*Track, error) {
	f, err := os.Open(path)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}

	var stream beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, errors.Wrap(ErrUnsupported, path)
	}
	if nil != err {
		f.Close()
		return nil, errors.Wrapf(err, "unable to decode %s", path)
	}

	t := s.track(filepath.Base(path), stream, format)
	log.Info("loaded track", "name", t.Name, "duration", t.Duration(), "rate", format.SampleRate)
	return t, nil
}

func (s *Speaker) track(name string, stream beep.StreamSeekCloser, format beep.Format) *Track {
	return &Track{Name: name, speaker: s, stream: stream, format: format}
}

func (t *Track) CurrentClockTime() float64 {
	return t.speaker.CurrentClockTime()
}

func (t *Track) Duration() float64 {
	return t.format.SampleRate.D(t.stream.Len()).Seconds()
}

// ScheduleStart plays the track from the beginning once the speaker clock
// reaches at. Any previous playback is stopped.
func (t *Track) ScheduleStart(at float64) bool {
	t.Stop()
	delay := at - t.CurrentClockTime()
	if delay < 0 {
		delay = 0
	}

	speaker.Lock()
	err := t.stream.Seek(0)
	speaker.Unlock()
	if nil != err {
		log.Error("unable to rewind track", "name", t.Name, "err", err)
		return false
	}

	s := t.schedule(t.speaker.rate.N(time.Duration(delay * float64(time.Second))))
	t.speaker.play(s)
	log.Debug("track scheduled", "name", t.Name, "at", at, "delay", delay)
	return true
}

func (t *Track) schedule(delaySamples int) beep.Streamer {
	var s beep.Streamer = t.stream
	if t.format.SampleRate != t.speaker.rate {
		s = beep.Resample(4, t.format.SampleRate, t.speaker.rate, s)
	}
	t.ctrl = &beep.Ctrl{Streamer: s}
	return beep.Seq(beep.Silence(delaySamples), t.ctrl)
}

// Stop halts playback. Stopping a track that is not playing does nothing.
func (t *Track) Stop() {
	if t.ctrl == nil {
		return
	}
	speaker.Lock()
	t.ctrl.Streamer = nil
	t.ctrl.Paused = true
	speaker.Unlock()
	t.ctrl = nil
}

func (t *Track) Close() error {
	t.Stop()
	return t.stream.Close()
}
