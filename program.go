package main

import (
	"math/rand"
	"time"

	"git.lost.host/meutraa/clash/internal/audio"
	"git.lost.host/meutraa/clash/internal/beatmap"
	"git.lost.host/meutraa/clash/internal/config"
	"git.lost.host/meutraa/clash/internal/input"
	"git.lost.host/meutraa/clash/internal/notify"
	"git.lost.host/meutraa/clash/internal/render"
	"git.lost.host/meutraa/clash/internal/round"
	"git.lost.host/meutraa/clash/internal/score"
	"git.lost.host/meutraa/clash/internal/theme"
	"github.com/charmbracelet/log"
)

const keyBuffer = 128

type Program struct {
	Config   *config.Config
	Machine  *round.Machine
	Renderer render.Renderer

	keymap  *input.Keymap
	params  beatmap.Params
	layout  render.Layout
	speaker *audio.Speaker
	track   *audio.Track
	quit    bool
}

func NewProgram(c *config.Config, scorer score.Scorer) (*Program, error) {
	keymap, err := input.NewKeymap(c.Keys)
	if nil != err {
		return nil, err
	}

	p := &Program{
		Config: c,
		keymap: keymap,
		params: c.Settings().Params(),
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := round.Options{
		Clock:  time.Now,
		Scores: scorer,
		Rand:   rand.New(rand.NewSource(seed)),
	}

	notifiers := notify.Multi{notify.Log{}}
	if c.Notify {
		notifiers = append(notifiers, notify.NewDesktop())
	}
	opts.Notifier = notifiers

	// Without a device the round runs silently on the wall clock
	if p.speaker, err = audio.NewSpeaker(audio.DefaultSampleRate); nil != err {
		log.Warn("no audio output", "err", err)
	} else {
		opts.Cues = p.speaker
		if c.Track != "" {
			if p.track, err = p.speaker.Open(c.Track); nil != err {
				p.speaker.Clear()
				return nil, err
			}
			opts.Track = p.track
		}
	}

	p.Machine = round.NewMachine(opts)
	p.Renderer = render.NewDefaultRenderer(theme.NewDefaultTheme(), keymap.Label)
	log.Info("program ready", "seed", seed, "track", c.Track, "tempo", p.params.Tempo, "density", p.params.Density)
	return p, nil
}

func (p *Program) Run() error {
	reader, err := input.Open(p.keymap, keyBuffer)
	if nil != err {
		return err
	}
	defer func() {
		if err := reader.Close(); nil != err {
			log.Error("unable to close keyboard", "err", err)
		}
	}()

	if err := p.Renderer.Init(); nil != err {
		return err
	}
	defer func() {
		// Restore the terminal state
		if err := p.Renderer.Deinit(); nil != err {
			log.Error("unable to restore terminal", "err", err)
		}
	}()

	p.Machine.Generate(p.params)
	p.Renderer.RenderLoop(p.Config.FramePeriod, func(time.Duration) bool {
		return p.Frame(reader.Drain())
	})
	return nil
}

// Frame applies the inputs gathered since the last frame, advances the
// round and draws it. It returns false once the player quits.
func (p *Program) Frame(events []input.Event) bool {
	p.Update(events)
	if p.quit {
		return false
	}
	p.Machine.Tick()

	columns, rows := p.Renderer.Size()
	if columns != p.layout.Columns || rows != p.layout.Rows {
		p.layout = render.NewLayout(columns, rows)
	}
	p.Renderer.Draw(p.Machine.Frame(p.layout.Geometry), p.layout)
	return true
}

func (p *Program) Update(events []input.Event) {
	for _, ev := range events {
		switch ev.Action {
		case input.Quit:
			p.Machine.Stop()
			p.quit = true
			return
		case input.Begin:
			if err := p.Machine.OnBeginRequested(); nil != err {
				log.Error("unable to start round", "err", err)
			}
		case input.Reset:
			p.Machine.Reset()
		case input.Regenerate:
			p.Machine.Generate(p.params)
		case input.Press:
			p.Machine.OnInput(ev.Lane)
		}
	}
}

func (p *Program) Close() {
	if p.track != nil {
		if err := p.track.Close(); nil != err {
			log.Error("unable to close track", "err", err)
		}
	}
	if p.speaker != nil {
		p.speaker.Clear()
	}
}
