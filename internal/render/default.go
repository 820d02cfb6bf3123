package render

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/clash/internal/game"
	"git.lost.host/meutraa/clash/internal/round"
	"git.lost.host/meutraa/clash/internal/theme"
	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"golang.org/x/term"
)

type DefaultRenderer struct {
	Theme  theme.Theme
	Labels func(lane int) string

	out          *os.File
	buffer       strings.Builder
	restoreState *term.State
}

func NewDefaultRenderer(th theme.Theme, labels func(lane int) string) *DefaultRenderer {
	return &DefaultRenderer{Theme: th, Labels: labels, out: os.Stdout}
}

func (r *DefaultRenderer) Init() error {
	state, err := term.MakeRaw(int(r.out.Fd()))
	if nil != err {
		return err
	}
	r.restoreState = state

	fmt.Fprintf(r.out, "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return nil
}

func (r *DefaultRenderer) Deinit() error {
	fmt.Fprintf(r.out, "%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	if r.restoreState == nil {
		return nil
	}
	return term.Restore(int(r.out.Fd()), r.restoreState)
}

func (r *DefaultRenderer) Size() (int, int) {
	columns, rows, err := term.GetSize(int(r.out.Fd()))
	if nil != err {
		return 80, 24
	}
	return columns, rows
}

// RenderLoop calls render once per period until it returns false.
func (r *DefaultRenderer) RenderLoop(period time.Duration, render func(elapsed time.Duration) bool) {
	start := time.Now()
	for cont := true; cont; {
		now := time.Now()
		deadline := now.Add(period)

		cont = render(now.Sub(start))
		r.flush()

		time.Sleep(time.Until(deadline))
	}
}

func (r *DefaultRenderer) Fill(row, column int, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) Draw(f round.Frame, l Layout) {
	r.buffer.WriteString("\033[H\033[2J")
	th := r.Theme

	for side := 0; side < game.Players; side++ {
		r.Fill(1, l.SideCentre(side)-6, th.RenderScore(side, ScoreLine(side, f.Players[side])))
		r.Fill(2, l.SideCentre(side)-6, th.RenderStatus(ComboLine(f.Players[side])))
	}
	r.Fill(1, l.Columns/2-4, th.RenderStatus(Clock(f)))

	hit := l.HitRow()
	for lane := 0; lane < game.Lanes; lane++ {
		col := l.Column(lane)
		r.Fill(hit, col-1, th.RenderHitField(lane)+th.RenderHitField(lane)+th.RenderHitField(lane))
		if r.Labels != nil {
			r.Fill(hit+1, col, th.RenderKey(lane, r.Labels(lane)))
		}
	}

	for _, n := range f.Notes {
		row := l.Row(n.Y)
		if l.InField(row) && row != hit+1 {
			r.Fill(row, l.Column(n.Lane), th.RenderNote(n.Lane))
		}
	}

	for _, fx := range f.Feedback {
		row := l.Row(l.Geometry.HitLineY-fx.Rise) - 1
		col := l.Column(fx.Lane) - len(fx.Label)/2
		if l.InField(row) {
			r.Fill(row, col, th.RenderFeedback(fx.Grade, fx.Label, fx.Alpha))
		}
	}

	r.Fill(l.Rows, 1, th.RenderStatus(f.Status))
}

func ScoreLine(player int, p game.PlayerState) string {
	return fmt.Sprintf("P%d %s", player+1, humanize.Comma(int64(p.Score)))
}

func ComboLine(p game.PlayerState) string {
	return fmt.Sprintf("combo %d  best %d", p.Combo, p.MaxCombo)
}

// Clock is the time left in a running round, blank otherwise.
func Clock(f round.Frame) string {
	if f.Phase != round.Running {
		return ""
	}
	left := f.EndTime - f.Now
	if left < 0 {
		left = 0
	}
	d := time.Duration(left * float64(time.Second)).Truncate(time.Second)
	if d == 0 {
		return "0 seconds"
	}
	return durafmt.Parse(d).LimitFirstN(2).String()
}

func (r *DefaultRenderer) flush() {
	r.out.WriteString(r.buffer.String())
	r.buffer.Reset()
}
