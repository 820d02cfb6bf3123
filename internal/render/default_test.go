package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git.lost.host/meutraa/clash/internal/game"
	"git.lost.host/meutraa/clash/internal/judge"
	"git.lost.host/meutraa/clash/internal/round"
	"git.lost.host/meutraa/clash/internal/theme"
)

func TestDraw(t *testing.T) {
	out, err := os.Create(filepath.Join(t.TempDir(), "frame"))
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()

	r := NewDefaultRenderer(theme.NewDefaultTheme(), func(lane int) string { return string("ASDFJKL;"[lane]) })
	r.out = out

	l := NewLayout(80, 24)
	f := round.Frame{
		Phase:   round.Running,
		Now:     1,
		EndTime: 30,
		Status:  "Playing",
		Notes:   []round.NotePosition{{Lane: 2, Time: 1.5, Y: l.Geometry.HitLineY - 210}},
		Feedback: []round.FeedbackView{{
			Feedback: judge.Feedback{Kind: judge.KindHit, Grade: game.Perfect, Lane: 5, Label: "Perfect", At: 0.9},
			Age:      0.1, Alpha: 0.84, Rise: 4,
		}},
	}
	f.Players[0].Score = 1500
	r.Draw(f, l)
	r.flush()

	b, err := os.ReadFile(out.Name())
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	for _, want := range []string{"P1 1,500", "P2 0", "Playing", "Perfect", "⬤", "\033[11;22H", ";"} {
		if !strings.Contains(s, want) {
			t.Errorf("frame is missing %q", want)
		}
	}
	if r.buffer.Len() != 0 {
		t.Error("flush must empty the buffer")
	}
}
