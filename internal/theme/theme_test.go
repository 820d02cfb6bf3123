package theme

import (
	"strings"
	"testing"

	"git.lost.host/meutraa/clash/internal/game"
)

func TestRenderKeepsText(t *testing.T) {
	var th Theme = NewDefaultTheme()
	for lane := 0; lane < game.Lanes; lane++ {
		if s := th.RenderNote(lane); !strings.Contains(s, noteSym) {
			t.Errorf("note %d = %q", lane, s)
		}
		if s := th.RenderKey(lane, "J"); !strings.Contains(s, "J") {
			t.Errorf("key %d = %q", lane, s)
		}
	}
	if s := th.RenderFeedback(game.Perfect, "Perfect", 1); !strings.Contains(s, "Perfect") {
		t.Errorf("feedback = %q", s)
	}
	if s := th.RenderFeedback(game.Miss, "MISS", 0.1); !strings.Contains(s, "MISS") {
		t.Errorf("faded feedback = %q", s)
	}
	if s := th.RenderScore(1, "1,200"); !strings.Contains(s, "1,200") {
		t.Errorf("score = %q", s)
	}
	if s := th.RenderScore(5, "?"); !strings.Contains(s, "?") {
		t.Errorf("unknown player score = %q", s)
	}
}

func TestSideColors(t *testing.T) {
	if sideColors[0] == sideColors[1] {
		t.Error("both sides share a colour")
	}
	for _, g := range []game.Judgement{game.Miss, game.Good, game.Perfect} {
		if _, ok := gradeColors[g]; !ok {
			t.Errorf("no colour for %v", g)
		}
	}
}
