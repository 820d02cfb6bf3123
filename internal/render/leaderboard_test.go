package render

import (
	"strings"
	"testing"

	"git.lost.host/meutraa/clash/internal/score"
)

func TestWriteLeaderboard(t *testing.T) {
	var b strings.Builder
	err := WriteLeaderboard(&b, []score.Entry{{Name: "Player 2", Score: 4200}, {Name: "Tie", Score: 950}})
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %q", lines)
	}
	for i, want := range [][]string{{"1st", "Player 2", "4,200"}, {"2nd", "Tie", "950"}} {
		for _, w := range want {
			if !strings.Contains(lines[i+1], w) {
				t.Errorf("line %d = %q, missing %q", i+1, lines[i+1], w)
			}
		}
	}

	b.Reset()
	if err := WriteLeaderboard(&b, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "no rounds played yet") {
		t.Errorf("empty board = %q", b.String())
	}
}
