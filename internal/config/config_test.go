package config

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	c, err := Parse([]string{})
	if err != nil {
		t.Fatal(err)
	}
	if c.Command != CommandPlay {
		t.Errorf("command = %q, want %q", c.Command, CommandPlay)
	}
	s := c.Settings()
	if s != (Settings{Tempo: 120, Density: 0.6, OffsetMs: 0, RoundLength: 0}) {
		t.Errorf("settings = %+v", s)
	}
	if c.FramePeriod != 8*time.Millisecond || c.Keys != "asdfjkl;" || c.DBDriver != "sqlite3" {
		t.Errorf("config = %+v", c)
	}
}

func TestFlags(t *testing.T) {
	c, err := Parse([]string{"--tempo", "90", "-d", "0.25", "--offset", "150", "--length", "45",
		"--db-driver", "sqlite", "play", "--track", "song.ogg"})
	if err != nil {
		t.Fatal(err)
	}
	s := c.Settings()
	if s != (Settings{Tempo: 90, Density: 0.25, OffsetMs: 150, RoundLength: 45}) {
		t.Errorf("settings = %+v", s)
	}
	if c.Track != "song.ogg" || c.DBDriver != "sqlite" {
		t.Errorf("config = %+v", c)
	}
	p := s.Params()
	if p.Tempo != 90 || p.Density != 0.25 || p.OffsetMs != 150 || p.RoundLength != 45 || p.Fallback != 0.25 {
		t.Errorf("params = %+v", p)
	}
}

func TestLenientNumbers(t *testing.T) {
	tests := []struct {
		c    Config
		want Settings
	}{
		{Config{Tempo: "fast", Density: "lots", Offset: "soon", RoundLength: "long"}, Settings{120, 0.6, 0, 0}},
		{Config{Tempo: "0", Density: "0", Offset: "-20", RoundLength: "-1"}, Settings{120, 0, 0, 0}},
		{Config{Tempo: "-60", Density: "7", Offset: " 40 ", RoundLength: "12.5"}, Settings{120, 1, 40, 12.5}},
		{Config{Tempo: "NaN", Density: "Inf", Offset: "", RoundLength: "+Inf"}, Settings{120, 0.6, 0, 0}},
		{Config{Tempo: "1e2", Density: ".5", Offset: "0", RoundLength: "0"}, Settings{100, 0.5, 0, 0}},
	}
	for _, test := range tests {
		if got := test.c.Settings(); got != test.want {
			t.Errorf("%+v: settings = %+v, want %+v", test.c, got, test.want)
		}
	}
}

func TestCommands(t *testing.T) {
	for _, cmd := range []string{CommandScores, CommandReset} {
		c, err := Parse([]string{cmd})
		if err != nil {
			t.Fatal(err)
		}
		if c.Command != cmd {
			t.Errorf("command = %q, want %q", c.Command, cmd)
		}
	}
	if _, err := Parse([]string{"--db-driver", "postgres"}); err == nil {
		t.Error("unknown driver accepted")
	}
}
