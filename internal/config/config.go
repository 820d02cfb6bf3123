package config

import (
	"math"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/clash/internal/beatmap"
	"git.lost.host/meutraa/clash/internal/score"
	"github.com/joho/godotenv"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	CommandPlay   = "play"
	CommandScores = "scores"
	CommandReset  = "reset-scores"

	DefaultTempo   = 120.0
	DefaultDensity = 0.6
)

type Config struct {
	Command string

	// Gameplay numbers are kept as text and resolved leniently by Settings
	Tempo       string
	Density     string
	Offset      string
	RoundLength string

	Track       string
	Keys        string
	Seed        int64
	FramePeriod time.Duration
	Notify      bool

	DB       string
	DBDriver string

	LogFile  string
	LogLevel string
}

// Settings are the resolved gameplay numbers.
type Settings struct {
	Tempo       float64 // BPM, > 0
	Density     float64 // 0..1
	OffsetMs    float64 // >= 0
	RoundLength float64 // seconds, 0 is the whole track
}

func New(c *Config) *kingpin.Application {
	app := kingpin.New("clash", "Two player rhythm battle on one keyboard")
	app.Version("0.1.0")

	app.Flag("tempo", "Beats per minute").Default("120").Short('t').Envar("CLASH_TEMPO").StringVar(&c.Tempo)
	app.Flag("density", "Chance of a note per side on each beat, 0 to 1").Default("0.6").Short('d').Envar("CLASH_DENSITY").StringVar(&c.Density)
	app.Flag("offset", "Delay before the first beat in milliseconds").Default("0").Short('o').Envar("CLASH_OFFSET").StringVar(&c.Offset)
	app.Flag("length", "Round length in seconds, 0 plays the whole track").Default("0").Short('l').Envar("CLASH_LENGTH").StringVar(&c.RoundLength)
	app.Flag("keys", "Lane keys, left player first").Default("asdfjkl;").Short('k').Envar("CLASH_KEYS").StringVar(&c.Keys)
	app.Flag("seed", "Beatmap random seed, 0 picks one").Default("0").Envar("CLASH_SEED").Int64Var(&c.Seed)
	app.Flag("frame-period", "Render frame period").Default("8ms").Short('p').Envar("CLASH_FRAME_PERIOD").DurationVar(&c.FramePeriod)
	app.Flag("notify", "Desktop notification when a round ends").Default("true").Envar("CLASH_NOTIFY").BoolVar(&c.Notify)
	app.Flag("db", "Score database").Default("./scores.db").Envar("CLASH_DB").StringVar(&c.DB)
	app.Flag("db-driver", "Score database driver, sqlite3 (cgo) or sqlite (pure Go)").Default(score.DriverCgo).Envar("CLASH_DB_DRIVER").EnumVar(&c.DBDriver, score.DriverCgo, score.DriverPureGo)
	app.Flag("log-file", "Log destination").Default("clash.log").Envar("CLASH_LOG_FILE").StringVar(&c.LogFile)
	app.Flag("log-level", "debug, info, warn or error").Default("info").Envar("CLASH_LOG_LEVEL").StringVar(&c.LogLevel)

	play := app.Command(CommandPlay, "Play a round").Default()
	play.Flag("track", "Audio track, .mp3 .ogg or .wav").Envar("CLASH_TRACK").StringVar(&c.Track)
	app.Command(CommandScores, "Print the leaderboard")
	app.Command(CommandReset, "Clear the leaderboard")
	return app
}

// Parse reads an optional .env file, then the command line.
func Parse(args []string) (*Config, error) {
	// A missing .env is fine
	_ = godotenv.Load()

	c := &Config{}
	cmd, err := New(c).Parse(args)
	if nil != err {
		return nil, err
	}
	c.Command = cmd
	return c, nil
}

// Settings resolves the gameplay numbers, falling back to defaults for
// anything that is not a usable number.
func (c *Config) Settings() Settings {
	s := Settings{
		Tempo:       number(c.Tempo, DefaultTempo),
		Density:     number(c.Density, DefaultDensity),
		OffsetMs:    number(c.Offset, 0),
		RoundLength: number(c.RoundLength, 0),
	}
	if s.Tempo <= 0 {
		s.Tempo = DefaultTempo
	}
	s.Density = math.Max(0, math.Min(1, s.Density))
	s.OffsetMs = math.Max(0, s.OffsetMs)
	s.RoundLength = math.Max(0, s.RoundLength)
	return s
}

func (s Settings) Params() beatmap.Params {
	p := beatmap.DefaultParams()
	p.Tempo = s.Tempo
	p.Density = s.Density
	p.OffsetMs = s.OffsetMs
	p.RoundLength = s.RoundLength
	return p
}

func number(text string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if nil != err || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
