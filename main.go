package main

import (
	"fmt"
	"os"
	"strings"

	"git.lost.host/meutraa/clash/internal/config"
	"git.lost.host/meutraa/clash/internal/render"
	"git.lost.host/meutraa/clash/internal/score"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatal(err)
	}
}

func run(args []string) error {
	c, err := config.Parse(args)
	if nil != err {
		return err
	}

	logFile, err := setupLogging(c.LogFile, c.LogLevel)
	if nil != err {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	store, err := score.OpenSQLStore(c.DBDriver, c.DB)
	if nil != err {
		return err
	}
	defer func() {
		if err := store.Close(); nil != err {
			log.Error("unable to close score database", "err", err)
		}
	}()
	scorer := score.NewDefaultScorer(store)

	switch c.Command {
	case config.CommandScores:
		return render.WriteLeaderboard(os.Stdout, scorer.List())
	case config.CommandReset:
		if err := scorer.Clear(); nil != err {
			return err
		}
		fmt.Println("Leaderboard cleared")
		return nil
	}

	p, err := NewProgram(c, scorer)
	if nil != err {
		return err
	}
	defer p.Close()
	return p.Run()
}

// setupLogging sends the log to a file so it does not tear the playfield.
// An empty path keeps stderr.
func setupLogging(path, level string) (*os.File, error) {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if nil != err {
		return nil, errors.Wrapf(err, "unknown log level %q", level)
	}
	log.SetLevel(lvl)
	log.SetReportTimestamp(true)
	if path == "" {
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if nil != err {
		return nil, errors.Wrap(err, "unable to open log file")
	}
	log.SetOutput(f)
	return f, nil
}
