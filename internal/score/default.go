package score

import (
	"encoding/json"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

type DefaultScorer struct {
	store Store
	key   string
}

func NewDefaultScorer(store Store) *DefaultScorer {
	return &DefaultScorer{store: store, key: Key}
}

func (s *DefaultScorer) Save(name string, score int) error {
	if name == TieLabel {
		name = TieName
	}
	if score < 0 {
		score = 0
	}
	entries, err := s.load()
	if nil != err {
		return errors.Wrap(err, "unable to read leaderboard")
	}
	entries = append(entries, Entry{Name: name, Score: score})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	data, err := json.Marshal(entries)
	if nil != err {
		return errors.Wrap(err, "unable to marshal leaderboard")
	}
	if err := s.store.Write(s.key, data); nil != err {
		return errors.Wrap(err, "unable to save leaderboard")
	}
	log.Info("saved score", "name", name, "score", score, "entries", len(entries))
	return nil
}

func (s *DefaultScorer) Clear() error {
	return errors.Wrap(s.store.Delete(s.key), "unable to clear leaderboard")
}

// List never fails: an unreadable or corrupt board reads as empty.
func (s *DefaultScorer) List() []Entry {
	entries, err := s.load()
	if nil != err {
		log.Warn("unable to read leaderboard", "err", err)
		return []Entry{}
	}
	return entries
}

// load reads the board. A corrupt payload is an empty board, a failed
// read is an error so Save never overwrites entries it could not see.
func (s *DefaultScorer) load() ([]Entry, error) {
	entries := []Entry{}
	data, ok, err := s.store.Read(s.key)
	if nil != err {
		return nil, err
	}
	if !ok {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); nil != err {
		log.Warn("corrupt leaderboard, treating as empty", "err", err)
		return []Entry{}, nil
	}
	return entries, nil
}
