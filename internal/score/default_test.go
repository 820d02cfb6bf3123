package score

import (
	"errors"
	"math/rand"
	"testing"
)

type memStore struct {
	data     map[string][]byte
	readErr  error
	writes   int
	failNext bool
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Read(key string) ([]byte, bool, error) {
	if m.readErr != nil {
		return nil, false, m.readErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Write(key string, value []byte) error {
	if m.failNext {
		m.failNext = false
		return errors.New("disk full")
	}
	m.writes++
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memStore) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func TestSaveKeepsBoardSortedAndCapped(t *testing.T) {
	store := newMemStore()
	s := NewDefaultScorer(store)
	rnd := rand.New(rand.NewSource(3))

	for i := 0; i < 250; i++ {
		if err := s.Save("Player 1", rnd.Intn(5000)); err != nil {
			t.Fatal(err)
		}
		entries := s.List()
		if len(entries) > MaxEntries {
			t.Fatalf("after %d saves: %d entries", i+1, len(entries))
		}
		for j := 1; j < len(entries); j++ {
			if entries[j].Score > entries[j-1].Score {
				t.Fatalf("after %d saves: entry %d (%d) above %d", i+1, j, entries[j].Score, entries[j-1].Score)
			}
		}
	}
	if n := len(s.List()); n != MaxEntries {
		t.Errorf("entries = %d, want %d", n, MaxEntries)
	}
}

func TestSaveDropsLowestWhenFull(t *testing.T) {
	s := NewDefaultScorer(newMemStore())
	for i := 1; i <= MaxEntries; i++ {
		s.Save("Player 2", i*10)
	}
	s.Save("Player 1", 5)
	entries := s.List()
	if entries[len(entries)-1].Score != 10 {
		t.Errorf("lowest = %d, want 10, the new 5 must be dropped", entries[len(entries)-1].Score)
	}
	s.Save("Player 1", 10000)
	entries = s.List()
	if entries[0].Score != 10000 || entries[len(entries)-1].Score != 20 {
		t.Errorf("board = first %d last %d, want 10000 and 20", entries[0].Score, entries[len(entries)-1].Score)
	}
}

func TestSaveNormalizesTie(t *testing.T) {
	s := NewDefaultScorer(newMemStore())
	s.Save(TieLabel, 100)
	entries := s.List()
	if len(entries) != 1 || entries[0].Name != "Tie" || entries[0].Score != 100 {
		t.Errorf("entries = %+v, want [{Tie 100}]", entries)
	}
}

func TestEqualScoresKeepInsertionOrder(t *testing.T) {
	s := NewDefaultScorer(newMemStore())
	s.Save("Player 1", 50)
	s.Save("Player 2", 50)
	entries := s.List()
	if entries[0].Name != "Player 1" || entries[1].Name != "Player 2" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestCorruptOrUnreadableBoardIsEmpty(t *testing.T) {
	store := newMemStore()
	store.data[Key] = []byte("{not json")
	s := NewDefaultScorer(store)
	if entries := s.List(); len(entries) != 0 {
		t.Errorf("corrupt board = %+v, want empty", entries)
	}
	if err := s.Save("Player 1", 70); err != nil {
		t.Fatal(err)
	}
	if entries := s.List(); len(entries) != 1 {
		t.Errorf("board after save over corrupt data = %+v", entries)
	}

	store.readErr = errors.New("io")
	if entries := s.List(); len(entries) != 0 {
		t.Errorf("unreadable board = %+v, want empty", entries)
	}
}

func TestFailedWriteKeepsPreviousBoard(t *testing.T) {
	store := newMemStore()
	s := NewDefaultScorer(store)
	s.Save("Player 1", 10)
	store.failNext = true
	if err := s.Save("Player 2", 20); err == nil {
		t.Fatal("expected write error")
	}
	if entries := s.List(); len(entries) != 1 || entries[0].Score != 10 {
		t.Errorf("entries = %+v, want the board before the failed save", entries)
	}
}

func TestClear(t *testing.T) {
	store := newMemStore()
	s := NewDefaultScorer(store)
	s.Save("Player 1", 10)
	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if entries := s.List(); len(entries) != 0 {
		t.Errorf("entries after clear = %+v", entries)
	}
	if err := s.Clear(); err != nil {
		t.Errorf("clearing an empty board: %v", err)
	}
}

func TestSaveFailsWhenBoardUnreadable(t *testing.T) {
	store := newMemStore()
	s := NewDefaultScorer(store)
	s.Save("Player 1", 10)
	s.Save("Player 2", 20)
	writes := store.writes

	store.readErr = errors.New("database is locked")
	if err := s.Save("Player 1", 30); err == nil {
		t.Fatal("save over an unreadable board must fail")
	}
	if store.writes != writes {
		t.Error("a failed read must not overwrite the board")
	}

	store.readErr = nil
	if entries := s.List(); len(entries) != 2 || entries[0].Score != 20 {
		t.Errorf("entries = %+v, want the two saved before the failed read", entries)
	}
}
