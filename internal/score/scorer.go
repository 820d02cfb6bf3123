package score

// Scorer keeps the leaderboard of round winners.
type Scorer interface {
	// Save records a winning score and persists the updated board
	Save(name string, score int) error

	// Clear removes every entry
	Clear() error

	// List returns the board, highest score first
	List() []Entry
}

type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Store is a byte-oriented key-value store. Read reports false when the key
// is absent.
type Store interface {
	Read(key string) ([]byte, bool, error)
	Write(key string, value []byte) error
	Delete(key string) error
}

const (
	Key        = "clash.scores"
	MaxEntries = 100
	TieLabel   = "Tie!"
	TieName    = "Tie"
)
