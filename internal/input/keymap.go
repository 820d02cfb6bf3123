package input

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"git.lost.host/meutraa/clash/internal/game"
	"github.com/eiannone/keyboard"
	"github.com/pkg/errors"
)

const DefaultKeys = "asdfjkl;"

type Action int

const (
	None  Action = iota
	Press        // A lane key, see Event.Lane
	Begin
	Reset
	Regenerate
	Quit
)

type Event struct {
	Action Action
	Lane   int
}

// Keymap binds one key to each lane, left player first.
type Keymap struct {
	keys  [game.Lanes]rune
	lanes map[rune]int
}

func NewKeymap(keys string) (*Keymap, error) {
	keys = strings.ToLower(keys)
	if n := utf8.RuneCountInString(keys); n != game.Lanes {
		return nil, errors.Errorf("need %d lane keys, got %d in %q", game.Lanes, n, keys)
	}
	k := &Keymap{lanes: make(map[rune]int, game.Lanes)}
	lane := 0
	for _, r := range keys {
		if _, ok := k.lanes[r]; ok {
			return nil, errors.Errorf("key %q bound twice", r)
		}
		if isControl(r) {
			return nil, errors.Errorf("key %q is reserved", r)
		}
		k.keys[lane] = r
		k.lanes[r] = lane
		lane++
	}
	return k, nil
}

func isControl(r rune) bool {
	return r == ' ' || r == 'r' || r == 'g' || unicode.IsControl(r)
}

func (k *Keymap) Lane(r rune) (int, bool) {
	lane, ok := k.lanes[unicode.ToLower(r)]
	return lane, ok
}

// Label is the key shown under a lane, "A" or ";".
func (k *Keymap) Label(lane int) string {
	if !game.ValidLane(lane) {
		return ""
	}
	return strings.ToUpper(string(k.keys[lane]))
}

// Translate maps a key press to an event.
func (k *Keymap) Translate(key keyboard.Key, r rune) Event {
	switch key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Event{Action: Quit}
	case keyboard.KeySpace:
		return Event{Action: Begin}
	}
	if r == 0 {
		return Event{}
	}
	if lane, ok := k.Lane(r); ok {
		return Event{Action: Press, Lane: lane}
	}
	switch unicode.ToLower(r) {
	case ' ':
		return Event{Action: Begin}
	case 'r':
		return Event{Action: Reset}
	case 'g':
		return Event{Action: Regenerate}
	}
	return Event{}
}
