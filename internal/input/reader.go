package input

import (
	"github.com/charmbracelet/log"
	"github.com/eiannone/keyboard"
	"github.com/pkg/errors"
)

// Reader buffers raw key presses from the terminal until the next frame
// drains them.
type Reader struct {
	keymap *Keymap
	keys   <-chan keyboard.KeyEvent
	closed bool
}

func Open(keymap *Keymap, buffer int) (*Reader, error) {
	keys, err := keyboard.GetKeys(buffer)
	if nil != err {
		return nil, errors.Wrap(err, "unable to open keyboard")
	}
	return &Reader{keymap: keymap, keys: keys}, nil
}

// Drain returns the events that arrived since the last call, in order,
// without blocking.
func (r *Reader) Drain() []Event {
	return drain(r.keymap, r.keys)
}

func drain(keymap *Keymap, keys <-chan keyboard.KeyEvent) []Event {
	var events []Event
	for {
		select {
		case key, ok := <-keys:
			if !ok {
				return append(events, Event{Action: Quit})
			}
			if nil != key.Err {
				log.Warn("keyboard read failed", "err", key.Err)
				continue
			}
			if ev := keymap.Translate(key.Key, key.Rune); ev.Action != None {
				events = append(events, ev)
			}
		default:
			return events
		}
	}
}

func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return keyboard.Close()
}
