package key

import (
	"strconv"
	"unicode"

	"github.com/dshills/tickloop/internal/renderer/backend"
)

// Named keys.
const (
	Enter  = "enter"
	Up     = "up"
	Down   = "down"
	Left   = "left"
	Right  = "right"
	Escape = "escape"
	Delete = "delete"
)

var named = map[backend.Key]string{
	backend.KeyEnter:     Enter,
	backend.KeyUp:        Up,
	backend.KeyDown:      Down,
	backend.KeyLeft:      Left,
	backend.KeyRight:     Right,
	backend.KeyEscape:    Escape,
	backend.KeyBackspace: Delete,
	backend.KeyDelete:    Delete,
}

// Name returns the semantic name of a key event, or false when the key has
// no name and should be ignored.
func Name(ev backend.Event) (string, bool) {
	if ev.Type != backend.EventKey {
		return "", false
	}

	switch {
	case ev.Key == backend.KeyRune:
		if ev.Rune == 0 || !unicode.IsPrint(ev.Rune) {
			return "", false
		}
		return string(ev.Rune), true
	case ev.Key >= backend.KeyF1 && ev.Key <= backend.KeyF12:
		return "f" + strconv.Itoa(int(ev.Key-backend.KeyF1)+1), true
	}

	name, ok := named[ev.Key]
	return name, ok
}

// IsInterrupt reports whether the event is ctrl+c.
func IsInterrupt(ev backend.Event) bool {
	return ev.Type == backend.EventKey &&
		ev.Key == backend.KeyRune &&
		(ev.Rune == 'c' || ev.Rune == 'C') &&
		ev.Mod.Has(backend.ModCtrl)
}
