package mouse

// Tracker derives press/release/move/drag from terminals that only report
// which buttons are currently down. It remembers the held button and the
// last position. The zero value is ready to use.
type Tracker struct {
	held Button
	last Position
	seen bool
}

// Update feeds the buttons currently down and the pointer position, and
// returns the button the action refers to together with the action.
func (t *Tracker) Update(down Button, pos Position) (Button, Action) {
	moved := !t.seen || pos != t.last
	t.seen = true
	t.last = pos

	switch {
	case down.IsScroll():
		return down, ActionScroll
	case down == ButtonNone && t.held != ButtonNone:
		released := t.held
		t.held = ButtonNone
		return released, ActionRelease
	case down == ButtonNone:
		return ButtonNone, ActionMove
	case down == t.held:
		if moved {
			return down, ActionDrag
		}
		return down, ActionNone
	default:
		t.held = down
		return down, ActionPress
	}
}
