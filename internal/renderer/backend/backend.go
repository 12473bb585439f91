// Package backend provides the terminal abstraction the event loop drives.
package backend

import (
	"github.com/dshills/tickloop/internal/input/mouse"
	"github.com/dshills/tickloop/internal/renderer/core"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	// EventError reports an input failure; the stream should be treated as finished.
	EventError
	// EventClosed is returned by PollEvent once the backend has shut down.
	EventClosed
)

// String returns a string representation of the event type.
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	case EventError:
		return "error"
	case EventClosed:
		return "closed"
	default:
		return "none"
	}
}

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse event fields
	MouseX, MouseY int
	MouseButton    mouse.Button
	MouseAction    mouse.Action

	// Resize event fields
	Width, Height int

	// Err is set for EventError.
	Err error
}

// Key represents a keyboard key.
type Key int

// Key constants for special keys.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// Backend is the terminal control surface: raw mode, cursor, mouse capture,
// a cell grid and a blocking event source.
type Backend interface {
	// Init enters raw mode and takes over the screen.
	// Must be called before any other methods.
	Init() error

	// Shutdown leaves raw mode and restores the terminal.
	// A blocked PollEvent returns EventClosed afterwards.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetContent sets the cell at (x, y) to a grapheme made of mainc followed
	// by the combining runes combc. Positions outside the terminal are ignored.
	SetContent(x, y int, mainc rune, combc []rune, style core.Style)

	// Clear clears the entire screen with the current style.
	Clear()

	// Show flushes pending cell changes to the display.
	Show()

	// ResetStyle restores the default colors for subsequent clears.
	ResetStyle()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// EnableMouse enables mouse event reporting.
	EnableMouse()

	// DisableMouse disables mouse event reporting.
	DisableMouse()

	// PollEvent waits for and returns the next terminal event.
	// This is a blocking call.
	PollEvent() Event
}
