package backend

import (
	"fmt"
	"sync"

	"github.com/dshills/tickloop/internal/renderer/core"
)

// Cell is one position of the NullBackend grid.
type Cell struct {
	Text  string
	Style core.Style
}

// NullBackend is an in-memory backend for testing. Events are scripted with
// PostEvent; once the script is drained PollEvent blocks until Close or
// Shutdown, after which it reports EventClosed. Every terminal-control call
// is recorded in order and available from Calls.
type NullBackend struct {
	mu            sync.Mutex
	width, height int
	cells         [][]Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	mouseEnabled  bool
	initialized   bool
	shows         int
	calls         []string

	// InitErr, when set, is returned by Init.
	InitErr error

	events    chan Event
	closed    chan struct{}
	closeOnce sync.Once
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 256),
		closed: make(chan struct{}),
	}
	b.cells = newGrid(width, height)
	return b
}

func newGrid(width, height int) [][]Cell {
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
		for j := range cells[i] {
			cells[i][j] = Cell{Text: " ", Style: core.DefaultStyle()}
		}
	}
	return cells
}

func (b *NullBackend) record(call string) {
	b.calls = append(b.calls, call)
}

func (b *NullBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.record("Init")
	if b.InitErr != nil {
		return b.InitErr
	}
	b.initialized = true
	return nil
}

func (b *NullBackend) Shutdown() {
	b.mu.Lock()
	b.record("Shutdown")
	b.initialized = false
	b.mu.Unlock()

	b.Close()
}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.width, b.height
}

func (b *NullBackend) SetContent(x, y int, mainc rune, combc []rune, style core.Style) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = Cell{Text: string(mainc) + string(combc), Style: style}
	}
}

func (b *NullBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.record("Clear")
	b.cells = newGrid(b.width, b.height)
}

func (b *NullBackend) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.record("Show")
	b.shows++
}

func (b *NullBackend) ResetStyle() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.record("ResetStyle")
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.record("ShowCursor")
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.record("HideCursor")
	b.cursorVisible = false
}

func (b *NullBackend) EnableMouse() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.record("EnableMouse")
	b.mouseEnabled = true
}

func (b *NullBackend) DisableMouse() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.record("DisableMouse")
	b.mouseEnabled = false
}

// PollEvent returns scripted events in order. Events queued before Close are
// still delivered; EventClosed follows them.
func (b *NullBackend) PollEvent() Event {
	select {
	case ev := <-b.events:
		return ev
	default:
	}

	select {
	case ev := <-b.events:
		return ev
	case <-b.closed:
		select {
		case ev := <-b.events:
			return ev
		default:
			return Event{Type: EventClosed}
		}
	}
}

// PostEvent queues an event for PollEvent.
func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

// Close ends the event stream. It is safe to call more than once.
func (b *NullBackend) Close() {
	b.closeOnce.Do(func() { close(b.closed) })
}

// Calls returns the terminal-control calls made so far, in order.
// SetContent is not recorded.
func (b *NullBackend) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]string(nil), b.calls...)
}

// ShowCount returns how many times Show was called.
func (b *NullBackend) ShowCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.shows
}

// CellAt returns the cell at the given position.
func (b *NullBackend) CellAt(x, y int) Cell {
	b.mu.Lock()
	defer b.mu.Unlock()

	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return Cell{}
}

// Line returns row y as text, one cell per column.
func (b *NullBackend) Line(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if y < 0 || y >= b.height {
		return ""
	}
	var s string
	for _, c := range b.cells[y] {
		s += c.Text
	}
	return s
}

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.cursorX, b.cursorY, b.cursorVisible
}

// MouseEnabled reports whether mouse capture is on.
func (b *NullBackend) MouseEnabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.mouseEnabled
}

// Initialized reports whether Init succeeded and Shutdown has not run.
func (b *NullBackend) Initialized() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.initialized
}

// Resize changes the reported size and clears the grid, then queues an
// EventResize.
func (b *NullBackend) Resize(width, height int) {
	b.mu.Lock()
	b.width = width
	b.height = height
	b.cells = newGrid(width, height)
	b.record(fmt.Sprintf("Resize %dx%d", width, height))
	b.mu.Unlock()

	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
