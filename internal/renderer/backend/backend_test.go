package backend

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/dshills/tickloop/internal/renderer/core"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if !b.Initialized() {
		t.Error("Initialized() = false after Init")
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendInitError(t *testing.T) {
	b := NewNullBackend(10, 10)
	b.InitErr = errors.New("no tty")

	if err := b.Init(); !errors.Is(err, b.InitErr) {
		t.Errorf("Init() = %v, expected %v", err, b.InitErr)
	}
	if b.Initialized() {
		t.Error("Initialized() = true after failed Init")
	}
}

func TestNullBackendSetContent(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	style := core.DefaultStyle().WithForeground(core.ColorRed)
	b.SetContent(10, 5, 'X', nil, style)

	got := b.CellAt(10, 5)
	if got.Text != "X" || got.Style != style {
		t.Errorf("CellAt(10, 5) = %+v, expected X in red", got)
	}

	b.SetContent(11, 5, 'e', []rune{'\u0301'}, style)
	if got := b.CellAt(11, 5).Text; got != "e\u0301" {
		t.Errorf("combining cell = %q, expected %q", got, "e\u0301")
	}

	// Out of bounds should be ignored
	b.SetContent(-1, 0, 'X', nil, style)
	b.SetContent(100, 0, 'X', nil, style)
	if got := b.CellAt(-1, 0); got != (Cell{}) {
		t.Errorf("out of bounds CellAt = %+v, expected zero cell", got)
	}
}

func TestNullBackendClear(t *testing.T) {
	b := NewNullBackend(4, 2)
	b.Init()

	b.SetContent(0, 0, 'X', nil, core.DefaultStyle())
	b.SetContent(3, 1, 'Y', nil, core.DefaultStyle())
	b.Clear()

	if got := b.Line(0); got != "    " {
		t.Errorf("Line(0) after Clear = %q, expected blanks", got)
	}
	if got := b.Line(1); got != "    " {
		t.Errorf("Line(1) after Clear = %q, expected blanks", got)
	}
}

func TestNullBackendCursorAndMouse(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.ShowCursor(10, 5)
	x, y, visible := b.CursorPosition()
	if x != 10 || y != 5 || !visible {
		t.Errorf("expected cursor at (10, 5) visible, got (%d, %d) visible=%v", x, y, visible)
	}

	b.HideCursor()
	if _, _, visible = b.CursorPosition(); visible {
		t.Error("cursor should be hidden")
	}

	b.EnableMouse()
	if !b.MouseEnabled() {
		t.Error("mouse should be enabled")
	}
	b.DisableMouse()
	if b.MouseEnabled() {
		t.Error("mouse should be disabled")
	}
}

func TestNullBackendCalls(t *testing.T) {
	b := NewNullBackend(10, 10)
	b.Init()
	b.HideCursor()
	b.SetContent(0, 0, 'a', nil, core.DefaultStyle())
	b.Show()
	b.Shutdown()

	want := []string{"Init", "HideCursor", "Show", "Shutdown"}
	if got := b.Calls(); !reflect.DeepEqual(got, want) {
		t.Errorf("Calls() = %v, expected %v", got, want)
	}
	if b.ShowCount() != 1 {
		t.Errorf("ShowCount() = %d, expected 1", b.ShowCount())
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: 'a'})
	b.PostEvent(Event{Type: EventKey, Key: KeyEnter})
	b.Close()

	if ev := b.PollEvent(); ev.Type != EventKey || ev.Rune != 'a' {
		t.Errorf("first event = %+v, expected rune a", ev)
	}
	if ev := b.PollEvent(); ev.Type != EventKey || ev.Key != KeyEnter {
		t.Errorf("second event = %+v, expected enter", ev)
	}
	if ev := b.PollEvent(); ev.Type != EventClosed {
		t.Errorf("after close event = %v, expected closed", ev.Type)
	}
	// Close is idempotent and the stream stays closed.
	b.Close()
	if ev := b.PollEvent(); ev.Type != EventClosed {
		t.Errorf("second poll after close = %v, expected closed", ev.Type)
	}
}

func TestNullBackendShutdownUnblocksPoll(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	done := make(chan Event, 1)
	go func() { done <- b.PollEvent() }()

	b.Shutdown()

	select {
	case ev := <-done:
		if ev.Type != EventClosed {
			t.Errorf("PollEvent after Shutdown = %v, expected closed", ev.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("PollEvent still blocked after Shutdown")
	}
}

func TestNullBackendResize(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.Resize(100, 50)

	w, h := b.Size()
	if w != 100 || h != 50 {
		t.Errorf("expected size (100, 50) after resize, got (%d, %d)", w, h)
	}
	if ev := b.PollEvent(); ev.Type != EventResize || ev.Width != 100 || ev.Height != 50 {
		t.Errorf("resize event = %+v, expected 100x50", ev)
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		typ  EventType
		want string
	}{
		{EventNone, "none"},
		{EventKey, "key"},
		{EventMouse, "mouse"},
		{EventResize, "resize"},
		{EventError, "error"},
		{EventClosed, "closed"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, expected %q", tt.typ, got, tt.want)
		}
	}
}

func TestModMaskHas(t *testing.T) {
	m := ModCtrl | ModAlt
	if !m.Has(ModCtrl) || !m.Has(ModAlt) {
		t.Errorf("%b should have ctrl and alt", m)
	}
	if m.Has(ModShift) || m.Has(ModMeta) {
		t.Errorf("%b should not have shift or meta", m)
	}
}
