package demo

import (
	"strings"
	"testing"

	"github.com/dshills/tickloop/internal/renderer/backend"
	"github.com/dshills/tickloop/internal/renderer/core"
)

func TestMessageLookCentersLines(t *testing.T) {
	l := MessageLook("ab\nabcd\n", core.ColorRed)

	if got, want := l.String(), " ab\nabcd\n  "; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
	if fg := l.Rows()[0][0].Style.Foreground; fg != core.ColorRed {
		t.Errorf("foreground = %v, expected red", fg)
	}
}

func TestMessageRun(t *testing.T) {
	b := newCapturingBackend(30, 5)
	b.PostEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'x'})

	s := runDemo(t, b, MessageState{}, Message("load failed", core.ColorRed), MessageDone)

	if !s.Dismissed {
		t.Error("a key should dismiss the message")
	}
	if got := b.screen[2]; strings.TrimSpace(got) != "load failed" || !strings.HasPrefix(got, "         load") {
		t.Errorf("middle row = %q, expected the centered message", got)
	}
}
