package demo

import (
	"strings"
	"testing"
	"time"

	"github.com/dshills/tickloop/internal/app"
	"github.com/dshills/tickloop/internal/element"
	"github.com/dshills/tickloop/internal/renderer/backend"
)

// capturingBackend keeps a copy of the screen as teardown starts, before
// the terminal is cleared.
type capturingBackend struct {
	*backend.NullBackend
	screen []string
}

func newCapturingBackend(w, h int) *capturingBackend {
	return &capturingBackend{NullBackend: backend.NewNullBackend(w, h)}
}

func (c *capturingBackend) ResetStyle() {
	_, h := c.Size()
	c.screen = c.screen[:0]
	for y := range h {
		c.screen = append(c.screen, c.Line(y))
	}
	c.NullBackend.ResetStyle()
}

func (c *capturingBackend) contains(s string) bool {
	for _, line := range c.screen {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

type runResult[S comparable] struct {
	s   S
	err error
}

func runDemo[S comparable](t *testing.T, b *capturingBackend, state S, c *element.Collection[S], exit func(S) bool) S {
	t.Helper()

	done := make(chan runResult[S], 1)
	go func() {
		s, err := app.Run(state, c, app.Options[S]{Backend: b, TickRate: time.Millisecond, Exit: exit})
		done <- runResult[S]{s, err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			t.Fatalf("Run error = %v", r.err)
		}
		return r.s
	case <-time.After(5 * time.Second):
		b.Close()
		t.Fatal("Run did not return")
	}
	var zero S
	return zero
}
