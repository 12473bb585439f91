// Package element holds the positioned visual units of a screen and the
// ordered collection the event loop dispatches over.
package element

import (
	"github.com/dshills/tickloop/internal/event"
	"github.com/dshills/tickloop/internal/renderer/look"
)

// Handler is an interactive callback. It may mutate the element and the
// application state.
type Handler[S any] func(el *Element[S], state *S, ev event.Data)

// RenderHandler is a render callback. It sees the state by value and draws
// through the frame.
type RenderHandler[S any] func(el *Element[S], state S, f event.Frame)

// Element is a positioned look with optional per-phase callbacks.
// Callbacks are registered by assigning the fields; nil means "not
// interested". Any coordinates are accepted; parts outside the terminal are
// clipped and never hit.
type Element[S any] struct {
	X, Y int
	Look look.Look

	OnLoop     Handler[S]
	OnKeypress Handler[S]
	OnMove     Handler[S]
	OnClick    Handler[S]
	OnState    RenderHandler[S]
}

// New creates an element with no callbacks.
func New[S any](x, y int, l look.Look) *Element[S] {
	return &Element[S]{X: x, Y: y, Look: l}
}

// Width returns the look width in columns.
func (el *Element[S]) Width() int {
	return el.Look.Width()
}

// Height returns the look height in rows.
func (el *Element[S]) Height() int {
	return el.Look.Height()
}

// Over reports whether the cell (x, y) lies inside the element's rectangle:
// X <= x < X+Width and Y <= y < Y+Height. An empty look is never hit.
func (el *Element[S]) Over(x, y int) bool {
	w, h := el.Width(), el.Height()
	if w == 0 || h == 0 {
		return false
	}
	return x >= el.X && x < el.X+w && y >= el.Y && y < el.Y+h
}

// MouseOver reports whether a mouse event is over el. Events without a
// position never are.
func MouseOver[S any](el *Element[S], ev event.Data) bool {
	x, y, ok := ev.Position()
	return ok && el.Over(x, y)
}

// Draw paints the element's look at its position.
func (el *Element[S]) Draw(f event.Frame) {
	f.Draw(el.X, el.Y, el.Look)
}

// MoveTo repositions the element.
func (el *Element[S]) MoveTo(x, y int) {
	el.X, el.Y = x, y
}
