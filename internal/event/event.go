package event

import "github.com/dshills/tickloop/internal/renderer/look"

// Data is the event record handed to every callback.
type Data struct {
	Frame

	// Tick is the loop counter at dispatch time.
	Tick int

	// Key is the semantic key name for keypress dispatches, empty otherwise.
	Key string

	// Modifiers lists held modifiers in the order ctrl, shift, alt, meta.
	Modifiers []string

	// X and Y are the pointer cell for mouse dispatches; HasPosition
	// distinguishes (0, 0) from "no position".
	X, Y        int
	HasPosition bool
}

// Position returns the pointer cell and whether the event carries one.
func (d Data) Position() (x, y int, ok bool) {
	return d.X, d.Y, d.HasPosition
}

// HasModifier reports whether the named modifier was held.
func (d Data) HasModifier(name string) bool {
	for _, m := range d.Modifiers {
		if m == name {
			return true
		}
	}
	return false
}

// Canvas is the drawing surface behind a Frame.
type Canvas interface {
	Draw(x, y int, l look.Look)
	ClearBelow(y int)
}

// Frame is the render context of one phase.
type Frame struct {
	// Cols and Rows are the terminal size when the phase started.
	Cols, Rows int

	canvas Canvas
}

// NewFrame creates a frame over a canvas.
func NewFrame(cols, rows int, canvas Canvas) Frame {
	return Frame{Cols: cols, Rows: rows, canvas: canvas}
}

// Draw paints a look with its top-left cell at (x, y). Cells outside the
// terminal are clipped. A frame without a canvas draws nothing.
func (f Frame) Draw(x, y int, l look.Look) {
	if f.canvas != nil {
		f.canvas.Draw(x, y, l)
	}
}

// ClearBelow blanks every row from y to the bottom of the terminal.
func (f Frame) ClearBelow(y int) {
	if f.canvas != nil {
		f.canvas.ClearBelow(y)
	}
}

// Center returns the origin that centers a w by h box in the frame.
func (f Frame) Center(w, h int) (x, y int) {
	return (f.Cols - w) / 2, (f.Rows - h) / 2
}
