package renderer

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/tickloop/internal/event"
	"github.com/dshills/tickloop/internal/renderer/backend"
	"github.com/dshills/tickloop/internal/renderer/core"
	"github.com/dshills/tickloop/internal/renderer/look"
)

// Painter draws looks onto a backend and flushes them.
// It is not safe for concurrent use; the event loop owns it.
type Painter struct {
	backend backend.Backend
	cols    int
	rows    int
	pending bool
	flushes int
}

// NewPainter creates a painter for the given backend.
func NewPainter(b backend.Backend) *Painter {
	p := &Painter{backend: b}
	p.cols, p.rows = b.Size()
	return p
}

// Frame re-reads the terminal size and returns a render context that draws
// through this painter.
func (p *Painter) Frame() event.Frame {
	p.cols, p.rows = p.backend.Size()
	return event.NewFrame(p.cols, p.rows, p)
}

// Draw writes each row of l at (x, y+row), segment by segment, advancing by
// the display width of each grapheme. Graphemes that would cross the screen
// edge are clipped.
func (p *Painter) Draw(x, y int, l look.Look) {
	for r, row := range l.Rows() {
		cy := y + r
		col := x
		for _, seg := range row {
			col = p.drawSegment(col, cy, seg)
		}
	}
}

func (p *Painter) drawSegment(col, y int, seg look.Segment) int {
	g := uniseg.NewGraphemes(seg.Text)
	for g.Next() {
		runes := g.Runes()
		w := runewidth.StringWidth(g.Str())
		if w == 0 {
			continue
		}
		if y >= 0 && y < p.rows && col >= 0 && col+w <= p.cols {
			p.backend.SetContent(col, y, runes[0], runes[1:], seg.Style)
			p.pending = true
		}
		col += w
	}
	return col
}

// ClearBelow blanks every row from y (inclusive) to the bottom.
func (p *Painter) ClearBelow(y int) {
	style := core.DefaultStyle()
	for row := max(y, 0); row < p.rows; row++ {
		for col := 0; col < p.cols; col++ {
			p.backend.SetContent(col, row, ' ', nil, style)
		}
		p.pending = true
	}
}

// Clear blanks the whole screen.
func (p *Painter) Clear() {
	p.backend.Clear()
	p.pending = true
}

// Flush shows pending changes. It reports whether anything was shown.
func (p *Painter) Flush() bool {
	if !p.pending {
		return false
	}
	p.backend.Show()
	p.pending = false
	p.flushes++
	return true
}

// Flushes returns how many times Flush reached the backend.
func (p *Painter) Flushes() int {
	return p.flushes
}
