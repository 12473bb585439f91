// Package renderer paints element looks onto a terminal backend.
//
// The layering is deliberately thin:
//
//	┌─────────────────────────────────────────┐
//	│   Painter (Draw, ClearBelow, Flush)     │
//	├─────────────────────────────────────────┤
//	│   look: rows of styled segments         │
//	├─────────────────────────────────────────┤
//	│   backend.Backend (tcell │ null)        │
//	└─────────────────────────────────────────┘
//
// The painter does no diffing: whatever a render callback draws is written
// to the backend's cell buffer, and Flush pushes it to the display once per
// dispatch phase.
//
// Usage:
//
//	p := renderer.NewPainter(b)
//	f := p.Frame()
//	f.Draw(2, 1, look.FromString("hello"))
//	p.Flush()
package renderer
