package demo

import (
	"strings"

	"github.com/dshills/tickloop/internal/element"
	"github.com/dshills/tickloop/internal/event"
	"github.com/dshills/tickloop/internal/renderer/core"
	"github.com/dshills/tickloop/internal/renderer/look"
)

// MessageState is the state of a message run.
type MessageState struct {
	Cols, Rows int
	Dismissed  bool
}

// MessageDone is the exit predicate of a message run.
func MessageDone(s MessageState) bool {
	return s.Dismissed
}

// MessageLook renders text in bold color with every line centered on the
// widest one.
func MessageLook(text string, color core.Color) look.Look {
	lines := strings.Split(text, "\n")
	widths := make([]int, len(lines))
	widest := 0
	for i, line := range lines {
		widths[i] = look.FromString(line).Width()
		widest = max(widest, widths[i])
	}

	style := core.NewStyle(color).Bold()
	rows := make([][]look.Segment, len(lines))
	for i, line := range lines {
		pad := (widest - widths[i]) / 2
		rows[i] = look.Row(look.Seg(strings.Repeat(" ", pad)+line, style))
	}
	return look.FromSegments(rows...)
}

// Message builds a full-screen message centered in the terminal. Any key
// or click dismisses it.
func Message(text string, color core.Color) *element.Collection[MessageState] {
	el := element.New[MessageState](0, 0, MessageLook(text, color))

	el.OnLoop = func(_ *element.Element[MessageState], s *MessageState, ev event.Data) {
		s.Cols, s.Rows = ev.Cols, ev.Rows
	}
	dismiss := func(_ *element.Element[MessageState], s *MessageState, _ event.Data) {
		s.Dismissed = true
	}
	el.OnKeypress = dismiss
	el.OnClick = dismiss
	el.OnState = func(el *element.Element[MessageState], _ MessageState, f event.Frame) {
		f.ClearBelow(0)
		el.MoveTo(f.Center(el.Width(), el.Height()))
		el.Draw(f)
	}

	return element.NewCollection(el)
}
