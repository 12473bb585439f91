package dispatcher

import (
	"fmt"

	"github.com/dshills/tickloop/internal/element"
	"github.com/dshills/tickloop/internal/event"
)

// Phase names a dispatch phase.
type Phase int

const (
	PhaseLoop Phase = iota
	PhaseKeypress
	PhaseMove
	PhaseClick
	PhaseState
)

var phaseNames = [...]string{"loop", "keypress", "move", "click", "state"}

// String returns the phase name.
func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Listener dispatches phases to the callbacks registered on a collection.
type Listener[S any] struct {
	elements *element.Collection[S]
	stats    *Stats
}

// New creates a listener over c.
func New[S any](c *element.Collection[S]) *Listener[S] {
	return &Listener[S]{elements: c, stats: NewStats()}
}

// Stats returns the listener's dispatch counters.
func (l *Listener[S]) Stats() *Stats {
	return l.stats
}

// Loop calls every OnLoop callback.
func (l *Listener[S]) Loop(state *S, ev event.Data) {
	l.interactive(PhaseLoop, state, ev)
}

// Keypress calls every OnKeypress callback.
func (l *Listener[S]) Keypress(state *S, ev event.Data) {
	l.interactive(PhaseKeypress, state, ev)
}

// Move calls every OnMove callback.
func (l *Listener[S]) Move(state *S, ev event.Data) {
	l.interactive(PhaseMove, state, ev)
}

// Click calls every OnClick callback.
func (l *Listener[S]) Click(state *S, ev event.Data) {
	l.interactive(PhaseClick, state, ev)
}

// State calls every OnState callback with a copy of the state.
func (l *Listener[S]) State(state S, f event.Frame) {
	l.stats.recordPhase(PhaseState)
	for _, el := range l.elements.All() {
		if el.OnState != nil {
			l.stats.recordCall(PhaseState)
			el.OnState(el, state, f)
		}
	}
}

// Dispatch runs the named phase. For PhaseState the event's frame is used.
func (l *Listener[S]) Dispatch(p Phase, state *S, ev event.Data) {
	if p == PhaseState {
		l.State(*state, ev.Frame)
		return
	}
	l.interactive(p, state, ev)
}

func (l *Listener[S]) interactive(p Phase, state *S, ev event.Data) {
	l.stats.recordPhase(p)
	for _, el := range l.elements.All() {
		h := handlerFor(el, p)
		if h == nil {
			continue
		}
		l.stats.recordCall(p)
		h(el, state, ev)
	}
}

func handlerFor[S any](el *element.Element[S], p Phase) element.Handler[S] {
	switch p {
	case PhaseLoop:
		return el.OnLoop
	case PhaseKeypress:
		return el.OnKeypress
	case PhaseMove:
		return el.OnMove
	case PhaseClick:
		return el.OnClick
	default:
		return nil
	}
}
