// Package dispatcher fans a phase out over an element collection.
//
// A Listener is built once from a Collection and never owns elements. Each
// phase visits elements in collection order, skips elements with no
// callback for that phase, and calls every registered callback exactly once:
//
//	l := dispatcher.New(elements)
//	l.Loop(&state, ev)     // OnLoop of every element, in order
//	l.State(state, frame)  // OnState of every element, in order
//
// Panics raised by callbacks are not recovered here; the event loop turns
// them into errors after restoring the terminal.
package dispatcher
