package app

import (
	"github.com/dshills/tickloop/internal/renderer/backend"
)

// inputQueueSize bounds how far the poller may run ahead of the loop.
const inputQueueSize = 64

// startInputPolling starts a goroutine that moves backend events onto the
// returned channel, in order and without dropping any. The channel is
// closed when the backend reports EventClosed, after forwarding an
// EventError, or when done is closed.
//
// PollEvent is blocking, so the goroutine only notices done after the next
// event; releasing the backend unblocks it.
func startInputPolling(b backend.Backend, done <-chan struct{}) <-chan backend.Event {
	events := make(chan backend.Event, inputQueueSize)

	go func() {
		defer close(events)

		for {
			ev := b.PollEvent()
			if ev.Type == backend.EventClosed {
				return
			}

			select {
			case events <- ev:
			case <-done:
				return
			}

			if ev.Type == backend.EventError {
				return
			}
		}
	}()

	return events
}
