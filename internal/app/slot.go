package app

import (
	"runtime/debug"
	"sync"
)

// Slot hands one value from a background goroutine to the run goroutine.
// The exit predicate typically polls Ready; the caller collects the value
// with Take once Run returns.
type Slot[T any] struct {
	mu    sync.Mutex
	val   T
	ready bool
	err   error
}

// phaseSpawn labels a panic raised by a Spawn function.
const phaseSpawn = "spawn"

// Spawn runs fn on a new goroutine and returns the slot its result lands in.
// If fn panics the slot becomes ready with no value and Err reports the
// panic as a *CallbackError.
func Spawn[T any](fn func() T) *Slot[T] {
	s := &Slot[T]{}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.fail(&CallbackError{Phase: phaseSpawn, Value: r, Stack: debug.Stack()})
			}
		}()
		s.Put(fn())
	}()
	return s
}

func (s *Slot[T]) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	s.ready = true
}

// Err returns the failure recorded by Spawn, or nil.
func (s *Slot[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Put stores v, replacing any value not yet taken.
func (s *Slot[T]) Put(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.val = v
	s.ready = true
}

// Ready reports whether a value is waiting.
func (s *Slot[T]) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Take removes and returns the value, or false if none is waiting or the
// producer failed.
func (s *Slot[T]) Take() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if !s.ready || s.err != nil {
		return zero, false
	}
	v := s.val
	s.val = zero
	s.ready = false
	return v, true
}
