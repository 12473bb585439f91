// Package app runs the event loop: it owns the application state, drives
// the dispatch phases, and keeps the terminal consistent on every exit path.
package app

import (
	"errors"
	"fmt"
)

// Run errors.
var (
	// ErrNoElements indicates Run was given a nil collection.
	ErrNoElements = errors.New("no element collection")
)

// InitError represents a terminal setup failure. No callback has run when
// it is returned.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// CallbackError reports a panic raised by a callback (or the exit
// predicate). The terminal has already been restored when it is returned.
type CallbackError struct {
	// Phase is the phase that was running: "loop", "keypress", "move",
	// "click", "state" or "exit", or "spawn" for a Spawn function.
	Phase string
	Value any
	Stack []byte
}

func (e *CallbackError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("panic in %s callback: %v", e.Phase, e.Value)
}

// Unwrap exposes the panic value when it is an error.
func (e *CallbackError) Unwrap() error {
	if e == nil {
		return nil
	}
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// WrapError wraps an error with additional context if it's not nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", msg, err)
}
