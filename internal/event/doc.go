// Package event defines what callbacks receive: the per-dispatch Data
// record and the Frame render context.
//
// A Data value is built fresh for every callback invocation. Frame carries
// the terminal geometry read once per phase together with the drawing
// surface, so callbacks never talk to the terminal themselves.
package event
