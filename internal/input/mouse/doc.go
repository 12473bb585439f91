// Package mouse models mouse input for the event loop.
//
// Terminals report mouse activity as "these buttons are down at (x, y)".
// Tracker turns that stream into discrete actions:
//
//	var tr mouse.Tracker
//	tr.Update(mouse.ButtonLeft, mouse.Position{X: 3, Y: 4}) // left, press
//	tr.Update(mouse.ButtonLeft, mouse.Position{X: 4, Y: 4}) // left, drag
//	tr.Update(mouse.ButtonNone, mouse.Position{X: 4, Y: 4}) // left, release
//	tr.Update(mouse.ButtonNone, mouse.Position{X: 9, Y: 1}) // none, move
//
// Classify then maps a (button, action) pair onto the dispatch phase:
// plain movement is a move, primary-button release or drag is a click, and
// anything else is dropped.
package mouse
