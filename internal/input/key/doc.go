// Package key turns terminal key events into the small vocabulary the
// event loop hands to callbacks.
//
// Printable characters are named by themselves ("a", "Q", "7", " ").
// Named keys use lowercase words:
//
//	enter up down left right escape delete tab f1 ... f12
//
// Backspace and Delete are both "delete". Anything else (Home, PageUp, F13,
// bare control codes) has no name and is not dispatched.
//
// Modifiers are reported as an ordered list drawn from
// "ctrl", "shift", "alt", "meta".
package key
