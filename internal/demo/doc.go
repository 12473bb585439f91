// Package demo holds the element sets run by the tickloop command: an
// animated splash screen shown while a background load finishes, the
// swatch/palette demo, and a full-screen message.
package demo
