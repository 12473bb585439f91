package mouse

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonScrollUp indicates scroll wheel up.
	ButtonScrollUp
	// ButtonScrollDown indicates scroll wheel down.
	ButtonScrollDown
	// ButtonScrollLeft indicates horizontal scroll left.
	ButtonScrollLeft
	// ButtonScrollRight indicates horizontal scroll right.
	ButtonScrollRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonScrollUp:
		return "scroll-up"
	case ButtonScrollDown:
		return "scroll-down"
	case ButtonScrollLeft:
		return "scroll-left"
	case ButtonScrollRight:
		return "scroll-right"
	default:
		return "none"
	}
}

// IsScroll returns true if this is a scroll button.
func (b Button) IsScroll() bool {
	return b == ButtonScrollUp || b == ButtonScrollDown ||
		b == ButtonScrollLeft || b == ButtonScrollRight
}

// Action represents the type of mouse action.
type Action uint8

const (
	// ActionNone indicates nothing worth reporting (a held button that did not move).
	ActionNone Action = iota
	// ActionPress indicates a button press.
	ActionPress
	// ActionRelease indicates a button release.
	ActionRelease
	// ActionMove indicates mouse movement (no button held).
	ActionMove
	// ActionDrag indicates mouse movement with a button held.
	ActionDrag
	// ActionScroll indicates a wheel event.
	ActionScroll
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionMove:
		return "move"
	case ActionDrag:
		return "drag"
	case ActionScroll:
		return "scroll"
	default:
		return "none"
	}
}

// Position represents a screen coordinate.
type Position struct {
	X int
	Y int
}

// Kind is the dispatch category of a mouse event.
type Kind uint8

const (
	// KindNone events are not dispatched.
	KindNone Kind = iota
	// KindMove events go to the move phase.
	KindMove
	// KindClick events go to the click phase.
	KindClick
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindClick:
		return "click"
	default:
		return "none"
	}
}

// Classify decides which phase a mouse event belongs to.
// Plain movement is a move. Releasing or dragging the primary button is a
// click, so holding the button and sweeping paints every cell it crosses.
// Everything else (presses, other buttons, the wheel) is ignored.
func Classify(b Button, a Action) Kind {
	switch {
	case a == ActionMove:
		return KindMove
	case b == ButtonLeft && (a == ActionRelease || a == ActionDrag):
		return KindClick
	default:
		return KindNone
	}
}
