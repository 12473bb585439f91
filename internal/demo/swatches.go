package demo

import (
	"github.com/dshills/tickloop/internal/element"
	"github.com/dshills/tickloop/internal/event"
	"github.com/dshills/tickloop/internal/input/key"
	"github.com/dshills/tickloop/internal/renderer/core"
	"github.com/dshills/tickloop/internal/renderer/look"
)

// SwatchCount is the number of pickable colors.
const SwatchCount = 16

// Demo layout, relative to the centered origin.
const (
	AppWidth  = 40
	AppHeight = 11

	marginX   = 4
	swatchesY = 2
	paletteY  = 4
	infoY     = 6
	helpY     = 8
	exitY     = 10
	swatchW   = 2
	slotW     = 4
)

const tooSmallMsg = "enlarge the terminal to 40x11"

// SwatchState is the state of the swatch demo.
type SwatchState struct {
	OriginX, OriginY int

	Palette Palette
	// Cursor is the palette slot the next picked swatch goes into.
	Cursor int
	// Brush is the active swatch, or Empty.
	Brush int
	// Hover is the swatch under the pointer, or Empty.
	Hover int

	Theme Theme
	Exit  bool
}

// NewSwatchState starts the demo with palette p. The brush starts as the
// first slot's color.
func NewSwatchState(p Palette, theme Theme) SwatchState {
	return SwatchState{
		Palette: p,
		Brush:   p[0],
		Hover:   Empty,
		Theme:   theme,
	}
}

// SwatchesDone is the exit predicate of the swatch demo.
func SwatchesDone(s SwatchState) bool {
	return s.Exit
}

// SwatchColor returns the color of swatch i.
func SwatchColor(i int) core.Color {
	return core.ColorFromIndex(uint8(i))
}

// ThemeSource is polled once per tick for a replacement theme.
type ThemeSource func() (Theme, bool)

// Swatches builds the swatch demo. reload may be nil.
func Swatches(reload ThemeSource) *element.Collection[SwatchState] {
	c := element.NewCollection[SwatchState]()
	c.Push(screenElement(reload))
	c.Push(titleElement())
	c.Push(swatchElement())
	c.Push(paletteElement())
	c.Push(infoElement())
	c.Push(helpElement())
	c.Push(exitElement())
	return c
}

func fits(f event.Frame) bool {
	return f.Cols >= AppWidth && f.Rows >= AppHeight
}

// drawRelative places el at (dx, dy) from the origin and draws it when the
// whole demo fits on screen.
func drawRelative(el *element.Element[SwatchState], f event.Frame, s SwatchState, dx, dy int) {
	el.MoveTo(s.OriginX+dx, s.OriginY+dy)
	if fits(f) {
		el.Draw(f)
	}
}

// screenElement has no look. It re-centers the demo when the terminal is
// resized, picks up theme reloads, and clears the hover on every move so
// the pickers below can set it again.
func screenElement(reload ThemeSource) *element.Element[SwatchState] {
	el := element.New[SwatchState](0, 0, look.Empty())

	el.OnLoop = func(_ *element.Element[SwatchState], s *SwatchState, ev event.Data) {
		x, y := ev.Center(AppWidth, AppHeight)
		x, y = max(x, 0), max(y, 0)
		if x != s.OriginX || y != s.OriginY {
			ev.ClearBelow(0)
			s.OriginX, s.OriginY = x, y
		}
		if reload != nil {
			if t, ok := reload(); ok {
				s.Theme = t
			}
		}
	}
	el.OnMove = func(_ *element.Element[SwatchState], s *SwatchState, _ event.Data) {
		s.Hover = Empty
	}
	el.OnState = func(_ *element.Element[SwatchState], _ SwatchState, f event.Frame) {
		if !fits(f) {
			f.ClearBelow(0)
			f.Draw(0, 0, look.Text(tooSmallMsg, core.DefaultStyle().Bold()))
		}
	}
	return el
}

func titleElement() *element.Element[SwatchState] {
	el := element.New[SwatchState](0, 0, look.Empty())
	el.OnState = func(el *element.Element[SwatchState], s SwatchState, f event.Frame) {
		el.Look = look.Text("tickloop swatches", core.NewStyle(s.Theme.Accent).Bold())
		drawRelative(el, f, s, marginX, 0)
	}
	return el
}

// SwatchLook renders the swatch row. The hovered swatch is marked with
// dots and the brush with brackets.
func SwatchLook(hover, brush int) look.Look {
	segs := make([]look.Segment, SwatchCount)
	for i := range segs {
		text := "  "
		switch i {
		case brush:
			text = "[]"
		case hover:
			text = "··"
		}
		segs[i] = look.Seg(text, core.DefaultStyle().WithBackground(SwatchColor(i)))
	}
	return look.FromSegments(segs)
}

func swatchElement() *element.Element[SwatchState] {
	el := element.New[SwatchState](0, 0, SwatchLook(Empty, Empty))

	at := func(el *element.Element[SwatchState], ev event.Data) (int, bool) {
		if !element.MouseOver(el, ev) {
			return 0, false
		}
		return (ev.X - el.X) / swatchW, true
	}

	el.OnMove = func(el *element.Element[SwatchState], s *SwatchState, ev event.Data) {
		if i, ok := at(el, ev); ok {
			s.Hover = i
		}
	}
	el.OnClick = func(el *element.Element[SwatchState], s *SwatchState, ev event.Data) {
		if i, ok := at(el, ev); ok {
			s.Brush = i
			s.Cursor = s.Palette.Set(s.Cursor, i)
		}
	}
	el.OnState = func(el *element.Element[SwatchState], s SwatchState, f event.Frame) {
		el.Look = SwatchLook(s.Hover, s.Brush)
		drawRelative(el, f, s, marginX, swatchesY)
	}
	return el
}

// PaletteLook renders the palette: each slot is two cells between blank
// separators, filled with the slot color, or ':' when empty. The cursor
// slot shows '+'.
func PaletteLook(p Palette, cursor int) look.Look {
	var segs []look.Segment
	for i, c := range p {
		mark := ":"
		style := core.DefaultStyle()
		if c != Empty {
			mark = " "
			style = style.WithBackground(SwatchColor(c))
		}
		if i == cursor {
			mark = "+"
		}
		segs = append(segs,
			look.Seg(" ", core.DefaultStyle()),
			look.Seg(mark+mark, style),
			look.Seg(" ", core.DefaultStyle()),
		)
	}
	return look.FromSegments(segs)
}

func paletteElement() *element.Element[SwatchState] {
	el := element.New[SwatchState](0, 0, PaletteLook(EmptyPalette(), 0))

	// slot returns the palette slot under the pointer. Separator columns
	// are not part of any slot.
	slot := func(el *element.Element[SwatchState], ev event.Data) (int, bool) {
		if !element.MouseOver(el, ev) {
			return 0, false
		}
		col := ev.X - el.X
		if m := col % slotW; m != 1 && m != 2 {
			return 0, false
		}
		return col / slotW, true
	}

	el.OnMove = func(el *element.Element[SwatchState], s *SwatchState, ev event.Data) {
		if i, ok := slot(el, ev); ok {
			s.Hover = s.Palette[i]
		}
	}
	el.OnClick = func(el *element.Element[SwatchState], s *SwatchState, ev event.Data) {
		if i, ok := slot(el, ev); ok {
			s.Brush = s.Palette[i]
			s.Cursor = i
		}
	}
	el.OnKeypress = func(_ *element.Element[SwatchState], s *SwatchState, ev event.Data) {
		switch ev.Key {
		case key.Left:
			s.Cursor = (s.Cursor + PaletteSize - 1) % PaletteSize
		case key.Right:
			s.Cursor = (s.Cursor + 1) % PaletteSize
		case key.Delete:
			s.Palette[s.Cursor] = Empty
		}
	}
	el.OnState = func(el *element.Element[SwatchState], s SwatchState, f event.Frame) {
		el.Look = PaletteLook(s.Palette, s.Cursor)
		drawRelative(el, f, s, marginX, paletteY)
	}
	return el
}

func colorChip(i int) look.Look {
	if i == Empty {
		return look.Text("none", core.DefaultStyle().Dim())
	}
	return look.Block(4, 1, core.DefaultStyle().WithBackground(SwatchColor(i)))
}

// InfoLook shows the brush and hovered colors side by side.
func InfoLook(brush, hover int) look.Look {
	label := core.DefaultStyle().Bold()
	return look.Text("brush ", label).
		Beside(colorChip(brush)).
		Beside(look.Text("   hover ", label)).
		Beside(colorChip(hover))
}

func infoElement() *element.Element[SwatchState] {
	el := element.New[SwatchState](0, 0, look.Empty())
	el.OnState = func(el *element.Element[SwatchState], s SwatchState, f event.Frame) {
		// Blank the previous look first; its width varies.
		if el.Width() > 0 && fits(f) {
			f.Draw(el.X, el.Y, look.Block(el.Width(), 1, core.DefaultStyle()))
		}
		el.Look = InfoLook(s.Brush, s.Hover)
		drawRelative(el, f, s, marginX, infoY)
	}
	return el
}

const helpText = "←/→ slot   del clear   q quit"

func helpElement() *element.Element[SwatchState] {
	el := element.New[SwatchState](0, 0, look.Text(helpText, core.DefaultStyle().Dim()))
	el.OnState = func(el *element.Element[SwatchState], s SwatchState, f event.Frame) {
		muted := s.Theme.Accent.Blend(s.Theme.Background, 0.5)
		el.Look = look.Text(helpText, core.NewStyle(muted))
		drawRelative(el, f, s, marginX, helpY)
	}
	return el
}

func exitElement() *element.Element[SwatchState] {
	el := element.New[SwatchState](0, 0, look.Empty())
	el.OnClick = func(el *element.Element[SwatchState], s *SwatchState, ev event.Data) {
		if element.MouseOver(el, ev) {
			s.Exit = true
		}
	}
	el.OnKeypress = func(_ *element.Element[SwatchState], s *SwatchState, ev event.Data) {
		switch {
		case ev.Key == key.Escape, ev.Key == "q":
			s.Exit = true
		case ev.Key == "c" && ev.HasModifier(key.Ctrl):
			s.Exit = true
		}
	}
	el.OnState = func(el *element.Element[SwatchState], s SwatchState, f event.Frame) {
		el.Look = look.Text("[ Exit ]", core.NewStyle(s.Theme.Accent).Reverse())
		drawRelative(el, f, s, marginX, exitY)
	}
	return el
}
