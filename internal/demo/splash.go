package demo

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/tickloop/internal/element"
	"github.com/dshills/tickloop/internal/event"
	"github.com/dshills/tickloop/internal/renderer/core"
	"github.com/dshills/tickloop/internal/renderer/look"
)

// SplashState is the state of the splash run.
type SplashState struct {
	Ticks int
}

var logo = []string{
	` _   _      _    _                   `,
	`| |_(_) ___| | _| | ___   ___  _ __  `,
	`| __| |/ __| |/ / |/ _ \ / _ \| '_ \ `,
	`| |_| | (__|   <| | (_) | (_) | |_) |`,
	` \__|_|\___|_|\_\_|\___/ \___/| .__/ `,
	`                              |_|    `,
}

const (
	tagline      = "A reactive terminal UI engine"
	taglineWidth = 40
	footerText   = "Made with Go"

	// logoHues is how many colors the logo rows cycle through.
	logoHues = 5
)

// BouncingText returns the tagline padded to a fixed width, shifted right
// by n cells and bouncing back once it reaches the far edge.
func BouncingText(n int) string {
	return bounce(tagline, taglineWidth, n)
}

// bounce pads text to width columns with the text offset by a pad that
// walks 0..max..0 as n grows. Text wider than width is truncated.
func bounce(text string, width, n int) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return runewidth.Truncate(text, width, "")
	}
	maxPad := width - w
	pos := n % (maxPad * 2)
	pad := pos
	if pos > maxPad {
		pad = maxPad*2 - pos
	}
	return strings.Repeat(" ", pad) + text + strings.Repeat(" ", maxPad-pad)
}

// LogoColor returns the color of logo row at tick n. Adjacent rows are one
// step apart so the colors roll down the logo.
func LogoColor(row, n int) core.Color {
	step := (n + row + 2) % logoHues
	return core.ColorFromHSV(float64(step)*360/logoHues, 0.55, 1)
}

// LogoLook renders the logo and tagline for tick n.
func LogoLook(n int) look.Look {
	rows := make([][]look.Segment, 0, len(logo))
	for i, line := range logo {
		style := core.NewStyle(LogoColor(i, n)).Bold()
		rows = append(rows, look.Row(look.Seg(line, style)))
	}
	tagline := look.FromSegments(nil, look.Row(look.Seg(BouncingText(n), core.DefaultStyle())))
	return look.FromSegments(rows...).Above(tagline)
}

// Splash builds the splash screen: a centered logo animated by the loop
// phase and a footer drawn on every state change.
func Splash(theme Theme) *element.Collection[SplashState] {
	logoEl := element.New[SplashState](0, 0, look.Empty())
	logoEl.OnLoop = func(el *element.Element[SplashState], s *SplashState, ev event.Data) {
		el.Look = LogoLook(ev.Tick)
		el.MoveTo(ev.Center(el.Width(), el.Height()))
		el.Draw(ev.Frame)
		s.Ticks = ev.Tick
	}

	footer := element.New[SplashState](0, 0, look.Text(footerText, core.NewStyle(theme.Accent).Bold().Dim()))
	footer.OnState = func(el *element.Element[SplashState], _ SplashState, f event.Frame) {
		el.MoveTo((f.Cols-el.Width())/2, f.Rows-1)
		el.Draw(f)
	}

	return element.NewCollection(logoEl, footer)
}

// SplashDone returns the splash exit predicate: the run ends once ready
// reports true and at least minTicks loop phases have passed.
func SplashDone(minTicks int, ready func() bool) func(SplashState) bool {
	return func(s SplashState) bool {
		return s.Ticks >= minTicks && ready()
	}
}
