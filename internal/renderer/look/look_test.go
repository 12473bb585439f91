package look

import (
	"testing"

	"github.com/dshills/tickloop/internal/renderer/core"
)

func TestFromStringDimensions(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		width  int
		height int
	}{
		{"single char", "x", 1, 1},
		{"word", "hello", 5, 1},
		{"two rows", "ab\nabcd", 4, 2},
		{"empty", "", 0, 1},
		{"wide glyph", "日本", 4, 1},
		{"combining mark", "é", 1, 1},
		{"emoji", "👍", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := FromString(tt.text)
			if got := l.Width(); got != tt.width {
				t.Errorf("Width() = %d, expected %d", got, tt.width)
			}
			if got := l.Height(); got != tt.height {
				t.Errorf("Height() = %d, expected %d", got, tt.height)
			}
			if got := l.String(); got != tt.text {
				t.Errorf("String() = %q, expected %q", got, tt.text)
			}
		})
	}
}

func TestFromStringSegmentsPerGrapheme(t *testing.T) {
	l := FromString("aéb")
	rows := l.Rows()
	if len(rows) != 1 {
		t.Fatalf("rows = %d, expected 1", len(rows))
	}
	want := []string{"a", "é", "b"}
	if len(rows[0]) != len(want) {
		t.Fatalf("segments = %d, expected %d", len(rows[0]), len(want))
	}
	for i, s := range rows[0] {
		if s.Text != want[i] {
			t.Errorf("segment %d = %q, expected %q", i, s.Text, want[i])
		}
		if !s.Style.IsDefault() {
			t.Errorf("segment %d style = %+v, expected default", i, s.Style)
		}
	}
}

func TestEmpty(t *testing.T) {
	for name, l := range map[string]Look{
		"Empty":       Empty(),
		"zero":        {},
		"empty text":  FromString(""),
		"zero block":  Block(0, 3, core.DefaultStyle()),
		"empty rows":  FromSegments(nil, nil),
		"no segments": FromSegments(),
	} {
		if !l.IsEmpty() {
			t.Errorf("%s: IsEmpty() = false, expected true", name)
		}
	}
	if FromString(" ").IsEmpty() {
		t.Error("a single blank should not be empty")
	}
}

func TestBlock(t *testing.T) {
	style := core.DefaultStyle().WithBackground(core.ColorBlue)
	l := Block(3, 2, style)

	if l.Width() != 3 || l.Height() != 2 {
		t.Errorf("Block size = %dx%d, expected 3x2", l.Width(), l.Height())
	}
	for _, row := range l.Rows() {
		for _, s := range row {
			if s.Style != style {
				t.Errorf("segment style = %+v, expected %+v", s.Style, style)
			}
		}
	}
}

func TestStyleHelpers(t *testing.T) {
	base := FromString("ab\nc")

	red := base.Foreground(core.ColorRed).Background(core.ColorBlack).Bold().Dim()
	for _, row := range red.Rows() {
		for _, s := range row {
			if s.Style.Foreground != core.ColorRed || s.Style.Background != core.ColorBlack {
				t.Errorf("segment %q colors = %v/%v", s.Text, s.Style.Foreground, s.Style.Background)
			}
			if !s.Style.Attributes.Has(core.AttrBold) || !s.Style.Attributes.Has(core.AttrDim) {
				t.Errorf("segment %q attributes = %b", s.Text, s.Style.Attributes)
			}
		}
	}

	// The receiver is untouched.
	for _, row := range base.Rows() {
		for _, s := range row {
			if !s.Style.IsDefault() {
				t.Errorf("base segment %q changed style to %+v", s.Text, s.Style)
			}
		}
	}

	styled := Text("xy", core.NewStyle(core.ColorGreen))
	if styled.Rows()[0][1].Style.Foreground != core.ColorGreen {
		t.Error("Text should apply the style to every segment")
	}
}

func TestRowsReturnsCopy(t *testing.T) {
	l := FromString("ab")
	rows := l.Rows()
	rows[0][0].Text = "z"

	if l.String() != "ab" {
		t.Errorf("mutating Rows() leaked into look: %q", l.String())
	}
}

func TestEqual(t *testing.T) {
	a := FromString("ab")
	if !a.Equal(FromString("ab")) {
		t.Error("identical looks should be equal")
	}
	if a.Equal(FromString("ac")) {
		t.Error("different text should not be equal")
	}
	if a.Equal(a.Bold()) {
		t.Error("different style should not be equal")
	}
	if a.Equal(FromString("ab\n")) {
		t.Error("different height should not be equal")
	}
}

func TestFromSegments(t *testing.T) {
	style := core.NewStyle(core.ColorCyan)
	l := FromSegments(
		Row(Seg("[", core.DefaultStyle()), Seg("ok", style), Seg("]", core.DefaultStyle())),
		Row(Seg("wide 日", style)),
	)

	if l.Height() != 2 {
		t.Errorf("Height() = %d, expected 2", l.Height())
	}
	if l.Width() != 7 {
		t.Errorf("Width() = %d, expected 7", l.Width())
	}
	if l.String() != "[ok]\nwide 日" {
		t.Errorf("String() = %q", l.String())
	}
}

func TestBesideAndAbove(t *testing.T) {
	left := FromString("a\nbbb")
	right := FromString("X\nY\nZ")

	got := left.Beside(right)
	if got.String() != "a  X\nbbbY\n   Z" {
		t.Errorf("Beside = %q", got.String())
	}
	if got.Width() != 4 || got.Height() != 3 {
		t.Errorf("Beside size = %dx%d, expected 4x3", got.Width(), got.Height())
	}

	stacked := FromString("top").Above(FromString("bottom"))
	if stacked.String() != "top\nbottom" {
		t.Errorf("Above = %q", stacked.String())
	}
}
