// Package look describes what an element looks like: a small grid of styled
// text segments, replaced wholesale whenever the element changes.
package look

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/tickloop/internal/renderer/core"
)

// Segment is a run of text drawn with a single style.
type Segment struct {
	Text  string
	Style core.Style
}

// Seg creates a segment.
func Seg(text string, style core.Style) Segment {
	return Segment{Text: text, Style: style}
}

// Width returns the segment width in terminal columns.
func (s Segment) Width() int {
	return runewidth.StringWidth(s.Text)
}

// Look is an ordered list of rows, each an ordered list of segments.
// The zero value is the empty look. Looks are values: every method returns
// a new Look and never modifies the receiver's rows.
type Look struct {
	rows [][]Segment
}

// Empty returns a look with no rows. It occupies no cells and is never hit.
func Empty() Look {
	return Look{}
}

// FromString builds a look from text, one row per line and one segment per
// grapheme cluster, all in the default style.
func FromString(s string) Look {
	return FromRows(strings.Split(s, "\n")...)
}

// FromRows builds a look with one row per string.
func FromRows(rows ...string) Look {
	l := Look{rows: make([][]Segment, 0, len(rows))}
	for _, r := range rows {
		l.rows = append(l.rows, graphemes(r, core.DefaultStyle()))
	}
	return l
}

// FromSegments builds a look from prepared rows of segments.
func FromSegments(rows ...[]Segment) Look {
	l := Look{rows: make([][]Segment, 0, len(rows))}
	for _, r := range rows {
		l.rows = append(l.rows, append([]Segment(nil), r...))
	}
	return l
}

// Row is shorthand for building one row of segments.
func Row(segs ...Segment) []Segment {
	return segs
}

// Text builds a single-style look from text.
func Text(s string, style core.Style) Look {
	return FromString(s).WithStyle(style)
}

// Block builds a w by h rectangle of blanks in the given style.
func Block(w, h int, style core.Style) Look {
	if w <= 0 || h <= 0 {
		return Empty()
	}
	rows := make([][]Segment, h)
	for i := range rows {
		rows[i] = []Segment{{Text: strings.Repeat(" ", w), Style: style}}
	}
	return Look{rows: rows}
}

func graphemes(s string, style core.Style) []Segment {
	var segs []Segment
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		segs = append(segs, Segment{Text: g.Str(), Style: style})
	}
	return segs
}

// Rows returns a copy of the rows.
func (l Look) Rows() [][]Segment {
	rows := make([][]Segment, len(l.rows))
	for i, r := range l.rows {
		rows[i] = append([]Segment(nil), r...)
	}
	return rows
}

// Height returns the number of rows.
func (l Look) Height() int {
	return len(l.rows)
}

// Width returns the width of the widest row in terminal columns.
func (l Look) Width() int {
	w := 0
	for _, r := range l.rows {
		rw := 0
		for _, s := range r {
			rw += s.Width()
		}
		w = max(w, rw)
	}
	return w
}

// IsEmpty reports whether the look occupies no cells.
func (l Look) IsEmpty() bool {
	return l.Width() == 0 || l.Height() == 0
}

// String returns the text of the look, rows joined by newlines.
func (l Look) String() string {
	var b strings.Builder
	for i, r := range l.rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, s := range r {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// Equal reports whether two looks have the same rows and styles.
func (l Look) Equal(other Look) bool {
	if len(l.rows) != len(other.rows) {
		return false
	}
	for i := range l.rows {
		if len(l.rows[i]) != len(other.rows[i]) {
			return false
		}
		for j := range l.rows[i] {
			if l.rows[i][j] != other.rows[i][j] {
				return false
			}
		}
	}
	return true
}

func (l Look) mapStyle(fn func(core.Style) core.Style) Look {
	out := Look{rows: make([][]Segment, len(l.rows))}
	for i, r := range l.rows {
		out.rows[i] = make([]Segment, len(r))
		for j, s := range r {
			out.rows[i][j] = Segment{Text: s.Text, Style: fn(s.Style)}
		}
	}
	return out
}

// WithStyle replaces the style of every segment.
func (l Look) WithStyle(style core.Style) Look {
	return l.mapStyle(func(core.Style) core.Style { return style })
}

// Foreground sets the foreground color of every segment.
func (l Look) Foreground(c core.Color) Look {
	return l.mapStyle(func(s core.Style) core.Style { return s.WithForeground(c) })
}

// Background sets the background color of every segment.
func (l Look) Background(c core.Color) Look {
	return l.mapStyle(func(s core.Style) core.Style { return s.WithBackground(c) })
}

// Bold makes every segment bold.
func (l Look) Bold() Look {
	return l.mapStyle(core.Style.Bold)
}

// Dim makes every segment dim.
func (l Look) Dim() Look {
	return l.mapStyle(core.Style.Dim)
}

// Beside places other to the right of l, aligning top rows. Rows of l are
// padded to l's width so other starts in the same column on every row.
func (l Look) Beside(other Look) Look {
	w := l.Width()
	h := max(l.Height(), other.Height())
	out := Look{rows: make([][]Segment, h)}
	for i := 0; i < h; i++ {
		var row []Segment
		rw := 0
		if i < len(l.rows) {
			row = append(row, l.rows[i]...)
			for _, s := range l.rows[i] {
				rw += s.Width()
			}
		}
		if i < len(other.rows) {
			if pad := w - rw; pad > 0 {
				row = append(row, Segment{Text: strings.Repeat(" ", pad), Style: core.DefaultStyle()})
			}
			row = append(row, other.rows[i]...)
		}
		out.rows[i] = row
	}
	return out
}

// Above stacks other below l.
func (l Look) Above(other Look) Look {
	return FromSegments(append(l.Rows(), other.Rows()...)...)
}
