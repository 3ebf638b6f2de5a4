// Package display holds the visual buffer that highlighters paint into:
// lines of styled atoms, built from buffer text by the render pipeline.
package display

import (
	"unicode/utf8"

	"github.com/bethropolis/prism/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// AtomKind tells whether an atom mirrors buffer text or was inserted.
type AtomKind uint8

const (
	// KindRange atoms show buffer text and remember where it came from.
	KindRange AtomKind = iota
	// KindText atoms hold text that is not in the buffer (gutters, markers).
	KindText
	// KindReplaced atoms stand in for a buffer span with different text,
	// e.g. a tab expanded to spaces. The span is kept whole.
	KindReplaced
)

// Atom is a styled text fragment. Range atoms never span lines.
type Atom struct {
	Text  string
	Style tcell.Style
	Kind  AtomKind
	Begin types.Position // buffer span, unset for KindText
	End   types.Position
}

// NewRangeAtom creates an atom for buffer text starting at begin.
func NewRangeAtom(text string, begin types.Position, style tcell.Style) Atom {
	end := types.Position{Line: begin.Line, Col: begin.Col + utf8.RuneCountInString(text)}
	return Atom{Text: text, Style: style, Kind: KindRange, Begin: begin, End: end}
}

// NewTextAtom creates an atom for inserted text.
func NewTextAtom(text string, style tcell.Style) Atom {
	return Atom{Text: text, Style: style, Kind: KindText}
}

// NewReplacedAtom creates an atom displaying text in place of the buffer span [begin, end).
func NewReplacedAtom(text string, begin, end types.Position, style tcell.Style) Atom {
	return Atom{Text: text, Style: style, Kind: KindReplaced, Begin: begin, End: end}
}

// HasBufferRange reports whether the atom maps back to buffer positions.
func (a Atom) HasBufferRange() bool {
	return a.Kind != KindText
}

// Length returns the width of the atom in terminal cells.
func (a Atom) Length() int {
	return uniseg.StringWidth(a.Text)
}

// splitAt cuts the atom at a cell offset. A grapheme straddling the offset
// goes to the right half, so left may be narrower than col. Zero-width
// graphemes at the offset also go right.
func (a Atom) splitAt(col int) (Atom, Atom) {
	width := 0
	cut := len(a.Text)
	gr := uniseg.NewGraphemes(a.Text)
	for gr.Next() {
		if width >= col || width+gr.Width() > col {
			cut, _ = gr.Positions()
			break
		}
		width += gr.Width()
	}

	left, right := a, a
	left.Text, right.Text = a.Text[:cut], a.Text[cut:]
	switch a.Kind {
	case KindRange:
		left.End = types.Position{Line: a.Begin.Line, Col: a.Begin.Col + utf8.RuneCountInString(left.Text)}
		right.Begin = left.End
	case KindReplaced:
		right.Begin = a.End // the span stays with the left half
	}
	return left, right
}
