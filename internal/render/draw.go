package render

import (
	"github.com/bethropolis/prism/internal/display"
	"github.com/bethropolis/prism/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Region is a rectangle of the screen.
type Region struct {
	X, Y, Width, Height int
}

// Draw paints buf into the region. Cells the buffer does not cover get the
// base style.
func Draw(screen tcell.Screen, buf *display.Buffer, region Region, base tcell.Style) {
	for y := 0; y < region.Height; y++ {
		for x := 0; x < region.Width; x++ {
			screen.SetContent(region.X+x, region.Y+y, ' ', nil, base)
		}
	}

	for row, l := range buf.Lines() {
		if row >= region.Height {
			break
		}
		x := 0
		for _, a := range l.Atoms() {
			gr := uniseg.NewGraphemes(a.Text)
			for gr.Next() {
				w := gr.Width()
				if w == 0 {
					continue
				}
				if x+w > region.Width {
					break
				}
				runes := gr.Runes()
				screen.SetContent(region.X+x, region.Y+row, runes[0], runes[1:], a.Style)
				x += w
			}
		}
	}
}

// CursorCell returns the cell of buffer position cursor within buf, relative
// to the top-left of the display buffer. A cursor just past the end of a
// line sits after its last cell.
func CursorCell(buf *display.Buffer, cursor types.Position) (x, y int, ok bool) {
	for row, l := range buf.Lines() {
		col := 0
		after, found := 0, false
		for _, a := range l.Atoms() {
			w := a.Length()
			if a.HasBufferRange() && !cursor.Less(a.Begin) && cursor.Less(a.End) {
				if a.Kind == display.KindRange {
					return col + runeCells(a.Text, cursor.Col-a.Begin.Col), row, true
				}
				return col, row, true
			}
			if a.HasBufferRange() && a.End == cursor {
				after, found = col+w, true
			}
			col += w
		}
		if found {
			return after, row, true
		}
	}
	return 0, 0, false
}

// runeCells returns the width of the first n runes of s.
func runeCells(s string, n int) int {
	width, runes := 0, 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() && runes < n {
		width += gr.Width()
		runes += len(gr.Runes())
	}
	return width
}
