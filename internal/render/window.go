// Package render runs the highlighter passes over a window and draws the
// resulting display buffer.
package render

import (
	"github.com/bethropolis/prism/internal/buffer"
	"github.com/bethropolis/prism/internal/display"
	"github.com/bethropolis/prism/internal/highlighter"
	"github.com/bethropolis/prism/internal/logger"
	"github.com/bethropolis/prism/internal/theme"
	"github.com/bethropolis/prism/internal/types"
	"github.com/rivo/uniseg"
)

// Window is a view on a buffer with a highlighter tree. Position persists
// between redraws.
type Window struct {
	root      highlighter.Highlighter
	pos       types.DisplayCoord
	dims      types.DisplayCoord
	scrollOff types.DisplayCoord
	setup     highlighter.DisplaySetup
}

// NewWindow creates a window painting with root.
func NewWindow(root highlighter.Highlighter) *Window {
	return &Window{root: root}
}

// Resize sets the number of lines and columns the window shows.
func (w *Window) Resize(lines, columns int) {
	w.dims = types.DisplayCoord{Line: max(0, lines), Column: max(0, columns)}
}

// Dimensions returns the size set by Resize.
func (w *Window) Dimensions() types.DisplayCoord { return w.dims }

// SetScrollOff sets the margin kept between the cursor and the window edges.
func (w *Window) SetScrollOff(lines, columns int) {
	w.scrollOff = types.DisplayCoord{Line: max(0, lines), Column: max(0, columns)}
}

// Position returns the first buffer line and column shown.
func (w *Window) Position() types.DisplayCoord { return w.pos }

// SetPosition scrolls the window. The next redraw still keeps the cursor
// visible.
func (w *Window) SetPosition(pos types.DisplayCoord) {
	w.pos = types.DisplayCoord{Line: max(0, pos.Line), Column: max(0, pos.Column)}
}

// Setup returns the display setup of the last redraw.
func (w *Window) Setup() highlighter.DisplaySetup { return w.setup }

// Redraw runs the passes and returns the display buffer to draw. Each pass
// runs over the whole tree before the next one starts:
//
//  1. Move, on the display setup; the window position it ends with is kept
//  2. the display buffer is built from the lines the setup selects
//  3. Wrap
//  4. lines are cut to the window columns unless the setup asks for full lines
//  5. Colorize
func (w *Window) Redraw(ctx highlighter.EditContext, disabled []string) *display.Buffer {
	hctx := highlighter.HighlightContext{Context: ctx, DisabledIDs: disabled}
	setup := w.initialSetup(ctx)

	w.root.ComputeDisplaySetup(hctx.WithPass(highlighter.PassMove), &setup)
	w.scrollColumns(&setup)
	w.pos = setup.WindowPos
	w.setup = setup

	buf := materialize(ctx.Buffer(), setup, ctx.Theme())
	w.root.Highlight(hctx.WithPass(highlighter.PassWrap), buf, buf.Range())

	if !setup.FullLines {
		for _, l := range buf.Lines() {
			l.Trim(setup.WindowPos.Column, setup.WindowRange.Column)
		}
	}

	w.root.Highlight(hctx.WithPass(highlighter.PassColorize), buf, buf.Range())
	buf.Optimize()

	logger.DebugTagf("render", "Redraw: lines %d-%d, range %+v", buf.Range().Begin.Line, buf.Range().End.Line, setup.WindowRange)
	return buf
}

// initialSetup positions the window so the cursor line stays inside the
// scroll margin. Columns are settled after the Move pass, once gutters have
// claimed their width.
func (w *Window) initialSetup(ctx highlighter.EditContext) highlighter.DisplaySetup {
	off := types.DisplayCoord{
		Line:   min(w.scrollOff.Line, (w.dims.Line-1)/2),
		Column: min(w.scrollOff.Column, (w.dims.Column-1)/2),
	}
	off.Line, off.Column = max(0, off.Line), max(0, off.Column)

	cursor := ctx.Cursor()
	pos := w.pos
	if cursor.Line < pos.Line+off.Line {
		pos.Line = max(0, cursor.Line-off.Line)
	} else if cursor.Line >= pos.Line+w.dims.Line-off.Line {
		pos.Line = cursor.Line - w.dims.Line + 1 + off.Line
	}
	if lines := ctx.Buffer().LineCount(); pos.Line >= lines {
		pos.Line = max(0, lines-1)
	}

	col := cursorColumn(ctx.Buffer(), cursor, ctx.TabWidth())
	return highlighter.DisplaySetup{
		WindowPos:    pos,
		WindowRange:  w.dims,
		CursorPos:    types.DisplayCoord{Line: cursor.Line - pos.Line, Column: col - pos.Column},
		ScrollOffset: off,
	}
}

// scrollColumns moves the window sideways so the cursor column is visible.
func (w *Window) scrollColumns(setup *highlighter.DisplaySetup) {
	if setup.FullLines {
		return
	}
	off := min(setup.ScrollOffset.Column, max(0, (setup.WindowRange.Column-1)/2))
	if under := setup.CursorPos.Column - off; under < 0 {
		shift := max(under, -setup.WindowPos.Column)
		setup.WindowPos.Column += shift
		setup.CursorPos.Column -= shift
	}
	if over := setup.CursorPos.Column + off - setup.WindowRange.Column + 1; over > 0 && setup.WindowRange.Column > 0 {
		setup.WindowPos.Column += over
		setup.CursorPos.Column -= over
	}
}

// materialize builds one full-line display line per buffer line selected by
// the setup.
func materialize(src buffer.Buffer, setup highlighter.DisplaySetup, th *theme.Theme) *display.Buffer {
	style := th.GetStyle(theme.DefaultFace)
	first := setup.WindowPos.Line
	last := min(first+setup.WindowRange.Line, src.LineCount())

	buf := display.NewBuffer()
	for i := first; i < last; i++ {
		text, err := src.Line(i)
		if err != nil {
			logger.Warnf("render: %v", err)
			break
		}
		buf.AppendLine(display.NewLine(display.NewRangeAtom(string(text), types.Position{Line: i}, style)))
	}
	buf.SetRange(types.BufferRange{
		Begin: types.Position{Line: first},
		End:   types.Position{Line: max(first, last)},
	})
	return buf
}

// cursorColumn returns the display column of pos with tabs expanded.
func cursorColumn(src buffer.Buffer, pos types.Position, tabWidth int) int {
	text, err := src.Line(pos.Line)
	if err != nil {
		return 0
	}
	if tabWidth <= 0 {
		tabWidth = 1
	}
	col, runes := 0, 0
	gr := uniseg.NewGraphemes(string(text))
	for gr.Next() && runes < pos.Col {
		if gr.Str() == "\t" {
			col += tabWidth - col%tabWidth
		} else {
			col += gr.Width()
		}
		runes += len(gr.Runes())
	}
	return col
}
