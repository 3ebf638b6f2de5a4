package builtin

import (
	"github.com/bethropolis/prism/internal/buffer"
	"github.com/bethropolis/prism/internal/display"
	"github.com/bethropolis/prism/internal/highlighter"
	"github.com/bethropolis/prism/internal/theme"
	"github.com/bethropolis/prism/internal/types"
	"github.com/gdamore/tcell/v2"
)

type fakeContext struct {
	buf      buffer.Buffer
	cursor   types.Position
	theme    *theme.Theme
	tabWidth int
}

func (c *fakeContext) Buffer() buffer.Buffer  { return c.buf }
func (c *fakeContext) Cursor() types.Position { return c.cursor }
func (c *fakeContext) Theme() *theme.Theme    { return c.theme }
func (c *fakeContext) TabWidth() int          { return c.tabWidth }

func newContext(text string) *fakeContext {
	return &fakeContext{buf: buffer.FromString(text), theme: theme.DevComfortDark, tabWidth: 4}
}

// displayOf mirrors every buffer line into a display buffer.
func displayOf(b buffer.Buffer) *display.Buffer {
	out := display.NewBuffer()
	for i, line := range b.Lines() {
		out.AppendLine(display.NewLine(display.NewRangeAtom(string(line), types.Position{Line: i}, tcell.StyleDefault)))
	}
	out.SetRange(types.BufferRange{End: types.Position{Line: b.LineCount()}})
	return out
}

func hctx(ec highlighter.EditContext, pass highlighter.Pass) highlighter.HighlightContext {
	return highlighter.HighlightContext{Context: ec, Pass: pass}
}

// styleAt returns the style of the atom covering buffer position pos on
// display line l.
func styleAt(l *display.Line, pos types.Position) (tcell.Style, bool) {
	for _, a := range l.Atoms() {
		if a.HasBufferRange() && !pos.Less(a.Begin) && pos.Less(a.End) {
			return a.Style, true
		}
	}
	return tcell.StyleDefault, false
}

func face(name string) tcell.Style {
	return theme.DevComfortDark.GetStyle(name)
}
