package highlighter

import (
	"slices"

	"github.com/bethropolis/prism/internal/buffer"
	"github.com/bethropolis/prism/internal/theme"
	"github.com/bethropolis/prism/internal/types"
	"github.com/gdamore/tcell/v2"
)

// EditContext is the editing state a redraw runs against. Highlighters only
// read from it.
type EditContext interface {
	Buffer() buffer.Buffer
	Cursor() types.Position
	Theme() *theme.Theme
	TabWidth() int
}

// HighlightContext carries the per-call state of one highlighting
// invocation. It must not be kept past the call it was passed to.
type HighlightContext struct {
	Context     EditContext
	Pass        Pass
	DisabledIDs []string // children with these ids are skipped, at any depth
}

// IsDisabled reports whether the child with the given id should be skipped.
func (c HighlightContext) IsDisabled(id string) bool {
	return slices.Contains(c.DisabledIDs, id)
}

// WithPass returns a copy of c for another pass.
func (c HighlightContext) WithPass(p Pass) HighlightContext {
	c.Pass = p
	return c
}

// Face resolves a theme face, falling back to the default style when no
// theme is available.
func (c HighlightContext) Face(name string) tcell.Style {
	if c.Context == nil {
		return tcell.StyleDefault
	}
	return c.Context.Theme().GetStyle(name)
}

// DisplaySetup describes where the window is and what it shows. The render
// driver fills in initial values and every Move-pass highlighter may adjust
// them in tree order; later writers win.
type DisplaySetup struct {
	WindowPos    types.DisplayCoord // first buffer line/column shown
	WindowRange  types.DisplayCoord // lines and columns available for buffer text
	CursorPos    types.DisplayCoord // cursor, relative to WindowPos
	ScrollOffset types.DisplayCoord // margin kept around the cursor
	FullLines    bool               // skip horizontal trimming
}
