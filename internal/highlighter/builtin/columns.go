package builtin

import (
	"fmt"
	"strings"

	"github.com/bethropolis/prism/internal/display"
	"github.com/bethropolis/prism/internal/highlighter"
	"github.com/bethropolis/prism/internal/types"
)

const gutterFace = "Gutter"

// columns reserves a fixed number of cells on the left of the window.
type columns struct {
	width int
	face  string
}

func newColumns(params []string) (highlighter.NamedHighlighter, error) {
	if len(params) < 1 || len(params) > 2 {
		return highlighter.NamedHighlighter{}, fmt.Errorf("%w: columns <width> [<face>]", ErrParams)
	}
	width, err := parseCount("width", params[0])
	if err != nil {
		return highlighter.NamedHighlighter{}, err
	}
	c := &columns{width: width, face: gutterFace}
	if len(params) == 2 {
		c.face = params[1]
	}
	return highlighter.NamedHighlighter{
		ID:          "columns",
		Highlighter: highlighter.NewLeaf(highlighter.PassMove|highlighter.PassColorize, c),
	}, nil
}

func (c *columns) AdjustSetup(_ highlighter.HighlightContext, setup *highlighter.DisplaySetup) {
	setup.WindowRange.Column = max(0, setup.WindowRange.Column-c.width)
}

func (c *columns) Paint(ctx highlighter.HighlightContext, buf *display.Buffer, _ types.BufferRange) {
	if !ctx.Pass.Intersects(highlighter.PassColorize) || c.width == 0 {
		return
	}
	blank := display.NewTextAtom(strings.Repeat(" ", c.width), ctx.Face(c.face))
	for _, l := range buf.Lines() {
		l.Insert(0, blank)
	}
}
