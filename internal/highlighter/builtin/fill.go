package builtin

import (
	"fmt"

	"github.com/bethropolis/prism/internal/display"
	"github.com/bethropolis/prism/internal/highlighter"
	"github.com/bethropolis/prism/internal/types"
)

func newFill(params []string) (highlighter.NamedHighlighter, error) {
	if len(params) != 1 {
		return highlighter.NamedHighlighter{}, fmt.Errorf("%w: fill <face>", ErrParams)
	}
	face := params[0]
	paint := func(ctx highlighter.HighlightContext, buf *display.Buffer, _ types.BufferRange) {
		style := ctx.Face(face)
		for _, l := range buf.Lines() {
			l.ApplyStyle(0, l.Length(), style)
		}
	}
	return highlighter.NamedHighlighter{
		ID:          idFor("fill", face),
		Highlighter: highlighter.NewLeaf(highlighter.PassColorize, highlighter.PaintFunc(paint)),
	}, nil
}
