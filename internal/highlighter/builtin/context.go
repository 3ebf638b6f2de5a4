package builtin

import (
	"github.com/bethropolis/prism/internal/buffer"
	"github.com/bethropolis/prism/internal/highlighter"
	"github.com/bethropolis/prism/internal/types"
)

const defaultTabWidth = 4

func bufferOf(ctx highlighter.HighlightContext) buffer.Buffer {
	if ctx.Context == nil {
		return nil
	}
	return ctx.Context.Buffer()
}

func lineCount(ctx highlighter.HighlightContext) int {
	if b := bufferOf(ctx); b != nil {
		return b.LineCount()
	}
	return 0
}

func cursorOf(ctx highlighter.HighlightContext) types.Position {
	if ctx.Context == nil {
		return types.Position{}
	}
	return ctx.Context.Cursor()
}

func tabWidthOf(ctx highlighter.HighlightContext) int {
	if ctx.Context != nil {
		if w := ctx.Context.TabWidth(); w > 0 {
			return w
		}
	}
	return defaultTabWidth
}

// clip intersects span with r.
func clip(span, r types.BufferRange) (types.BufferRange, bool) {
	if span.Begin.Less(r.Begin) {
		span.Begin = r.Begin
	}
	if r.End.Less(span.End) {
		span.End = r.End
	}
	return span, !span.Empty()
}
