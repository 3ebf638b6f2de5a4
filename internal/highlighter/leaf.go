package highlighter

import (
	"io"

	"github.com/bethropolis/prism/internal/display"
	"github.com/bethropolis/prism/internal/types"
)

// Painter does the actual work of a leaf highlighter.
type Painter interface {
	Paint(ctx HighlightContext, buf *display.Buffer, r types.BufferRange)
}

// SetupAdjuster is implemented by painters that take part in the Move pass.
type SetupAdjuster interface {
	AdjustSetup(ctx HighlightContext, setup *DisplaySetup)
}

// PaintFunc adapts a function to Painter.
type PaintFunc func(ctx HighlightContext, buf *display.Buffer, r types.BufferRange)

func (f PaintFunc) Paint(ctx HighlightContext, buf *display.Buffer, r types.BufferRange) {
	f(ctx, buf, r)
}

// SetupFunc adapts a function to a Move-pass painter.
type SetupFunc func(ctx HighlightContext, setup *DisplaySetup)

func (f SetupFunc) Paint(HighlightContext, *display.Buffer, types.BufferRange) {}

func (f SetupFunc) AdjustSetup(ctx HighlightContext, setup *DisplaySetup) {
	f(ctx, setup)
}

// Leaf is a highlighter without children. It gates its painter on the
// passes given at construction.
type Leaf struct {
	passes  Pass
	painter Painter
}

// NewLeaf creates a leaf taking part in passes.
func NewLeaf(passes Pass, p Painter) *Leaf {
	return &Leaf{passes: passes, painter: p}
}

func (l *Leaf) Passes() Pass { return l.passes }

func (l *Leaf) Highlight(ctx HighlightContext, buf *display.Buffer, r types.BufferRange) {
	if l.painter == nil || !ctx.Pass.Intersects(l.passes) {
		return
	}
	l.painter.Paint(ctx, buf, r)
}

func (l *Leaf) ComputeDisplaySetup(ctx HighlightContext, setup *DisplaySetup) {
	if !ctx.Pass.Intersects(l.passes) {
		return
	}
	if a, ok := l.painter.(SetupAdjuster); ok {
		a.AdjustSetup(ctx, setup)
	}
}

func (l *Leaf) FillUniqueIDs(ids []string) []string { return ids }

// Close releases the painter's resources, if it holds any.
func (l *Leaf) Close() error {
	if c, ok := l.painter.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
