package highlighter

import (
	"github.com/bethropolis/prism/internal/display"
	"github.com/bethropolis/prism/internal/types"
	"github.com/gdamore/tcell/v2"
)

var (
	red  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	blue = tcell.StyleDefault.Foreground(tcell.ColorBlue)
)

// textBuffer builds a display buffer mirroring the given lines.
func textBuffer(lines ...string) *display.Buffer {
	buf := display.NewBuffer()
	for i, l := range lines {
		buf.AppendLine(display.NewLine(display.NewRangeAtom(l, types.Position{Line: i}, tcell.StyleDefault)))
	}
	buf.SetRange(types.BufferRange{End: types.Position{Line: len(lines)}})
	return buf
}

// fillWith returns a Colorize leaf setting every atom to style.
func fillWith(style tcell.Style) *Leaf {
	return NewLeaf(PassColorize, PaintFunc(func(_ HighlightContext, buf *display.Buffer, _ types.BufferRange) {
		for _, l := range buf.Lines() {
			l.ApplyStyle(0, l.Length(), style)
		}
	}))
}

// recorder returns a leaf that appends name to log whenever it runs.
func recorder(passes Pass, name string, log *[]string) *Leaf {
	return NewLeaf(passes, &recordingPainter{name: name, log: log})
}

type recordingPainter struct {
	name   string
	log    *[]string
	closed bool
}

func (p *recordingPainter) Paint(HighlightContext, *display.Buffer, types.BufferRange) {
	*p.log = append(*p.log, p.name)
}

func (p *recordingPainter) AdjustSetup(HighlightContext, *DisplaySetup) {
	*p.log = append(*p.log, p.name+":setup")
}

func (p *recordingPainter) Close() error {
	p.closed = true
	return nil
}

// cursorLine returns a Move leaf that sets the cursor line.
func cursorLine(line int) *Leaf {
	return NewLeaf(PassMove, SetupFunc(func(_ HighlightContext, s *DisplaySetup) {
		s.CursorPos.Line = line
	}))
}

func named(id string, h Highlighter) NamedHighlighter {
	return NamedHighlighter{ID: id, Highlighter: h}
}
