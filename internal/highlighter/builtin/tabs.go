package builtin

import (
	"fmt"
	"strings"

	"github.com/bethropolis/prism/internal/display"
	"github.com/bethropolis/prism/internal/highlighter"
	"github.com/bethropolis/prism/internal/types"
	"github.com/rivo/uniseg"
)

// tabs replaces tab characters with spaces up to the next tab stop. It runs
// in the Wrap pass, before the window is trimmed, so columns are counted
// from the start of the buffer line.
type tabs struct {
	width int // 0 uses the editing context's tab width
}

func newTabs(params []string) (highlighter.NamedHighlighter, error) {
	t := &tabs{}
	switch len(params) {
	case 0:
	case 1:
		w, err := parseCount("tab width", params[0])
		if err != nil {
			return highlighter.NamedHighlighter{}, err
		}
		if w == 0 {
			return highlighter.NamedHighlighter{}, fmt.Errorf("%w: tab width must be positive", ErrParams)
		}
		t.width = w
	default:
		return highlighter.NamedHighlighter{}, fmt.Errorf("%w: tabs [<width>]", ErrParams)
	}
	return highlighter.NamedHighlighter{
		ID:          "tabs",
		Highlighter: highlighter.NewLeaf(highlighter.PassWrap, t),
	}, nil
}

func (t *tabs) Paint(ctx highlighter.HighlightContext, buf *display.Buffer, r types.BufferRange) {
	width := t.width
	if width == 0 {
		width = tabWidthOf(ctx)
	}
	for _, l := range buf.Lines() {
		if !strings.Contains(l.String(), "\t") {
			continue
		}
		expandTabs(l, width, r)
	}
}

// expandTabs rebuilds the atoms of l with every tab inside r turned into a
// replaced atom.
func expandTabs(l *display.Line, width int, r types.BufferRange) {
	var out []display.Atom
	col := 0
	for _, a := range l.Atoms() {
		if a.Kind != display.KindRange || !strings.Contains(a.Text, "\t") {
			out = append(out, a)
			col += a.Length()
			continue
		}
		pos := a.Begin
		var run strings.Builder
		runStart := pos
		flush := func() {
			if run.Len() > 0 {
				out = append(out, display.NewRangeAtom(run.String(), runStart, a.Style))
				run.Reset()
			}
		}
		gr := uniseg.NewGraphemes(a.Text)
		for gr.Next() {
			runes := len(gr.Runes())
			if gr.Str() == "\t" && r.Contains(pos) {
				flush()
				n := width - col%width
				end := types.Position{Line: pos.Line, Col: pos.Col + 1}
				out = append(out, display.NewReplacedAtom(strings.Repeat(" ", n), pos, end, a.Style))
				col += n
				pos = end
				runStart = pos
				continue
			}
			if run.Len() == 0 {
				runStart = pos
			}
			run.WriteString(gr.Str())
			col += gr.Width()
			pos.Col += runes
		}
		flush()
	}
	l.Erase(0, l.AtomCount())
	l.Insert(0, out...)
}
