package display

import (
	"testing"

	"github.com/bethropolis/prism/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = tcell.StyleDefault.Foreground(tcell.ColorRed)

func rangeLine(line int, text string) *Line {
	return NewLine(NewRangeAtom(text, types.Position{Line: line}, tcell.StyleDefault))
}

func TestLineSplit(t *testing.T) {
	l := rangeLine(3, "hello world")

	idx := l.Split(5)
	require.Equal(t, 1, idx)
	require.Equal(t, 2, l.AtomCount())
	assert.Equal(t, "hello", l.Atoms()[0].Text)
	assert.Equal(t, " world", l.Atoms()[1].Text)
	assert.Equal(t, types.Position{Line: 3, Col: 5}, l.Atoms()[0].End)
	assert.Equal(t, types.Position{Line: 3, Col: 5}, l.Atoms()[1].Begin)

	assert.Equal(t, 1, l.Split(5), "splitting on an existing boundary adds nothing")
	assert.Equal(t, 2, l.AtomCount())
	assert.Equal(t, 0, l.Split(0))
	assert.Equal(t, 2, l.Split(100))
}

func TestLineSplitWideGraphemes(t *testing.T) {
	l := rangeLine(0, "漢字x")
	assert.Equal(t, 5, l.Length())

	// Column 1 falls inside the first wide character.
	idx := l.Split(1)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1, l.AtomCount())

	idx = l.Split(2)
	require.Equal(t, 1, idx)
	assert.Equal(t, "漢", l.Atoms()[0].Text)
	assert.Equal(t, types.Position{Line: 0, Col: 1}, l.Atoms()[1].Begin)
}

func TestLineApplyStyle(t *testing.T) {
	l := rangeLine(0, "abcdef")
	l.ApplyStyle(2, 4, red)

	require.Equal(t, 3, l.AtomCount())
	assert.Equal(t, "cd", l.Atoms()[1].Text)
	assert.Equal(t, red, l.Atoms()[1].Style)
	assert.Equal(t, tcell.StyleDefault, l.Atoms()[0].Style)
	assert.Equal(t, tcell.StyleDefault, l.Atoms()[2].Style)
	assert.Equal(t, "abcdef", l.String())
}

func TestLineApplyStyleToRange(t *testing.T) {
	l := NewLine(
		NewTextAtom(">> ", tcell.StyleDefault),
		NewRangeAtom("func main", types.Position{Line: 2}, tcell.StyleDefault),
	)
	l.ApplyStyleToRange(types.BufferRange{
		Begin: types.Position{Line: 2, Col: 5},
		End:   types.Position{Line: 2, Col: 9},
	}, red)

	var styled string
	for _, a := range l.Atoms() {
		if a.Style == red {
			styled += a.Text
		}
	}
	assert.Equal(t, "main", styled)
	assert.Equal(t, tcell.StyleDefault, l.Atoms()[0].Style, "text atoms are not part of any buffer range")
}

func TestLineReplaceAndTrim(t *testing.T) {
	l := rangeLine(0, "abcdef")
	l.Replace(1, 3, NewTextAtom("XYZ", tcell.StyleDefault))
	assert.Equal(t, "aXYZdef", l.String())

	l.Trim(2, 3)
	assert.Equal(t, "YZd", l.String())
	assert.Equal(t, 3, l.Length())

	l.Trim(0, 0)
	assert.Equal(t, 0, l.AtomCount())
}

func TestLineOptimize(t *testing.T) {
	l := rangeLine(1, "abcdef")
	l.Split(2)
	l.Split(4)
	l.Insert(0, NewTextAtom("1", red), NewTextAtom(" ", red))
	require.Equal(t, 5, l.AtomCount())

	l.Optimize()
	require.Equal(t, 2, l.AtomCount())
	assert.Equal(t, "1 ", l.Atoms()[0].Text)
	assert.Equal(t, "abcdef", l.Atoms()[1].Text)
	assert.Equal(t, types.Position{Line: 1, Col: 6}, l.Atoms()[1].End)

	r, ok := l.Range()
	require.True(t, ok)
	assert.Equal(t, types.BufferRange{Begin: types.Position{Line: 1}, End: types.Position{Line: 1, Col: 6}}, r)
}

func TestBuffer(t *testing.T) {
	b := NewBuffer(rangeLine(0, "one"), rangeLine(1, "two"))
	b.InsertLine(1, NewLine(NewTextAtom("--", red)))
	b.AppendLine(rangeLine(2, "three"))

	assert.Equal(t, 4, b.LineCount())
	assert.Equal(t, "one\n--\ntwo\nthree", b.String())
	assert.Nil(t, b.Line(4))
	assert.Equal(t, "--", b.Line(1).String())
}

func TestLineSplitKeepsZeroWidthRight(t *testing.T) {
	l := rangeLine(0, "a\tb")
	idx := l.Split(1)
	require.Equal(t, 1, idx)
	assert.Equal(t, "a", l.Atoms()[0].Text)
	assert.Equal(t, "\tb", l.Atoms()[1].Text)
}

func TestReplacedAtoms(t *testing.T) {
	begin := types.Position{Line: 0, Col: 1}
	end := types.Position{Line: 0, Col: 2}
	l := NewLine(
		NewRangeAtom("a", types.Position{}, tcell.StyleDefault),
		NewReplacedAtom("   ", begin, end, tcell.StyleDefault),
	)
	assert.True(t, l.Atoms()[1].HasBufferRange())

	l.ApplyStyleToRange(types.BufferRange{Begin: begin, End: end}, red)
	require.Equal(t, 2, l.AtomCount())
	assert.Equal(t, red, l.Atoms()[1].Style, "a replaced atom is styled as a whole")

	l.Split(2)
	require.Equal(t, 3, l.AtomCount())
	assert.Equal(t, end, l.Atoms()[1].End)
	assert.Equal(t, end, l.Atoms()[2].Begin)
}
