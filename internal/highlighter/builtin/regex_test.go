package builtin

import (
	"testing"

	"github.com/bethropolis/prism/internal/highlighter"
	"github.com/bethropolis/prism/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexHighlighter(t *testing.T) {
	nh, err := newRegex([]string{"foo", "Search"})
	require.NoError(t, err)
	assert.Equal(t, "regex_foo_Search", nh.ID)

	ec := newContext("foo bar foo\nnothing")
	buf := displayOf(ec.buf)
	nh.Highlighter.Highlight(hctx(ec, highlighter.PassColorize), buf, buf.Range())

	search := face("Search")
	l := buf.Line(0)
	for col, want := range map[int]tcell.Style{0: search, 2: search, 3: tcell.StyleDefault, 7: tcell.StyleDefault, 8: search, 10: search} {
		got, ok := styleAt(l, types.Position{Line: 0, Col: col})
		require.True(t, ok)
		assert.Equal(t, want, got, "col %d", col)
	}
	assert.Equal(t, "foo bar foo", l.String())
	assert.Len(t, buf.Line(1).Atoms(), 1)
}

func TestRegexCaptureFaces(t *testing.T) {
	nh, err := newRegex([]string{`(\w+)=(\d+)`, "1:keyword", "2:number"})
	require.NoError(t, err)

	ec := newContext("name=42")
	buf := displayOf(ec.buf)
	nh.Highlighter.Highlight(hctx(ec, highlighter.PassColorize), buf, buf.Range())

	l := buf.Line(0)
	got, _ := styleAt(l, types.Position{Col: 0})
	assert.Equal(t, face("keyword"), got)
	got, _ = styleAt(l, types.Position{Col: 4})
	assert.Equal(t, tcell.StyleDefault, got, "the = sign is not captured")
	got, _ = styleAt(l, types.Position{Col: 5})
	assert.Equal(t, face("number"), got)
}

func TestRegexRespectsRange(t *testing.T) {
	nh, err := newRegex([]string{"x", "Error"})
	require.NoError(t, err)

	ec := newContext("xx\nxx")
	buf := displayOf(ec.buf)
	r := types.BufferRange{Begin: types.Position{Line: 0, Col: 1}, End: types.Position{Line: 1, Col: 0}}
	nh.Highlighter.Highlight(hctx(ec, highlighter.PassColorize), buf, r)

	got, _ := styleAt(buf.Line(0), types.Position{Col: 0})
	assert.Equal(t, tcell.StyleDefault, got)
	got, _ = styleAt(buf.Line(0), types.Position{Col: 1})
	assert.Equal(t, face("Error"), got)
	got, _ = styleAt(buf.Line(1), types.Position{Line: 1, Col: 0})
	assert.Equal(t, tcell.StyleDefault, got)
}

func TestRegexBadParams(t *testing.T) {
	for _, params := range [][]string{
		{"only-pattern"},
		{"(", "Error"},
		{"a(b)", "2:Error"},
		{"a", "x:Error"},
	} {
		_, err := newRegex(params)
		assert.ErrorIs(t, err, ErrParams, "%v", params)
	}
}

func TestRegexIDHasNoSlash(t *testing.T) {
	nh, err := newRegex([]string{"a/b", "Error"})
	require.NoError(t, err)
	assert.NotContains(t, nh.ID, "/")
}
