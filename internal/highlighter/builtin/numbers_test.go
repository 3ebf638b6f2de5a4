package builtin

import (
	"strings"
	"testing"

	"github.com/bethropolis/prism/internal/highlighter"
	"github.com/bethropolis/prism/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twelveLines() string {
	lines := make([]string, 12)
	for i := range lines {
		lines[i] = "x"
	}
	return strings.Join(lines, "\n")
}

func TestNumberLines(t *testing.T) {
	nh, err := newNumberLines(nil)
	require.NoError(t, err)
	assert.Equal(t, "number-lines", nh.ID)

	ec := newContext(twelveLines())
	ec.cursor = types.Position{Line: 2}

	setup := highlighter.DisplaySetup{WindowRange: types.DisplayCoord{Line: 12, Column: 40}}
	nh.Highlighter.ComputeDisplaySetup(hctx(ec, highlighter.PassMove), &setup)
	assert.Equal(t, 37, setup.WindowRange.Column, "two digits plus separator")

	buf := displayOf(ec.buf)
	nh.Highlighter.Highlight(hctx(ec, highlighter.PassColorize), buf, buf.Range())
	assert.Equal(t, " 1 x", buf.Line(0).String())
	assert.Equal(t, "12 x", buf.Line(11).String())

	assert.Equal(t, face("LineNumber"), buf.Line(0).Atoms()[0].Style)
	assert.Equal(t, face("LineNumberCursor"), buf.Line(2).Atoms()[0].Style)
}

func TestNumberLinesRelative(t *testing.T) {
	nh, err := newNumberLines([]string{"-relative", "-separator", "|", "-min-digits", "3"})
	require.NoError(t, err)

	ec := newContext("a\nb\nc\nd")
	ec.cursor = types.Position{Line: 1}
	buf := displayOf(ec.buf)
	nh.Highlighter.Highlight(hctx(ec, highlighter.PassColorize), buf, buf.Range())

	got := make([]string, buf.LineCount())
	for i, l := range buf.Lines() {
		got[i] = l.String()
	}
	assert.Equal(t, []string{"  1|a", "  2|b", "  1|c", "  2|d"}, got)
}

func TestNumberLinesOnlyPaintsInColorize(t *testing.T) {
	nh, err := newNumberLines(nil)
	require.NoError(t, err)
	ec := newContext("a")
	buf := displayOf(ec.buf)
	// Move is declared, so the leaf forwards it; the painter ignores it
	nh.Highlighter.Highlight(hctx(ec, highlighter.PassMove), buf, buf.Range())
	assert.Equal(t, "a", buf.String())
}

func TestNumberLinesRejectsBadParams(t *testing.T) {
	for _, params := range [][]string{
		{"-bogus"},
		{"stray"},
		{"-min-digits", "x"},
		{"-separator"},
	} {
		_, err := newNumberLines(params)
		assert.ErrorIs(t, err, ErrParams, "%v", params)
	}
}
