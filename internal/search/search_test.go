package search

import (
	"testing"

	"github.com/bethropolis/prism/internal/buffer"
	"github.com/bethropolis/prism/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(line, col int) types.Position { return types.Position{Line: line, Col: col} }

func TestNextForwardWraps(t *testing.T) {
	buf := buffer.FromString("foo bar foo\nnothing\né foo")
	s := New()
	require.NoError(t, s.SetPattern("foo"))

	p, ok := s.Next(buf, pos(0, 0), true)
	require.True(t, ok)
	assert.Equal(t, pos(0, 8), p, "a match at the start position is skipped")

	p, _ = s.Next(buf, p, true)
	assert.Equal(t, pos(2, 2), p, "columns are rune indexes")

	p, _ = s.Next(buf, p, true)
	assert.Equal(t, pos(0, 0), p, "wraps to the top")
}

func TestNextBackward(t *testing.T) {
	buf := buffer.FromString("foo bar foo\nnothing\nfoo")
	s := New()
	require.NoError(t, s.SetPattern("fo+"))

	p, ok := s.Next(buf, pos(0, 8), false)
	require.True(t, ok)
	assert.Equal(t, pos(0, 0), p)
	assert.False(t, s.Forward())

	p, _ = s.Next(buf, p, false)
	assert.Equal(t, pos(2, 0), p, "wraps to the bottom")
}

func TestNextSingleMatchFindsItself(t *testing.T) {
	buf := buffer.FromString("one match\nhere")
	s := New()
	require.NoError(t, s.SetPattern("match"))

	p, ok := s.Next(buf, pos(0, 4), true)
	require.True(t, ok)
	assert.Equal(t, pos(0, 4), p)

	p, ok = s.Next(buf, pos(0, 4), false)
	require.True(t, ok)
	assert.Equal(t, pos(0, 4), p)
}

func TestSetPattern(t *testing.T) {
	s := New()
	assert.Error(t, s.SetPattern("("))
	assert.Equal(t, "", s.Pattern())

	require.NoError(t, s.SetPattern("x"))
	assert.Equal(t, "x", s.Pattern())
	_, ok := s.Next(buffer.FromString("abc"), pos(0, 0), true)
	assert.False(t, ok)

	require.NoError(t, s.SetPattern(""))
	_, ok = s.Next(buffer.FromString("x"), pos(0, 0), true)
	assert.False(t, ok, "no pattern")
}
