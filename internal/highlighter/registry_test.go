package highlighter

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"testing"

	"github.com/bethropolis/prism/internal/display"
	"github.com/bethropolis/prism/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillFactory(style tcell.Style) Factory {
	return func(params []string) (NamedHighlighter, error) {
		return named("fill", fillWith(style)), nil
	}
}

func TestRegistryRejectsDuplicateNames(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("fill", fillFactory(red), "first"))

	err := reg.Register("fill", fillFactory(blue), "second")
	require.ErrorIs(t, err, ErrAlreadyRegistered)

	// the first registration is kept
	desc, err := reg.Describe("fill")
	require.NoError(t, err)
	assert.Equal(t, "first", desc)

	nh, err := reg.Create("fill", nil)
	require.NoError(t, err)
	buf := textBuffer("abc")
	nh.Highlighter.Highlight(HighlightContext{Pass: PassColorize}, buf, buf.Range())
	assert.Equal(t, red, buf.Line(0).Atoms()[0].Style)
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("regex", fillFactory(red), "colour matches"))
	require.NoError(t, reg.Register("number-lines", fillFactory(red), "line numbers"))
	require.NoError(t, reg.Register("fill", fillFactory(red), "fill"))

	_, err := reg.Lookup("nope")
	assert.ErrorIs(t, err, ErrUnknownType)
	_, err = reg.Create("nope", nil)
	assert.ErrorIs(t, err, ErrUnknownType)

	assert.Equal(t, []string{"fill", "number-lines", "regex"}, reg.List())
	assert.Equal(t, []string{"number-lines"}, reg.Complete("nu"))

	assert.Error(t, reg.Register("", fillFactory(red), ""))
	assert.Error(t, reg.Register("nil", nil, ""))
}

func TestRegistryCreateWrapsFactoryErrors(t *testing.T) {
	errBadWidth := errors.New("bad width")
	reg := NewRegistry()
	require.NoError(t, reg.Register("columns", func(params []string) (NamedHighlighter, error) {
		return NamedHighlighter{}, errBadWidth
	}, ""))

	_, err := reg.Create("columns", []string{"x"})
	assert.ErrorIs(t, err, errBadWidth)
	assert.Contains(t, err.Error(), "columns")
}

func TestRegistryConcurrentReads(t *testing.T) {
	reg := NewRegistry()
	for i := 0; i < 10; i++ {
		require.NoError(t, reg.Register(fmt.Sprintf("type-%d", i), fillFactory(red), ""))
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, err := reg.Lookup("type-" + strconv.Itoa(j%10))
				assert.NoError(t, err)
				reg.List()
			}
		}()
	}
	wg.Wait()
}

// gutterColumns is a minimal fixed-width gutter used to drive the whole
// pipeline through a registered type.
type gutterColumns struct {
	width int
	style tcell.Style
}

func (c gutterColumns) Paint(ctx HighlightContext, buf *display.Buffer, _ types.BufferRange) {
	for _, l := range buf.Lines() {
		l.ApplyStyle(0, c.width, c.style)
	}
}

func (c gutterColumns) AdjustSetup(_ HighlightContext, s *DisplaySetup) {
	s.WindowRange.Column = max(0, s.WindowRange.Column-c.width)
}

func TestRegisteredGutterScenario(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("columns", func(params []string) (NamedHighlighter, error) {
		w, err := strconv.Atoi(params[0])
		if err != nil {
			return NamedHighlighter{}, err
		}
		return named("columns", NewLeaf(PassMove|PassColorize, gutterColumns{width: w, style: red})), nil
	}, "fixed gutter"))

	nh, err := reg.Create("columns", []string{"3"})
	require.NoError(t, err)
	nh.ID = "gutter"
	root := NewGroup()
	require.NoError(t, root.AddChild(nh))

	setup := DisplaySetup{WindowRange: types.DisplayCoord{Line: 2, Column: 80}}
	root.ComputeDisplaySetup(HighlightContext{Pass: PassMove}, &setup)
	assert.Equal(t, 77, setup.WindowRange.Column)
	assert.Equal(t, 2, setup.WindowRange.Line)

	buf := textBuffer("abcdefg", "hijklmn")
	root.Highlight(HighlightContext{Pass: PassColorize}, buf, buf.Range())
	for _, l := range buf.Lines() {
		atoms := l.Atoms()
		require.Len(t, atoms, 2)
		assert.Equal(t, red, atoms[0].Style)
		assert.Equal(t, 3, atoms[0].Length())
		assert.Equal(t, tcell.StyleDefault, atoms[1].Style)
	}
	assert.Equal(t, "abcdefg\nhijklmn", buf.String())
}
