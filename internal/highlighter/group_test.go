package highlighter

import (
	"errors"
	"testing"

	"github.com/bethropolis/prism/internal/display"
	"github.com/bethropolis/prism/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupForwardsInChildOrder(t *testing.T) {
	var log []string
	g := NewGroup()
	require.NoError(t, g.AddChild(named("one", recorder(PassColorize, "one", &log))))
	require.NoError(t, g.AddChild(named("two", recorder(PassColorize, "two", &log))))
	require.NoError(t, g.AddChild(named("three", recorder(PassColorize, "three", &log))))

	buf := textBuffer("x")
	g.Highlight(HighlightContext{Pass: PassColorize}, buf, buf.Range())
	assert.Equal(t, []string{"one", "two", "three"}, log)

	log = nil
	g.Highlight(HighlightContext{Pass: PassColorize, DisabledIDs: []string{"two"}}, buf, buf.Range())
	assert.Equal(t, []string{"one", "three"}, log)

	log = nil
	g.Highlight(HighlightContext{Pass: PassWrap}, buf, buf.Range())
	g.ComputeDisplaySetup(HighlightContext{Pass: PassMove}, &DisplaySetup{})
	assert.Empty(t, log, "passes outside the group's mask do nothing")
}

func TestGroupDisabledIDsApplyAtAnyDepth(t *testing.T) {
	var log []string
	root := NewGroup()
	inner := NewGroup()
	require.NoError(t, root.AddChild(named("inner", inner)))
	require.NoError(t, inner.AddChild(named("deep", recorder(PassColorize, "deep", &log))))
	require.NoError(t, inner.AddChild(named("kept", recorder(PassColorize, "kept", &log))))

	root.Highlight(HighlightContext{Pass: PassColorize, DisabledIDs: []string{"deep"}}, textBuffer("x"), types.BufferRange{})
	assert.Equal(t, []string{"kept"}, log)

	log = nil
	root.Highlight(HighlightContext{Pass: PassColorize, DisabledIDs: []string{"inner"}}, textBuffer("x"), types.BufferRange{})
	assert.Empty(t, log)
}

func TestGroupLaterChildPaintsOver(t *testing.T) {
	build := func(first, second tcell.Style) *display.Buffer {
		g := NewGroup()
		require.NoError(t, g.AddChild(named("first", fillWith(first))))
		require.NoError(t, g.AddChild(named("second", fillWith(second))))
		buf := textBuffer("abc")
		g.Highlight(HighlightContext{Pass: PassColorize}, buf, buf.Range())
		return buf
	}
	assert.Equal(t, blue, build(red, blue).Line(0).Atoms()[0].Style)
	assert.Equal(t, red, build(blue, red).Line(0).Atoms()[0].Style)
}

func TestGroupSetupLastWriterWins(t *testing.T) {
	run := func(order ...int) int {
		g := NewGroup()
		for i, line := range order {
			require.NoError(t, g.AddChild(named(string(rune('a'+i)), cursorLine(line))))
		}
		var setup DisplaySetup
		g.ComputeDisplaySetup(HighlightContext{Pass: PassMove}, &setup)
		return setup.CursorPos.Line
	}
	assert.Equal(t, 7, run(5, 7))
	assert.Equal(t, 5, run(7, 5))
}

func TestGroupPassesIsUnionOfChildren(t *testing.T) {
	root := NewGroup()
	inner := NewGroup()
	assert.Equal(t, PassNone, root.Passes())

	require.NoError(t, root.AddChild(named("inner", inner)))
	require.NoError(t, root.AddChild(named("fill", fillWith(red))))
	assert.Equal(t, PassColorize, root.Passes())

	require.NoError(t, inner.AddChild(named("cursor", cursorLine(3))))
	assert.Equal(t, PassMove|PassColorize, root.Passes(), "nested additions are visible from the root")

	require.NoError(t, inner.RemoveChild("cursor"))
	assert.Equal(t, PassColorize, root.Passes())
}

func TestGroupAddGetRemove(t *testing.T) {
	g := NewGroup()
	leaf := fillWith(red)
	require.NoError(t, g.AddChild(named("fill", leaf)))

	got, err := g.Child("fill")
	require.NoError(t, err)
	assert.Same(t, leaf, got)

	require.NoError(t, g.RemoveChild("fill"))
	_, err = g.Child("fill")
	assert.ErrorIs(t, err, ErrNotFound)

	err = g.RemoveChild("fill")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGroupRejectsInvalidIDs(t *testing.T) {
	g := NewGroup()
	assert.ErrorIs(t, g.AddChild(named("", fillWith(red))), ErrInvalidID)
	assert.ErrorIs(t, g.AddChild(named("a/b", fillWith(red))), ErrInvalidID)
	assert.ErrorIs(t, g.AddChild(NamedHighlighter{ID: "nil"}), ErrInvalidID)
	assert.Zero(t, g.Len())
}

func TestGroupDuplicateIDsTreeWide(t *testing.T) {
	root := NewGroup()
	left := NewGroup()
	right := NewGroup()
	require.NoError(t, root.AddChild(named("left", left)))
	require.NoError(t, root.AddChild(named("right", right)))
	require.NoError(t, left.AddChild(named("numbers", fillWith(red))))

	t.Run("sibling", func(t *testing.T) {
		assert.ErrorIs(t, left.AddChild(named("numbers", fillWith(blue))), ErrDuplicateID)
	})
	t.Run("unrelated subtree", func(t *testing.T) {
		assert.ErrorIs(t, right.AddChild(named("numbers", fillWith(blue))), ErrDuplicateID)
	})
	t.Run("group id", func(t *testing.T) {
		assert.ErrorIs(t, right.AddChild(named("left", fillWith(blue))), ErrDuplicateID)
	})
	t.Run("inside the incoming subtree", func(t *testing.T) {
		sub := NewGroup()
		require.NoError(t, sub.AddChild(named("numbers", fillWith(blue))))
		assert.ErrorIs(t, right.AddChild(named("fresh", sub)), ErrDuplicateID)
		assert.Nil(t, sub.Parent(), "a rejected group stays detached")
	})
	t.Run("incoming id repeats inside its own subtree", func(t *testing.T) {
		sub := NewGroup()
		require.NoError(t, sub.AddChild(named("twin", fillWith(blue))))
		assert.ErrorIs(t, right.AddChild(named("twin", sub)), ErrDuplicateID)
		assert.Nil(t, sub.Parent())

		assert.Empty(t, right.FillUniqueIDs(nil))
	})
	assert.Equal(t, 0, right.Len())
	assert.Equal(t, []string{"left", "numbers", "right"}, root.FillUniqueIDs(nil))
}

func TestGroupIDsScannedFromTopmostGroup(t *testing.T) {
	var _ Container = (*Group)(nil)

	root := NewGroup()
	mid := NewGroup()
	low := NewGroup()
	require.NoError(t, root.AddChild(named("mid", mid)))
	require.NoError(t, mid.AddChild(named("low", low)))
	require.NoError(t, root.AddChild(named("top-leaf", fillWith(red))))

	c, err := GetChild(root, "mid/low")
	require.NoError(t, err)
	assert.Same(t, root, c.(Container).root())
	assert.ErrorIs(t, AddChild(c, named("top-leaf", fillWith(blue))), ErrDuplicateID)
	assert.ErrorIs(t, AddChild(c, named("mid", fillWith(blue))), ErrDuplicateID)
}

func TestGroupRejectsAttachedGroups(t *testing.T) {
	root := NewGroup()
	sub := NewGroup()
	require.NoError(t, root.AddChild(named("sub", sub)))
	assert.ErrorIs(t, root.AddChild(named("again", sub)), ErrAlreadyAttached)
	assert.ErrorIs(t, sub.AddChild(named("root", root)), ErrAlreadyAttached)
	assert.ErrorIs(t, root.AddChild(named("self", root)), ErrAlreadyAttached)
}

func TestGroupPaths(t *testing.T) {
	root := NewGroup()
	a := NewGroup()
	b := NewGroup()
	c := fillWith(red)
	require.NoError(t, root.AddChild(named("a", a)))
	require.NoError(t, a.AddChild(named("b", b)))
	require.NoError(t, b.AddChild(named("c", c)))

	got, err := root.Child("a/b/c")
	require.NoError(t, err)
	assert.Same(t, c, got)

	got, err = GetChild(root, "a/b")
	require.NoError(t, err)
	assert.Same(t, b, got)

	tests := []struct {
		path    string
		segment string
	}{
		{"x/b/c", "x"},
		{"a/x/c", "x"},
		{"a/b/x", "x"},
		{"a/b/c/d", "c"}, // c is not a container
		{"", ""},
		{"a//c", ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := root.Child(tt.path)
			require.ErrorIs(t, err, ErrNotFound)
			var pe *PathError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.segment, pe.Segment)
			assert.Equal(t, tt.path, pe.Path)
		})
	}
}

func TestGroupRemoveDestroysSubtree(t *testing.T) {
	var log []string
	root := NewGroup()
	sub := NewGroup()
	painter := &recordingPainter{name: "p", log: &log}
	require.NoError(t, root.AddChild(named("sub", sub)))
	require.NoError(t, sub.AddChild(named("p", NewLeaf(PassColorize, painter))))

	require.NoError(t, root.RemoveChild("sub"))
	assert.True(t, painter.closed)
	assert.Nil(t, sub.Parent())
	assert.Zero(t, sub.Len())

	// the id is free again
	require.NoError(t, root.AddChild(named("p", fillWith(red))))
}

func TestGroupCompleteChild(t *testing.T) {
	root := NewGroup()
	gutter := NewGroup()
	require.NoError(t, root.AddChild(named("gutter", gutter)))
	require.NoError(t, root.AddChild(named("good-fill", fillWith(red))))
	require.NoError(t, root.AddChild(named("search", fillWith(blue))))
	require.NoError(t, gutter.AddChild(named("numbers", fillWith(red))))
	require.NoError(t, gutter.AddChild(named("nested", NewGroup())))

	tests := []struct {
		name       string
		path       string
		cursor     int
		groupsOnly bool
		want       Completions
	}{
		{"prefix", "g", 1, false, Completions{Start: 0, End: 1, Candidates: []string{"gutter", "good-fill"}}},
		{"groups only", "g", 1, true, Completions{Start: 0, End: 1, Candidates: []string{"gutter"}}},
		{"empty lists all", "", 0, false, Completions{Start: 0, End: 0, Candidates: []string{"gutter", "good-fill", "search"}}},
		{"nested", "gutter/n", 8, false, Completions{Start: 7, End: 8, Candidates: []string{"numbers", "nested"}}},
		{"cursor inside path", "gutter/numbers", 8, true, Completions{Start: 7, End: 8, Candidates: []string{"nested"}}},
		{"fuzzy after prefix", "sr", 2, false, Completions{Start: 0, End: 2, Candidates: []string{"search"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := root.CompleteChild(tt.path, tt.cursor, tt.groupsOnly)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := root.CompleteChild("good-fill/x", 11, false)
	assert.ErrorIs(t, err, ErrNotContainer)
	_, err = root.CompleteChild("missing/x", 9, false)
	assert.ErrorIs(t, err, ErrNotFound)
}
