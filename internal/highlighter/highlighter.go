// Package highlighter implements the highlighter tree used to paint the
// display buffer: pass-gated nodes, groups addressed by "/" paths and a
// registry of factories that builds nodes from command arguments.
package highlighter

import (
	"github.com/bethropolis/prism/internal/display"
	"github.com/bethropolis/prism/internal/types"
)

// Highlighter is a node of the highlighter tree.
//
// Highlight and ComputeDisplaySetup do nothing unless ctx.Pass intersects
// Passes(). Calling them for another pass is not an error. Highlight must
// give the same result when run twice on the same input.
type Highlighter interface {
	// Passes returns the set of passes the node takes part in.
	Passes() Pass
	// Highlight paints the part of buf that lies inside r.
	Highlight(ctx HighlightContext, buf *display.Buffer, r types.BufferRange)
	// ComputeDisplaySetup adjusts the window geometry before the display
	// buffer is built.
	ComputeDisplaySetup(ctx HighlightContext, setup *DisplaySetup)
	// FillUniqueIDs appends every id in the subtree to ids.
	FillUniqueIDs(ids []string) []string
}

// Container is implemented by highlighters that own named children. Group
// is the only implementation: id uniqueness is checked by walking Group
// parent links, which other types could not take part in.
type Container interface {
	Highlighter
	root() *Group
	// Child resolves a "/" separated path below the container.
	Child(path string) (Highlighter, error)
	// AddChild appends a child. Ids must be unique in the whole tree.
	AddChild(child NamedHighlighter) error
	// RemoveChild detaches a direct child and destroys its subtree.
	RemoveChild(id string) error
	// CompleteChild lists candidates for the last segment of path[:cursor].
	CompleteChild(path string, cursor int, groupsOnly bool) (Completions, error)
}

// NamedHighlighter is a highlighter with the id it is attached under.
type NamedHighlighter struct {
	ID          string
	Highlighter Highlighter
}

// HasChildren reports whether h can hold children.
func HasChildren(h Highlighter) bool {
	_, ok := h.(Container)
	return ok
}

// GetChild resolves path below h.
func GetChild(h Highlighter, path string) (Highlighter, error) {
	c, ok := h.(Container)
	if !ok {
		return nil, ErrNotContainer
	}
	return c.Child(path)
}

// AddChild attaches child to h.
func AddChild(h Highlighter, child NamedHighlighter) error {
	c, ok := h.(Container)
	if !ok {
		return ErrNotContainer
	}
	return c.AddChild(child)
}

// RemoveChild detaches the child id from h.
func RemoveChild(h Highlighter, id string) error {
	c, ok := h.(Container)
	if !ok {
		return ErrNotContainer
	}
	return c.RemoveChild(id)
}

// CompleteChild completes a child path below h.
func CompleteChild(h Highlighter, path string, cursor int, groupsOnly bool) (Completions, error) {
	c, ok := h.(Container)
	if !ok {
		return Completions{}, ErrNotContainer
	}
	return c.CompleteChild(path, cursor, groupsOnly)
}
