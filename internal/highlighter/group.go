package highlighter

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/bethropolis/prism/internal/display"
	"github.com/bethropolis/prism/internal/logger"
	"github.com/bethropolis/prism/internal/types"
)

// Group is a container forwarding every call to its children in the order
// they were added. Its pass set is the union of its children's.
type Group struct {
	parent   *Group
	children []NamedHighlighter
}

// NewGroup creates an empty, detached group.
func NewGroup() *Group {
	return &Group{}
}

// Passes returns the union of the children's passes. An empty group takes
// part in no pass.
func (g *Group) Passes() Pass {
	var p Pass
	for _, c := range g.children {
		p |= c.Highlighter.Passes()
	}
	return p
}

func (g *Group) Highlight(ctx HighlightContext, buf *display.Buffer, r types.BufferRange) {
	if !ctx.Pass.Intersects(g.Passes()) {
		return
	}
	for _, c := range g.children {
		if ctx.IsDisabled(c.ID) {
			continue
		}
		c.Highlighter.Highlight(ctx, buf, r)
	}
}

func (g *Group) ComputeDisplaySetup(ctx HighlightContext, setup *DisplaySetup) {
	if !ctx.Pass.Intersects(g.Passes()) {
		return
	}
	for _, c := range g.children {
		if ctx.IsDisabled(c.ID) {
			continue
		}
		c.Highlighter.ComputeDisplaySetup(ctx, setup)
	}
}

func (g *Group) FillUniqueIDs(ids []string) []string {
	for _, c := range g.children {
		ids = append(ids, c.ID)
		ids = c.Highlighter.FillUniqueIDs(ids)
	}
	return ids
}

// Children returns the children in order. The slice is a copy.
func (g *Group) Children() []NamedHighlighter {
	return slices.Clone(g.children)
}

// Len returns the number of direct children.
func (g *Group) Len() int {
	return len(g.children)
}

// Parent returns the group g is attached to, or nil for a root.
func (g *Group) Parent() *Group {
	return g.parent
}

// root follows parent links up to the top of the tree.
func (g *Group) root() *Group {
	r := g
	for r.parent != nil {
		r = r.parent
	}
	return r
}

func (g *Group) index(id string) int {
	return slices.IndexFunc(g.children, func(c NamedHighlighter) bool { return c.ID == id })
}

// Child resolves path one segment per level.
func (g *Group) Child(path string) (Highlighter, error) {
	id, rest, nested := strings.Cut(path, "/")
	i := g.index(id)
	if i < 0 {
		return nil, &PathError{Path: path, Segment: id, Err: ErrNotFound}
	}
	child := g.children[i].Highlighter
	if !nested {
		return child, nil
	}
	c, ok := child.(Container)
	if !ok {
		return nil, &PathError{Path: path, Segment: id, Err: ErrNotFound}
	}
	found, err := c.Child(rest)
	if err != nil {
		var pe *PathError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return found, nil
}

// AddChild appends child after the existing children. The id must not be
// in use anywhere in the tree g belongs to, and neither may any id inside
// the child's own subtree.
func (g *Group) AddChild(child NamedHighlighter) error {
	if child.ID == "" || strings.Contains(child.ID, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidID, child.ID)
	}
	if child.Highlighter == nil {
		return fmt.Errorf("%w: %q has no highlighter", ErrInvalidID, child.ID)
	}
	if sub, ok := child.Highlighter.(*Group); ok {
		if sub.parent != nil {
			return fmt.Errorf("%w: %q", ErrAlreadyAttached, child.ID)
		}
		for a := g; a != nil; a = a.parent {
			if a == sub {
				return fmt.Errorf("%w: %q would contain itself", ErrAlreadyAttached, child.ID)
			}
		}
	}

	existing := make(map[string]struct{})
	for _, id := range g.root().FillUniqueIDs(nil) {
		existing[id] = struct{}{}
	}
	incoming := child.Highlighter.FillUniqueIDs([]string{child.ID})
	for _, id := range incoming {
		if _, dup := existing[id]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		existing[id] = struct{}{}
	}

	if sub, ok := child.Highlighter.(*Group); ok {
		sub.parent = g
	}
	g.children = append(g.children, child)
	logger.DebugTagf("highlight", "Group: added %q (%s)", child.ID, child.Highlighter.Passes())
	return nil
}

// RemoveChild detaches the direct child id and destroys its subtree.
func (g *Group) RemoveChild(id string) error {
	i := g.index(id)
	if i < 0 {
		return &PathError{Path: id, Segment: id, Err: ErrNotFound}
	}
	child := g.children[i]
	g.children = slices.Delete(g.children, i, i+1)
	if sub, ok := child.Highlighter.(*Group); ok {
		sub.parent = nil
	}
	Destroy(child.Highlighter)
	logger.DebugTagf("highlight", "Group: removed %q", id)
	return nil
}

// Close destroys every child. The group is empty afterwards.
func (g *Group) Close() error {
	var errs []error
	for _, c := range g.children {
		if sub, ok := c.Highlighter.(*Group); ok {
			sub.parent = nil
		}
		if cl, ok := c.Highlighter.(io.Closer); ok {
			if err := cl.Close(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", c.ID, err))
			}
		}
	}
	g.children = nil
	return errors.Join(errs...)
}

// Destroy releases h and everything below it. Errors are logged.
func Destroy(h Highlighter) {
	cl, ok := h.(io.Closer)
	if !ok {
		return
	}
	if err := cl.Close(); err != nil {
		logger.Warnf("Highlighter: destroy: %v", err)
	}
}

// CompleteChild completes the last segment of path[:cursor]. Offsets in the
// result are relative to the whole path.
func (g *Group) CompleteChild(path string, cursor int, groupsOnly bool) (Completions, error) {
	cursor = max(0, min(cursor, len(path)))
	prefix := path[:cursor]

	if sep := strings.IndexByte(prefix, '/'); sep >= 0 {
		child, err := g.Child(prefix[:sep])
		if err != nil {
			return Completions{}, err
		}
		offset := sep + 1
		comp, err := CompleteChild(child, prefix[offset:], cursor-offset, groupsOnly)
		if err != nil {
			return Completions{}, err
		}
		comp.Start += offset
		comp.End += offset
		return comp, nil
	}

	ids := make([]string, 0, len(g.children))
	for _, c := range g.children {
		if groupsOnly && !HasChildren(c.Highlighter) {
			continue
		}
		ids = append(ids, c.ID)
	}
	return Completions{Start: 0, End: cursor, Candidates: Complete(prefix, ids)}, nil
}
