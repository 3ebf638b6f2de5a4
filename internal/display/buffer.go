package display

import (
	"slices"
	"strings"

	"github.com/bethropolis/prism/internal/types"
)

// Buffer is the visual buffer for one redraw: display lines plus the
// buffer range they were built from.
type Buffer struct {
	lines []*Line
	rng   types.BufferRange
}

// NewBuffer creates a buffer holding the given lines.
func NewBuffer(lines ...*Line) *Buffer {
	return &Buffer{lines: lines}
}

// Lines returns the display lines. The slice is owned by the buffer.
func (b *Buffer) Lines() []*Line {
	return b.lines
}

// Line returns line i, or nil when out of range.
func (b *Buffer) Line(i int) *Line {
	if i < 0 || i >= len(b.lines) {
		return nil
	}
	return b.lines[i]
}

// LineCount returns the number of display lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// AppendLine adds a line at the end.
func (b *Buffer) AppendLine(l *Line) {
	b.lines = append(b.lines, l)
}

// InsertLine adds lines before index i. Used to wrap one buffer line over
// several display lines.
func (b *Buffer) InsertLine(i int, lines ...*Line) {
	b.lines = slices.Insert(b.lines, i, lines...)
}

// Range returns the buffer range the display buffer covers.
func (b *Buffer) Range() types.BufferRange {
	return b.rng
}

// SetRange records the buffer range the display buffer covers.
func (b *Buffer) SetRange(r types.BufferRange) {
	b.rng = r
}

// Optimize merges atoms on every line.
func (b *Buffer) Optimize() {
	for _, l := range b.lines {
		l.Optimize()
	}
}

// String joins the text of all lines with newlines.
func (b *Buffer) String() string {
	parts := make([]string, len(b.lines))
	for i, l := range b.lines {
		parts[i] = l.String()
	}
	return strings.Join(parts, "\n")
}
