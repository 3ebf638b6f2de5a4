package display

import (
	"slices"
	"strings"

	"github.com/bethropolis/prism/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Line is an ordered sequence of atoms making up one display row.
type Line struct {
	atoms []Atom
}

// NewLine creates a line from atoms.
func NewLine(atoms ...Atom) *Line {
	return &Line{atoms: atoms}
}

// Atoms returns the atoms of the line. The slice is owned by the line.
func (l *Line) Atoms() []Atom {
	return l.atoms
}

// AtomCount returns the number of atoms.
func (l *Line) AtomCount() int {
	return len(l.atoms)
}

// Length returns the width of the line in cells.
func (l *Line) Length() int {
	n := 0
	for _, a := range l.atoms {
		n += a.Length()
	}
	return n
}

// Split makes sure an atom boundary exists at cell column col and returns
// the index of the first atom at or after it.
func (l *Line) Split(col int) int {
	if col <= 0 {
		return 0
	}
	pos := 0
	for i, a := range l.atoms {
		if col == pos {
			return i
		}
		w := a.Length()
		if col < pos+w {
			left, right := a.splitAt(col - pos)
			if left.Text == "" {
				return i
			}
			l.atoms = slices.Insert(l.atoms, i+1, right)
			l.atoms[i] = left
			return i + 1
		}
		pos += w
	}
	return len(l.atoms)
}

// Insert adds atoms before index idx.
func (l *Line) Insert(idx int, atoms ...Atom) {
	l.atoms = slices.Insert(l.atoms, idx, atoms...)
}

// Erase removes atoms in the index range [begin, end).
func (l *Line) Erase(begin, end int) {
	l.atoms = slices.Delete(l.atoms, begin, end)
}

// Replace swaps the cells [beginCol, endCol) for the given atoms.
func (l *Line) Replace(beginCol, endCol int, atoms ...Atom) {
	b := l.Split(beginCol)
	e := l.Split(endCol)
	l.atoms = slices.Replace(l.atoms, b, e, atoms...)
}

// ApplyStyle sets the style of the cells [beginCol, endCol).
func (l *Line) ApplyStyle(beginCol, endCol int, style tcell.Style) {
	if endCol <= beginCol {
		return
	}
	b := l.Split(beginCol)
	e := l.Split(endCol)
	for i := b; i < e; i++ {
		l.atoms[i].Style = style
	}
}

// ApplyStyleToRange sets the style of the parts of range atoms lying in r.
func (l *Line) ApplyStyleToRange(r types.BufferRange, style tcell.Style) {
	col := 0
	for i := 0; i < len(l.atoms); i++ {
		a := l.atoms[i]
		w := a.Length()
		if a.HasBufferRange() && a.Begin.Less(r.End) && r.Begin.Less(a.End) {
			start, stop := col, col+w
			if a.Kind == KindRange && a.Begin.Less(r.Begin) {
				start = col + cellsBefore(a, r.Begin.Col-a.Begin.Col)
			}
			if a.Kind == KindRange && r.End.Less(a.End) {
				stop = col + cellsBefore(a, r.End.Col-a.Begin.Col)
			}
			if stop <= start {
				col += w
				continue
			}
			l.ApplyStyle(start, stop, style)
			// Splitting may have added atoms; resume after the styled part.
			i = l.Split(stop) - 1
			col = stop
			continue
		}
		col += w
	}
}

// cellsBefore returns the width of the first n runes of the atom.
func cellsBefore(a Atom, n int) int {
	if n <= 0 {
		return 0
	}
	count := 0
	for i := range a.Text {
		if count == n {
			return uniseg.StringWidth(a.Text[:i])
		}
		count++
	}
	return a.Length()
}

// Trim keeps count cells starting at cell first.
func (l *Line) Trim(first, count int) {
	if first > 0 {
		idx := l.Split(first)
		l.atoms = l.atoms[idx:]
	}
	if count < 0 {
		count = 0
	}
	l.atoms = l.atoms[:l.Split(count)]
}

// Optimize merges neighbouring atoms that share kind and style and, for
// atoms with a buffer span, are contiguous in the buffer.
func (l *Line) Optimize() {
	if len(l.atoms) < 2 {
		return
	}
	merged := l.atoms[:1]
	for _, a := range l.atoms[1:] {
		last := &merged[len(merged)-1]
		if a.Kind == last.Kind && a.Style == last.Style &&
			(a.Kind == KindText || a.Begin == last.End) {
			last.Text += a.Text
			last.End = a.End
			continue
		}
		merged = append(merged, a)
	}
	l.atoms = merged
}

// Range returns the buffer span covered by the line's range atoms.
func (l *Line) Range() (types.BufferRange, bool) {
	var r types.BufferRange
	found := false
	for _, a := range l.atoms {
		if !a.HasBufferRange() {
			continue
		}
		if !found || a.Begin.Less(r.Begin) {
			r.Begin = a.Begin
		}
		if !found || r.End.Less(a.End) {
			r.End = a.End
		}
		found = true
	}
	return r, found
}

// String returns the text of the line.
func (l *Line) String() string {
	var sb strings.Builder
	for _, a := range l.atoms {
		sb.WriteString(a.Text)
	}
	return sb.String()
}
