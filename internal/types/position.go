// internal/types/position.go
package types

// Position represents a cursor or text position within the buffer.
// Line is the 0-based line index.
// Col is the 0-based column (rune) index within the line.
type Position struct {
	Line int
	Col  int // Rune index
}

// Less reports whether p sorts before other (line first, then column).
func (p Position) Less(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}

// DisplayCoord is a line/column pair in display space.
// Column counts terminal cells, not runes.
type DisplayCoord struct {
	Line   int
	Column int
}

// Add returns the component-wise sum of two coordinates.
func (c DisplayCoord) Add(other DisplayCoord) DisplayCoord {
	return DisplayCoord{Line: c.Line + other.Line, Column: c.Column + other.Column}
}
