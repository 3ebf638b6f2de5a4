package types

// BufferRange is a half-open [Begin, End) span of buffer positions.
type BufferRange struct {
	Begin Position
	End   Position
}

// Empty reports whether the range covers nothing.
func (r BufferRange) Empty() bool {
	return !r.Begin.Less(r.End)
}

// Contains checks if pos is within the range. End is exclusive.
func (r BufferRange) Contains(pos Position) bool {
	return !pos.Less(r.Begin) && pos.Less(r.End)
}

// ContainsLine reports whether any part of line falls inside the range.
func (r BufferRange) ContainsLine(line int) bool {
	if line < r.Begin.Line || line > r.End.Line {
		return false
	}
	// A range ending at column 0 does not reach into its last line
	if line == r.End.Line && r.End.Col == 0 && r.End.Line != r.Begin.Line {
		return false
	}
	return true
}
