// internal/buffer/buffer.go
package buffer

import "errors"

// ErrLineOutOfRange is returned when a line index is outside the buffer.
var ErrLineOutOfRange = errors.New("line index out of range")

// Buffer is the read-only view of buffer text that highlighters query.
// Highlighters never mutate it.
type Buffer interface {
	Lines() [][]byte
	Line(index int) ([]byte, error)
	LineCount() int
	Bytes() []byte
	FilePath() string
}
