// internal/buffer/slice_buffer.go
package buffer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
)

// maxLineLength is the longest line Load accepts.
const maxLineLength = 4 * 1024 * 1024

// SliceBuffer stores a buffer as a slice of lines (no trailing newlines).
type SliceBuffer struct {
	lines    [][]byte
	filePath string
}

// NewSliceBuffer creates an empty SliceBuffer.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{lines: [][]byte{{}}}
}

// FromString builds a buffer from text, splitting on '\n'.
func FromString(text string) *SliceBuffer {
	parts := strings.Split(text, "\n")
	lines := make([][]byte, len(parts))
	for i, p := range parts {
		lines[i] = []byte(p)
	}
	return &SliceBuffer{lines: lines}
}

// Load reads a file into the buffer, replacing its content. CRLF line
// endings are read as LF. A missing file yields an empty buffer bound to
// that path.
func (sb *SliceBuffer) Load(filePath string) error {
	file, err := os.Open(filePath)
	if errors.Is(err, os.ErrNotExist) {
		sb.lines, sb.filePath = [][]byte{{}}, filePath
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open file '%s': %w", filePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	var lines [][]byte
	for scanner.Scan() {
		lines = append(lines, bytes.Clone(bytes.TrimSuffix(scanner.Bytes(), []byte("\r"))))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading file '%s': %w", filePath, err)
	}
	if len(lines) == 0 {
		lines = [][]byte{{}}
	}
	sb.lines, sb.filePath = lines, filePath
	return nil
}

// Lines returns the underlying lines. Callers must not modify them.
func (sb *SliceBuffer) Lines() [][]byte {
	return sb.lines
}

// LineCount returns the number of lines (at least one).
func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

// Line returns a single line.
func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("%w: %d (buffer has %d lines)", ErrLineOutOfRange, index, len(sb.lines))
	}
	return sb.lines[index], nil
}

// Bytes joins all lines with '\n'.
func (sb *SliceBuffer) Bytes() []byte {
	return bytes.Join(sb.lines, []byte("\n"))
}

// FilePath returns the path the buffer was loaded from, if any.
func (sb *SliceBuffer) FilePath() string {
	return sb.filePath
}

// SetFilePath binds the buffer to a path without reading it.
func (sb *SliceBuffer) SetFilePath(path string) {
	sb.filePath = path
}
