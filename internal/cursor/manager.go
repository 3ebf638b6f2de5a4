// Package cursor keeps the cursor inside the buffer while it moves.
package cursor

import (
	"unicode/utf8"

	"github.com/bethropolis/prism/internal/buffer"
	"github.com/bethropolis/prism/internal/logger"
	"github.com/bethropolis/prism/internal/types"
)

// Manager handles cursor positioning. Columns are rune indexes.
type Manager struct {
	buf      buffer.Buffer
	position types.Position
	goalCol  int // column kept across vertical moves through shorter lines
}

// NewManager creates a cursor manager at the start of buf.
func NewManager(buf buffer.Buffer) *Manager {
	return &Manager{buf: buf}
}

// SetBuffer switches to another buffer and resets the cursor.
func (m *Manager) SetBuffer(buf buffer.Buffer) {
	m.buf = buf
	m.position = types.Position{}
	m.goalCol = 0
}

// Position returns the current cursor position.
func (m *Manager) Position() types.Position {
	return m.position
}

// SetPosition moves the cursor to pos, clamped to the buffer.
func (m *Manager) SetPosition(pos types.Position) {
	m.position = m.clamp(pos)
	m.goalCol = m.position.Col
}

func (m *Manager) clamp(pos types.Position) types.Position {
	if m.buf == nil {
		logger.Warnf("CursorManager: no buffer")
		return types.Position{}
	}
	lineCount := m.buf.LineCount()
	if lineCount == 0 {
		return types.Position{}
	}
	pos.Line = max(0, min(pos.Line, lineCount-1))
	pos.Col = max(0, min(pos.Col, m.lineLength(pos.Line)))
	return pos
}

func (m *Manager) lineLength(line int) int {
	lineBytes, err := m.buf.Line(line)
	if err != nil {
		logger.Warnf("CursorManager: failed to get line %d: %v", line, err)
		return 0
	}
	return utf8.RuneCount(lineBytes)
}

// MoveCursor moves the cursor by the given delta. Vertical moves try to
// return to the column the cursor had before crossing shorter lines.
func (m *Manager) MoveCursor(deltaLine, deltaCol int) {
	if deltaCol != 0 || deltaLine == 0 {
		m.SetPosition(types.Position{Line: m.position.Line + deltaLine, Col: m.position.Col + deltaCol})
		return
	}
	goal := m.goalCol
	m.position = m.clamp(types.Position{Line: m.position.Line + deltaLine, Col: goal})
	m.goalCol = goal
}

// PageMove moves the cursor by pages of the given height.
func (m *Manager) PageMove(deltaPages, height int) {
	if height <= 0 {
		return // View not initialized
	}
	m.MoveCursor(deltaPages*height, 0)
}

// MoveToStartOfLine moves the cursor to the first non-blank character, or
// to column 0 if it is already there.
func (m *Manager) MoveToStartOfLine() {
	lineBytes, err := m.buf.Line(m.position.Line)
	if err != nil {
		return
	}
	firstNonWS := 0
	for _, ch := range string(lineBytes) {
		if ch != ' ' && ch != '\t' {
			break
		}
		firstNonWS++
	}
	if m.position.Col == firstNonWS {
		firstNonWS = 0
	}
	m.SetPosition(types.Position{Line: m.position.Line, Col: firstNonWS})
}

// MoveToEndOfLine moves the cursor past the last character of the line.
func (m *Manager) MoveToEndOfLine() {
	m.SetPosition(types.Position{Line: m.position.Line, Col: m.lineLength(m.position.Line)})
}

// MoveToFileStart moves the cursor to the first line.
func (m *Manager) MoveToFileStart() {
	m.SetPosition(types.Position{})
}

// MoveToFileEnd moves the cursor to the start of the last line.
func (m *Manager) MoveToFileEnd() {
	if m.buf == nil {
		return
	}
	m.SetPosition(types.Position{Line: m.buf.LineCount() - 1})
}
