// Package utils holds the offset conversions shared by the builtin
// highlighters.
package utils

import (
	"strings"
	"unicode/utf8"
)

// ByteOffsetToRuneIndex converts a byte offset to a rune index in line.
// Offsets inside a multi-byte rune round down.
func ByteOffsetToRuneIndex(line []byte, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	if byteOffset > len(line) {
		byteOffset = len(line)
	}
	runeIndex := 0
	for offset := 0; offset < byteOffset; {
		_, size := utf8.DecodeRune(line[offset:])
		if offset+size > byteOffset {
			break
		}
		offset += size
		runeIndex++
	}
	return runeIndex
}

// CaptureNameToFace maps a tree-sitter capture name to a theme face name.
// The theme resolves dotted names to their base if needed.
func CaptureNameToFace(captureName string) string {
	return strings.TrimPrefix(captureName, "@")
}

// RuneIndexToByteOffset converts a rune index to a byte offset in line,
// clamped to the line length.
func RuneIndexToByteOffset(line []byte, runeIndex int) int {
	offset := 0
	for i := 0; i < runeIndex && offset < len(line); i++ {
		_, size := utf8.DecodeRune(line[offset:])
		offset += size
	}
	return offset
}
