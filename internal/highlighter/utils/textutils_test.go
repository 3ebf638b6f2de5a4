package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteOffsetToRuneIndex(t *testing.T) {
	line := []byte("añb€c")
	tests := []struct {
		offset int
		want   int
	}{
		{-1, 0},
		{0, 0},
		{1, 1},
		{2, 1}, // inside ñ
		{3, 2},
		{4, 3},
		{7, 4},
		{8, 5},
		{100, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ByteOffsetToRuneIndex(line, tt.offset), "offset %d", tt.offset)
	}
}

func TestCaptureNameToFace(t *testing.T) {
	assert.Equal(t, "keyword.control", CaptureNameToFace("@keyword.control"))
	assert.Equal(t, "string", CaptureNameToFace("string"))
}

func TestRuneIndexToByteOffset(t *testing.T) {
	line := []byte("añb€c")
	for runeIndex, want := range map[int]int{-1: 0, 0: 0, 1: 1, 2: 3, 3: 4, 4: 7, 5: 8, 9: 8} {
		assert.Equal(t, want, RuneIndexToByteOffset(line, runeIndex), "rune %d", runeIndex)
	}
}
