package buffer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceBufferLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n\nfunc main() {}\n"), 0o644))

	sb := NewSliceBuffer()
	require.NoError(t, sb.Load(path))

	assert.Equal(t, 3, sb.LineCount())
	assert.Equal(t, path, sb.FilePath())
	line, err := sb.Line(2)
	require.NoError(t, err)
	assert.Equal(t, "func main() {}", string(line))
	assert.Equal(t, "package main\n\nfunc main() {}", string(sb.Bytes()))
}

func TestSliceBufferLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	sb := FromString("stale")
	require.NoError(t, sb.Load(path))
	assert.Equal(t, 1, sb.LineCount())
	assert.Equal(t, path, sb.FilePath())
}

func TestSliceBufferLineOutOfRange(t *testing.T) {
	sb := FromString("a\nb")
	_, err := sb.Line(2)
	assert.ErrorIs(t, err, ErrLineOutOfRange)
	_, err = sb.Line(-1)
	assert.ErrorIs(t, err, ErrLineOutOfRange)
}

func TestSliceBufferLoadCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dos.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\r\ntwo\r\n"), 0o644))

	sb := NewSliceBuffer()
	require.NoError(t, sb.Load(path))
	assert.Equal(t, "one\ntwo", string(sb.Bytes()))
}
