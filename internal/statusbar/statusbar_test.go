package statusbar

import (
	"errors"
	"testing"
	"time"

	"github.com/bethropolis/prism/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusBarText(t *testing.T) {
	cfg := DefaultConfig()
	sb := New(cfg)
	now := time.Unix(1000, 0)
	sb.now = func() time.Time { return now }

	sb.SetFileInfo("main.go")
	sb.SetCursorInfo(types.Position{Line: 4, Col: 2})
	sb.SetHighlighterCount(3)
	text, style := sb.Text()
	assert.Equal(t, "main.go -- Line: 5, Col: 3 -- 3 highlighter(s)", text)
	assert.Equal(t, cfg.StyleDefault, style)

	sb.SetError(errors.New("boom"))
	text, style = sb.Text()
	assert.Equal(t, "Error: boom", text)
	assert.Equal(t, cfg.StyleError, style)

	now = now.Add(cfg.MessageTimeout + time.Second)
	text, _ = sb.Text()
	assert.Contains(t, text, "main.go")

	sb.SetInput(":add")
	now = now.Add(time.Hour)
	text, style = sb.Text()
	assert.Equal(t, ":add", text)
	assert.Equal(t, cfg.StyleMessage, style)

	sb.ResetTemporaryMessage()
	text, _ = sb.Text()
	assert.Contains(t, text, "main.go")
}

func TestStatusBarDraw(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(10, 2)

	sb := New(DefaultConfig())
	sb.SetTemporaryMessage("hello %d", 7)
	sb.Draw(s, 10, 2)

	r, _, style, _ := s.GetContent(0, 1)
	assert.Equal(t, 'h', r)
	assert.Equal(t, DefaultConfig().StyleMessage, style)
	r, _, _, _ = s.GetContent(6, 1)
	assert.Equal(t, '7', r)
}
