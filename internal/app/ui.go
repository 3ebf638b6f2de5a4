package app

import (
	"github.com/bethropolis/prism/internal/config"
	"github.com/bethropolis/prism/internal/display"
	"github.com/bethropolis/prism/internal/logger"
	"github.com/bethropolis/prism/internal/modehandler"
	"github.com/bethropolis/prism/internal/render"
	"github.com/rivo/uniseg"
)

// drawEditor runs the highlighter passes over the window and paints the
// result with the status bar below it.
func (a *App) drawEditor() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.updateStatusBarContent()

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	viewHeight := max(0, height-config.StatusBarHeight)
	logger.DebugTagf("draw", "drawEditor: screen %dx%d, view height %d", width, height, viewHeight)

	a.window.Resize(viewHeight, width)
	buf := a.window.Redraw(a, a.disabled)

	a.tuiManager.Clear()
	render.Draw(screen, buf, render.Region{Width: width, Height: viewHeight}, a.Theme().GetStyle("Default"))
	a.statusBar.Draw(screen, width, height)
	a.placeCursor(buf, width, height, viewHeight)
	a.tuiManager.Show()
}

// placeCursor shows the terminal cursor at the end of the prompt while one
// is open, otherwise on the buffer cursor when it is visible.
func (a *App) placeCursor(buf *display.Buffer, width, height, viewHeight int) {
	switch a.modeHandler.GetCurrentMode() {
	case modehandler.ModeCommand, modehandler.ModeFind:
		prefix := ":"
		if a.modeHandler.GetCurrentMode() == modehandler.ModeFind {
			prefix = "/"
		}
		x := uniseg.StringWidth(prefix + a.modeHandler.GetPrompt())
		a.tuiManager.ShowCursor(min(x, width-1), height-1)
		return
	}

	x, y, ok := render.CursorCell(buf, a.cursor.Position())
	if !ok || x >= width || y >= viewHeight {
		a.tuiManager.HideCursor()
		return
	}
	a.tuiManager.ShowCursor(x, y)
}

// updateStatusBarContent pushes current viewer state to the status bar.
func (a *App) updateStatusBarContent() {
	a.statusBar.SetFileInfo(a.buffer.FilePath())
	a.statusBar.SetCursorInfo(a.cursor.Position())
	a.statusBar.SetEditorMode(a.modeHandler.GetCurrentMode().String())
	a.statusBar.SetHighlighterCount(len(a.root.FillUniqueIDs(nil)))
}
