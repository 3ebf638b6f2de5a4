package app

import (
	"slices"

	"github.com/bethropolis/prism/internal/config"
	"github.com/bethropolis/prism/internal/event"
	"github.com/bethropolis/prism/internal/logger"
	"github.com/bethropolis/prism/internal/statusbar"
)

// subscribeEvents wires the app's own reactions to the event bus.
func (a *App) subscribeEvents() {
	a.eventManager.Subscribe(event.TypeCursorMoved, a.handleCursorMovedForStatus)
	a.eventManager.Subscribe(event.TypeBufferLoaded, a.handleBufferLoadedForStatus)
	a.eventManager.Subscribe(event.TypeHighlightersChanged, a.handleHighlightersChanged)
	a.eventManager.Subscribe(event.TypeThemeChanged, a.handleThemeChanged)
	a.eventManager.Subscribe(event.TypeRedraw, func(event.Event) bool {
		a.requestRedraw()
		return false
	})
}

// handleCursorMovedForStatus updates the status bar based on cursor position
func (a *App) handleCursorMovedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		a.statusBar.SetCursorInfo(data.NewPosition)
	}
	return false // Not consumed
}

func (a *App) handleBufferLoadedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.BufferLoadedData); ok {
		a.statusBar.SetFileInfo(data.FilePath)
	}
	a.requestRedraw()
	return false
}

// handleHighlightersChanged refreshes the highlighter count and drops
// disabled ids that no longer exist in the tree.
func (a *App) handleHighlightersChanged(e event.Event) bool {
	ids := a.root.FillUniqueIDs(nil)
	a.statusBar.SetHighlighterCount(len(ids))

	kept := a.disabled[:0]
	for _, id := range a.disabled {
		if slices.Contains(ids, id) {
			kept = append(kept, id)
		}
	}
	a.disabled = kept

	if data, ok := e.Data.(event.HighlightersChangedData); ok {
		logger.DebugTagf("highlight", "App: %s %s, %d highlighter(s)", data.Command, data.Path, len(ids))
	}
	a.requestRedraw()
	return false
}

// handleThemeChanged restyles the screen and the status bar.
func (a *App) handleThemeChanged(e event.Event) bool {
	th := a.Theme()
	a.tuiManager.SetStyle(th.GetStyle("Default"))
	cfg := statusbar.ConfigFromTheme(th)
	cfg.MessageTimeout = config.MessageTimeout
	a.statusBar.SetConfig(cfg)
	a.requestRedraw()
	return false
}
