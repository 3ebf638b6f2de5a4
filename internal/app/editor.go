package app

import (
	"fmt"

	"github.com/bethropolis/prism/internal/buffer"
	"github.com/bethropolis/prism/internal/event"
	"github.com/bethropolis/prism/internal/highlighter"
	"github.com/bethropolis/prism/internal/logger"
	"github.com/bethropolis/prism/internal/modehandler"
	"github.com/bethropolis/prism/internal/theme"
	"github.com/bethropolis/prism/internal/types"
)

// searchID is the preferred id of the highlighter showing the current
// search matches.
const searchID = "search"

var (
	_ highlighter.EditContext = (*App)(nil)
	_ modehandler.Editor      = (*App)(nil)
)

// --- highlighter.EditContext ---

func (a *App) Buffer() buffer.Buffer  { return a.buffer }
func (a *App) Cursor() types.Position { return a.cursor.Position() }
func (a *App) Theme() *theme.Theme    { return a.themeManager.Current() }
func (a *App) TabWidth() int          { return a.config.Editor.TabWidth }

// --- modehandler.Editor ---

func (a *App) GetBuffer() buffer.Buffer           { return a.buffer }
func (a *App) GetCursor() types.Position          { return a.cursor.Position() }
func (a *App) SetCursor(pos types.Position)       { a.cursor.SetPosition(pos) }
func (a *App) MoveCursor(deltaLine, deltaCol int) { a.cursor.MoveCursor(deltaLine, deltaCol) }
func (a *App) MoveToLineStart()                   { a.cursor.MoveToStartOfLine() }
func (a *App) MoveToLineEnd()                     { a.cursor.MoveToEndOfLine() }
func (a *App) MoveToFileStart()                   { a.cursor.MoveToFileStart() }
func (a *App) MoveToFileEnd()                     { a.cursor.MoveToFileEnd() }

// PageMove moves by whole windows; before the first draw the page is a
// single line.
func (a *App) PageMove(deltaPages int) {
	a.cursor.PageMove(deltaPages, max(1, a.window.Dimensions().Line))
}

// SetSearchHighlight shows the matches of pattern with the Search face,
// replacing the previous search. The overlay sits at the root under
// searchID, or under searchID-N when a user highlighter holds that id.
func (a *App) SetSearchHighlight(pattern string) error {
	a.removeSearchHighlight()
	h, err := a.registry.Create("regex", []string{pattern, "Search"})
	if err != nil {
		return err
	}
	h.ID = a.freeSearchID()
	if err := a.root.AddChild(h); err != nil {
		highlighter.Destroy(h.Highlighter)
		return fmt.Errorf("search highlight: %w", err)
	}
	a.search = h
	a.eventManager.Dispatch(event.TypeHighlightersChanged, event.HighlightersChangedData{Command: "search", Path: "/" + h.ID})
	return nil
}

// ClearSearchHighlight removes the search matches. It reports whether
// there were any.
func (a *App) ClearSearchHighlight() bool {
	id, ok := a.removeSearchHighlight()
	if !ok {
		return false
	}
	a.eventManager.Dispatch(event.TypeHighlightersChanged, event.HighlightersChangedData{Command: "search", Path: "/" + id})
	return true
}

func (a *App) freeSearchID() string {
	taken := make(map[string]bool)
	for _, id := range a.root.FillUniqueIDs(nil) {
		taken[id] = true
	}
	id := searchID
	for n := 1; taken[id]; n++ {
		id = fmt.Sprintf("%s-%d", searchID, n)
	}
	return id
}

// removeSearchHighlight detaches the overlay SetSearchHighlight attached.
// A highlighter that took its place through the command line is left alone.
func (a *App) removeSearchHighlight() (string, bool) {
	owned := a.search
	a.search = highlighter.NamedHighlighter{}
	if owned.Highlighter == nil {
		return "", false
	}
	if cur, err := a.root.Child(owned.ID); err != nil || cur != owned.Highlighter {
		logger.Debugf("App: search highlight %q was already removed", owned.ID)
		return "", false
	}
	if err := a.root.RemoveChild(owned.ID); err != nil {
		logger.Warnf("App: removing search highlight: %v", err)
		return "", false
	}
	return owned.ID, true
}
