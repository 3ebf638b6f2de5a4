package modehandler

import (
	"github.com/bethropolis/prism/internal/input"
	"github.com/bethropolis/prism/internal/logger"
)

// handleActionFind handles actions when in ModeFind.
func (mh *ModeHandler) handleActionFind(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionInsertRune:
		mh.prompt.insert(actionEvent.Rune)

	case input.ActionDeleteCharBackward:
		if !mh.prompt.backspace() {
			mh.leavePrompt()
			return true
		}

	case input.ActionEnter: // Execute search
		term := mh.prompt.text
		mh.leavePrompt()
		if term != "" {
			mh.startSearch(term)
		}
		return true

	case input.ActionQuit: // Escape: Cancel find
		mh.leavePrompt()
		logger.Debugf("ModeHandler: Canceled Find Mode")
		return true

	default:
		// Ignore other actions like movement keys in find mode
		return false
	}

	mh.statusBar.SetInput(mh.prompt.display())
	return true
}

// startSearch highlights the matches of term and moves to the first one
// after the cursor.
func (mh *ModeHandler) startSearch(term string) {
	if err := mh.searcher.SetPattern(term); err != nil {
		mh.statusBar.SetError(err)
		return
	}
	if err := mh.editor.SetSearchHighlight(term); err != nil {
		mh.statusBar.SetError(err)
		return
	}
	mh.findNext(true)
}

// findNext moves the cursor to the next match of the last search.
func (mh *ModeHandler) findNext(forward bool) {
	term := mh.searcher.Pattern()
	if term == "" {
		mh.statusBar.SetTemporaryMessage("No search term")
		return
	}
	foundPos, found := mh.searcher.Next(mh.editor.GetBuffer(), mh.editor.GetCursor(), forward)
	if !found {
		mh.statusBar.SetTemporaryMessage("Pattern not found: %s", term)
		logger.Debugf("ModeHandler: Pattern not found: '%s'", term)
		return
	}
	mh.editor.SetCursor(foundPos)
	mh.statusBar.SetTemporaryMessage("Found: '%s'", term)
	logger.Debugf("ModeHandler: Found '%s' at %v", term, foundPos)
}
