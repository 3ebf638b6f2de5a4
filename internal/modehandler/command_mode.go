package modehandler

import (
	"github.com/bethropolis/prism/internal/input"
	"github.com/bethropolis/prism/internal/logger"
)

// handleActionCommand handles actions when in ModeCommand.
func (mh *ModeHandler) handleActionCommand(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionInsertRune:
		mh.prompt.insert(actionEvent.Rune)

	case input.ActionDeleteCharBackward: // Backspace
		if !mh.prompt.backspace() {
			mh.leavePrompt()
			logger.Debugf("ModeHandler: Exiting Command Mode via Backspace")
			return true
		}

	case input.ActionComplete:
		if n := mh.prompt.complete(mh.dispatcher.Complete); n == 0 {
			logger.Debugf("ModeHandler: no completions for '%s'", mh.prompt.text)
		}

	case input.ActionEnter: // Execute command
		line := mh.prompt.text
		mh.leavePrompt()
		mh.executeCommand(line)
		return true

	case input.ActionQuit: // Escape: Cancel command
		mh.leavePrompt()
		logger.Debugf("ModeHandler: Canceled Command Mode via Escape")
		return true

	default:
		return false // Ignore other actions
	}

	mh.statusBar.SetInput(mh.prompt.display())
	return true
}

func (mh *ModeHandler) leavePrompt() {
	mh.prompt.reset("")
	mh.statusBar.ResetTemporaryMessage()
	mh.setMode(ModeNormal)
}

// executeCommand runs line through the dispatcher. Errors go to the status
// bar; the session continues.
func (mh *ModeHandler) executeCommand(line string) {
	if err := mh.dispatcher.Execute(line); err != nil {
		logger.Warnf("ModeHandler: command '%s' failed: %v", line, err)
		mh.statusBar.SetError(err)
	}
}
