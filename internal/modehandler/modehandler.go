// internal/modehandler/modehandler.go
package modehandler

import (
	"github.com/bethropolis/prism/internal/buffer"
	"github.com/bethropolis/prism/internal/commands"
	"github.com/bethropolis/prism/internal/event"
	"github.com/bethropolis/prism/internal/input"
	"github.com/bethropolis/prism/internal/logger"
	"github.com/bethropolis/prism/internal/search"
	"github.com/bethropolis/prism/internal/statusbar"
	"github.com/bethropolis/prism/internal/types"
	"github.com/gdamore/tcell/v2"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeCommand
	ModeFind
)

func (m InputMode) String() string {
	switch m {
	case ModeCommand:
		return "COMMAND"
	case ModeFind:
		return "FIND"
	}
	return "NORMAL"
}

// Editor is what the mode handler needs from the application.
type Editor interface {
	GetBuffer() buffer.Buffer
	GetCursor() types.Position
	SetCursor(pos types.Position)
	MoveCursor(deltaLine, deltaCol int)
	PageMove(deltaPages int)
	MoveToLineStart()
	MoveToLineEnd()
	MoveToFileStart()
	MoveToFileEnd()

	// SetSearchHighlight shows the matches of pattern; ClearSearchHighlight
	// removes them and reports whether there were any.
	SetSearchHighlight(pattern string) error
	ClearSearchHighlight() bool
}

// ModeHandler manages input modes, command execution, and related state.
type ModeHandler struct {
	// Dependencies (references to components managed by App)
	editor         Editor
	inputProcessor *input.InputProcessor
	dispatcher     *commands.Dispatcher
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	searcher       *search.Searcher
	quitSignal     chan<- struct{} // closed to signal app termination

	// Internal State
	currentMode InputMode
	prompt      prompt
	quitting    bool
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         Editor
	InputProcessor *input.InputProcessor
	Dispatcher     *commands.Dispatcher
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	QuitSignal     chan<- struct{} // Write-only channel to signal quit
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.Dispatcher == nil || cfg.EventManager == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		// Should ideally return an error, but panic indicates programming error during setup
		panic("modehandler.New: Missing required dependencies in Config")
	}
	return &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		dispatcher:     cfg.Dispatcher,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		searcher:       search.New(),
		quitSignal:     cfg.QuitSignal,
		currentMode:    ModeNormal,
	}
}

// HandleKeyEvent decides what to do based on current mode and key event.
// Returns true if the event resulted in an action requiring redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	actionEvent := mh.inputProcessor.ProcessEvent(ev, mh.currentMode != ModeNormal)
	if actionEvent.Action == input.ActionForceQuit {
		mh.quit()
		return false
	}

	switch mh.currentMode {
	case ModeNormal:
		return mh.handleActionNormal(actionEvent)
	case ModeCommand:
		return mh.handleActionCommand(actionEvent)
	case ModeFind:
		return mh.handleActionFind(actionEvent)
	default:
		logger.Warnf("ModeHandler: Unknown input mode: %v", mh.currentMode)
		return false
	}
}

func (mh *ModeHandler) quit() {
	if mh.quitting {
		return
	}
	mh.quitting = true
	close(mh.quitSignal)
}

func (mh *ModeHandler) setMode(mode InputMode) {
	mh.currentMode = mode
	mh.statusBar.SetEditorMode(mode.String())
	logger.Debugf("ModeHandler: Entering %s mode", mode)
}

// handleActionNormal handles actions when in ModeNormal.
func (mh *ModeHandler) handleActionNormal(actionEvent input.ActionEvent) bool {
	actionProcessed := true
	originalCursor := mh.editor.GetCursor()

	switch actionEvent.Action {
	// --- Mode Switching ---
	case input.ActionEnterCommandMode:
		mh.setMode(ModeCommand)
		mh.prompt.reset(":")
		mh.statusBar.SetInput(mh.prompt.display())
	case input.ActionEnterFindMode:
		mh.setMode(ModeFind)
		mh.prompt.reset("/")
		mh.statusBar.SetInput(mh.prompt.display())

	// --- Quit ---
	case input.ActionQuit: // ESC clears the search first
		if mh.editor.ClearSearchHighlight() {
			mh.searcher.SetPattern("")
			mh.statusBar.SetTemporaryMessage("Search cleared")
		} else {
			mh.quit()
			actionProcessed = false
		}

	// --- Movement ---
	case input.ActionMoveUp:
		mh.editor.MoveCursor(-1, 0)
	case input.ActionMoveDown:
		mh.editor.MoveCursor(1, 0)
	case input.ActionMoveLeft:
		mh.editor.MoveCursor(0, -1)
	case input.ActionMoveRight:
		mh.editor.MoveCursor(0, 1)
	case input.ActionMovePageUp:
		mh.editor.PageMove(-1)
	case input.ActionMovePageDown:
		mh.editor.PageMove(1)
	case input.ActionMoveHome:
		mh.editor.MoveToLineStart()
	case input.ActionMoveEnd:
		mh.editor.MoveToLineEnd()
	case input.ActionMoveFileStart:
		mh.editor.MoveToFileStart()
	case input.ActionMoveFileEnd:
		mh.editor.MoveToFileEnd()

	// --- Search ---
	case input.ActionFindNext:
		mh.findNext(mh.searcher.Forward())
	case input.ActionFindPrevious:
		mh.findNext(!mh.searcher.Forward())

	case input.ActionRedraw:
		// nothing to do, the caller redraws

	default:
		actionProcessed = false
	}

	if newCursor := mh.editor.GetCursor(); actionProcessed && newCursor != originalCursor {
		mh.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: newCursor})
	}
	return actionProcessed
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// GetPrompt returns the text typed at the current prompt.
func (mh *ModeHandler) GetPrompt() string {
	if mh.currentMode == ModeNormal {
		return ""
	}
	return mh.prompt.text
}
