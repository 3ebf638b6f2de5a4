// internal/input/action.go
package input

// Action represents a command or operation to be performed by the editor.
type Action int

// Define the set of possible editor actions.
const (
	// --- Meta Actions ---
	ActionUnknown Action = iota // Default/invalid action
	ActionQuit                  // Esc: leaves prompts, clears the search, then quits
	ActionForceQuit             // Ctrl+Q / Ctrl+C

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome // Beginning of line
	ActionMoveEnd  // End of line
	ActionMoveFileStart
	ActionMoveFileEnd

	// --- Prompt Editing ---
	ActionInsertRune         // Requires Rune argument
	ActionEnter              // Runs the prompt
	ActionDeleteCharBackward // Backspace key
	ActionComplete           // Tab

	// --- Editor Mode ---
	ActionEnterCommandMode // ':'
	ActionEnterFindMode    // '/'
	ActionFindNext         // 'n'
	ActionFindPrevious     // 'N'

	// --- Viewport ---
	ActionRedraw // Ctrl+L
)

var actionNames = map[Action]string{
	ActionUnknown:            "unknown",
	ActionQuit:               "quit",
	ActionForceQuit:          "force-quit",
	ActionMoveUp:             "move-up",
	ActionMoveDown:           "move-down",
	ActionMoveLeft:           "move-left",
	ActionMoveRight:          "move-right",
	ActionMovePageUp:         "page-up",
	ActionMovePageDown:       "page-down",
	ActionMoveHome:           "line-start",
	ActionMoveEnd:            "line-end",
	ActionMoveFileStart:      "file-start",
	ActionMoveFileEnd:        "file-end",
	ActionInsertRune:         "insert-rune",
	ActionEnter:              "enter",
	ActionDeleteCharBackward: "backspace",
	ActionComplete:           "complete",
	ActionEnterCommandMode:   "command-mode",
	ActionEnterFindMode:      "find-mode",
	ActionFindNext:           "find-next",
	ActionFindPrevious:       "find-previous",
	ActionRedraw:             "redraw",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionInsertRune
}
