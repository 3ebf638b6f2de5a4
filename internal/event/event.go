// internal/event/event.go
package event

import (
	"github.com/bethropolis/prism/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Editor state
	TypeBufferLoaded // a buffer was loaded
	TypeCursorMoved  // the cursor moved

	// Highlighting
	TypeHighlightersChanged // a highlighter was added to or removed from the tree
	TypeThemeChanged        // the active theme changed
	TypeRedraw              // something asks for a redraw

	// Raw key presses, forwarded for plugins
	TypeKeyPressed

	// Application lifecycle
	TypeAppReady // everything is initialized
	TypeAppQuit  // the application is about to stop
)

var typeNames = map[Type]string{
	TypeUnknown:             "unknown",
	TypeBufferLoaded:        "buffer-loaded",
	TypeCursorMoved:         "cursor-moved",
	TypeHighlightersChanged: "highlighters-changed",
	TypeThemeChanged:        "theme-changed",
	TypeRedraw:              "redraw",
	TypeKeyPressed:          "key-pressed",
	TypeAppReady:            "app-ready",
	TypeAppQuit:             "app-quit",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferLoadedData contains info about the loaded buffer.
type BufferLoadedData struct {
	FilePath string
}

// CursorMovedData contains the new cursor position.
type CursorMovedData struct {
	NewPosition types.Position
}

// HighlightersChangedData says which command changed the tree and where.
type HighlightersChangedData struct {
	Command string // "add-highlighter" or "remove-highlighter"
	Path    string // path of the added or removed highlighter
}

// ThemeChangedData carries the name of the new theme.
type ThemeChangedData struct {
	Name string
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// AppQuitData is sent with TypeAppQuit.
type AppQuitData struct{}

// AppReadyData is sent with TypeAppReady.
type AppReadyData struct{}
