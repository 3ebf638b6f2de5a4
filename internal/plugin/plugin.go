// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/prism/internal/commands"
	"github.com/bethropolis/prism/internal/event"
	"github.com/bethropolis/prism/internal/highlighter"
	"github.com/bethropolis/prism/internal/theme"
	"github.com/bethropolis/prism/internal/types"
	"github.com/gdamore/tcell/v2"
)

// EditorAPI is what plugins may use of the editor.
type EditorAPI interface {
	// --- Buffer Access (read-only) ---
	GetBufferLine(line int) ([]byte, error)
	GetBufferLineCount() int
	GetBufferFilePath() string
	GetBufferBytes() []byte
	GetCursor() types.Position

	// --- Highlighters ---
	// RegisterHighlighter adds a highlighter type. Only valid while the
	// plugin is being initialized.
	RegisterHighlighter(name string, factory highlighter.Factory, description string) error

	// --- Event Bus Interaction ---
	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler) event.SubscriptionID
	UnsubscribeEvent(id event.SubscriptionID)

	// --- Commands ---
	RegisterCommand(cmd commands.Command) error
	ExecuteCommand(line string) error

	// --- Status Bar ---
	SetStatusMessage(format string, args ...interface{})

	// --- Theme Access ---
	GetThemeStyle(styleName string) tcell.Style
	GetTheme() *theme.Theme
}

// Plugin is implemented by every plugin.
type Plugin interface {
	// Name returns the unique name of the plugin.
	Name() string

	// Initialize is called once at startup, before the first redraw.
	// Highlighter types, commands and event handlers are registered here.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the editor is closing.
	Shutdown() error
}
