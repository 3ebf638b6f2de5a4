// internal/app/editor_api.go
package app

import (
	"errors"
	"fmt"

	"github.com/bethropolis/prism/internal/commands"
	"github.com/bethropolis/prism/internal/event"
	"github.com/bethropolis/prism/internal/highlighter"
	"github.com/bethropolis/prism/internal/logger"
	"github.com/bethropolis/prism/internal/plugin"
	"github.com/bethropolis/prism/internal/theme"
	"github.com/bethropolis/prism/internal/types"
	"github.com/gdamore/tcell/v2"
)

// ErrRegistrationClosed is returned when a highlighter type is registered
// after plugin initialization.
var ErrRegistrationClosed = errors.New("highlighter types can only be registered during plugin initialization")

var (
	_ plugin.EditorAPI   = (*appEditorAPI)(nil)
	_ commands.ThemeAPI  = (*appEditorAPI)(nil)
	_ commands.Messenger = (*appEditorAPI)(nil)
)

// appEditorAPI provides the concrete implementation of the EditorAPI interface.
// Its methods run on the event loop, with the app lock already held.
type appEditorAPI struct {
	app          *App
	initializing bool
}

func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

// --- Buffer Access ---

func (api *appEditorAPI) GetBufferLine(line int) ([]byte, error) { return api.app.buffer.Line(line) }
func (api *appEditorAPI) GetBufferLineCount() int                { return api.app.buffer.LineCount() }
func (api *appEditorAPI) GetBufferFilePath() string              { return api.app.buffer.FilePath() }
func (api *appEditorAPI) GetBufferBytes() []byte                 { return api.app.buffer.Bytes() }
func (api *appEditorAPI) GetCursor() types.Position              { return api.app.cursor.Position() }

// --- Highlighters ---

// RegisterHighlighter adds a highlighter type to the registry. The tree is
// built after plugins are initialized, so later registrations are refused.
func (api *appEditorAPI) RegisterHighlighter(name string, factory highlighter.Factory, description string) error {
	if !api.initializing {
		return fmt.Errorf("%w: %q", ErrRegistrationClosed, name)
	}
	return api.app.registry.Register(name, factory, description)
}

// --- Event Bus Interaction ---

func (api *appEditorAPI) DispatchEvent(eventType event.Type, data interface{}) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *appEditorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) event.SubscriptionID {
	return api.app.eventManager.Subscribe(eventType, handler)
}

func (api *appEditorAPI) UnsubscribeEvent(id event.SubscriptionID) {
	api.app.eventManager.Unsubscribe(id)
}

// --- Commands ---

func (api *appEditorAPI) RegisterCommand(cmd commands.Command) error {
	return api.app.dispatcher.Register(cmd)
}

func (api *appEditorAPI) ExecuteCommand(line string) error {
	return api.app.dispatcher.Execute(line)
}

// --- Status Bar ---

func (api *appEditorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.statusBar.SetTemporaryMessage(format, args...)
	api.app.requestRedraw()
}

// --- Theme Access ---

func (api *appEditorAPI) GetThemeStyle(styleName string) tcell.Style {
	return api.app.Theme().GetStyle(styleName)
}

func (api *appEditorAPI) GetTheme() *theme.Theme {
	return api.app.Theme()
}

// SetTheme activates the named theme and tells subscribers about it.
func (api *appEditorAPI) SetTheme(name string) error {
	if err := api.app.themeManager.SetTheme(name); err != nil {
		return err
	}
	current := api.app.Theme().Name
	api.app.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: current})
	logger.Debugf("Theme changed to '%s', redraw requested", current)
	return nil
}

func (api *appEditorAPI) ListThemes() []string {
	return api.app.themeManager.ListThemes()
}
