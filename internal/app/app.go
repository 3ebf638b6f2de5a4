// Package app wires the viewer together: the buffer, the highlighter tree,
// the window, the command line and the terminal loop.
package app

import (
	"fmt"
	"sync"

	"github.com/bethropolis/prism/internal/buffer"
	"github.com/bethropolis/prism/internal/commands"
	"github.com/bethropolis/prism/internal/config"
	"github.com/bethropolis/prism/internal/cursor"
	"github.com/bethropolis/prism/internal/event"
	"github.com/bethropolis/prism/internal/highlighter"
	"github.com/bethropolis/prism/internal/highlighter/builtin"
	"github.com/bethropolis/prism/internal/input"
	"github.com/bethropolis/prism/internal/logger"
	"github.com/bethropolis/prism/internal/modehandler"
	"github.com/bethropolis/prism/internal/plugin"
	"github.com/bethropolis/prism/internal/render"
	"github.com/bethropolis/prism/internal/statusbar"
	"github.com/bethropolis/prism/internal/theme"
	"github.com/bethropolis/prism/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the core components and main loop of the viewer.
type App struct {
	config        *config.Config
	tuiManager    *tui.TUI
	buffer        *buffer.SliceBuffer
	cursor        *cursor.Manager
	registry      *highlighter.Registry
	root          *highlighter.Group
	window        *render.Window
	dispatcher    *commands.Dispatcher
	themeManager  *theme.Manager
	statusBar     *statusbar.StatusBar
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	modeHandler   *modehandler.ModeHandler
	editorAPI     *appEditorAPI

	// mu serializes key handling and drawing: commands mutate the tree the
	// draw walks.
	mu       sync.Mutex
	disabled []string
	search   highlighter.NamedHighlighter // attached by SetSearchHighlight

	// Channels managed by the App
	quit          chan struct{}
	redrawRequest chan struct{}
}

// NewApp creates the application for filePath. A nil screen means the real
// terminal.
func NewApp(cfg *config.Config, filePath string, screen tcell.Screen) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	buf := buffer.NewSliceBuffer()
	var loadErr error
	if filePath != "" {
		if loadErr = buf.Load(filePath); loadErr != nil {
			logger.Warnf("App: error loading file '%s': %v", filePath, loadErr)
		}
	}

	themeManager := theme.NewManager()
	if _, err := themeManager.LoadThemesFromDir(cfg.ThemesDir()); err != nil {
		logger.Warnf("App: %v", err)
	}
	if err := themeManager.SetTheme(cfg.Theme.Name); err != nil {
		logger.Warnf("App: %v, keeping '%s'", err, themeManager.Current().Name)
	}

	registry := highlighter.NewRegistry()
	if err := builtin.Register(registry); err != nil {
		return nil, fmt.Errorf("registering builtin highlighters: %w", err)
	}
	root := highlighter.NewGroup()

	window := render.NewWindow(root)
	window.SetScrollOff(cfg.Editor.ScrollOff, 0)

	statusCfg := statusbar.ConfigFromTheme(themeManager.Current())
	statusCfg.MessageTimeout = config.MessageTimeout

	tuiManager, err := tui.New(screen)
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	tuiManager.SetStyle(themeManager.Current().GetStyle("Default"))

	a := &App{
		config:        cfg,
		tuiManager:    tuiManager,
		buffer:        buf,
		cursor:        cursor.NewManager(buf),
		registry:      registry,
		root:          root,
		window:        window,
		dispatcher:    commands.NewDispatcher(),
		themeManager:  themeManager,
		statusBar:     statusbar.New(statusCfg),
		eventManager:  event.NewManager(),
		pluginManager: plugin.NewManager(),
		quit:          make(chan struct{}),
		redrawRequest: make(chan struct{}, 1),
	}
	a.editorAPI = newEditorAPI(a)

	if err := a.registerCommands(); err != nil {
		tuiManager.Close()
		return nil, fmt.Errorf("registering commands: %w", err)
	}

	a.modeHandler = modehandler.New(modehandler.Config{
		Editor:         a,
		InputProcessor: input.NewInputProcessor(),
		Dispatcher:     a.dispatcher,
		EventManager:   a.eventManager,
		StatusBar:      a.statusBar,
		QuitSignal:     a.quit,
	})

	a.subscribeEvents()

	// Plugins register their highlighter types before the tree is built.
	if err := registerPlugins(a.pluginManager); err != nil {
		logger.Warnf("App: %v", err)
	}
	a.editorAPI.initializing = true
	if err := a.pluginManager.InitializePlugins(a.editorAPI); err != nil {
		logger.Errorf("App: plugin initialization: %v", err)
	}
	a.editorAPI.initializing = false

	a.statusBar.SetFileInfo(buf.FilePath())
	a.statusBar.SetEditorMode(a.modeHandler.GetCurrentMode().String())

	startupErr := a.runStartupCommands(cfg.Highlighters.Commands)
	switch {
	case loadErr != nil:
		a.statusBar.SetError(loadErr)
	case startupErr != nil:
		a.statusBar.SetError(startupErr)
	default:
		a.statusBar.SetTemporaryMessage("%s %s - : command | / find | ESC quit", config.AppName, config.Version)
	}
	a.eventManager.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: buf.FilePath()})

	return a, nil
}

// runStartupCommands builds the initial tree. A failing line is logged and
// the rest still run; the first failure is returned.
func (a *App) runStartupCommands(lines []string) error {
	var firstErr error
	for _, line := range lines {
		if err := a.dispatcher.Execute(line); err != nil {
			logger.Warnf("App: startup command '%s' failed: %v", line, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	logger.Infof("App: highlighter tree built, %d highlighter(s)", len(a.root.FillUniqueIDs(nil)))
	return firstErr
}

// Run starts the application's main event and drawing loops.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer highlighter.Destroy(a.root)
	defer a.pluginManager.ShutdownPlugins()

	go a.eventLoop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.requestRedraw()

	// --- Main Drawing Loop ---
	for {
		select {
		case <-a.quit: // closed by the mode handler
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("Exiting application.")
			return nil
		case <-a.redrawRequest:
			a.drawEditor()
		}
	}
}

// eventLoop handles TUI events, delegating key events to the mode handler.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false
		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.Sync()
			needsRedraw = true
		case *tcell.EventKey:
			needsRedraw = a.handleKey(eventData)
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.modeHandler.HandleKeyEvent(ev)
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // a redraw is already pending
	}
}
