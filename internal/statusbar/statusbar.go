// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/prism/internal/theme"
	"github.com/bethropolis/prism/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleMessage   tcell.Style
	StyleError     tcell.Style
	MessageTimeout time.Duration
}

// DefaultConfig provides defaults taken from the built-in theme.
func DefaultConfig() Config {
	return ConfigFromTheme(theme.DevComfortDark)
}

// ConfigFromTheme builds a config from the StatusBar faces of th.
func ConfigFromTheme(th *theme.Theme) Config {
	return Config{
		StyleDefault:   th.GetStyle("StatusBar"),
		StyleMessage:   th.GetStyle("StatusBarMessage"),
		StyleError:     th.GetStyle("StatusBarError"),
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar is the bottom line: file, cursor and highlighter summary, or a
// temporary message.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	filePath     string
	cursorPos    types.Position
	editorMode   string
	highlighters int

	tempMessage     string
	tempIsError     bool
	tempMessageTime time.Time
	pinned          bool // command line input, never expires
	now             func() time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config, now: time.Now}
}

// SetConfig replaces the styles, e.g. after a theme change.
func (sb *StatusBar) SetConfig(config Config) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.config = config
}

// SetFileInfo updates the file path shown in the status bar.
func (sb *StatusBar) SetFileInfo(path string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetEditorMode updates the displayed editor mode.
func (sb *StatusBar) SetEditorMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.editorMode = mode
}

// SetHighlighterCount updates the number of highlighters shown.
func (sb *StatusBar) SetHighlighterCount(n int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.highlighters = n
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.setMessage(fmt.Sprintf(format, args...), false, false)
}

// SetError displays an error message for a configured duration.
func (sb *StatusBar) SetError(err error) {
	sb.setMessage("Error: "+err.Error(), true, false)
}

// SetInput shows text until it is replaced or reset.
func (sb *StatusBar) SetInput(text string) {
	sb.setMessage(text, false, true)
}

func (sb *StatusBar) setMessage(text string, isError, pinned bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = text
	sb.tempIsError = isError
	sb.pinned = pinned
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.pinned = false
	sb.tempMessageTime = time.Time{}
}

func (sb *StatusBar) defaultText() string {
	fPath := sb.filePath
	if fPath == "" {
		fPath = "[No Name]"
	}
	modeIndicator := ""
	if sb.editorMode != "" {
		modeIndicator = fmt.Sprintf(" -- %s", sb.editorMode)
	}
	cursor := sb.cursorPos
	return fmt.Sprintf("%s -- Line: %d, Col: %d -- %d highlighter(s)%s",
		fPath, cursor.Line+1, cursor.Col+1, sb.highlighters, modeIndicator)
}

// Text returns the text and style Draw would use now.
func (sb *StatusBar) Text() (string, tcell.Style) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	active := !sb.tempMessageTime.IsZero() &&
		(sb.pinned || sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout)
	if !active {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
		return sb.defaultText(), sb.config.StyleDefault
	}
	if sb.tempIsError {
		return sb.tempMessage, sb.config.StyleError
	}
	return sb.tempMessage, sb.config.StyleMessage
}

// Draw renders the status bar on the last screen line.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1
	text, style := sb.Text()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		runes := gr.Runes()
		screen.SetContent(currentX, y, runes[0], runes[1:], style)
		currentX += clusterWidth
	}
}
