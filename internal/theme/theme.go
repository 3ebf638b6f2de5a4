// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/prism/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// DefaultFace is the face every lookup falls back to.
const DefaultFace = "Default"

// Theme maps face names to terminal styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle resolves a face name. Lookup order: exact name, the part before
// the first dot ("keyword.control" -> "keyword"), then Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	style, _ := t.Lookup(name)
	return style
}

// Lookup is GetStyle that also reports whether the name (or its base)
// was defined by the theme.
func (t *Theme) Lookup(name string) (tcell.Style, bool) {
	if t == nil {
		return tcell.StyleDefault, false
	}
	if style, ok := t.Styles[name]; ok {
		return style, true
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style, true
		}
	}

	if defStyle, ok := t.Styles[DefaultFace]; ok {
		if name != DefaultFace {
			logger.DebugTagf("theme", "Theme '%s': face '%s' not found, falling back to '%s'", t.Name, name, DefaultFace)
		}
		return defStyle, false
	}

	logger.Warnf("Theme '%s': face '%s' and '%s' not found, using tcell default.", t.Name, name, DefaultFace)
	return tcell.StyleDefault, false
}

// DevComfortDark is the built-in theme.
var DevComfortDark = newDevComfortDark()

func newDevComfortDark() *Theme {
	dcBackground := tcell.NewHexColor(0x2a2f38) // muted dark blue/grey
	dcForeground := tcell.NewHexColor(0xc5cdd9) // soft off-white
	dcComment := tcell.NewHexColor(0x5c6370)
	dcOrange := tcell.NewHexColor(0xd19a66)
	dcYellow := tcell.NewHexColor(0xe5c07b)
	dcGreen := tcell.NewHexColor(0x98c379)
	dcCyan := tcell.NewHexColor(0x56b6c2)
	dcBlue := tcell.NewHexColor(0x61afef)
	dcMagenta := tcell.NewHexColor(0xc678dd)

	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(dcForeground)

	return &Theme{
		Name:   "DevComfort Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			// --- UI faces ---
			DefaultFace:        baseStyle,
			"LineNumber":       baseStyle.Foreground(dcComment),
			"LineNumberCursor": baseStyle.Foreground(dcYellow).Bold(true),
			"Gutter":           baseStyle.Background(dcBackground),
			"Whitespace":       baseStyle.Foreground(dcComment),
			"Search":           tcell.StyleDefault.Background(tcell.ColorOrange).Foreground(tcell.ColorBlack),
			"Error":            baseStyle.Foreground(tcell.ColorRed).Bold(true),
			"StatusBar":        tcell.StyleDefault.Background(dcBackground).Foreground(dcForeground),
			"StatusBarMessage": tcell.StyleDefault.Background(dcBackground).Foreground(dcForeground).Bold(true),
			"StatusBarError":   tcell.StyleDefault.Background(dcBackground).Foreground(tcell.ColorRed).Bold(true),

			// --- Syntax faces (tree-sitter capture names) ---
			"keyword":     baseStyle.Foreground(dcBlue).Bold(true),
			"string":      baseStyle.Foreground(dcGreen),
			"comment":     baseStyle.Foreground(dcComment).Italic(true),
			"number":      baseStyle.Foreground(dcOrange),
			"type":        baseStyle.Foreground(dcCyan),
			"function":    baseStyle.Foreground(dcYellow),
			"constant":    baseStyle.Foreground(dcOrange),
			"variable":    baseStyle.Foreground(dcForeground),
			"operator":    baseStyle.Foreground(dcForeground),
			"namespace":   baseStyle.Foreground(dcCyan),
			"punctuation": baseStyle.Foreground(dcComment),
			"escape":      baseStyle.Foreground(dcMagenta),

			"string.escape":    baseStyle.Foreground(dcMagenta),
			"type.builtin":     baseStyle.Foreground(dcCyan).Bold(true),
			"function.builtin": baseStyle.Foreground(dcCyan).Italic(true),
			"function.method":  baseStyle.Foreground(dcYellow),
		},
	}
}
