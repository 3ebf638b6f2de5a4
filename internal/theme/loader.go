// internal/theme/loader.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/prism/internal/logger"
	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// StyleDef represents a single face definition in a theme file.
// Pointers distinguish missing values from zero values.
type StyleDef struct {
	Fg        *string `toml:"fg" yaml:"fg"`
	Bg        *string `toml:"bg" yaml:"bg"`
	Bold      *bool   `toml:"bold" yaml:"bold"`
	Italic    *bool   `toml:"italic" yaml:"italic"`
	Underline *bool   `toml:"underline" yaml:"underline"`
	Reverse   *bool   `toml:"reverse" yaml:"reverse"`
}

// FileTheme represents the structure of a theme file (TOML or YAML).
type FileTheme struct {
	Name   string              `toml:"name" yaml:"name"`
	IsDark bool                `toml:"is_dark" yaml:"is_dark"`
	Styles map[string]StyleDef `toml:"styles" yaml:"styles"`
}

// IsThemeFile reports whether the loader understands the file extension.
func IsThemeFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".yaml", ".yml":
		return true
	}
	return false
}

// LoadThemeFromFile parses a TOML or YAML theme file.
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file '%s': %w", filePath, err)
	}

	var ft FileTheme
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &ft); err != nil {
			return nil, fmt.Errorf("failed to parse YAML theme file '%s': %w", filePath, err)
		}
	default:
		metadata, err := toml.Decode(string(data), &ft)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TOML theme file '%s': %w", filePath, err)
		}
		if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
			logger.Warnf("Theme '%s': Unrecognized keys in file '%s': %v", ft.Name, filePath, undecoded)
		}
	}

	if ft.Name == "" {
		ft.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		logger.Debugf("Theme file '%s' missing 'name', using filename '%s'", filePath, ft.Name)
	}

	theme, err := ft.build()
	if err != nil {
		return nil, fmt.Errorf("theme file '%s': %w", filePath, err)
	}
	logger.Debugf("Successfully loaded theme '%s' from '%s'", theme.Name, filePath)
	return theme, nil
}

// build converts file definitions into a Theme. Every face inherits unset
// attributes from the file's Default face.
func (ft FileTheme) build() (*Theme, error) {
	theme := &Theme{
		Name:   ft.Name,
		IsDark: ft.IsDark,
		Styles: make(map[string]tcell.Style, len(ft.Styles)+1),
	}

	baseStyle := tcell.StyleDefault
	if def, ok := ft.Styles[DefaultFace]; ok {
		style, err := def.apply(tcell.StyleDefault)
		if err != nil {
			return nil, fmt.Errorf("face '%s': %w", DefaultFace, err)
		}
		baseStyle = style
	}
	theme.Styles[DefaultFace] = baseStyle

	for name, def := range ft.Styles {
		if name == DefaultFace {
			continue
		}
		style, err := def.apply(baseStyle)
		if err != nil {
			logger.Warnf("Theme '%s': Failed to parse face '%s', skipping: %v", theme.Name, name, err)
			continue
		}
		theme.Styles[name] = style
	}
	return theme, nil
}

// apply layers the definition over a base style.
func (d StyleDef) apply(base tcell.Style) (tcell.Style, error) {
	style := base
	if d.Fg != nil {
		color, err := ParseColor(*d.Fg)
		if err != nil {
			return style, fmt.Errorf("invalid foreground color '%s': %w", *d.Fg, err)
		}
		style = style.Foreground(color)
	}
	if d.Bg != nil {
		color, err := ParseColor(*d.Bg)
		if err != nil {
			return style, fmt.Errorf("invalid background color '%s': %w", *d.Bg, err)
		}
		style = style.Background(color)
	}
	if d.Bold != nil {
		style = style.Bold(*d.Bold)
	}
	if d.Italic != nil {
		style = style.Italic(*d.Italic)
	}
	if d.Underline != nil {
		style = style.Underline(*d.Underline)
	}
	if d.Reverse != nil {
		style = style.Reverse(*d.Reverse)
	}
	return style, nil
}

// ParseColor converts "#rrggbb", "reset", "default" or a tcell color name.
func ParseColor(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "#"):
		if len(s) != 7 {
			return tcell.ColorDefault, fmt.Errorf("invalid hex color format '%s', must be #RRGGBB", s)
		}
		val, err := strconv.ParseInt(s[1:], 16, 32)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid hex value '%s': %w", s, err)
		}
		return tcell.NewHexColor(int32(val)), nil
	case s == "reset":
		return tcell.ColorReset, nil
	case s == "default":
		return tcell.ColorDefault, nil
	}
	if color, ok := tcell.ColorNames[s]; ok {
		return color, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color format or name '%s'", s)
}
