// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/prism/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger       logger.Config     `toml:"logger"` // Embed logger config under [logger] table
	Editor       EditorConfig      `toml:"editor"`
	Theme        ThemeConfig       `toml:"theme"`
	Highlighters HighlighterConfig `toml:"highlighters"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth  int `toml:"tab_width"`
	ScrollOff int `toml:"scroll_off"`
}

// ThemeConfig selects the active theme and where theme files live.
type ThemeConfig struct {
	Name string `toml:"name"`
	Dir  string `toml:"dir"` // empty means <config dir>/prism/themes
}

// HighlighterConfig lists command lines run at startup, in order, to build
// the highlighter tree.
type HighlighterConfig struct {
	Commands []string `toml:"commands"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			TabWidth:  DefaultTabWidth,
			ScrollOff: DefaultScrollOff,
		},
		Theme: ThemeConfig{
			Name: DefaultThemeName,
		},
		Highlighters: HighlighterConfig{
			Commands: slices.Clone(DefaultHighlighterCommands),
		},
	}
}

// DefaultPath returns ~/.config/prism/config.toml, or "" when the user
// config directory is unknown.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
}

// ThemesDir returns the directory theme files are loaded from.
func (c *Config) ThemesDir() string {
	if c.Theme.Dir != "" {
		return c.Theme.Dir
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, ConfigDirName, ThemesDirName)
}

// loadFromFile decodes a TOML file over cfg. A missing file is not an error.
// Keys the file does not set keep their current values.
func loadFromFile(filePath string, cfg *Config) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		logger.Debugf("Config file not found: %s", filePath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, undecoded)
	}
	logger.Infof("Loaded configuration from: %s", filePath)
	return nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 { // Allow 0
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Theme.Name == "" {
		c.Theme.Name = defaults.Theme.Name
	}
}

// Load builds the configuration from defaults, the file at path (the
// default location when empty) and the flags that were set, in that order.
// The returned config is always usable; a file error is returned alongside
// it.
func Load(path string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	if path == "" {
		path = DefaultPath()
	}
	var loadErr error
	if path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			loadErr = err
			cfg = NewDefaultConfig()
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, loadErr
}
