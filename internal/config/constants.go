package config

import "time"

// Base application details
const AppName = "prism"
const Version = "0.1.0"
const ConfigDirName = "prism"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "prism.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// These could be moved to NewDefaultConfig(), keeping here for now
const DefaultTabWidth = 4
const DefaultScrollOff = 3
const DefaultThemeName = "DevComfort Dark"

// DefaultHighlighterCommands build the tree when the config file has no
// [highlighters] table.
var DefaultHighlighterCommands = []string{
	"add-highlighter / number-lines",
	"add-highlighter / tabs",
	"add-highlighter / syntax",
}
