package commands

import (
	"fmt"
	"strings"

	"github.com/bethropolis/prism/internal/highlighter"
	"github.com/bethropolis/prism/internal/theme"
)

// ThemeAPI is what the theme commands need from the application.
type ThemeAPI interface {
	SetTheme(name string) error
	GetTheme() *theme.Theme
	ListThemes() []string
	SetStatusMessage(format string, args ...interface{})
}

// RegisterThemeCommands registers :theme and :themes.
func RegisterThemeCommands(d *Dispatcher, themeAPI ThemeAPI) error {
	themeCmdFunc := func(args []string) error {
		if len(args) == 0 {
			themeAPI.SetStatusMessage("Current theme: %s", themeAPI.GetTheme().Name)
			return nil
		}
		themeName := strings.Join(args, " ") // theme names may contain spaces
		if err := themeAPI.SetTheme(themeName); err != nil {
			return fmt.Errorf("%w. Available: %s", err, strings.Join(themeAPI.ListThemes(), ", "))
		}
		themeAPI.SetStatusMessage("Theme set to: %s", themeName)
		return nil
	}
	themeListCmdFunc := func(args []string) error {
		themeAPI.SetStatusMessage("Available themes: %s", strings.Join(themeAPI.ListThemes(), ", "))
		return nil
	}
	completeTheme := func(args []string, token string) highlighter.Completions {
		if len(args) > 0 {
			return highlighter.Completions{End: len(token)}
		}
		return highlighter.Completions{End: len(token), Candidates: highlighter.Complete(token, themeAPI.ListThemes())}
	}

	if err := d.Register(Command{Name: "theme", Func: themeCmdFunc, Description: "theme [<name>]: show or switch the theme", Complete: completeTheme}); err != nil {
		return err
	}
	return d.Register(Command{Name: "themes", Func: themeListCmdFunc, Description: "themes: list available themes"})
}
