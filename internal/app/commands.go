package app

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bethropolis/prism/internal/commands"
	"github.com/bethropolis/prism/internal/event"
	"github.com/bethropolis/prism/internal/highlighter"
)

// registerCommands registers the highlighter and theme commands and the
// app's own ones.
func (a *App) registerCommands() error {
	err := commands.RegisterHighlighterCommands(a.dispatcher, commands.HighlighterDeps{
		Registry: a.registry,
		Root:     a.root,
		Events:   a.eventManager,
		Status:   a.editorAPI,
	})
	if err != nil {
		return err
	}
	if err := commands.RegisterThemeCommands(a.dispatcher, a.editorAPI); err != nil {
		return err
	}

	for _, cmd := range []commands.Command{
		{
			Name:        "disable-highlighter",
			Func:        a.disableHighlighter,
			Description: "disable-highlighter <id>: skip the highlighter with this id when drawing",
			Complete:    a.completeIDs(func() []string { return a.root.FillUniqueIDs(nil) }),
		},
		{
			Name:        "enable-highlighter",
			Func:        a.enableHighlighter,
			Description: "enable-highlighter <id>: draw a disabled highlighter again",
			Complete:    a.completeIDs(func() []string { return slices.Clone(a.disabled) }),
		},
		{
			Name:        "help",
			Func:        a.help,
			Description: "help [<command>]: list commands or describe one",
			Complete: func(args []string, token string) highlighter.Completions {
				if len(args) > 0 {
					return highlighter.Completions{End: len(token)}
				}
				return highlighter.Completions{End: len(token), Candidates: highlighter.Complete(token, a.dispatcher.Names())}
			},
		},
	} {
		if err := a.dispatcher.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) completeIDs(ids func() []string) commands.Completer {
	return func(args []string, token string) highlighter.Completions {
		if len(args) > 0 {
			return highlighter.Completions{End: len(token)}
		}
		return highlighter.Completions{End: len(token), Candidates: highlighter.Complete(token, ids())}
	}
}

func (a *App) disableHighlighter(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: disable-highlighter <id>", commands.ErrUsage)
	}
	id := args[0]
	if !slices.Contains(a.root.FillUniqueIDs(nil), id) {
		return fmt.Errorf("%w: %q", highlighter.ErrNotFound, id)
	}
	if !slices.Contains(a.disabled, id) {
		a.disabled = append(a.disabled, id)
	}
	a.editorAPI.SetStatusMessage("Disabled highlighter %s", id)
	a.eventManager.Dispatch(event.TypeRedraw, nil)
	return nil
}

func (a *App) enableHighlighter(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: enable-highlighter <id>", commands.ErrUsage)
	}
	i := slices.Index(a.disabled, args[0])
	if i < 0 {
		return fmt.Errorf("highlighter %q is not disabled", args[0])
	}
	a.disabled = slices.Delete(a.disabled, i, i+1)
	a.editorAPI.SetStatusMessage("Enabled highlighter %s", args[0])
	a.eventManager.Dispatch(event.TypeRedraw, nil)
	return nil
}

func (a *App) help(args []string) error {
	if len(args) == 0 {
		a.editorAPI.SetStatusMessage("Commands: %s", strings.Join(a.dispatcher.Names(), ", "))
		return nil
	}
	cmd, ok := a.dispatcher.Lookup(args[0])
	if !ok {
		return fmt.Errorf("%w: %q", commands.ErrUnknownCommand, args[0])
	}
	a.editorAPI.SetStatusMessage("%s", cmd.Description)
	return nil
}
