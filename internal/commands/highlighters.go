package commands

import (
	"fmt"
	"strings"

	"github.com/bethropolis/prism/internal/event"
	"github.com/bethropolis/prism/internal/highlighter"
	"github.com/bethropolis/prism/internal/logger"
)

// Messenger shows command feedback to the user.
type Messenger interface {
	SetStatusMessage(format string, args ...interface{})
}

// HighlighterDeps are the objects the highlighter commands work on.
type HighlighterDeps struct {
	Registry *highlighter.Registry
	Root     highlighter.Container
	Events   *event.Manager // optional
	Status   Messenger
}

type highlighterCommands struct {
	HighlighterDeps
}

// RegisterHighlighterCommands registers add-highlighter, remove-highlighter,
// list-highlighters and highlighter-types.
func RegisterHighlighterCommands(d *Dispatcher, deps HighlighterDeps) error {
	hc := &highlighterCommands{deps}
	for _, cmd := range []Command{
		{
			Name:        "add-highlighter",
			Func:        hc.add,
			Description: "add-highlighter [-id <id>] <path> <type> [<params>...]: attach a new highlighter under the group at path",
			Complete:    hc.completeAdd,
		},
		{
			Name:        "remove-highlighter",
			Func:        hc.remove,
			Description: "remove-highlighter <path>: detach the highlighter at path and everything below it",
			Complete:    hc.pathCompleter(false),
		},
		{
			Name:        "list-highlighters",
			Func:        hc.list,
			Description: "list-highlighters [-passes <passes>] [<path>]: show the children of the group at path with their passes",
			Complete:    hc.completeList,
		},
		{
			Name:        "highlighter-types",
			Func:        hc.types,
			Description: "highlighter-types [<type>]: list highlighter types or describe one",
			Complete: func(args []string, token string) highlighter.Completions {
				if len(args) > 0 {
					return highlighter.Completions{End: len(token)}
				}
				return highlighter.Completions{End: len(token), Candidates: hc.Registry.Complete(token)}
			},
		},
	} {
		if err := d.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}

// splitPath trims the optional leading and trailing "/" of a path.
func splitPath(path string) string {
	return strings.Trim(path, "/")
}

// container resolves path to a group. "" and "/" name the root.
func (hc *highlighterCommands) container(path string) (highlighter.Container, error) {
	path = splitPath(path)
	if path == "" {
		return hc.Root, nil
	}
	h, err := hc.Root.Child(path)
	if err != nil {
		return nil, err
	}
	c, ok := h.(highlighter.Container)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, highlighter.ErrNotContainer)
	}
	return c, nil
}

func (hc *highlighterCommands) changed(command, path string) {
	if hc.Events != nil {
		hc.Events.Dispatch(event.TypeHighlightersChanged, event.HighlightersChangedData{Command: command, Path: path})
	}
}

func (hc *highlighterCommands) add(args []string) error {
	id := ""
	if len(args) > 0 && args[0] == "-id" {
		if len(args) < 2 {
			return fmt.Errorf("%w: -id needs a value", ErrUsage)
		}
		id, args = args[1], args[2:]
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: add-highlighter [-id <id>] <path> <type> [<params>...]", ErrUsage)
	}
	path, typ, params := args[0], args[1], args[2:]

	parent, err := hc.container(path)
	if err != nil {
		return err
	}
	nh, err := hc.Registry.Create(typ, params)
	if err != nil {
		return err
	}
	if id != "" {
		nh.ID = id
	}
	if err := parent.AddChild(nh); err != nil {
		highlighter.Destroy(nh.Highlighter)
		return err
	}

	full := nh.ID
	if p := splitPath(path); p != "" {
		full = p + "/" + nh.ID
	}
	logger.Debugf("add-highlighter: added %s (%s)", full, typ)
	hc.changed("add-highlighter", full)
	hc.Status.SetStatusMessage("Added highlighter %s", full)
	return nil
}

func (hc *highlighterCommands) remove(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: remove-highlighter <path>", ErrUsage)
	}
	path := splitPath(args[0])
	if path == "" {
		return fmt.Errorf("%w: cannot remove the root group", ErrUsage)
	}
	parentPath, id := "", path
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		parentPath, id = path[:i], path[i+1:]
	}
	parent, err := hc.container(parentPath)
	if err != nil {
		return err
	}
	if err := parent.RemoveChild(id); err != nil {
		return err
	}
	hc.changed("remove-highlighter", path)
	hc.Status.SetStatusMessage("Removed highlighter %s", path)
	return nil
}

func (hc *highlighterCommands) list(args []string) error {
	filter := highlighter.PassAll
	if len(args) > 0 && args[0] == "-passes" {
		if len(args) < 2 {
			return fmt.Errorf("%w: -passes needs a value", ErrUsage)
		}
		p, err := highlighter.ParsePass(args[1])
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		filter, args = p, args[2:]
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: list-highlighters [-passes <passes>] [<path>]", ErrUsage)
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	c, err := hc.container(path)
	if err != nil {
		return err
	}
	comp, err := c.CompleteChild("", 0, false)
	if err != nil {
		return err
	}
	entries := make([]string, 0, len(comp.Candidates))
	for _, id := range comp.Candidates {
		child, err := c.Child(id)
		if err != nil {
			return err
		}
		if !child.Passes().Intersects(filter) {
			continue
		}
		entries = append(entries, fmt.Sprintf("%s (%s)", id, child.Passes()))
	}
	if len(entries) == 0 {
		hc.Status.SetStatusMessage("No highlighters")
		return nil
	}
	hc.Status.SetStatusMessage("Highlighters: %s", strings.Join(entries, ", "))
	return nil
}

func (hc *highlighterCommands) types(args []string) error {
	switch len(args) {
	case 0:
		hc.Status.SetStatusMessage("Highlighter types: %s", strings.Join(hc.Registry.List(), ", "))
		return nil
	case 1:
		desc, err := hc.Registry.Describe(args[0])
		if err != nil {
			return err
		}
		hc.Status.SetStatusMessage("%s", desc)
		return nil
	default:
		return fmt.Errorf("%w: highlighter-types [<type>]", ErrUsage)
	}
}

// completePath completes a path below the root. A leading "/" is allowed.
func (hc *highlighterCommands) completePath(token string, groupsOnly bool) highlighter.Completions {
	offset := 0
	if strings.HasPrefix(token, "/") {
		offset = 1
	}
	comp, err := hc.Root.CompleteChild(token[offset:], len(token)-offset, groupsOnly)
	if err != nil {
		return highlighter.Completions{End: len(token)}
	}
	comp.Start += offset
	comp.End += offset
	return comp
}

func (hc *highlighterCommands) pathCompleter(groupsOnly bool) Completer {
	return func(args []string, token string) highlighter.Completions {
		if len(args) > 0 {
			return highlighter.Completions{End: len(token)}
		}
		return hc.completePath(token, groupsOnly)
	}
}

func (hc *highlighterCommands) completeList(args []string, token string) highlighter.Completions {
	if len(args) > 0 && args[0] == "-passes" {
		if len(args) == 1 {
			return highlighter.Completions{End: len(token)}
		}
		args = args[2:]
	}
	return hc.pathCompleter(true)(args, token)
}

func (hc *highlighterCommands) completeAdd(args []string, token string) highlighter.Completions {
	if len(args) > 0 && args[0] == "-id" {
		if len(args) == 1 {
			return highlighter.Completions{End: len(token)} // the id itself
		}
		args = args[2:]
	}
	switch len(args) {
	case 0:
		return hc.completePath(token, true)
	case 1:
		return highlighter.Completions{End: len(token), Candidates: hc.Registry.Complete(token)}
	default:
		return highlighter.Completions{End: len(token)}
	}
}
