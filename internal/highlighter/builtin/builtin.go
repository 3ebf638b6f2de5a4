// Package builtin provides the highlighter types available at startup.
package builtin

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/prism/internal/highlighter"
	"github.com/bethropolis/prism/internal/logger"
)

// ErrParams is returned by factories given the wrong parameters.
var ErrParams = errors.New("wrong parameters")

type entry struct {
	name        string
	factory     highlighter.Factory
	description string
}

func entries() []entry {
	return []entry{
		{"group", newGroup, "group [<name>]: container for other highlighters"},
		{"columns", newColumns, "columns <width> [<face>]: blank gutter of the given width"},
		{"fill", newFill, "fill <face>: apply face to the whole window"},
		{"number-lines", newNumberLines, "number-lines [-relative] [-separator <s>] [-min-digits <n>]: line number gutter"},
		{"regex", newRegex, "regex <pattern> <face> [<capture>:<face>...]: apply faces to matches"},
		{"tabs", newTabs, "tabs [<width>]: expand tab characters"},
		{"syntax", newSyntax, "syntax [<language>]: tree-sitter highlighting, language from file extension by default"},
	}
}

// Register adds the builtin types to reg and makes the syntax languages
// available.
func Register(reg *highlighter.Registry) error {
	RegisterLanguages()
	for _, e := range entries() {
		if err := reg.Register(e.name, e.factory, e.description); err != nil {
			return err
		}
	}
	logger.DebugTagf("highlight", "Registered %d builtin highlighter types", len(entries()))
	return nil
}

// switches holds the parsed -name [value] options of a factory.
type switches map[string]string

func (s switches) has(name string) bool {
	_, ok := s[name]
	return ok
}

// parseSwitches splits leading switches from the positional parameters.
// valued lists the switches that take an argument; "--" ends switches.
func parseSwitches(params []string, valued ...string) (switches, []string, error) {
	sw := make(switches)
	i := 0
	for ; i < len(params); i++ {
		p := params[i]
		if p == "--" {
			i++
			break
		}
		if !strings.HasPrefix(p, "-") || len(p) < 2 {
			break
		}
		name := p[1:]
		takesValue := false
		for _, v := range valued {
			if v == name {
				takesValue = true
				break
			}
		}
		if !takesValue {
			sw[name] = ""
			continue
		}
		if i+1 >= len(params) {
			return nil, nil, fmt.Errorf("%w: -%s needs a value", ErrParams, name)
		}
		sw[name] = params[i+1]
		i++
	}
	return sw, params[i:], nil
}

// parseCount parses a non-negative integer parameter.
func parseCount(what, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative number, got %q", ErrParams, what, s)
	}
	return n, nil
}

// idFor derives a default id from parameters. Ids may not contain "/".
func idFor(prefix string, params ...string) string {
	if len(params) == 0 {
		return prefix
	}
	id := prefix + "_" + strings.Join(params, "_")
	return strings.ReplaceAll(id, "/", "_")
}

func newGroup(params []string) (highlighter.NamedHighlighter, error) {
	if len(params) > 1 {
		return highlighter.NamedHighlighter{}, fmt.Errorf("%w: group takes at most a name", ErrParams)
	}
	id := "group"
	if len(params) == 1 {
		id = params[0]
	}
	return highlighter.NamedHighlighter{ID: id, Highlighter: highlighter.NewGroup()}, nil
}
