// Package commands runs the command lines typed at the ':' prompt or listed
// in the configuration file.
package commands

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/bethropolis/prism/internal/highlighter"
	"github.com/bethropolis/prism/internal/logger"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrCommandExists  = errors.New("command already registered")
	ErrUsage          = errors.New("usage")
)

// CommandFunc runs a command with its arguments.
type CommandFunc func(args []string) error

// Completer completes the argument being typed. args are the arguments
// before it; the returned offsets are relative to token.
type Completer func(args []string, token string) highlighter.Completions

// Command is a named command.
type Command struct {
	Name        string
	Func        CommandFunc
	Description string
	Complete    Completer // optional
}

// Dispatcher maps command names to commands.
type Dispatcher struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{commands: make(map[string]Command)}
}

// Register adds a command.
func (d *Dispatcher) Register(cmd Command) error {
	if cmd.Name == "" || strings.ContainsAny(cmd.Name, " \t") {
		return fmt.Errorf("invalid command name %q", cmd.Name)
	}
	if cmd.Func == nil {
		return fmt.Errorf("command %q has no function", cmd.Name)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.commands[cmd.Name]; exists {
		return fmt.Errorf("%w: %q", ErrCommandExists, cmd.Name)
	}
	d.commands[cmd.Name] = cmd
	logger.Debugf("Dispatcher: registered command ':%s'", cmd.Name)
	return nil
}

// Lookup returns the command called name.
func (d *Dispatcher) Lookup(name string) (Command, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	cmd, ok := d.commands[name]
	return cmd, ok
}

// Names returns the registered command names, sorted.
func (d *Dispatcher) Names() []string {
	d.mu.RLock()
	names := make([]string, 0, len(d.commands))
	for name := range d.commands {
		names = append(names, name)
	}
	d.mu.RUnlock()
	slices.Sort(names)
	return names
}

// Execute splits line into a command name and arguments and runs it. An
// empty line does nothing.
func (d *Dispatcher) Execute(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	cmd, ok := d.Lookup(parts[0])
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, parts[0])
	}
	logger.Debugf("Dispatcher: executing ':%s' with args %v", cmd.Name, parts[1:])
	if err := cmd.Func(parts[1:]); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return nil
}

// Complete returns candidates for the word under cursor in line. Offsets are
// relative to line.
func (d *Dispatcher) Complete(line string, cursor int) highlighter.Completions {
	cursor = max(0, min(cursor, len(line)))
	prefix := line[:cursor]
	words := strings.Fields(prefix)

	token := ""
	if len(words) > 0 && !strings.HasSuffix(prefix, " ") && !strings.HasSuffix(prefix, "\t") {
		token = words[len(words)-1]
		words = words[:len(words)-1]
	}
	start := cursor - len(token)

	if len(words) == 0 {
		return highlighter.Completions{
			Start:      start,
			End:        cursor,
			Candidates: highlighter.Complete(token, d.Names()),
		}
	}

	cmd, ok := d.Lookup(words[0])
	if !ok || cmd.Complete == nil {
		return highlighter.Completions{Start: start, End: cursor}
	}
	comp := cmd.Complete(words[1:], token)
	comp.Start += start
	comp.End += start
	return comp
}
