package highlighter

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/bethropolis/prism/internal/logger"
)

// Factory builds a highlighter from command arguments. The returned id is
// the default one; the caller may override it.
type Factory func(params []string) (NamedHighlighter, error)

// FactoryEntry is a registered highlighter type.
type FactoryEntry struct {
	Name        string
	Factory     Factory
	Description string
}

// Registry maps highlighter type names to factories. Registering a name
// twice is an error; the first registration stays in place.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]FactoryEntry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]FactoryEntry)}
}

// Register adds a highlighter type.
func (r *Registry) Register(name string, f Factory, description string) error {
	if name == "" {
		return errors.New("highlighter type name cannot be empty")
	}
	if f == nil {
		return fmt.Errorf("highlighter type %q: nil factory", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, name)
	}
	r.entries[name] = FactoryEntry{Name: name, Factory: f, Description: description}
	logger.DebugTagf("highlight", "Registry: registered type %q", name)
	return nil
}

// Lookup returns the entry for name.
func (r *Registry) Lookup(name string) (FactoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	if !ok {
		return FactoryEntry{}, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return e, nil
}

// Create looks up name and runs its factory with params.
func (r *Registry) Create(name string, params []string) (NamedHighlighter, error) {
	e, err := r.Lookup(name)
	if err != nil {
		return NamedHighlighter{}, err
	}
	nh, err := e.Factory(params)
	if err != nil {
		return NamedHighlighter{}, fmt.Errorf("%s: %w", name, err)
	}
	return nh, nil
}

// Describe returns the description registered with name.
func (r *Registry) Describe(name string) (string, error) {
	e, err := r.Lookup(name)
	if err != nil {
		return "", err
	}
	return e.Description, nil
}

// List returns the registered type names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}

// Complete returns the type names matching prefix.
func (r *Registry) Complete(prefix string) []string {
	return Complete(prefix, r.List())
}
