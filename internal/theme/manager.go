// internal/theme/manager.go
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bethropolis/prism/internal/logger"
)

// ErrThemeNotFound is returned when a theme name is not loaded.
var ErrThemeNotFound = errors.New("theme not found")

// Manager holds loaded themes and manages the active theme.
type Manager struct {
	mutex       sync.RWMutex
	themes      map[string]*Theme // lowercase name -> Theme
	activeTheme *Theme
}

// NewManager creates a manager holding the built-in theme, active by default.
func NewManager() *Manager {
	mgr := &Manager{
		themes: make(map[string]*Theme),
	}
	mgr.Add(DevComfortDark)
	mgr.activeTheme = DevComfortDark
	return mgr
}

// Add registers a theme, replacing any theme with the same (case-insensitive) name.
func (m *Manager) Add(t *Theme) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	key := strings.ToLower(t.Name)
	if existing, ok := m.themes[key]; ok && existing != t {
		logger.Warnf("Theme '%s' overrides existing theme '%s'", t.Name, existing.Name)
	}
	m.themes[key] = t
	if m.activeTheme != nil && strings.EqualFold(m.activeTheme.Name, t.Name) {
		m.activeTheme = t
	}
}

// LoadThemesFromDir loads every theme file in dir. A missing directory is not an error.
// Files that fail to parse are logged and skipped.
func (m *Manager) LoadThemesFromDir(dir string) (int, error) {
	if dir == "" {
		return 0, nil
	}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		logger.Infof("Theme directory '%s' does not exist. No custom themes loaded.", dir)
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read theme directory '%s': %w", dir, err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !IsThemeFile(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		t, err := LoadThemeFromFile(path)
		if err != nil {
			logger.Warnf("Failed to load theme from '%s': %v", path, err)
			continue
		}
		m.Add(t)
		loaded++
	}
	logger.Infof("Loaded %d custom themes from %s.", loaded, dir)
	return loaded, nil
}

// Current returns the currently active theme.
func (m *Manager) Current() *Theme {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.activeTheme
}

// SetTheme sets the active theme by name (case-insensitive).
func (m *Manager) SetTheme(name string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	t, ok := m.themes[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("%w: '%s'", ErrThemeNotFound, name)
	}
	if m.activeTheme != t {
		m.activeTheme = t
		logger.Infof("Active theme set to: %s", t.Name)
	}
	return nil
}

// ListThemes returns the sorted names of all loaded themes.
func (m *Manager) ListThemes() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	names := make([]string, 0, len(m.themes))
	for _, t := range m.themes {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}

// GetTheme returns a specific theme by name (case-insensitive).
func (m *Manager) GetTheme(name string) (*Theme, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	t, ok := m.themes[strings.ToLower(name)]
	return t, ok
}
