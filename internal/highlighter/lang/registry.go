package lang

import (
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/bethropolis/prism/internal/logger"
)

var registry struct {
	sync.RWMutex
	languages     []*Language
	byName        map[string]*Language
	extToLanguage map[string]*Language
}

// Register adds a language. A later registration of the same name or
// extension replaces the earlier one.
func Register(l *Language) {
	registry.Lock()
	defer registry.Unlock()

	if registry.byName == nil {
		registry.byName = make(map[string]*Language)
		registry.extToLanguage = make(map[string]*Language)
	}

	key := strings.ToLower(l.Name)
	if old, ok := registry.byName[key]; ok {
		registry.languages = slices.DeleteFunc(registry.languages, func(x *Language) bool { return x == old })
	}
	registry.languages = append(registry.languages, l)
	registry.byName[key] = l

	for _, ext := range l.Extensions {
		lowerExt := strings.ToLower(ext)
		if existing, ok := registry.extToLanguage[lowerExt]; ok && existing != l {
			logger.Warnf("Extension %s already registered to %s, overriding with %s",
				lowerExt, existing.Name, l.Name)
		}
		registry.extToLanguage[lowerExt] = l
	}

	logger.DebugTagf("lang", "Registered language: %s with extensions: %v", l.Name, l.Extensions)
}

// ForFile returns the language for a file path by extension, or nil.
func ForFile(filePath string) *Language {
	registry.RLock()
	defer registry.RUnlock()
	return registry.extToLanguage[strings.ToLower(filepath.Ext(filePath))]
}

// ByName returns the language with the given name (case-insensitive), or nil.
func ByName(name string) *Language {
	registry.RLock()
	defer registry.RUnlock()
	return registry.byName[strings.ToLower(name)]
}

// Names returns the registered language names in registration order.
func Names() []string {
	registry.RLock()
	defer registry.RUnlock()
	names := make([]string, len(registry.languages))
	for i, l := range registry.languages {
		names[i] = l.Name
	}
	return names
}
