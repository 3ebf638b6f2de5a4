// Package lang keeps the tree-sitter languages the syntax highlighter can
// parse, keyed by name and file extension.
package lang

import (
	"errors"
	"fmt"
	"io/fs"

	sitter "github.com/smacker/go-tree-sitter"
)

// ErrNoQuery is returned when a language has no highlight query.
var ErrNoQuery = errors.New("no highlight query")

// Language is a parser plus the query that maps its nodes to faces.
type Language struct {
	// Name is the display name, also accepted by the syntax highlighter.
	Name string

	TreeSitterLang *sitter.Language

	// Extensions are the file extensions (with dot) the language claims.
	Extensions []string

	// Queries holds <QueryPath>/highlights.scm.
	Queries   fs.FS
	QueryPath string
}

// Query reads the highlight query source.
func (l *Language) Query() ([]byte, error) {
	if l.Queries == nil || l.QueryPath == "" {
		return nil, fmt.Errorf("%s: %w", l.Name, ErrNoQuery)
	}
	// highlight.scm is accepted as an alternative spelling
	for _, name := range []string{"highlights.scm", "highlight.scm"} {
		src, err := fs.ReadFile(l.Queries, l.QueryPath+"/"+name)
		if err == nil {
			return src, nil
		}
	}
	return nil, fmt.Errorf("%s: %w in %s", l.Name, ErrNoQuery, l.QueryPath)
}
