package builtin

import (
	"embed"
	"sync"

	"github.com/bethropolis/prism/internal/highlighter/lang"
	"github.com/bethropolis/prism/internal/logger"

	gosrc "github.com/smacker/go-tree-sitter/golang"
	jssrc "github.com/smacker/go-tree-sitter/javascript"
	pythonsrc "github.com/smacker/go-tree-sitter/python"
	rustsrc "github.com/smacker/go-tree-sitter/rust"
)

//go:embed queries/*/*.scm
var embeddedQueries embed.FS

var languagesOnce sync.Once

// RegisterLanguages makes the bundled tree-sitter grammars available to the
// syntax highlighter. Calling it again is a no-op.
func RegisterLanguages() {
	languagesOnce.Do(func() {
		for _, l := range []*lang.Language{
			{Name: "Go", TreeSitterLang: gosrc.GetLanguage(), Extensions: []string{".go"}, QueryPath: "queries/go"},
			{Name: "Python", TreeSitterLang: pythonsrc.GetLanguage(), Extensions: []string{".py", ".pyw"}, QueryPath: "queries/python"},
			{Name: "JavaScript", TreeSitterLang: jssrc.GetLanguage(), Extensions: []string{".js", ".mjs", ".cjs"}, QueryPath: "queries/javascript"},
			{Name: "Rust", TreeSitterLang: rustsrc.GetLanguage(), Extensions: []string{".rs"}, QueryPath: "queries/rust"},
		} {
			l.Queries = embeddedQueries
			lang.Register(l)
		}
		logger.Debugf("Registered %d languages", len(lang.Names()))
	})
}
