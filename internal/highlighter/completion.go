package highlighter

import (
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Completions are the candidates for the text between Start and End of the
// string being completed.
type Completions struct {
	Start      int
	End        int
	Candidates []string
}

// Complete returns the candidates starting with prefix, in their original
// order, followed by the remaining fuzzy matches, best first.
func Complete(prefix string, candidates []string) []string {
	if prefix == "" {
		return slices.Clone(candidates)
	}
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	for _, m := range fuzzy.Find(prefix, candidates) {
		if !strings.HasPrefix(m.Str, prefix) {
			out = append(out, m.Str)
		}
	}
	return out
}
