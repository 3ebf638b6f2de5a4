package modehandler

import (
	"unicode/utf8"

	"github.com/bethropolis/prism/internal/highlighter"
)

// prompt is the line typed after ':' or '/'. Tab cycles through the
// completions computed for the text as it was before the first Tab.
type prompt struct {
	prefix string
	text   string

	completing bool
	base       string
	comp       highlighter.Completions
	index      int
}

func (p *prompt) reset(prefix string) {
	*p = prompt{prefix: prefix}
}

func (p *prompt) display() string {
	return p.prefix + p.text
}

func (p *prompt) insert(r rune) {
	p.text += string(r)
	p.completing = false
}

// backspace removes the last rune. It reports false when the prompt was
// already empty.
func (p *prompt) backspace() bool {
	if p.text == "" {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(p.text)
	p.text = p.text[:len(p.text)-size]
	p.completing = false
	return true
}

// complete applies the next candidate. complete is called with the current
// text to compute fresh completions. It reports the number of candidates.
func (p *prompt) complete(complete func(line string, cursor int) highlighter.Completions) int {
	if !p.completing {
		p.base = p.text
		p.comp = complete(p.base, len(p.base))
		p.index = 0
		if len(p.comp.Candidates) == 0 {
			return 0
		}
		p.completing = true
	} else {
		p.index = (p.index + 1) % len(p.comp.Candidates)
	}
	start := max(0, min(p.comp.Start, len(p.base)))
	end := max(start, min(p.comp.End, len(p.base)))
	p.text = p.base[:start] + p.comp.Candidates[p.index] + p.base[end:]
	return len(p.comp.Candidates)
}
