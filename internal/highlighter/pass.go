package highlighter

import (
	"fmt"
	"strings"
)

// Pass selects which kind of work a highlighter performs in a redraw.
// Passes combine as a bit set; a highlighter declares the set it takes
// part in when it is created.
type Pass uint8

const (
	// PassWrap changes the line structure of the display buffer.
	PassWrap Pass = 1 << iota
	// PassMove adjusts the display setup (window position, cursor, gutters).
	PassMove
	// PassColorize styles atoms without changing their layout.
	PassColorize

	PassNone Pass = 0
	PassAll       = PassWrap | PassMove | PassColorize
)

var passNames = []struct {
	pass Pass
	name string
}{
	{PassWrap, "wrap"},
	{PassMove, "move"},
	{PassColorize, "colorize"},
}

// Intersects reports whether p and other share at least one pass.
func (p Pass) Intersects(other Pass) bool {
	return p&other != 0
}

// String renders the set as "wrap|move".
func (p Pass) String() string {
	if p == PassNone {
		return "none"
	}
	var parts []string
	for _, pn := range passNames {
		if p&pn.pass != 0 {
			parts = append(parts, pn.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParsePass parses the output of String.
func ParsePass(s string) (Pass, error) {
	if s == "" || s == "none" {
		return PassNone, nil
	}
	var p Pass
	for _, part := range strings.Split(s, "|") {
		found := false
		for _, pn := range passNames {
			if strings.EqualFold(strings.TrimSpace(part), pn.name) {
				p |= pn.pass
				found = true
				break
			}
		}
		if !found {
			return PassNone, fmt.Errorf("unknown highlight pass %q", part)
		}
	}
	return p, nil
}
