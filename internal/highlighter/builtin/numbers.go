package builtin

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bethropolis/prism/internal/display"
	"github.com/bethropolis/prism/internal/highlighter"
	"github.com/bethropolis/prism/internal/types"
	"github.com/rivo/uniseg"
)

const (
	lineNumberFace       = "LineNumber"
	lineNumberCursorFace = "LineNumberCursor"
)

// numberLines draws right-aligned line numbers in a gutter. The cursor line
// uses its own face; with relative set the other lines show their distance
// to the cursor.
type numberLines struct {
	relative  bool
	separator string
	minDigits int
}

func newNumberLines(params []string) (highlighter.NamedHighlighter, error) {
	sw, rest, err := parseSwitches(params, "separator", "min-digits")
	if err != nil {
		return highlighter.NamedHighlighter{}, err
	}
	if len(rest) != 0 {
		return highlighter.NamedHighlighter{}, fmt.Errorf("%w: unexpected %q", ErrParams, rest[0])
	}
	n := &numberLines{separator: " ", minDigits: 1}
	for name, value := range sw {
		switch name {
		case "relative":
			n.relative = true
		case "separator":
			n.separator = value
		case "min-digits":
			if n.minDigits, err = parseCount("min-digits", value); err != nil {
				return highlighter.NamedHighlighter{}, err
			}
		default:
			return highlighter.NamedHighlighter{}, fmt.Errorf("%w: unknown switch -%s", ErrParams, name)
		}
	}
	return highlighter.NamedHighlighter{
		ID:          "number-lines",
		Highlighter: highlighter.NewLeaf(highlighter.PassMove|highlighter.PassColorize, n),
	}, nil
}

func (n *numberLines) digits(ctx highlighter.HighlightContext) int {
	count := max(lineCount(ctx), 1)
	return max(int(math.Log10(float64(count)))+1, n.minDigits)
}

func (n *numberLines) width(ctx highlighter.HighlightContext) int {
	return n.digits(ctx) + uniseg.StringWidth(n.separator)
}

func (n *numberLines) AdjustSetup(ctx highlighter.HighlightContext, setup *highlighter.DisplaySetup) {
	setup.WindowRange.Column = max(0, setup.WindowRange.Column-n.width(ctx))
}

func (n *numberLines) Paint(ctx highlighter.HighlightContext, buf *display.Buffer, _ types.BufferRange) {
	if !ctx.Pass.Intersects(highlighter.PassColorize) {
		return
	}
	digits := n.digits(ctx)
	cursor := cursorOf(ctx).Line
	numberStyle := ctx.Face(lineNumberFace)
	cursorStyle := ctx.Face(lineNumberCursorFace)

	prev := -1
	for _, l := range buf.Lines() {
		rng, ok := l.Range()
		if !ok {
			l.Insert(0, display.NewTextAtom(strings.Repeat(" ", digits)+n.separator, numberStyle))
			continue
		}
		line := rng.Begin.Line
		label := ""
		// continuation rows of a wrapped line get a blank number
		if line != prev {
			label = n.label(line, cursor)
		}
		prev = line
		style := numberStyle
		if line == cursor {
			style = cursorStyle
		}
		l.Insert(0, display.NewTextAtom(fmt.Sprintf("%*s", digits, label)+n.separator, style))
	}
}

func (n *numberLines) label(line, cursor int) string {
	if !n.relative || line == cursor {
		return strconv.Itoa(line + 1)
	}
	d := line - cursor
	if d < 0 {
		d = -d
	}
	return strconv.Itoa(d)
}
