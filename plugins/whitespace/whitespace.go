// plugins/whitespace/whitespace.go
package whitespace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bethropolis/prism/internal/buffer"
	"github.com/bethropolis/prism/internal/display"
	"github.com/bethropolis/prism/internal/highlighter"
	"github.com/bethropolis/prism/internal/logger"
	"github.com/bethropolis/prism/internal/plugin"
	"github.com/bethropolis/prism/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Ensure Whitespace implements plugin.Plugin
var _ plugin.Plugin = (*Whitespace)(nil)

// TypeName is the highlighter type registered by the plugin.
const TypeName = "show-whitespace"

// Face used for the markers.
const Face = "Whitespace"

var errParams = errors.New("wrong parameters")

// Whitespace provides the show-whitespace highlighter.
type Whitespace struct {
	api plugin.EditorAPI
}

// New creates a new instance of the Whitespace plugin.
func New() *Whitespace {
	return &Whitespace{}
}

// Name returns the unique name of the plugin.
func (p *Whitespace) Name() string {
	return "Whitespace"
}

// Initialize registers the highlighter type.
func (p *Whitespace) Initialize(api plugin.EditorAPI) error {
	p.api = api
	err := api.RegisterHighlighter(TypeName, NewHighlighter,
		"show-whitespace [-tab <s>] [-spc <s>] [-nbsp <s>]: display whitespace characters")
	if err != nil {
		return fmt.Errorf("failed to register '%s' highlighter: %w", TypeName, err)
	}
	return nil
}

// Shutdown performs cleanup (nothing needed for this plugin).
func (p *Whitespace) Shutdown() error {
	return nil
}

// markers replaces whitespace with visible characters.
type markers struct {
	tab, spc, nbsp string
}

// NewHighlighter is the factory of show-whitespace.
func NewHighlighter(params []string) (highlighter.NamedHighlighter, error) {
	m := &markers{tab: "→", spc: "·", nbsp: "⍽"}
	for i := 0; i < len(params); i++ {
		var dst *string
		switch params[i] {
		case "-tab":
			dst = &m.tab
		case "-spc":
			dst = &m.spc
		case "-nbsp":
			dst = &m.nbsp
		default:
			return highlighter.NamedHighlighter{}, fmt.Errorf("%w: unknown switch %q", errParams, params[i])
		}
		if i+1 >= len(params) {
			return highlighter.NamedHighlighter{}, fmt.Errorf("%w: %s needs a value", errParams, params[i])
		}
		i++
		if uniseg.StringWidth(params[i]) != 1 {
			return highlighter.NamedHighlighter{}, fmt.Errorf("%w: marker %q must be one cell wide", errParams, params[i])
		}
		*dst = params[i]
	}
	return highlighter.NamedHighlighter{
		ID:          "show-whitespace",
		Highlighter: highlighter.NewLeaf(highlighter.PassColorize, m),
	}, nil
}

func (m *markers) Paint(ctx highlighter.HighlightContext, buf *display.Buffer, r types.BufferRange) {
	if ctx.Context == nil {
		return
	}
	src := ctx.Context.Buffer()
	tabWidth := max(1, ctx.Context.TabWidth())
	style := ctx.Face(Face)

	for _, l := range buf.Lines() {
		var out []display.Atom
		changed := false
		for _, a := range l.Atoms() {
			switch {
			case a.Kind == display.KindRange && strings.ContainsAny(a.Text, " \t\u00a0"):
				out = m.splitRange(out, a, src, tabWidth, style, r)
				changed = true
			case a.Kind == display.KindReplaced && r.Contains(a.Begin) && isTab(src, a.Begin):
				a.Text = m.tab + strings.Repeat(" ", max(0, uniseg.StringWidth(a.Text)-1))
				a.Style = style
				out = append(out, a)
				changed = true
			default:
				out = append(out, a)
			}
		}
		if changed {
			l.Erase(0, l.AtomCount())
			l.Insert(0, out...)
		}
	}
}

// splitRange appends a to out with each whitespace character inside r
// turned into a replaced marker atom.
func (m *markers) splitRange(out []display.Atom, a display.Atom, src buffer.Buffer, tabWidth int, style tcell.Style, r types.BufferRange) []display.Atom {
	pos := a.Begin
	runStart := pos
	var run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			out = append(out, display.NewRangeAtom(run.String(), runStart, a.Style))
			run.Reset()
		}
	}
	gr := uniseg.NewGraphemes(a.Text)
	for gr.Next() {
		next := types.Position{Line: pos.Line, Col: pos.Col + len(gr.Runes())}
		marker := ""
		if r.Contains(pos) {
			switch gr.Str() {
			case " ":
				marker = m.spc
			case "\u00a0":
				marker = m.nbsp
			case "\t":
				col := displayColumn(src, pos, tabWidth)
				marker = m.tab + strings.Repeat(" ", tabWidth-col%tabWidth-1)
			}
		}
		if marker == "" {
			if run.Len() == 0 {
				runStart = pos
			}
			run.WriteString(gr.Str())
			pos = next
			continue
		}
		flush()
		out = append(out, display.NewReplacedAtom(marker, pos, next, style))
		pos = next
	}
	flush()
	return out
}

func isTab(src buffer.Buffer, pos types.Position) bool {
	line, err := src.Line(pos.Line)
	if err != nil {
		return false
	}
	runes := []rune(string(line))
	return pos.Col < len(runes) && runes[pos.Col] == '\t'
}

// displayColumn returns the cell column of pos with tabs expanded.
func displayColumn(src buffer.Buffer, pos types.Position, tabWidth int) int {
	line, err := src.Line(pos.Line)
	if err != nil {
		logger.DebugTagf("highlight", "show-whitespace: %v", err)
		return 0
	}
	col, idx := 0, 0
	gr := uniseg.NewGraphemes(string(line))
	for idx < pos.Col && gr.Next() {
		if gr.Str() == "\t" {
			col += tabWidth - col%tabWidth
		} else {
			col += gr.Width()
		}
		idx += len(gr.Runes())
	}
	return col
}
