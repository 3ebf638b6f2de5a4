package builtin

import (
	"testing"

	"github.com/bethropolis/prism/internal/buffer"
	"github.com/bethropolis/prism/internal/highlighter"
	"github.com/bethropolis/prism/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goSource = `package main

// greet says hello
func greet() string {
	return "hi"
}`

func TestSyntaxGo(t *testing.T) {
	RegisterLanguages()
	nh, err := newSyntax([]string{"go"})
	require.NoError(t, err)
	defer highlighter.Destroy(nh.Highlighter)

	ec := newContext(goSource)
	buf := displayOf(ec.buf)
	nh.Highlighter.Highlight(hctx(ec, highlighter.PassColorize), buf, buf.Range())

	tests := []struct {
		name string
		pos  types.Position
		face string
	}{
		{"package keyword", types.Position{Line: 0, Col: 0}, "keyword"},
		{"comment", types.Position{Line: 2, Col: 5}, "comment"},
		{"func keyword", types.Position{Line: 3, Col: 1}, "keyword"},
		{"function name", types.Position{Line: 3, Col: 6}, "function"},
		{"string", types.Position{Line: 4, Col: 9}, "string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := styleAt(buf.Line(tt.pos.Line), tt.pos)
			require.True(t, ok)
			assert.Equal(t, face(tt.face), got)
		})
	}
	assert.Equal(t, goSource, buf.String(), "colorize keeps the text")
}

func TestSyntaxDetectsLanguageFromPath(t *testing.T) {
	RegisterLanguages()
	nh, err := newSyntax(nil)
	require.NoError(t, err)
	defer highlighter.Destroy(nh.Highlighter)

	for _, tt := range []struct {
		path    string
		colored bool
	}{
		{"main.go", true},
		{"notes.txt", false},
	} {
		t.Run(tt.path, func(t *testing.T) {
			sb := buffer.FromString(goSource)
			sb.SetFilePath(tt.path)
			ec := newContext("")
			ec.buf = sb
			buf := displayOf(sb)
			nh.Highlighter.Highlight(hctx(ec, highlighter.PassColorize), buf, buf.Range())

			got, _ := styleAt(buf.Line(0), types.Position{})
			if tt.colored {
				assert.Equal(t, face("keyword"), got)
			} else {
				assert.Equal(t, tcell.StyleDefault, got)
			}
		})
	}
}

func TestSyntaxUnknownLanguage(t *testing.T) {
	RegisterLanguages()
	_, err := newSyntax([]string{"cobol"})
	assert.ErrorIs(t, err, ErrParams)
	_, err = newSyntax([]string{"go", "extra"})
	assert.ErrorIs(t, err, ErrParams)
}

func TestSyntaxFollowsEdits(t *testing.T) {
	RegisterLanguages()
	nh, err := newSyntax([]string{"Go"})
	require.NoError(t, err)
	defer highlighter.Destroy(nh.Highlighter)

	ec := newContext("package main")
	buf := displayOf(ec.buf)
	nh.Highlighter.Highlight(hctx(ec, highlighter.PassColorize), buf, buf.Range())
	got, _ := styleAt(buf.Line(0), types.Position{})
	assert.Equal(t, face("keyword"), got)

	ec.buf = buffer.FromString("// package main")
	buf = displayOf(ec.buf)
	nh.Highlighter.Highlight(hctx(ec, highlighter.PassColorize), buf, buf.Range())
	got, _ = styleAt(buf.Line(0), types.Position{Col: 3})
	assert.Equal(t, face("comment"), got)
}
