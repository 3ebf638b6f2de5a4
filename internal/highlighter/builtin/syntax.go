package builtin

import (
	"bytes"
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/bethropolis/prism/internal/display"
	"github.com/bethropolis/prism/internal/highlighter"
	"github.com/bethropolis/prism/internal/highlighter/lang"
	"github.com/bethropolis/prism/internal/highlighter/utils"
	"github.com/bethropolis/prism/internal/logger"
	"github.com/bethropolis/prism/internal/types"
	sitter "github.com/smacker/go-tree-sitter"
)

// styledSpan is a capture on one line, in rune columns.
type styledSpan struct {
	startCol int
	endCol   int
	face     string
}

// syntax highlights the buffer with a tree-sitter grammar. The parse result
// is cached until the buffer content or language changes.
type syntax struct {
	fixed *lang.Language // nil picks the language from the file extension

	parser *sitter.Parser
	query  *sitter.Query
	active *lang.Language

	source []byte
	spans  map[int][]styledSpan
}

func newSyntax(params []string) (highlighter.NamedHighlighter, error) {
	if len(params) > 1 {
		return highlighter.NamedHighlighter{}, fmt.Errorf("%w: syntax [<language>]", ErrParams)
	}
	s := &syntax{parser: sitter.NewParser()}
	if len(params) == 1 {
		s.fixed = lang.ByName(params[0])
		if s.fixed == nil {
			s.parser.Close()
			return highlighter.NamedHighlighter{}, fmt.Errorf("%w: unknown language %q", ErrParams, params[0])
		}
		if err := s.use(s.fixed); err != nil {
			s.Close()
			return highlighter.NamedHighlighter{}, err
		}
	}
	return highlighter.NamedHighlighter{
		ID:          "syntax",
		Highlighter: highlighter.NewLeaf(highlighter.PassColorize, s),
	}, nil
}

// use switches the parser and query to l.
func (s *syntax) use(l *lang.Language) error {
	if s.active == l {
		return nil
	}
	src, err := l.Query()
	if err != nil {
		return err
	}
	query, err := sitter.NewQuery(src, l.TreeSitterLang)
	if err != nil {
		return fmt.Errorf("%s highlight query: %w", l.Name, err)
	}
	if s.query != nil {
		s.query.Close()
	}
	s.parser.SetLanguage(l.TreeSitterLang)
	s.query = query
	s.active = l
	s.source = nil
	s.spans = nil
	return nil
}

func (s *syntax) Paint(ctx highlighter.HighlightContext, buf *display.Buffer, r types.BufferRange) {
	src := bufferOf(ctx)
	if src == nil {
		return
	}
	l := s.fixed
	if l == nil {
		l = lang.ForFile(src.FilePath())
	}
	if l == nil {
		return
	}
	if err := s.use(l); err != nil {
		logger.Warnf("syntax highlighter: %v", err)
		return
	}

	content := src.Bytes()
	if s.spans == nil || !bytes.Equal(content, s.source) {
		spans, err := s.highlight(content, src.Lines())
		if err != nil {
			logger.Warnf("syntax highlighter: %v", err)
			return
		}
		s.source = bytes.Clone(content)
		s.spans = spans
	}

	for _, dl := range buf.Lines() {
		rng, ok := dl.Range()
		if !ok || !r.ContainsLine(rng.Begin.Line) {
			continue
		}
		line := rng.Begin.Line
		for _, sp := range s.spans[line] {
			style, found := ctx.Context.Theme().Lookup(sp.face)
			if !found {
				continue
			}
			span, ok := clip(types.BufferRange{
				Begin: types.Position{Line: line, Col: sp.startCol},
				End:   types.Position{Line: line, Col: sp.endCol},
			}, r)
			if ok {
				dl.ApplyStyleToRange(span, style)
			}
		}
	}
}

// highlight parses content and collects the captures per line. Captures
// spanning several lines are split into one span per line.
func (s *syntax) highlight(content []byte, lines [][]byte) (map[int][]styledSpan, error) {
	tree, err := s.parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	defer tree.Close()

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(s.query, tree.RootNode())

	spans := make(map[int][]styledSpan)
	for {
		match, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, capture := range match.Captures {
			face := utils.CaptureNameToFace(s.query.CaptureNameForId(capture.Index))
			start, end := capture.Node.StartPoint(), capture.Node.EndPoint()
			for row := int(start.Row); row <= int(end.Row) && row < len(lines); row++ {
				text := lines[row]
				startCol, endCol := 0, utf8.RuneCount(text)
				if row == int(start.Row) {
					startCol = utils.ByteOffsetToRuneIndex(text, int(start.Column))
				}
				if row == int(end.Row) {
					endCol = utils.ByteOffsetToRuneIndex(text, int(end.Column))
				}
				if endCol <= startCol {
					continue
				}
				spans[row] = append(spans[row], styledSpan{startCol: startCol, endCol: endCol, face: face})
			}
		}
	}
	logger.DebugTagf("highlight", "syntax: %d lines with captures", len(spans))
	return spans, nil
}

// Close releases the parser and query.
func (s *syntax) Close() error {
	if s.query != nil {
		s.query.Close()
		s.query = nil
	}
	if s.parser != nil {
		s.parser.Close()
		s.parser = nil
	}
	return nil
}
