package builtin

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bethropolis/prism/internal/display"
	"github.com/bethropolis/prism/internal/highlighter"
	"github.com/bethropolis/prism/internal/highlighter/utils"
	"github.com/bethropolis/prism/internal/logger"
	"github.com/bethropolis/prism/internal/types"
)

type captureFace struct {
	group int
	face  string
}

// regexHighlighter applies faces to the matches of a pattern, line by line.
type regexHighlighter struct {
	re    *regexp.Regexp
	faces []captureFace
}

func newRegex(params []string) (highlighter.NamedHighlighter, error) {
	if len(params) < 2 {
		return highlighter.NamedHighlighter{}, fmt.Errorf("%w: regex <pattern> <face> [<capture>:<face>...]", ErrParams)
	}
	re, err := regexp.Compile(params[0])
	if err != nil {
		return highlighter.NamedHighlighter{}, fmt.Errorf("%w: %v", ErrParams, err)
	}
	h := &regexHighlighter{re: re}
	for _, arg := range params[1:] {
		cf := captureFace{face: arg}
		if idx, face, ok := strings.Cut(arg, ":"); ok {
			group, err := strconv.Atoi(idx)
			if err != nil || group < 0 || group > re.NumSubexp() {
				return highlighter.NamedHighlighter{}, fmt.Errorf("%w: no capture %q in %q", ErrParams, idx, params[0])
			}
			cf = captureFace{group: group, face: face}
		}
		h.faces = append(h.faces, cf)
	}
	return highlighter.NamedHighlighter{
		ID:          idFor("regex", params...),
		Highlighter: highlighter.NewLeaf(highlighter.PassColorize, h),
	}, nil
}

func (h *regexHighlighter) Paint(ctx highlighter.HighlightContext, buf *display.Buffer, r types.BufferRange) {
	src := bufferOf(ctx)
	if src == nil {
		return
	}
	for _, l := range buf.Lines() {
		rng, ok := l.Range()
		if !ok || !r.ContainsLine(rng.Begin.Line) {
			continue
		}
		lineNum := rng.Begin.Line
		text, err := src.Line(lineNum)
		if err != nil {
			logger.Warnf("regex highlighter: %v", err)
			continue
		}
		for _, loc := range h.re.FindAllSubmatchIndex(text, -1) {
			for _, cf := range h.faces {
				start, end := loc[2*cf.group], loc[2*cf.group+1]
				if start < 0 || end <= start {
					continue
				}
				span, ok := clip(types.BufferRange{
					Begin: types.Position{Line: lineNum, Col: utils.ByteOffsetToRuneIndex(text, start)},
					End:   types.Position{Line: lineNum, Col: utils.ByteOffsetToRuneIndex(text, end)},
				}, r)
				if ok {
					l.ApplyStyleToRange(span, ctx.Face(cf.face))
				}
			}
		}
	}
}
