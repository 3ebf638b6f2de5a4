// Package search finds regular expression matches in a buffer, for the '/'
// prompt and the n/N keys.
package search

import (
	"fmt"
	"regexp"

	"github.com/bethropolis/prism/internal/buffer"
	"github.com/bethropolis/prism/internal/highlighter/utils"
	"github.com/bethropolis/prism/internal/logger"
	"github.com/bethropolis/prism/internal/types"
)

// Searcher remembers the last pattern and where its last match was.
type Searcher struct {
	term    string
	re      *regexp.Regexp
	forward bool
}

// New creates a searcher with no pattern.
func New() *Searcher {
	return &Searcher{forward: true}
}

// SetPattern compiles term. An empty term clears the search.
func (s *Searcher) SetPattern(term string) error {
	if term == "" {
		s.term, s.re = "", nil
		return nil
	}
	re, err := regexp.Compile(term)
	if err != nil {
		logger.Warnf("Search: invalid regex '%s': %v", term, err)
		return fmt.Errorf("invalid search pattern: %w", err)
	}
	s.term, s.re, s.forward = term, re, true
	return nil
}

// Pattern returns the current pattern, empty when there is none.
func (s *Searcher) Pattern() string {
	return s.term
}

// Forward reports the direction of the last search.
func (s *Searcher) Forward() bool {
	return s.forward
}

// Next returns the start of the next match after from (before it when
// searching backward), wrapping around the buffer once. A match at from
// itself is skipped so repeated calls advance.
func (s *Searcher) Next(buf buffer.Buffer, from types.Position, forward bool) (types.Position, bool) {
	if s.re == nil || buf == nil || buf.LineCount() == 0 {
		return types.Position{}, false
	}
	s.forward = forward
	if forward {
		return s.findForward(buf, from)
	}
	return s.findBackward(buf, from)
}

func (s *Searcher) findForward(buf buffer.Buffer, from types.Position) (types.Position, bool) {
	lineCount := buf.LineCount()
	for i := 0; i <= lineCount; i++ {
		lineIdx := (from.Line + i) % lineCount
		lineBytes, err := buf.Line(lineIdx)
		if err != nil {
			continue
		}
		for _, loc := range s.re.FindAllIndex(lineBytes, -1) {
			col := utils.ByteOffsetToRuneIndex(lineBytes, loc[0])
			switch {
			case i == 0 && col <= from.Col:
				continue
			case i == lineCount && col > from.Col:
				continue
			}
			return types.Position{Line: lineIdx, Col: col}, true
		}
	}
	return types.Position{}, false
}

func (s *Searcher) findBackward(buf buffer.Buffer, from types.Position) (types.Position, bool) {
	lineCount := buf.LineCount()
	for i := 0; i <= lineCount; i++ {
		lineIdx := ((from.Line-i)%lineCount + lineCount) % lineCount
		lineBytes, err := buf.Line(lineIdx)
		if err != nil {
			continue
		}
		locs := s.re.FindAllIndex(lineBytes, -1)
		for j := len(locs) - 1; j >= 0; j-- {
			col := utils.ByteOffsetToRuneIndex(lineBytes, locs[j][0])
			switch {
			case i == 0 && col >= from.Col:
				continue
			case i == lineCount && col < from.Col:
				continue
			}
			return types.Position{Line: lineIdx, Col: col}, true
		}
	}
	return types.Position{}, false
}
