// plugins/wordcount/wordcount.go
package wordcount

import (
	"bytes"
	"fmt"

	"github.com/bethropolis/prism/internal/commands"
	"github.com/bethropolis/prism/internal/plugin"
	"github.com/rivo/uniseg"
)

var _ plugin.Plugin = (*WordCount)(nil)

// WordCount adds the :wc command, reporting buffer statistics.
type WordCount struct {
	api plugin.EditorAPI
}

// New creates a new instance of the WordCount plugin.
func New() *WordCount {
	return &WordCount{}
}

// Name returns the unique name of the plugin.
func (p *WordCount) Name() string {
	return "WordCount"
}

// Initialize registers the :wc command.
func (p *WordCount) Initialize(api plugin.EditorAPI) error {
	p.api = api
	err := api.RegisterCommand(commands.Command{
		Name:        "wc",
		Func:        p.executeWordCount,
		Description: "wc: count lines, words, characters and bytes of the buffer",
	})
	if err != nil {
		return fmt.Errorf("failed to register 'wc' command: %w", err)
	}
	return nil
}

// Shutdown performs cleanup (nothing needed for this simple plugin).
func (p *WordCount) Shutdown() error {
	return nil
}

// Stats are the counts :wc reports. Chars counts grapheme clusters.
type Stats struct {
	Lines, Words, Chars, Bytes int
}

// Count computes the statistics of content split into lineCount lines.
func Count(content []byte, lineCount int) Stats {
	return Stats{
		Lines: lineCount,
		Words: len(bytes.Fields(content)),
		Chars: uniseg.GraphemeClusterCount(string(content)),
		Bytes: len(content),
	}
}

func (p *WordCount) executeWordCount(args []string) error {
	if p.api == nil {
		return fmt.Errorf("wordcount plugin not initialized with API")
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: wc takes no arguments", commands.ErrUsage)
	}
	s := Count(p.api.GetBufferBytes(), p.api.GetBufferLineCount())
	p.api.SetStatusMessage("Lines: %d, Words: %d, Chars: %d, Bytes: %d", s.Lines, s.Words, s.Chars, s.Bytes)
	return nil
}
