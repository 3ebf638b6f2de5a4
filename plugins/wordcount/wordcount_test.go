package wordcount

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bethropolis/prism/internal/buffer"
	"github.com/bethropolis/prism/internal/commands"
	"github.com/bethropolis/prism/internal/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI serves a buffer and a dispatcher; other API calls panic.
type fakeAPI struct {
	plugin.EditorAPI
	buf        *buffer.SliceBuffer
	dispatcher *commands.Dispatcher
	message    string
}

func (f *fakeAPI) GetBufferBytes() []byte                     { return f.buf.Bytes() }
func (f *fakeAPI) GetBufferLineCount() int                    { return f.buf.LineCount() }
func (f *fakeAPI) RegisterCommand(cmd commands.Command) error { return f.dispatcher.Register(cmd) }
func (f *fakeAPI) SetStatusMessage(format string, args ...interface{}) {
	f.message = fmt.Sprintf(format, args...)
}

func TestCount(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		lines int
		want  Stats
	}{
		{"empty", "", 1, Stats{Lines: 1}},
		{"words", "one two\nthree", 2, Stats{Lines: 2, Words: 3, Chars: 13, Bytes: 13}},
		{"graphemes", "héllo 👍🏽", 1, Stats{Lines: 1, Words: 2, Chars: 7, Bytes: 15}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Count([]byte(tt.text), tt.lines))
		})
	}
}

func TestWcCommand(t *testing.T) {
	api := &fakeAPI{buf: buffer.FromString("one two\nthree"), dispatcher: commands.NewDispatcher()}
	p := New()
	require.NoError(t, p.Initialize(api))

	require.NoError(t, api.dispatcher.Execute("wc"))
	assert.Equal(t, "Lines: 2, Words: 3, Chars: 13, Bytes: 13", api.message)

	err := api.dispatcher.Execute("wc extra")
	assert.True(t, errors.Is(err, commands.ErrUsage))

	assert.ErrorIs(t, p.Initialize(api), commands.ErrCommandExists, "the command is registered once")
}
