package plugin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlugin struct {
	name    string
	initErr error
	calls   *[]string
}

func (p *fakePlugin) Name() string { return p.name }

func (p *fakePlugin) Initialize(EditorAPI) error {
	*p.calls = append(*p.calls, "init "+p.name)
	return p.initErr
}

func (p *fakePlugin) Shutdown() error {
	*p.calls = append(*p.calls, "shutdown "+p.name)
	return nil
}

func TestManagerLifecycleOrder(t *testing.T) {
	var calls []string
	m := NewManager()
	boom := errors.New("boom")
	for _, p := range []*fakePlugin{
		{name: "zeta", calls: &calls},
		{name: "alpha", initErr: boom, calls: &calls},
		{name: "mid", calls: &calls},
	} {
		require.NoError(t, m.Register(p))
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Names())

	err := m.InitializePlugins(nil)
	require.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "plugin alpha")

	m.ShutdownPlugins()
	assert.Equal(t, []string{
		"init zeta", "init alpha", "init mid",
		"shutdown zeta", "shutdown mid",
	}, calls)

	m.ShutdownPlugins()
	assert.Len(t, calls, 5, "plugins are shut down once")
}

func TestManagerRegister(t *testing.T) {
	var calls []string
	m := NewManager()
	require.NoError(t, m.Register(&fakePlugin{name: "a", calls: &calls}))
	assert.Error(t, m.Register(&fakePlugin{name: "a", calls: &calls}))
	assert.Error(t, m.Register(&fakePlugin{calls: &calls}))

	p, ok := m.GetPlugin("a")
	require.True(t, ok)
	assert.Equal(t, "a", p.Name())
	_, ok = m.GetPlugin("b")
	assert.False(t, ok)
}
