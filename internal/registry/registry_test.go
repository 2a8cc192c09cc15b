package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-xonix/internal/core"
	"github.com/vovakirdan/tui-xonix/internal/registry"
)

type stubGame struct {
	id, title, desc string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

type describedGame struct{ stubGame }

func (g *describedGame) Description() string { return g.desc }

func TestRegistryListSortedWithMetadata(t *testing.T) {
	r := registry.New()
	r.Register("zen", func() registry.Game { return &stubGame{id: "zen", title: "Zen"} })
	r.Register("classic", func() registry.Game {
		return &describedGame{stubGame{id: "classic", title: "Classic", desc: "capture 75%"}}
	})

	got := r.List()

	require.Len(t, got, 2)
	assert.Equal(t, registry.GameInfo{ID: "classic", Title: "Classic", Description: "capture 75%"}, got[0])
	assert.Equal(t, registry.GameInfo{ID: "zen", Title: "Zen"}, got[1])
}

func TestRegistryCreate(t *testing.T) {
	r := registry.New()
	r.Register("a", func() registry.Game { return &stubGame{id: "a"} })

	g, err := r.Create("a")
	require.NoError(t, err)
	assert.Equal(t, "a", g.ID())
	assert.True(t, r.Exists("a"))

	other, err := r.Create("a")
	require.NoError(t, err)
	assert.NotSame(t, g, other, "each Create returns a fresh instance")

	_, err = r.Create("missing")
	require.ErrorIs(t, err, registry.ErrUnknownGame)
	assert.Contains(t, err.Error(), `"missing"`)
	assert.False(t, r.Exists("missing"))
}

func TestRegistryRejectsDuplicatesAndEmptyIDs(t *testing.T) {
	r := registry.New()
	f := func() registry.Game { return &stubGame{id: "a"} }
	r.Register("a", f)

	assert.Panics(t, func() { r.Register("a", f) })
	assert.Panics(t, func() { r.Register("  ", f) })
}
