package territory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-xonix/internal/games/xonix/territory"
)

var pocketTrail = [][2]int{{2, 1}, {3, 1}, {3, 2}, {3, 3}, {2, 3}}

func TestRevealCommitsOneCellPerStep(t *testing.T) {
	g, tr := columnGrid(t)
	trail(g, tr, pocketTrail...)

	r := tr.BeginAppropriation()
	require.NotNil(t, r)
	assert.Zero(t, tr.Count(), "tracker hands the trail over")

	require.True(t, r.Step())
	assert.Equal(t, territory.Owned, g.CellAt(2, 1).State())
	assert.Equal(t, territory.Path, g.CellAt(3, 1).State())

	for i := 1; i < len(pocketTrail); i++ {
		require.True(t, r.Step())
	}
	assert.Zero(t, g.Count(territory.Path))
	assert.Equal(t, territory.Free, g.CellAt(2, 2).State(), "pockets commit after the trail")
	assert.Equal(t, 1, r.Pending())
	assert.False(t, r.Done())

	require.True(t, r.Step())
	assert.Equal(t, territory.Owned, g.CellAt(2, 2).State())
	assert.True(t, r.Done())
	assert.False(t, r.Step())

	assert.Equal(t, territory.Result{Trail: 5, Pockets: 1, Filled: 1}, r.Result())
}

func TestRevealDrainMatchesAppropriate(t *testing.T) {
	g1, tr1 := columnGrid(t)
	own(g1, [2]int{2, 3})
	g2, tr2 := columnGrid(t)
	own(g2, [2]int{2, 3})

	long := [][2]int{{2, 1}, {3, 1}, {3, 2}, {3, 3}, {3, 4}, {3, 5}, {2, 5}}
	trail(g1, tr1, long...)
	trail(g2, tr2, long...)

	want := tr1.Appropriate()
	got := tr2.BeginAppropriation().Drain()

	assert.Equal(t, want, got)
	g1.Each(func(c *territory.Cell) {
		assert.Equal(t, c.State(), g2.CellAt(c.X(), c.Z()).State(), "cell %v", c)
	})
}

func TestRevealCancel(t *testing.T) {
	g, tr := columnGrid(t)
	trail(g, tr, pocketTrail...)

	r := tr.BeginAppropriation()
	r.Step()
	r.Step()
	r.Cancel()

	assert.True(t, r.Done())
	assert.False(t, r.Step())
	assert.Zero(t, r.Pending())
	assert.True(t, r.Result().Cancelled)
	assert.Equal(t, 2, r.Result().Trail)

	assert.Equal(t, territory.Owned, g.CellAt(2, 1).State())
	assert.Equal(t, territory.Owned, g.CellAt(3, 1).State())
	for _, c := range [][2]int{{3, 2}, {3, 3}, {2, 3}, {2, 2}} {
		assert.Equal(t, territory.Free, g.CellAt(c[0], c[1]).State(), "cell %v", c)
	}
	assert.Zero(t, g.Count(territory.Path), "no orphaned trail cells")

	r.Cancel()
	assert.Equal(t, 2, r.Result().Trail, "second cancel is a no-op")
}
