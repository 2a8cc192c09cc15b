package territory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-xonix/internal/games/xonix/territory"
)

// own marks the listed (x, z) pairs as Owned.
func own(g *territory.Grid, coords ...[2]int) {
	for _, c := range coords {
		g.CellAt(c[0], c[1]).SetState(territory.Owned)
	}
}

func TestSeedInitialTerritoryRadius(t *testing.T) {
	tests := []struct {
		name       string
		ox, oz     int
		radius     int
		wantClaims int
	}{
		{"radius 1 claims only origin", 4, 4, 1, 1},
		{"radius 2 claims plus shape", 4, 4, 2, 5},
		{"radius 3 claims diamond", 4, 4, 3, 13},
		{"corner origin clipped by edge ring", 1, 1, 3, 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, 9, 9)
			e := territory.NewEngine(g)

			claimed := e.SeedInitialTerritory(g.CellAt(tc.ox, tc.oz), tc.radius)
			assert.Equal(t, tc.wantClaims, claimed)
			assert.Equal(t, tc.wantClaims, g.Count(territory.Owned))

			g.Each(func(c *territory.Cell) {
				onRing := c.X() == 0 || c.X() == 8 || c.Z() == 0 || c.Z() == 8
				if onRing {
					assert.Equal(t, territory.Edge, c.State(), "cell %v", c)
					return
				}
				d := abs(c.X()-tc.ox) + abs(c.Z()-tc.oz)
				if d < tc.radius {
					assert.Equal(t, territory.Owned, c.State(), "cell %v at distance %d", c, d)
				} else {
					assert.Equal(t, territory.Free, c.State(), "cell %v at distance %d", c, d)
				}
			})
		})
	}
}

func TestSeedInitialTerritoryLargeRadiusStopsAtEdge(t *testing.T) {
	g := mustGrid(t, 5, 5)
	e := territory.NewEngine(g)

	claimed := e.SeedInitialTerritory(g.CellAt(2, 2), 50)

	assert.Equal(t, 9, claimed)
	assert.Equal(t, 16, g.Count(territory.Edge))
	assert.Zero(t, g.Count(territory.Free))
}

func TestSeedInitialTerritoryEdgeOrigin(t *testing.T) {
	g := mustGrid(t, 5, 5)
	e := territory.NewEngine(g)

	var claimed int
	require.NotPanics(t, func() { claimed = e.SeedInitialTerritory(g.CellAt(0, 2), 2) })

	assert.Equal(t, 1, claimed)
	assert.Equal(t, territory.Edge, g.CellAt(0, 2).State())
	assert.Equal(t, territory.Owned, g.CellAt(1, 2).State())
	assert.Equal(t, 16, g.Count(territory.Edge))
}

func TestIsEnclosed(t *testing.T) {
	loop := [][2]int{{1, 1}, {1, 2}, {1, 3}, {2, 1}, {2, 3}, {3, 1}, {3, 2}, {3, 3}}

	t.Run("closed loop", func(t *testing.T) {
		g := mustGrid(t, 5, 5)
		own(g, loop...)

		region, enclosed := territory.NewEngine(g).IsEnclosed(g.CellAt(2, 2))
		assert.True(t, enclosed)
		require.Len(t, region, 1)
		assert.Same(t, g.CellAt(2, 2), region[0])
		assert.Equal(t, territory.Free, g.CellAt(2, 2).State(), "exploration must not mutate")
	})

	t.Run("gap to the edge ring", func(t *testing.T) {
		g := mustGrid(t, 5, 5)
		for _, c := range loop {
			if c != [2]int{1, 2} {
				own(g, c)
			}
		}

		region, enclosed := territory.NewEngine(g).IsEnclosed(g.CellAt(2, 2))
		assert.False(t, enclosed)
		assert.Len(t, region, 2)
	})

	t.Run("path cells wall the region too", func(t *testing.T) {
		g := mustGrid(t, 5, 5)
		for _, c := range loop {
			if c != [2]int{2, 1} {
				own(g, c)
			}
		}
		g.CellAt(2, 1).SetState(territory.Path)

		_, enclosed := territory.NewEngine(g).IsEnclosed(g.CellAt(2, 2))
		assert.True(t, enclosed)
	})

	t.Run("non-free start", func(t *testing.T) {
		g := mustGrid(t, 5, 5)
		own(g, [2]int{2, 2})

		region, enclosed := territory.NewEngine(g).IsEnclosed(g.CellAt(2, 2))
		assert.False(t, enclosed)
		assert.Empty(t, region)
	})
}

func TestFloodFillOwn(t *testing.T) {
	g := mustGrid(t, 7, 7)
	for z := 1; z <= 5; z++ {
		own(g, [2]int{3, z})
	}

	filled := territory.NewEngine(g).FloodFillOwn(g.CellAt(1, 1))

	assert.Equal(t, 10, filled)
	for z := 1; z <= 5; z++ {
		assert.Equal(t, territory.Owned, g.CellAt(1, z).State())
		assert.Equal(t, territory.Owned, g.CellAt(2, z).State())
		assert.Equal(t, territory.Free, g.CellAt(4, z).State())
		assert.Equal(t, territory.Free, g.CellAt(5, z).State())
	}
	assert.Equal(t, 24, g.Count(territory.Edge))
}

func TestBorderCellsOf(t *testing.T) {
	g := mustGrid(t, 5, 5)
	e := territory.NewEngine(g)
	centre := g.CellAt(2, 2)

	assert.Empty(t, e.BorderCellsOf(g.Neighbors8(centre)), "no owned cells, no border")

	own(g, [2]int{3, 2})
	border := e.BorderCellsOf(g.Neighbors8(centre))

	require.Len(t, border, 2)
	assert.Same(t, g.CellAt(3, 1), border[0])
	assert.Same(t, g.CellAt(3, 3), border[1])
}
