package territory

import (
	"errors"
	"fmt"
)

// MinSize is the smallest grid extent that still leaves an interior inside
// the Edge ring.
const MinSize = 3

// ErrGridTooSmall is returned by NewGrid when either dimension is below MinSize.
var ErrGridTooSmall = errors.New("territory: grid must be at least 3x3")

// Listener observes effective cell state changes.
type Listener func(c *Cell, from, to State)

// Grid owns every Cell of a fixed length x width playfield.
// Cells are stored in a flat arena indexed as x*width + z, so *Cell handles
// stay valid for the grid's lifetime.
type Grid struct {
	length    int
	width     int
	cells     []Cell
	counts    [Edge + 1]int
	listeners map[int]Listener
	nextID    int
}

// NewGrid builds a grid whose outer ring is Edge and whose interior is Free.
func NewGrid(length, width int) (*Grid, error) {
	if length < MinSize || width < MinSize {
		return nil, fmt.Errorf("%w: got %dx%d", ErrGridTooSmall, length, width)
	}

	g := &Grid{
		length: length,
		width:  width,
		cells:  make([]Cell, length*width),
	}
	for x := 0; x < length; x++ {
		for z := 0; z < width; z++ {
			c := &g.cells[x*width+z]
			c.x, c.z, c.grid = x, z, g
			if x == 0 || x == length-1 || z == 0 || z == width-1 {
				c.state = Edge
			}
			g.counts[c.state]++
		}
	}
	return g, nil
}

// Length returns the extent along X.
func (g *Grid) Length() int {
	return g.length
}

// Width returns the extent along Z.
func (g *Grid) Width() int {
	return g.width
}

// InBounds reports whether (x, z) addresses a cell of this grid.
func (g *Grid) InBounds(x, z int) bool {
	return x >= 0 && x < g.length && z >= 0 && z < g.width
}

// CellAt returns the cell at (x, z). Out-of-bounds coordinates panic.
func (g *Grid) CellAt(x, z int) *Cell {
	if !g.InBounds(x, z) {
		panic(fmt.Sprintf("territory: cell (%d,%d) out of bounds %dx%d", x, z, g.length, g.width))
	}
	return &g.cells[x*g.width+z]
}

// Offset returns the cell displaced from c by (dx, dz).
func (g *Grid) Offset(c *Cell, dx, dz int) *Cell {
	return g.CellAt(c.x+dx, c.z+dz)
}

// Neighbor returns the axis-adjacent cell in direction d.
func (g *Grid) Neighbor(c *Cell, d Dir) *Cell {
	dx, dz := d.Delta()
	return g.Offset(c, dx, dz)
}

// Neighbors4 returns the +X, -X, +Z and -Z neighbors of c.
// Valid for any non-edge cell; the Edge ring keeps them in bounds.
func (g *Grid) Neighbors4(c *Cell) [4]*Cell {
	return [4]*Cell{
		g.Offset(c, 1, 0),
		g.Offset(c, -1, 0),
		g.Offset(c, 0, 1),
		g.Offset(c, 0, -1),
	}
}

// ring8 lists the perimeter offsets clockwise from +X, with +Z pointing up.
var ring8 = [8][2]int{
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
}

// Neighbors8 returns the ring of eight cells around c in clockwise order
// starting at +X. Consecutive entries (wrapping) are always adjacent.
func (g *Grid) Neighbors8(c *Cell) [8]*Cell {
	var ring [8]*Cell
	for i, off := range ring8 {
		ring[i] = g.Offset(c, off[0], off[1])
	}
	return ring
}

// Each calls fn for every cell, column by column.
func (g *Grid) Each(fn func(c *Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

// Count returns how many cells are currently in state s.
func (g *Grid) Count(s State) int {
	if s > Edge {
		return 0
	}
	return g.counts[s]
}

// Interior returns the number of non-edge cells.
func (g *Grid) Interior() int {
	return (g.length - 2) * (g.width - 2)
}

// OwnedPercent returns the owned share of the interior, 0..100.
func (g *Grid) OwnedPercent() float64 {
	return float64(g.counts[Owned]) * 100 / float64(g.Interior())
}

// Subscribe registers a listener for state changes and returns a function
// that removes it.
func (g *Grid) Subscribe(l Listener) (unsubscribe func()) {
	if g.listeners == nil {
		g.listeners = make(map[int]Listener)
	}
	id := g.nextID
	g.nextID++
	g.listeners[id] = l
	return func() {
		delete(g.listeners, id)
	}
}

func (g *Grid) changed(c *Cell, from, to State) {
	g.counts[from]--
	g.counts[to]++
	for _, l := range g.listeners {
		l(c, from, to)
	}
}
