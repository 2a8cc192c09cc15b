package territory

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Engine runs the flood-fill appropriation algorithms over a Grid.
// All work queues are local to a call.
type Engine struct {
	grid *Grid
}

// NewEngine returns an engine that mutates cells of g in place.
func NewEngine(g *Grid) *Engine {
	return &Engine{grid: g}
}

// Grid returns the grid the engine operates on.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// seedRequest is a radius-bounded BFS work item.
type seedRequest struct {
	cell  *Cell
	depth int
}

// SeedInitialTerritory claims every cell within BFS distance < radius of
// origin (origin has depth 1). Edge cells are never claimed, so the
// expansion stops at the boundary ring; an Edge origin keeps its state and
// only its interior neighbours are claimed. Returns the number of cells that
// became Owned.
func (e *Engine) SeedInitialTerritory(origin *Cell, radius int) int {
	seen := mapset.New[*Cell]()
	q := queue.New[seedRequest]()

	seen.Put(origin)
	q.Enqueue(seedRequest{cell: origin, depth: 1})

	claimed := 0
	for !q.Empty() {
		req := q.Dequeue()
		if st := req.cell.State(); st != Owned && st != Edge {
			req.cell.SetState(Owned)
			claimed++
		}
		if req.depth >= radius {
			continue
		}

		for _, n := range e.grid.Neighbors4(req.cell) {
			if n.State() == Owned || n.State() == Edge || seen.Has(n) {
				continue
			}
			seen.Put(n)
			q.Enqueue(seedRequest{cell: n, depth: req.depth + 1})
		}
	}
	return claimed
}

// FloodFillOwn claims start and every Free cell connected to it.
// Returns the number of cells that became Owned.
func (e *Engine) FloodFillOwn(start *Cell) int {
	seen := mapset.New[*Cell]()
	q := queue.New[*Cell]()

	seen.Put(start)
	q.Enqueue(start)

	claimed := 0
	for !q.Empty() {
		c := q.Dequeue()
		if c.State() != Owned {
			c.SetState(Owned)
			claimed++
		}

		for _, n := range e.grid.Neighbors4(c) {
			if n.State() == Free && !seen.Has(n) {
				seen.Put(n)
				q.Enqueue(n)
			}
		}
	}
	return claimed
}

// IsEnclosed explores the Free region containing start without mutating it.
// It returns the region in BFS order and whether it is enclosed, i.e. no
// cell of the region borders the Edge ring. A start cell that is not Free
// yields an empty, non-enclosed region.
func (e *Engine) IsEnclosed(start *Cell) (region []*Cell, enclosed bool) {
	if start.State() != Free {
		return nil, false
	}

	seen := mapset.New[*Cell]()
	q := queue.New[*Cell]()

	seen.Put(start)
	q.Enqueue(start)

	touchesEdge := false
	for !q.Empty() {
		c := q.Dequeue()
		region = append(region, c)

		for _, n := range e.grid.Neighbors4(c) {
			switch {
			case n.State() == Edge:
				touchesEdge = true
			case n.State() == Free && !seen.Has(n):
				seen.Put(n)
				q.Enqueue(n)
			}
		}
	}
	return region, !touchesEdge
}

// BorderCellsOf walks a Neighbors8 ring and returns every Free cell whose
// ring predecessor or successor (wrapping) is Owned. These are the seeds
// of pockets that an ownership change around the ring centre may have
// closed off.
func (e *Engine) BorderCellsOf(ring [8]*Cell) []*Cell {
	var border []*Cell
	for i, c := range ring {
		if c.State() != Free {
			continue
		}
		prev := ring[(i+len(ring)-1)%len(ring)]
		next := ring[(i+1)%len(ring)]
		if prev.State() == Owned || next.State() == Owned {
			border = append(border, c)
		}
	}
	return border
}

// pocketsAround finds the enclosed Free regions next to a freshly owned
// trail cell. Seeds are the interior-side cell of the step prev -> curr
// (when prev is known and pathTurn picks a side) followed by the border
// cells of curr's ring. Every explored region is added to claimed, so a
// region is examined at most once per appropriation.
func (e *Engine) pocketsAround(prev, curr *Cell, pathTurn int, claimed mapset.Set[*Cell]) [][]*Cell {
	var seeds []*Cell
	if prev != nil {
		if in := interiorOf(e.grid, prev, curr, pathTurn); in != nil {
			seeds = append(seeds, in)
		}
	}
	seeds = append(seeds, e.BorderCellsOf(e.grid.Neighbors8(curr))...)

	var pockets [][]*Cell
	for _, s := range seeds {
		if s.State() != Free || claimed.Has(s) {
			continue
		}
		region, enclosed := e.IsEnclosed(s)
		for _, c := range region {
			claimed.Put(c)
		}
		if enclosed {
			pockets = append(pockets, region)
		}
	}
	return pockets
}

// interiorOf returns the cell beside prev on the interior side of the step
// prev -> curr: right of travel for a net-right trail, left for a net-left
// one, nil when the trail is straight on balance.
func interiorOf(g *Grid, prev, curr *Cell, pathTurn int) *Cell {
	d := DirBetween(prev, curr)
	switch {
	case pathTurn > 0:
		return g.Neighbor(prev, d.Right())
	case pathTurn < 0:
		return g.Neighbor(prev, d.Left())
	}
	return nil
}
