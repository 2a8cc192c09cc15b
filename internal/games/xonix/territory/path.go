package territory

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// trailStep is one trailed cell and its heading change.
type trailStep struct {
	cell *Cell
	turn Turn
}

// Tracker records the actor's uncommitted trail through Free cells.
// Every trailed cell is in state Path; pathTurn is always the sum of the
// stored turns, and its sign tells which side of the trail is inside.
type Tracker struct {
	grid     *Grid
	engine   *Engine
	steps    []trailStep
	pathTurn int
}

// NewTracker returns an empty tracker over the engine's grid.
func NewTracker(e *Engine) *Tracker {
	return &Tracker{
		grid:   e.Grid(),
		engine: e,
	}
}

// Count returns the trail length.
func (t *Tracker) Count() int {
	return len(t.steps)
}

// PathTurn returns the signed sum of the trail's turns.
func (t *Tracker) PathTurn() int {
	return t.pathTurn
}

// Cells returns a copy of the trail, oldest first.
func (t *Tracker) Cells() []*Cell {
	cells := make([]*Cell, len(t.steps))
	for i, s := range t.steps {
		cells[i] = s.cell
	}
	return cells
}

// Turns returns a copy of the per-cell turns, aligned with Cells.
func (t *Tracker) Turns() []Turn {
	turns := make([]Turn, len(t.steps))
	for i, s := range t.steps {
		turns[i] = s.turn
	}
	return turns
}

// Tail returns the most recently trailed cell, or nil for an empty trail.
func (t *Tracker) Tail() *Cell {
	if len(t.steps) == 0 {
		return nil
	}
	return t.steps[len(t.steps)-1].cell
}

// Contains reports whether c is on the trail.
func (t *Tracker) Contains(c *Cell) bool {
	return t.indexOf(c) >= 0
}

func (t *Tracker) indexOf(c *Cell) int {
	for i := len(t.steps) - 1; i >= 0; i-- {
		if t.steps[i].cell == c {
			return i
		}
	}
	return -1
}

// Add marks c as Path and appends it to the trail. The first two cells
// have no heading history and count as Forward; from the third on, the turn
// between the last two legs is accumulated into pathTurn.
func (t *Tracker) Add(c *Cell) {
	c.SetState(Path)

	turn := TurnForward
	if n := len(t.steps); n >= 2 {
		prev := DirBetween(t.steps[n-2].cell, t.steps[n-1].cell)
		curr := DirBetween(t.steps[n-1].cell, c)
		turn = TurnBetween(prev, curr)
	}

	t.pathTurn += int(turn)
	t.steps = append(t.steps, trailStep{cell: c, turn: turn})
}

// CutTo pops trailed cells back to Free until c is the tail again.
// A target that is not on the trail panics: the caller routed a touch that
// does not match the cell's state.
func (t *Tracker) CutTo(c *Cell) {
	idx := t.indexOf(c)
	if idx < 0 {
		panic(fmt.Sprintf("territory: cut target %v not on trail", c))
	}

	for len(t.steps)-1 > idx {
		last := t.steps[len(t.steps)-1]
		t.pathTurn -= int(last.turn)
		last.cell.SetState(Free)
		t.steps = t.steps[:len(t.steps)-1]
	}
}

// InteriorCell returns the cell on the interior side of the trail step
// prev -> curr according to the current pathTurn, or nil when the trail
// has no net curl.
func (t *Tracker) InteriorCell(prev, curr *Cell) *Cell {
	return interiorOf(t.grid, prev, curr, t.pathTurn)
}

// take hands the trail over to an appropriation and resets the tracker.
func (t *Tracker) take() ([]*Cell, int) {
	cells, turn := t.Cells(), t.pathTurn
	t.steps = t.steps[:0]
	t.pathTurn = 0
	return cells, turn
}

// Result summarises one appropriation.
type Result struct {
	Trail     int  // trail cells committed to Owned
	Pockets   int  // enclosed regions discovered
	Filled    int  // pocket cells committed to Owned
	Cancelled bool // the reveal was aborted before completion
}

// Committed returns the total number of cells that became Owned.
func (r Result) Committed() int {
	return r.Trail + r.Filled
}

// Appropriate commits the whole trail to Owned at once, then flood-fills
// every enclosed pocket bordering it. An empty trail is a no-op.
func (t *Tracker) Appropriate() Result {
	var res Result
	trail, turn := t.take()
	if len(trail) == 0 {
		return res
	}

	claimed := mapset.New[*Cell]()
	for i, c := range trail {
		c.SetState(Owned)
		res.Trail++

		var prev *Cell
		if i > 0 {
			prev = trail[i-1]
		}
		for _, pocket := range t.engine.pocketsAround(prev, c, turn, claimed) {
			res.Pockets++
			res.Filled += t.engine.FloodFillOwn(pocket[0])
		}
	}
	return res
}

// BeginAppropriation hands the trail to a Reveal that commits it one cell
// per step. The tracker is empty afterwards. Returns nil for an empty trail.
func (t *Tracker) BeginAppropriation() *Reveal {
	trail, turn := t.take()
	if len(trail) == 0 {
		return nil
	}
	return newReveal(t.engine, trail, turn)
}
