// Package territory implements the grid-and-territory engine behind Xonix:
// the cell-state model, the trail tracker with turn accumulation, the
// flood-fill appropriation algorithms and the touch dispatcher that ties
// them together.
//
// The package is UI-agnostic and deterministic. It is single-threaded: a
// Grid and everything built on it must be driven from one goroutine.
package territory

import "fmt"

// State is the ownership state of a single cell.
type State uint8

const (
	Free  State = iota // unclaimed, enterable
	Path               // part of the uncommitted trail
	Owned              // claimed territory, absorbing
	Edge               // permanent boundary ring, never enterable
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Free:
		return "free"
	case Path:
		return "path"
	case Owned:
		return "owned"
	case Edge:
		return "edge"
	default:
		return "unknown"
	}
}

// Cell is one grid location. Its coordinates never change after the grid is
// built; only the state moves, and only along Free -> Path -> {Free, Owned}
// or Free -> Owned.
type Cell struct {
	x, z  int
	state State
	grid  *Grid
}

// X returns the cell column (0..length-1).
func (c *Cell) X() int {
	return c.x
}

// Z returns the cell row (0..width-1).
func (c *Cell) Z() int {
	return c.z
}

// State returns the current cell state.
func (c *Cell) State() State {
	return c.state
}

// String returns the coordinate pair, e.g. "(2,3)".
func (c *Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.x, c.z)
}

// SetState moves the cell to the given state and notifies grid listeners.
// Setting the current state again is a no-op. Any transition out of Edge or
// Owned, or into Edge, is an invariant violation and panics.
func (c *Cell) SetState(s State) {
	if c.state == s {
		return
	}
	if !canTransition(c.state, s) {
		panic(fmt.Sprintf("territory: cell %v cannot change state %s -> %s", c, c.state, s))
	}

	from := c.state
	c.state = s
	if c.grid != nil {
		c.grid.changed(c, from, s)
	}
}

func canTransition(from, to State) bool {
	switch from {
	case Free:
		return to == Path || to == Owned
	case Path:
		return to == Free || to == Owned
	}
	return false
}
