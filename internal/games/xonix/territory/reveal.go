package territory

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Reveal is an appropriation spread over discrete steps, one committed
// cell per Step. Trail cells commit first, in trail order; pockets found
// next to each committed trail cell are queued and commit afterwards in
// BFS order. The driver pumps it once per tick and may Cancel it between
// steps.
type Reveal struct {
	engine   *Engine
	trail    []*Cell
	pathTurn int
	next     int

	pending *queue.Queue[*Cell]
	queued  int
	claimed mapset.Set[*Cell]

	result Result
	done   bool
}

func newReveal(e *Engine, trail []*Cell, pathTurn int) *Reveal {
	return &Reveal{
		engine:   e,
		trail:    trail,
		pathTurn: pathTurn,
		pending:  queue.New[*Cell](),
		claimed:  mapset.New[*Cell](),
	}
}

// Step commits the next cell. It returns false once nothing is left to
// commit or the reveal was cancelled.
func (r *Reveal) Step() bool {
	if r.done {
		return false
	}

	if r.next < len(r.trail) {
		r.commitTrail()
		r.settle()
		return true
	}

	for r.queued > 0 {
		c := r.pending.Dequeue()
		r.queued--
		if c.State() == Free {
			c.SetState(Owned)
			r.result.Filled++
			r.settle()
			return true
		}
	}

	r.done = true
	return false
}

func (r *Reveal) commitTrail() {
	c := r.trail[r.next]
	c.SetState(Owned)
	r.result.Trail++

	var prev *Cell
	if r.next > 0 {
		prev = r.trail[r.next-1]
	}
	r.next++

	for _, pocket := range r.engine.pocketsAround(prev, c, r.pathTurn, r.claimed) {
		r.result.Pockets++
		for _, pc := range pocket {
			r.pending.Enqueue(pc)
			r.queued++
		}
	}
}

func (r *Reveal) settle() {
	if r.next >= len(r.trail) && r.queued == 0 {
		r.done = true
	}
}

// Drain runs the reveal to completion and returns its result.
func (r *Reveal) Drain() Result {
	for r.Step() {
	}
	return r.result
}

// Cancel aborts the remaining steps. Committed cells stay Owned, trail cells
// not yet committed go back to Free and queued pocket cells stay Free.
func (r *Reveal) Cancel() {
	if r.done {
		return
	}
	for _, c := range r.trail[r.next:] {
		if c.State() == Path {
			c.SetState(Free)
		}
	}
	r.next = len(r.trail)
	r.pending = queue.New[*Cell]()
	r.queued = 0
	r.result.Cancelled = true
	r.done = true
}

// Done reports whether the reveal finished or was cancelled.
func (r *Reveal) Done() bool {
	return r.done
}

// Pending returns the number of cells still waiting to be committed,
// counting only pockets discovered so far.
func (r *Reveal) Pending() int {
	return len(r.trail) - r.next + r.queued
}

// Result returns the progress so far.
func (r *Reveal) Result() Result {
	return r.result
}
