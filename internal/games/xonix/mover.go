package xonix

import (
	"github.com/vovakirdan/tui-xonix/internal/core"
	"github.com/vovakirdan/tui-xonix/internal/games/xonix/territory"
)

// dirForAction maps screen directions onto the grid. Screen up is +Z
// because rows are drawn with z growing upwards.
func dirForAction(a core.Action) (territory.Dir, bool) {
	switch a {
	case core.ActionUp:
		return territory.ZPlus, true
	case core.ActionDown:
		return territory.ZMinus, true
	case core.ActionLeft:
		return territory.XMinus, true
	case core.ActionRight:
		return territory.XPlus, true
	}
	return 0, false
}

// mover turns queued direction presses into one step every few ticks.
// The first press after a pause moves at once; a held key fills the queue
// through terminal auto-repeat and keeps the actor walking.
type mover struct {
	pending  []territory.Dir
	capacity int
	every    int
	cooldown int
}

func newMover(every, capacity int) *mover {
	return &mover{
		pending:  make([]territory.Dir, 0, capacity),
		capacity: max(1, capacity),
		every:    max(1, every),
	}
}

// Push queues a direction. Presses beyond the buffer are dropped so a long
// auto-repeat burst cannot keep the actor moving after the key is released.
func (m *mover) Push(d territory.Dir) bool {
	if len(m.pending) >= m.capacity {
		return false
	}
	m.pending = append(m.pending, d)
	return true
}

// PushActions queues every directional action of a frame in order.
func (m *mover) PushActions(actions []core.Action) {
	for _, a := range actions {
		if d, ok := dirForAction(a); ok {
			m.Push(d)
		}
	}
}

// Tick advances the cooldown and returns the direction to step in, if a
// step is due.
func (m *mover) Tick() (territory.Dir, bool) {
	if m.cooldown > 0 {
		m.cooldown--
		return 0, false
	}
	if len(m.pending) == 0 {
		return 0, false
	}
	d := m.pending[0]
	m.pending = m.pending[1:]
	m.cooldown = m.every - 1
	return d, true
}

// Queued returns the number of pending presses.
func (m *mover) Queued() int {
	return len(m.pending)
}

// Reset drops queued presses and the cooldown.
func (m *mover) Reset() {
	m.pending = m.pending[:0]
	m.cooldown = 0
}
