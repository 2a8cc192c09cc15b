package territory

import (
	"io"

	"github.com/charmbracelet/log"
)

// TouchKind identifies how a touch was handled.
type TouchKind uint8

const (
	TouchNone        TouchKind = iota // nothing changed
	TouchSeeded                       // initial territory claimed
	TouchTrail                        // a Free cell joined the trail
	TouchCut                          // the trail was cut back to a revisited cell
	TouchAppropriate                  // the trail closed against Owned territory
	TouchBounce                       // an Edge cell was refused
)

// String returns the touch kind name.
func (k TouchKind) String() string {
	switch k {
	case TouchSeeded:
		return "seeded"
	case TouchTrail:
		return "trail"
	case TouchCut:
		return "cut"
	case TouchAppropriate:
		return "appropriate"
	case TouchBounce:
		return "bounce"
	default:
		return "none"
	}
}

// Touch is the outcome of OnTouched.
type Touch struct {
	Kind   TouchKind
	Actor  *Cell  // where the actor stands after the touch
	Result Result // filled for a synchronous appropriation
}

// DefaultSeedRadius is the initial territory radius used when no option
// overrides it.
const DefaultSeedRadius = 2

// Option configures an Interaction.
type Option func(*Interaction)

// WithSeedRadius sets the radius of the one-time initial territory.
func WithSeedRadius(radius int) Option {
	return func(m *Interaction) {
		m.radius = radius
	}
}

// WithLogger routes debug events to l.
func WithLogger(l *log.Logger) Option {
	return func(m *Interaction) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithAnimatedReveal makes appropriations return an in-flight Reveal that
// the caller pumps, instead of committing at once.
func WithAnimatedReveal(on bool) Option {
	return func(m *Interaction) {
		m.animated = on
	}
}

// Interaction dispatches actor-cell contacts to the tracker and engine
// according to the touched cell's state. It is the single entry point the
// movement layer calls whenever the actor enters a new cell.
type Interaction struct {
	grid    *Grid
	engine  *Engine
	tracker *Tracker
	logger  *log.Logger

	radius      int
	animated    bool
	established bool
	actor       *Cell
	reveal      *Reveal
}

// NewInteraction wires an engine and tracker to g.
func NewInteraction(g *Grid, opts ...Option) *Interaction {
	e := NewEngine(g)
	m := &Interaction{
		grid:    g,
		engine:  e,
		tracker: NewTracker(e),
		logger:  log.New(io.Discard),
		radius:  DefaultSeedRadius,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Grid returns the playfield.
func (m *Interaction) Grid() *Grid {
	return m.grid
}

// Engine returns the appropriation engine.
func (m *Interaction) Engine() *Engine {
	return m.engine
}

// Tracker returns the trail tracker.
func (m *Interaction) Tracker() *Tracker {
	return m.tracker
}

// Actor returns the cell the actor stands on, or nil before the first touch.
func (m *Interaction) Actor() *Cell {
	return m.actor
}

// Established reports whether the initial territory has been seeded.
func (m *Interaction) Established() bool {
	return m.established
}

// Reveal returns the in-flight animated appropriation, or nil.
func (m *Interaction) Reveal() *Reveal {
	return m.reveal
}

// Busy reports whether an animated appropriation is still committing.
func (m *Interaction) Busy() bool {
	return m.reveal != nil && !m.reveal.Done()
}

// OnTouched handles the actor entering c. A reveal still in flight is
// drained first so no trail or cut operation overlaps an appropriation.
func (m *Interaction) OnTouched(c *Cell) Touch {
	if m.reveal != nil {
		m.finish(m.reveal.Drain())
	}

	switch c.State() {
	case Free:
		if !m.established {
			return m.seed(c)
		}
		m.tracker.Add(c)
		m.actor = c
		return Touch{Kind: TouchTrail, Actor: c}

	case Path:
		m.tracker.CutTo(c)
		m.actor = c
		m.logger.Debug("trail cut", "target", c, "remaining", m.tracker.Count())
		return Touch{Kind: TouchCut, Actor: c}

	case Owned:
		m.actor = c
		if m.tracker.Count() == 0 {
			return Touch{Kind: TouchNone, Actor: c}
		}
		return m.appropriate(c)

	case Edge:
		if m.actor == nil {
			return Touch{Kind: TouchNone}
		}
		return Touch{Kind: TouchBounce, Actor: m.actor}
	}

	return Touch{Kind: TouchNone, Actor: m.actor}
}

func (m *Interaction) seed(c *Cell) Touch {
	owned := m.engine.SeedInitialTerritory(c, m.radius)
	m.established = true
	m.actor = c
	m.logger.Debug("territory seeded", "origin", c, "radius", m.radius, "owned", owned)
	return Touch{Kind: TouchSeeded, Actor: c}
}

func (m *Interaction) appropriate(c *Cell) Touch {
	m.logger.Debug("appropriation started",
		"trail", m.tracker.Count(), "pathTurn", m.tracker.PathTurn(), "closedAt", c)

	if m.animated {
		m.reveal = m.tracker.BeginAppropriation()
		return Touch{Kind: TouchAppropriate, Actor: c}
	}

	res := m.tracker.Appropriate()
	m.finish(res)
	return Touch{Kind: TouchAppropriate, Actor: c, Result: res}
}

// Pump advances an in-flight reveal by up to n steps and returns how many
// cells it committed.
func (m *Interaction) Pump(n int) int {
	if m.reveal == nil {
		return 0
	}

	steps := 0
	for steps < n && m.reveal.Step() {
		steps++
	}
	if m.reveal.Done() {
		m.finish(m.reveal.Result())
	}
	return steps
}

// CancelReveal aborts an in-flight reveal, keeping what was committed.
func (m *Interaction) CancelReveal() {
	if m.reveal == nil {
		return
	}
	m.reveal.Cancel()
	m.finish(m.reveal.Result())
}

func (m *Interaction) finish(res Result) {
	m.reveal = nil
	m.logger.Debug("appropriation finished",
		"committed", res.Committed(), "pockets", res.Pockets, "cancelled", res.Cancelled,
		"owned", m.grid.Count(Owned))
}
