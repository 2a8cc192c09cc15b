package xonix

import "github.com/vovakirdan/tui-xonix/internal/games/xonix/territory"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateCapturing   GameStateType = "capturing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Mode       string
	GridLength int
	GridWidth  int
	ActorX     int
	ActorZ     int
	Owned      int
	Free       int
	Trail      int
	PathTurn   int
	Pending    int // cells still queued in an in-flight capture
	Queued     int // direction presses waiting for the mover
	Captures   int
	TicksLeft  int
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Captures:  g.captures,
		TicksLeft: g.ticksLeft,
		State:     StatePlaying,
	}

	switch {
	case g.tooSmall:
		s.State = StatePausedSmall
		return s
	case g.won:
		s.State = StateWin
	case g.gameOver:
		s.State = StateGameOver
	case g.paused:
		s.State = StatePaused
	case g.field.Busy():
		s.State = StateCapturing
	}

	s.GridLength = g.grid.Length()
	s.GridWidth = g.grid.Width()
	s.Owned = g.grid.Count(territory.Owned)
	s.Free = g.grid.Count(territory.Free)
	s.Trail = g.field.Tracker().Count()
	s.PathTurn = g.field.Tracker().PathTurn()
	s.Queued = g.mover.Queued()
	if r := g.field.Reveal(); r != nil {
		s.Pending = r.Pending()
	}
	if a := g.field.Actor(); a != nil {
		s.ActorX, s.ActorZ = a.X(), a.Z()
	}
	return s
}
