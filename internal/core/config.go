package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use it to fit themselves to the available screen area.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	Progress float64 // Goal progress in percent, 0 when the game has no goal
	GameOver bool    // Whether the game has ended
	Won      bool    // Whether the game ended with the goal reached
	Paused   bool    // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Events are short human-readable notes about what happened this tick,
	// e.g. "captured 42 cells". The platform may surface or log them.
	Events []string
}
