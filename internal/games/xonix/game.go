// Package xonix implements the territory-capture game on top of the
// territory engine: actor movement, capture pacing, goals and rendering.
package xonix

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-xonix/internal/config"
	"github.com/vovakirdan/tui-xonix/internal/core"
	"github.com/vovakirdan/tui-xonix/internal/games/xonix/territory"
	"github.com/vovakirdan/tui-xonix/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeZen     Mode = "zen"
)

const (
	hudHeight  = 2 // status line and separator
	cellWidth  = 2 // terminal columns per grid cell
	flashTicks = 12
)

var (
	// configPath stores the custom config path set via CLI.
	configPath string
	// difficultyPreset stores the difficulty preset set via CLI.
	difficultyPreset config.DifficultyPreset
	// logger receives engine and game events; discarded by default.
	logger = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger routes game and engine events to l.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game implements the Xonix game.
type Game struct {
	mode    Mode
	cfg     config.XonixConfig
	ownCfg  bool // cfg was supplied by the caller, skip loading
	runtime core.RuntimeConfig

	grid   *territory.Grid
	field  *territory.Interaction
	mover  *mover
	pacer  *revealPacer
	unsub  func()
	flash  []uint64 // tick at which each cell became Owned, indexed x*width+z
	events []string

	tick        uint64
	tickRate    int
	ticksLeft   int // -1 = no time limit
	captures    int
	lastCapture territory.Result

	offsetX int
	offsetY int

	won      bool
	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a classic game: reach the target share before time runs out.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewZen creates an endless game with no goal and no clock.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

// NewWithConfig creates a game with an explicit configuration instead of
// the file search and CLI preset.
func NewWithConfig(mode Mode, cfg config.XonixConfig) *Game {
	return &Game{mode: mode, cfg: cfg, ownCfg: true}
}

func init() {
	registry.Register("xonix", func() registry.Game {
		return New()
	})
	registry.Register("xonix_zen", func() registry.Game {
		return NewZen()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "xonix_zen"
	}
	return "xonix"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Xonix (Zen)"
	}
	return "Xonix"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	if g.mode == ModeZen {
		return "Capture territory at your own pace, no goal and no clock"
	}
	return "Close trails against your territory to capture the field"
}

// Config returns the configuration of the current round.
func (g *Game) Config() config.XonixConfig {
	return g.cfg
}

// loadConfig resolves the file config and applies the CLI preset. Load
// errors fall back to defaults; the CLI validates the file before play.
func loadConfig() config.XonixConfig {
	loaded, err := config.LoadXonix(configPath)
	cfg := loaded.Config
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultXonixConfig()
	}
	if difficultyPreset != "" {
		config.ApplyXonixPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// fitGrid shrinks the configured grid to the screen area below the HUD.
func fitGrid(gc config.GridConfig, screenW, screenH int) (length, width int) {
	length = core.Clamp(screenW/cellWidth, 0, gc.Length)
	width = core.Clamp(screenH-hudHeight, 0, gc.Width)
	return length, width
}

// Reset initializes/restarts the game: builds the grid for the screen,
// then lands the actor on the centre cell, which seeds the territory.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	if !g.ownCfg {
		g.cfg = loadConfig()
	}

	if g.unsub != nil {
		g.unsub()
		g.unsub = nil
	}
	g.tick = 0
	g.captures = 0
	g.lastCapture = territory.Result{}
	g.events = nil
	g.won = false
	g.gameOver = false
	g.paused = false
	g.pacer = nil
	g.mover = newMover(g.cfg.Player.MoveEveryTicks, g.cfg.Player.InputBuffer)

	g.ticksLeft = -1
	if g.mode == ModeClassic && g.cfg.Goal.TimeLimitSeconds > 0 {
		g.ticksLeft = g.cfg.Goal.TimeLimitSeconds * g.tickRate
	}

	length, width := fitGrid(g.cfg.Grid, rc.ScreenW, rc.ScreenH)
	grid, err := territory.NewGrid(length, width)
	if err != nil {
		g.tooSmall = true
		g.grid = nil
		g.field = nil
		return
	}
	g.tooSmall = false
	g.grid = grid
	g.offsetX = (rc.ScreenW - length*cellWidth) / 2
	g.offsetY = hudHeight

	g.flash = make([]uint64, length*width)
	g.unsub = grid.Subscribe(func(c *territory.Cell, _, to territory.State) {
		if to == territory.Owned {
			g.flash[c.X()*width+c.Z()] = g.tick + 1
		}
	})

	g.field = territory.NewInteraction(grid,
		territory.WithSeedRadius(g.cfg.Player.SeedRadius),
		territory.WithLogger(logger),
		territory.WithAnimatedReveal(g.cfg.Reveal.Enabled),
	)
	g.field.OnTouched(grid.CellAt(length/2, width/2))

	logger.Debug("round started", "mode", g.mode, "grid", fmt.Sprintf("%dx%d", length, width),
		"owned", grid.Count(territory.Owned), "target", g.cfg.Goal.TargetPercent)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.events = g.events[:0]

	if in.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(g.runtime)
		return g.result()
	}

	if in.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
		g.mover.Reset()
	}

	if g.gameOver || g.won || g.paused || g.tooSmall {
		return g.result()
	}

	g.mover.PushActions(in.Directions())

	if g.field.Busy() {
		g.pumpReveal()
	} else {
		g.move()
	}

	g.countdown()
	g.checkGoal()

	return g.result()
}

func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.events) > 0 {
		res.Events = append([]string(nil), g.events...)
	}
	return res
}

func (g *Game) emit(format string, args ...any) {
	g.events = append(g.events, fmt.Sprintf(format, args...))
}

// move steps the actor once if the mover has a step due.
func (g *Game) move() {
	d, ok := g.mover.Tick()
	if !ok {
		return
	}

	target := g.grid.Neighbor(g.field.Actor(), d)
	touch := g.field.OnTouched(target)

	switch touch.Kind {
	case territory.TouchAppropriate:
		if g.field.Busy() {
			g.pacer = newRevealPacer(g.cfg.Reveal, g.tickRate)
			return
		}
		g.recordCapture(touch.Result)
	case territory.TouchCut:
		g.emit("trail cut at %v", touch.Actor)
	}
}

// pumpReveal commits this tick's share of the in-flight capture.
func (g *Game) pumpReveal() {
	r := g.field.Reveal()
	g.field.Pump(g.pacer.Next())
	if !g.field.Busy() {
		g.pacer = nil
		g.recordCapture(r.Result())
	}
}

func (g *Game) recordCapture(res territory.Result) {
	g.lastCapture = res
	if res.Cancelled {
		g.emit("capture cancelled after %d cells", res.Committed())
		return
	}
	g.captures++
	g.emit("captured %d cells", res.Committed())
}

// countdown runs the classic clock. When it expires a capture in flight is
// cancelled: committed cells stay, the rest of the trail is released.
func (g *Game) countdown() {
	if g.ticksLeft <= 0 {
		return
	}
	g.ticksLeft--
	if g.ticksLeft > 0 {
		return
	}

	if g.field.Busy() {
		r := g.field.Reveal()
		g.field.CancelReveal()
		g.pacer = nil
		g.recordCapture(r.Result())
	}
	g.gameOver = true
	g.emit("time up")
	logger.Info("round lost", "owned", fmt.Sprintf("%.1f%%", g.grid.OwnedPercent()))
}

func (g *Game) checkGoal() {
	if g.mode != ModeClassic || g.gameOver || g.field.Busy() {
		return
	}
	if g.grid.OwnedPercent() >= float64(g.cfg.Goal.TargetPercent) {
		g.won = true
		g.emit("target reached")
		logger.Info("round won", "owned", fmt.Sprintf("%.1f%%", g.grid.OwnedPercent()), "ticks", g.tick)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.gameOver || g.won,
		Won:      g.won,
		Paused:   g.paused,
	}
	if g.grid != nil {
		st.Score = g.grid.Count(territory.Owned)
		if g.mode == ModeClassic {
			st.Progress = g.grid.OwnedPercent()
		}
	}
	return st
}

// Grid exposes the playfield for tests and tooling.
func (g *Game) Grid() *territory.Grid {
	return g.grid
}
