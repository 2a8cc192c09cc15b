package xonix

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-xonix/internal/config"
	"github.com/vovakirdan/tui-xonix/internal/core"
	"github.com/vovakirdan/tui-xonix/internal/games/xonix/territory"
)

// testConfig is a 9x9 field with a single seeded cell, one step per tick
// and instant captures.
func testConfig() config.XonixConfig {
	cfg := config.DefaultXonixConfig()
	cfg.Grid.Length = 9
	cfg.Grid.Width = 9
	cfg.Player.SeedRadius = 1
	cfg.Player.MoveEveryTicks = 1
	cfg.Player.InputBuffer = 4
	cfg.Reveal.Enabled = false
	cfg.Goal.TargetPercent = 100
	return cfg
}

func newTestGame(t *testing.T, mode Mode, cfg config.XonixConfig) *Game {
	t.Helper()
	g := NewWithConfig(mode, cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10})
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return g.Step(f)
}

func idle(g *Game, ticks int) {
	for i := 0; i < ticks; i++ {
		g.Step(core.NewInputFrame())
	}
}

// loop walks up, right, down and left from the centre, closing a 2x2 square.
func loop(g *Game) core.StepResult {
	press(g, core.ActionUp)
	press(g, core.ActionRight)
	press(g, core.ActionDown)
	return press(g, core.ActionLeft)
}

func TestResetSeedsCentre(t *testing.T) {
	g := newTestGame(t, ModeClassic, testConfig())

	s := g.Snapshot()
	assert.Equal(t, 9, s.GridLength)
	assert.Equal(t, 9, s.GridWidth)
	assert.Equal(t, 4, s.ActorX)
	assert.Equal(t, 4, s.ActorZ)
	assert.Equal(t, 1, s.Owned)
	assert.Equal(t, 48, s.Free)
	assert.Equal(t, StatePlaying, s.State)
	assert.Equal(t, -1, s.TicksLeft)
	assert.Equal(t, 1, g.State().Score)
}

func TestResetFitsGridToScreen(t *testing.T) {
	cfg := testConfig()
	g := NewWithConfig(ModeClassic, cfg)

	g.Reset(core.RuntimeConfig{ScreenW: 12, ScreenH: 8, TickRate: 10})
	s := g.Snapshot()
	assert.Equal(t, 6, s.GridLength, "two columns per cell")
	assert.Equal(t, 6, s.GridWidth, "HUD rows reserved")
	assert.Equal(t, 3, s.ActorX)
	assert.Equal(t, 3, s.ActorZ)
}

func TestTooSmallWindow(t *testing.T) {
	g := NewWithConfig(ModeClassic, testConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 5, ScreenH: 24, TickRate: 10})

	assert.Equal(t, StatePausedSmall, g.Snapshot().State)
	assert.NotPanics(t, func() { press(g, core.ActionUp) })
	assert.Zero(t, g.State().Score)

	screen := core.NewScreen(40, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
}

func TestActorMovesOnScreenDirections(t *testing.T) {
	g := newTestGame(t, ModeClassic, testConfig())

	press(g, core.ActionUp)
	s := g.Snapshot()
	assert.Equal(t, [2]int{4, 5}, [2]int{s.ActorX, s.ActorZ}, "up is +Z")
	assert.Equal(t, 1, s.Trail)

	press(g, core.ActionRight)
	s = g.Snapshot()
	assert.Equal(t, [2]int{5, 5}, [2]int{s.ActorX, s.ActorZ}, "right is +X")

	press(g, core.ActionDown)
	press(g, core.ActionDown)
	s = g.Snapshot()
	assert.Equal(t, [2]int{5, 3}, [2]int{s.ActorX, s.ActorZ})
	assert.Equal(t, 4, s.Trail)
}

func TestInstantCapture(t *testing.T) {
	g := newTestGame(t, ModeClassic, testConfig())

	res := loop(g)

	assert.Contains(t, res.Events, "captured 3 cells")
	s := g.Snapshot()
	assert.Equal(t, 4, s.Owned)
	assert.Zero(t, s.Trail)
	assert.Equal(t, 1, s.Captures)
	assert.Equal(t, 4, res.State.Score)
	assert.Zero(t, g.Grid().Count(territory.Path))
}

func TestTrailCut(t *testing.T) {
	g := newTestGame(t, ModeClassic, testConfig())

	press(g, core.ActionUp)
	press(g, core.ActionRight)
	res := press(g, core.ActionLeft)

	assert.Contains(t, res.Events, "trail cut at (4,5)")
	s := g.Snapshot()
	assert.Equal(t, 1, s.Trail)
	assert.Equal(t, [2]int{4, 5}, [2]int{s.ActorX, s.ActorZ})
	assert.Equal(t, territory.Free, g.Grid().CellAt(5, 5).State())
}

func TestEdgeStopsActor(t *testing.T) {
	g := newTestGame(t, ModeClassic, testConfig())

	for i := 0; i < 6; i++ {
		press(g, core.ActionRight)
	}

	s := g.Snapshot()
	assert.Equal(t, 7, s.ActorX, "the edge ring is never entered")
	assert.Equal(t, 3, s.Trail)
	assert.Equal(t, 32, g.Grid().Count(territory.Edge))
}

func TestMovePacing(t *testing.T) {
	cfg := testConfig()
	cfg.Player.MoveEveryTicks = 3
	g := newTestGame(t, ModeClassic, cfg)

	press(g, core.ActionRight)
	assert.Equal(t, 5, g.Snapshot().ActorX, "first press moves at once")

	press(g, core.ActionRight)
	assert.Equal(t, 5, g.Snapshot().ActorX)
	idle(g, 1)
	assert.Equal(t, 5, g.Snapshot().ActorX)
	idle(g, 1)
	assert.Equal(t, 6, g.Snapshot().ActorX)
}

func TestInputBufferDropsOverflow(t *testing.T) {
	cfg := testConfig()
	cfg.Player.InputBuffer = 2
	g := newTestGame(t, ModeClassic, cfg)

	press(g, core.ActionRight, core.ActionRight, core.ActionRight, core.ActionRight, core.ActionRight)
	assert.Equal(t, 5, g.Snapshot().ActorX)
	idle(g, 3)
	assert.Equal(t, 6, g.Snapshot().ActorX)
}

// animatedConfig commits captures at rate cells per second with no ramp.
func animatedConfig(rate float64) config.XonixConfig {
	cfg := testConfig()
	cfg.Reveal.Enabled = true
	cfg.Reveal.StartRate = rate
	cfg.Reveal.MaxRate = rate
	cfg.Reveal.RampSeconds = 0
	return cfg
}

func TestAnimatedCapture(t *testing.T) {
	g := newTestGame(t, ModeClassic, animatedConfig(10))

	loop(g)
	s := g.Snapshot()
	require.Equal(t, StateCapturing, s.State)
	assert.Equal(t, 3, s.Pending)
	assert.Equal(t, 1, s.Owned)

	press(g, core.ActionRight)
	assert.Equal(t, 2, g.Snapshot().Owned)
	assert.Equal(t, 4, g.Snapshot().ActorX, "movement waits for the capture")

	idle(g, 1)
	res := press(g)
	assert.Contains(t, res.Events, "captured 3 cells")
	s = g.Snapshot()
	assert.Equal(t, StatePlaying, s.State)
	assert.Equal(t, 4, s.Owned)
	assert.Zero(t, s.Pending)

	idle(g, 1)
	assert.Equal(t, 5, g.Snapshot().ActorX, "queued press runs after the capture")
}

func TestTimeLimitCancelsCapture(t *testing.T) {
	cfg := animatedConfig(2)
	cfg.Goal.TimeLimitSeconds = 1
	g := newTestGame(t, ModeClassic, cfg)
	require.Equal(t, 10, g.Snapshot().TicksLeft)

	loop(g)
	idle(g, 5)
	require.Equal(t, 2, g.Snapshot().Owned, "one trail cell committed so far")

	res := press(g)

	assert.Contains(t, res.Events, "capture cancelled after 1 cells")
	assert.Contains(t, res.Events, "time up")
	assert.True(t, res.State.GameOver)
	assert.False(t, res.State.Won)

	s := g.Snapshot()
	assert.Equal(t, StateGameOver, s.State)
	assert.Equal(t, 2, s.Owned)
	assert.Zero(t, g.Grid().Count(territory.Path), "uncommitted trail released")
	assert.Equal(t, territory.Owned, g.Grid().CellAt(4, 5).State())
	assert.Equal(t, territory.Free, g.Grid().CellAt(5, 5).State())
}

func TestWinAndRestart(t *testing.T) {
	cfg := testConfig()
	cfg.Goal.TargetPercent = 8 // 4 of 49 interior cells
	g := newTestGame(t, ModeClassic, cfg)

	res := loop(g)

	assert.True(t, res.State.Won)
	assert.True(t, res.State.GameOver)
	assert.Contains(t, res.Events, "target reached")
	assert.InDelta(t, 400.0/49, res.State.Progress, 1e-9)
	assert.Equal(t, StateWin, g.Snapshot().State)

	press(g, core.ActionUp)
	assert.Equal(t, 4, g.Snapshot().ActorZ, "no movement after the round ends")

	press(g, core.ActionRestart)
	s := g.Snapshot()
	assert.Equal(t, StatePlaying, s.State)
	assert.Equal(t, 1, s.Owned)
	assert.Zero(t, s.Captures)
}

func TestZenHasNoGoalOrClock(t *testing.T) {
	cfg := testConfig()
	cfg.Goal.TargetPercent = 1
	cfg.Goal.TimeLimitSeconds = 1
	g := newTestGame(t, ModeZen, cfg)

	assert.Equal(t, -1, g.Snapshot().TicksLeft)
	loop(g)
	idle(g, 30)

	assert.Equal(t, StatePlaying, g.Snapshot().State)
	assert.Zero(t, g.State().Progress, "no goal to progress towards")
	assert.Positive(t, g.State().Score)
	assert.Equal(t, "xonix_zen", g.ID())
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, ModeClassic, testConfig())

	res := press(g, core.ActionPause)
	require.True(t, res.State.Paused)

	press(g, core.ActionUp)
	assert.Equal(t, 4, g.Snapshot().ActorZ)
	assert.Equal(t, StatePaused, g.Snapshot().State)

	press(g, core.ActionPause)
	press(g, core.ActionUp)
	assert.Equal(t, 5, g.Snapshot().ActorZ)
}

func TestPauseDropsQueuedPresses(t *testing.T) {
	g := newTestGame(t, ModeClassic, testConfig())

	press(g, core.ActionUp, core.ActionRight, core.ActionUp)
	require.Equal(t, 2, g.Snapshot().Queued)

	press(g, core.ActionPause)
	assert.Zero(t, g.Snapshot().Queued)

	press(g, core.ActionPause)
	idle(g, 3)
	s := g.Snapshot()
	assert.Equal(t, [2]int{4, 5}, [2]int{s.ActorX, s.ActorZ}, "stale presses are not replayed")
}

func TestFitGridClampsToScreen(t *testing.T) {
	gc := config.GridConfig{Length: 40, Width: 20}

	tests := []struct {
		name         string
		w, h         int
		wantL, wantW int
	}{
		{"roomy terminal keeps config", 200, 60, 40, 20},
		{"narrow terminal", 30, 60, 15, 20},
		{"short terminal", 200, 10, 40, 8},
		{"no rows below the HUD", 200, 1, 40, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, w := fitGrid(gc, tc.w, tc.h)
			assert.Equal(t, tc.wantL, l)
			assert.Equal(t, tc.wantW, w)
		})
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, ModeClassic, testConfig())
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	hud := screen.Row(0)
	assert.Contains(t, hud, "Xonix")
	assert.Contains(t, hud, "Captured:")
	assert.Contains(t, hud, "/ 100%")

	// 9 cells * 2 columns centred in 80 columns; row 2 holds z = 8.
	assert.Equal(t, core.Cell{Rune: '◆', Color: core.ColorBrightWhite}, screen.GetCell(39, 6))
	assert.Equal(t, core.Cell{Rune: '▓', Color: core.ColorGray}, screen.GetCell(31, 10))
	assert.Equal(t, core.Cell{Rune: '·', Color: core.ColorDim}, screen.GetCell(33, 3))

	press(g, core.ActionUp)
	press(g, core.ActionUp)
	g.Render(screen)
	assert.Equal(t, core.Cell{Rune: '▒', Color: core.ColorYellow}, screen.GetCell(40, 5), "trail behind the actor")

	press(g, core.ActionPause)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Paused")
	assert.Contains(t, screen.String(), "Press P to continue")
}

func TestRenderFlashesFreshCaptures(t *testing.T) {
	g := newTestGame(t, ModeClassic, testConfig())
	screen := core.NewScreen(80, 24)

	loop(g)
	g.Render(screen)
	assert.Equal(t, core.ColorBrightRed, screen.GetCell(41, 5).Color)

	idle(g, flashTicks)
	g.Render(screen)
	assert.Equal(t, core.ColorRed, screen.GetCell(41, 5).Color)
}

func TestDeterminism(t *testing.T) {
	script := []core.Action{
		core.ActionUp, core.ActionUp, core.ActionRight, core.ActionRight,
		core.ActionDown, core.ActionDown, core.ActionLeft, core.ActionNone,
		core.ActionLeft, core.ActionUp, core.ActionLeft, core.ActionDown,
	}
	run := func() []Snapshot {
		g := newTestGame(t, ModeClassic, animatedConfig(15))
		var out []Snapshot
		for _, a := range script {
			press(g, a)
			out = append(out, g.Snapshot())
		}
		idle(g, 20)
		return append(out, g.Snapshot())
	}

	assert.Equal(t, run(), run())
}

func TestLoggerReceivesEvents(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf)
	l.SetLevel(log.DebugLevel)

	prev := logger
	SetLogger(l)
	t.Cleanup(func() { logger = prev })

	g := newTestGame(t, ModeClassic, testConfig())
	loop(g)

	out := buf.String()
	assert.Contains(t, out, "round started")
	assert.Contains(t, out, "territory seeded")
	assert.Contains(t, out, "appropriation finished")
}

func TestRegisteredModes(t *testing.T) {
	assert.Equal(t, "xonix", New().ID())
	assert.Equal(t, "Xonix (Zen)", NewZen().Title())
	assert.True(t, strings.HasPrefix(New().Description(), "Close trails"))
}
