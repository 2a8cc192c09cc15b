package xonix

import (
	"fmt"

	"github.com/vovakirdan/tui-xonix/internal/core"
	"github.com/vovakirdan/tui-xonix/internal/games/xonix/territory"
)

// glyph is how one grid cell is drawn: two runes wide.
type glyph struct {
	left, right rune
	color       core.Color
}

var stateGlyphs = map[territory.State]glyph{
	territory.Free:  {'·', ' ', core.ColorDim},
	territory.Path:  {'▒', '▒', core.ColorYellow},
	territory.Owned: {'█', '█', core.ColorRed},
	territory.Edge:  {'▓', '▓', core.ColorGray},
}

var (
	actorGlyph = glyph{'◆', ' ', core.ColorBrightWhite}
	flashGlyph = glyph{'█', '█', core.ColorBrightRed}
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderGrid(dst)

	switch {
	case g.won:
		g.renderOverlay(dst, "Territory captured!", fmt.Sprintf("%.1f%% owned - press R to play again", g.grid.OwnedPercent()))
	case g.gameOver:
		g.renderOverlay(dst, "Time up", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := " " + g.Title()
	if g.grid != nil {
		hud += fmt.Sprintf("  Captured: %5.1f%%", g.grid.OwnedPercent())
		if g.mode == ModeClassic {
			hud += fmt.Sprintf(" / %d%%", g.cfg.Goal.TargetPercent)
		}
		hud += fmt.Sprintf("  Trail: %d", g.field.Tracker().Count())
		if g.ticksLeft >= 0 {
			secs := (g.ticksLeft + g.tickRate - 1) / g.tickRate
			hud += fmt.Sprintf("  Time: %d:%02d", secs/60, secs%60)
		}
		if g.field.Busy() {
			hud += fmt.Sprintf("  Capturing... %d", g.field.Reveal().Pending())
		}
	}

	dst.DrawTextColored(0, 0, hud, core.ColorCyan)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderGrid draws every cell with z growing upwards, then the actor.
func (g *Game) renderGrid(dst *core.Screen) {
	width := g.grid.Width()
	g.grid.Each(func(c *territory.Cell) {
		gl := stateGlyphs[c.State()]
		if c.State() == territory.Owned {
			if at := g.flash[c.X()*width+c.Z()]; at != 0 && g.tick+1-at < flashTicks {
				gl = flashGlyph
			}
		}
		g.drawCell(dst, c, gl)
	})

	if actor := g.field.Actor(); actor != nil {
		g.drawCell(dst, actor, actorGlyph)
	}
}

func (g *Game) drawCell(dst *core.Screen, c *territory.Cell, gl glyph) {
	sx, sy := g.screenPos(c)
	dst.SetColored(sx, sy, gl.left, gl.color)
	dst.SetColored(sx+1, sy, gl.right, gl.color)
}

// screenPos returns the terminal position of a cell's left column.
func (g *Game) screenPos(c *territory.Cell) (x, y int) {
	return g.offsetX + c.X()*cellWidth, g.offsetY + (g.grid.Width() - 1 - c.Z())
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	textW := max(len([]rune(line1)), len([]rune(line2)))
	box := core.CenteredRect(dst.Width(), dst.Height(), textW+4, 5)

	inner := box.Inset(1)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(inner.Y, line1, core.ColorBrightYellow)
	dst.DrawText(inner.X+(inner.W-len([]rune(line2)))/2, inner.Y+2, line2)
}
