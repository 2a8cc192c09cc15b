package xonix

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-xonix/internal/config"
)

// easings maps config names to tween curves.
var easings = map[string]ease.TweenFunc{
	config.EasingLinear:    ease.Linear,
	config.EasingInQuad:    ease.InQuad,
	config.EasingOutQuad:   ease.OutQuad,
	config.EasingInOutQuad: ease.InOutQuad,
	config.EasingOutCubic:  ease.OutCubic,
}

func easingFunc(name string) ease.TweenFunc {
	if f, ok := easings[name]; ok {
		return f
	}
	return ease.Linear
}

// revealPacer decides how many cells an in-flight capture commits per tick.
// The commit rate follows a tween from start to max rate; fractional cells
// carry over so slow rates still make progress.
type revealPacer struct {
	tween  *gween.Tween // nil for a constant rate
	rate   float32
	dt     float32
	budget float64
}

func newRevealPacer(rc config.RevealConfig, tickRate int) *revealPacer {
	p := &revealPacer{
		rate: float32(rc.MaxRate),
		dt:   1 / float32(max(1, tickRate)),
	}
	if rc.RampSeconds > 0 {
		p.rate = float32(rc.StartRate)
		p.tween = gween.New(float32(rc.StartRate), float32(rc.MaxRate), float32(rc.RampSeconds), easingFunc(rc.Easing))
	}
	return p
}

// Next returns the number of cells to commit this tick.
func (p *revealPacer) Next() int {
	if p.tween != nil {
		p.rate, _ = p.tween.Update(p.dt)
	}

	p.budget += float64(p.rate) * float64(p.dt)
	n := int(p.budget)
	p.budget -= float64(n)
	return n
}

// Rate returns the most recent commit rate in cells per second.
func (p *revealPacer) Rate() float64 {
	return float64(p.rate)
}
