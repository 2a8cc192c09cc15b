// Package config provides YAML-based configuration for the Xonix game:
// loading with a search order, environment overrides, difficulty presets
// and validation.
package config

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// MinGridSize is the smallest allowed grid extent on either axis.
const MinGridSize = 3

// XonixConfig contains all configuration for the Xonix game.
type XonixConfig struct {
	Grid   GridConfig   `yaml:"grid" envPrefix:"GRID_"`
	Player PlayerConfig `yaml:"player"`
	Reveal RevealConfig `yaml:"reveal" envPrefix:"REVEAL_"`
	Goal   GoalConfig   `yaml:"goal"`
}

// GridConfig sets the playfield size in cells, edge ring included.
type GridConfig struct {
	Length int `yaml:"length" env:"LENGTH"` // x extent
	Width  int `yaml:"width" env:"WIDTH"`   // z extent
}

// PlayerConfig defines the actor's territory seed and movement pacing.
type PlayerConfig struct {
	SeedRadius     int `yaml:"seed_radius" env:"SEED_RADIUS"`
	MoveEveryTicks int `yaml:"move_every_ticks" env:"MOVE_EVERY_TICKS"`
	InputBuffer    int `yaml:"input_buffer"` // queued direction presses
}

// RevealConfig controls the animated appropriation. Rates are committed
// cells per second; the rate eases from StartRate to MaxRate over
// RampSeconds.
type RevealConfig struct {
	Enabled     bool    `yaml:"enabled" env:"ENABLED"`
	StartRate   float64 `yaml:"start_rate"`
	MaxRate     float64 `yaml:"max_rate"`
	RampSeconds float64 `yaml:"ramp_seconds"`
	Easing      string  `yaml:"easing"`
}

// GoalConfig defines how a classic round is won or lost.
type GoalConfig struct {
	TargetPercent    int `yaml:"target_percent" env:"TARGET_PERCENT"`
	TimeLimitSeconds int `yaml:"time_limit_seconds" env:"TIME_LIMIT_SECONDS"` // 0 = unlimited
}

// Easing names accepted by reveal.easing.
const (
	EasingLinear    = "linear"
	EasingInQuad    = "in_quad"
	EasingOutQuad   = "out_quad"
	EasingInOutQuad = "in_out_quad"
	EasingOutCubic  = "out_cubic"
)

// Easings lists the accepted easing names.
var Easings = []string{EasingLinear, EasingInQuad, EasingOutQuad, EasingInOutQuad, EasingOutCubic}

// Validate checks every field and returns all problems joined, each
// wrapping ErrInvalid.
func (c XonixConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Grid.Length < MinGridSize {
		bad("grid.length %d is below %d", c.Grid.Length, MinGridSize)
	}
	if c.Grid.Width < MinGridSize {
		bad("grid.width %d is below %d", c.Grid.Width, MinGridSize)
	}
	if c.Player.SeedRadius < 1 {
		bad("player.seed_radius %d must be at least 1", c.Player.SeedRadius)
	}
	if c.Player.MoveEveryTicks < 1 {
		bad("player.move_every_ticks %d must be at least 1", c.Player.MoveEveryTicks)
	}
	if c.Player.InputBuffer < 1 {
		bad("player.input_buffer %d must be at least 1", c.Player.InputBuffer)
	}
	if c.Reveal.Enabled {
		if c.Reveal.StartRate <= 0 {
			bad("reveal.start_rate %g must be positive", c.Reveal.StartRate)
		}
		if c.Reveal.MaxRate < c.Reveal.StartRate {
			bad("reveal.max_rate %g is below start_rate %g", c.Reveal.MaxRate, c.Reveal.StartRate)
		}
		if c.Reveal.RampSeconds < 0 {
			bad("reveal.ramp_seconds %g is negative", c.Reveal.RampSeconds)
		}
		if !slices.Contains(Easings, c.Reveal.Easing) {
			bad("reveal.easing %q is not one of %v", c.Reveal.Easing, Easings)
		}
	}
	if c.Goal.TargetPercent < 1 || c.Goal.TargetPercent > 100 {
		bad("goal.target_percent %d is outside 1..100", c.Goal.TargetPercent)
	}
	if c.Goal.TimeLimitSeconds < 0 {
		bad("goal.time_limit_seconds %d is negative", c.Goal.TimeLimitSeconds)
	}

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the known presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset resolves a preset name. The empty string means fixed.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyFixed, nil
	}
	p := DifficultyPreset(name)
	if !slices.Contains(Presets(), p) {
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, name)
	}
	return p, nil
}

// IsFixedPreset returns true if the preset leaves the config untouched.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyXonixPreset adjusts goal, seed radius, pace and time limit for a
// preset. The fixed preset changes nothing.
func ApplyXonixPreset(cfg *XonixConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Goal.TargetPercent = 60
		cfg.Goal.TimeLimitSeconds = 0
		cfg.Player.SeedRadius = 3
		cfg.Player.MoveEveryTicks = 5
	case DifficultyNormal:
		cfg.Goal.TargetPercent = 75
		cfg.Goal.TimeLimitSeconds = 300
		cfg.Player.SeedRadius = 2
		cfg.Player.MoveEveryTicks = 4
	case DifficultyHard:
		cfg.Goal.TargetPercent = 85
		cfg.Goal.TimeLimitSeconds = 180
		cfg.Player.SeedRadius = 1
		cfg.Player.MoveEveryTicks = 3
	}
}
