package config

import (
	"bytes"
	_ "embed"
)

//go:embed defaults/xonix.yaml
var defaultXonixYAML []byte

// DefaultXonixConfig returns the built-in configuration. It matches the
// embedded defaults/xonix.yaml.
func DefaultXonixConfig() XonixConfig {
	return XonixConfig{
		Grid: GridConfig{
			Length: 40,
			Width:  20,
		},
		Player: PlayerConfig{
			SeedRadius:     2,
			MoveEveryTicks: 4,
			InputBuffer:    3,
		},
		Reveal: RevealConfig{
			Enabled:     true,
			StartRate:   30,
			MaxRate:     240,
			RampSeconds: 1.0,
			Easing:      EasingOutQuad,
		},
		Goal: GoalConfig{
			TargetPercent:    75,
			TimeLimitSeconds: 0,
		},
	}
}

// DefaultXonixYAML returns the embedded default file, comments included.
func DefaultXonixYAML() []byte {
	return bytes.Clone(defaultXonixYAML)
}
