package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment override, e.g. XONIX_GRID_LENGTH.
const EnvPrefix = "XONIX_"

// applyEnv overlays XONIX_* environment variables onto cfg. Unset
// variables leave fields untouched.
func applyEnv(cfg *XonixConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("config: environment: %w", err)
	}
	return nil
}
