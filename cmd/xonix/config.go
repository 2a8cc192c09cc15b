package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-xonix/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Resolves the configuration the same way 'play' does and prints it as
YAML. The output can be saved as ~/.arcade/configs/xonix.yaml and edited.

Search order:
  --config <path>
  ~/.arcade/configs/xonix.yaml
  ./configs/xonix.yaml
  built-in defaults

XONIX_* environment variables override file values.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, args []string) error {
	loaded, preset, err := resolveConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(loaded.Config)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	source := string(loaded.Source)
	if loaded.Path != "" {
		source += " " + loaded.Path
	}
	fmt.Fprintf(out, "# source: %s\n", source)
	if !config.IsFixedPreset(preset) {
		fmt.Fprintf(out, "# difficulty: %s\n", preset)
	}
	_, err = out.Write(data)
	return err
}

// resolveConfig loads and validates the config file and applies the
// difficulty preset from the flags.
func resolveConfig() (config.Loaded, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Loaded{}, "", fmt.Errorf("--difficulty: %w", err)
	}

	loaded, err := config.LoadXonix(flagConfig)
	if err != nil {
		return config.Loaded{}, "", err
	}
	logger.Debug("config loaded", "source", loaded.Source, "path", loaded.Path)

	config.ApplyXonixPreset(&loaded.Config, preset)
	if err := loaded.Config.Validate(); err != nil {
		return config.Loaded{}, "", err
	}
	return loaded, preset, nil
}
