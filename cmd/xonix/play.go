package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-xonix/internal/core"
	"github.com/vovakirdan/tui-xonix/internal/games/xonix"
	"github.com/vovakirdan/tui-xonix/internal/platform/tui"
	"github.com/vovakirdan/tui-xonix/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMenu       bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing. The default mode is 'xonix'.

Controls:
  Arrows/WASD/hjkl  - Move
  P/Esc             - Pause
  R                 - Restart
  ?                 - Help
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 60% target, no time limit, large starting territory
  normal - 75% target, 5 minute limit
  hard   - 85% target, 3 minute limit, faster actor
  fixed  - Use the config file unchanged

Examples:
  xonix play
  xonix play xonix_zen
  xonix play --difficulty hard
  xonix play --menu
  xonix play --config ./my-xonix.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMenu, "menu", false, "Pick mode and difficulty interactively")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "xonix"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'xonix list' to see available modes", gameID)
	}

	// Fail before entering the alt screen if the config is broken.
	if _, _, err := resolveConfig(); err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = max(1, flagFPS)
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}

	difficulty := flagDifficulty
	if flagMenu {
		selection, err := tui.RunModeSelector(cfg)
		if err != nil {
			return err
		}
		if selection == nil {
			return nil
		}
		gameID = selection.GameID
		difficulty = string(selection.Difficulty)
	}

	xonix.SetConfigPath(flagConfig)
	xonix.SetDifficultyPreset(difficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger.Info("starting", "mode", gameID, "difficulty", difficulty, "screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH), "fps", cfg.TickRate)
	return tui.Run(game, cfg, tui.WithLogger(logger))
}
