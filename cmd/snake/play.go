package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/startpage-snake/internal/config"
	"github.com/vovakirdan/startpage-snake/internal/platform/tui"
	"github.com/vovakirdan/startpage-snake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant, or the classic snake when omitted.

Controls:
  Arrows/WASD/hjkl  - Steer
  Enter             - Start
  P                 - Pause / resume
  Space             - Start, pause or play again
  R                 - Play again (after game over)
  Esc/B             - Leave
  Q/Ctrl+C          - Quit
  Ctrl+S            - Screenshot

Difficulty options:
  easy    - Slower ticks
  normal  - Configured speed
  hard    - Faster ticks
  fixed   - No speed ramp

Examples:
  snake play
  snake play snake_turbo
  snake play --difficulty easy
  snake play --config ./my-snake.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := config.VariantClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if variant exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'snake list' to see available variants", gameID)
	}

	return withBackend(func(b *backend) error {
		game, err := b.newGame(gameID, flagDifficulty)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}

		cfg := runtimeConfig()
		cfg.Seed = runSeed()
		if _, err := tui.Run(game, b.recorder(), b.logger, cfg); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		return nil
	})
}
