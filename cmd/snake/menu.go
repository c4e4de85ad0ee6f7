package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/startpage-snake/internal/config"
	"github.com/vovakirdan/startpage-snake/internal/platform/tui"
	"github.com/vovakirdan/startpage-snake/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant, then pick
a difficulty. Leaving a game with Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  snake menu
  snake menu --fps 30
  snake menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	return withBackend(func(b *backend) error {
		cfg := runtimeConfig()
		lastGame := ""

		// Menu loop
		for {
			menuResult, err := tui.RunMenu(tui.MenuSource{Record: b.record(), Best: b.best}, cfg)
			if err != nil {
				return err
			}

			// Update config with any size changes
			cfg = menuResult.Config

			if menuResult.Quit {
				return nil
			}

			if menuResult.WantsScoreboard {
				goBack, err := tui.RunScoreboard(b.reader(), lastGame, b.record(), cfg.ScreenW, cfg.ScreenH)
				if err != nil {
					return err
				}
				if goBack {
					continue // Back to menu
				}
				return nil // User quit from scoreboard
			}

			gameID := menuResult.GameID
			if gameID == "" {
				return nil
			}
			title, _ := registry.Title(gameID)

			choice, err := tui.RunDifficultySelector(title, preset, cfg)
			if err != nil {
				return err
			}
			if choice.Quit {
				return nil
			}
			if choice.Back {
				continue
			}
			preset = choice.Preset

			game, err := b.newGame(gameID, string(preset))
			if err != nil {
				return fmt.Errorf("creating game: %w", err)
			}
			lastGame = gameID

			cfg.Seed = runSeed()
			result, err := tui.Run(game, b.recorder(), b.logger, cfg)
			if err != nil {
				return fmt.Errorf("running game: %w", err)
			}
			cfg = result.Config
			cfg.Seed = flagSeed

			if !result.Back {
				return nil
			}
		}
	})
}
