package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/startpage-snake/internal/config"
	"github.com/vovakirdan/startpage-snake/internal/games/snake"
	"github.com/vovakirdan/startpage-snake/internal/storage"
)

var resetHighScoreCmd = &cobra.Command{
	Use:   "reset-highscore",
	Short: "Forget the persisted high score",
	Long: `Delete the high score of the configured namespace. Recorded runs in
the scoreboard are kept; use 'snake scores --clear' for those.

Examples:
  snake reset-highscore
  snake reset-highscore --namespace work`,
	Args: cobra.NoArgs,
	RunE: runResetHighScore,
}

func runResetHighScore(_ *cobra.Command, _ []string) error {
	cfg, err := effectiveConfig(config.VariantClassic)
	if err != nil {
		return err
	}
	key := snake.HighScoreKey(cfg.Storage.Namespace)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	old, ok, err := store.GetInt(key)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Printf("No high score stored under %s.\n", key)
		return nil
	}

	if err := store.Delete(key); err != nil {
		return err
	}
	color.Green("Reset high score %d stored under %s.", old, key)
	return nil
}
