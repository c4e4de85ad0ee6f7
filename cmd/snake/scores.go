package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/startpage-snake/internal/config"
	"github.com/vovakirdan/startpage-snake/internal/registry"
	"github.com/vovakirdan/startpage-snake/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show recorded runs for a variant",
	Long: `Display the best recorded runs for the given variant, or the classic
snake when omitted.

Examples:
  snake scores
  snake scores snake_turbo --limit 20
  snake scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs of the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := config.VariantClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	title, ok := registry.Title(gameID)
	if !ok {
		return fmt.Errorf("unknown variant %q, run 'snake list' to see available variants", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		color.Green("Cleared recorded runs of %s.", title)
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	header := color.New(color.FgYellow, color.Bold)
	header.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play %s' to set the first high score!\n", gameID)
		return nil
	}

	// Print header
	color.Cyan("  %-4s  %-10s  %-16s  %s", "Rank", "Score", "Date", "Run")
	color.Cyan("  %-4s  %-10s  %-16s  %s", "----", "-----", "----", "---")

	// Print scores, best run highlighted
	best := color.New(color.FgGreen, color.Bold)
	for i, entry := range scores {
		line := fmt.Sprintf("  %-4d  %-10d  %-16s  %s",
			i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"), runLabel(entry.SessionID))
		if i == 0 {
			best.Println(line)
			continue
		}
		fmt.Println(line)
	}

	// Show totals
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Total: %d\n",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

// runLabel shortens a session id for display.
func runLabel(id string) string {
	switch {
	case id == "":
		return "-"
	case len(id) > 8:
		return id[:8]
	default:
		return id
	}
}
