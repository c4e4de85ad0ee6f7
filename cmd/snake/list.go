package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/startpage-snake/internal/config"
	"github.com/vovakirdan/startpage-snake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows every registered variant with its starting tick interval.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return nil
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Speed")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----")

	// Print variants
	for _, g := range games {
		speed := "?"
		if cfg, err := config.Resolve(flagConfig, g.ID, preset); err == nil {
			speed = describeSpeed(cfg.Speed)
		}
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, speed)
	}

	fmt.Println()
	fmt.Println("Run 'snake play <id>' to play a variant.")
	return nil
}

// describeSpeed summarizes a tick schedule.
func describeSpeed(s config.SpeedConfig) string {
	if !s.RampEnabled() {
		return fmt.Sprintf("%dms per tick", s.IntervalMS)
	}
	return fmt.Sprintf("%dms, -%dms every %d points down to %dms",
		s.IntervalMS, s.RampDecrementMS, s.RampEvery, s.MinIntervalMS)
}
