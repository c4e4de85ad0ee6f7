package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Variant identifiers shared by the config file and the game registry.
const (
	VariantClassic = "snake"
	VariantTurbo   = "snake_turbo"
)

// DefaultSnakeConfig returns the default Snake configuration.
// It matches defaults/snake.yaml and is used when the embedded file cannot
// be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			CanvasSize: 400,
			CellSize:   20,
			CellWidth:  2,
		},
		Speed: SpeedConfig{
			IntervalMS:      150,
			MinIntervalMS:   150,
			RampEvery:       0,
			RampDecrementMS: 0,
		},
		Scoring: ScoringConfig{
			FoodPoints: 10,
		},
		Storage: StorageConfig{
			Namespace: "startpage",
		},
		Effects: EffectsConfig{
			BlinkCount:      6,
			BlinkIntervalMS: 200,
		},
		Variants: map[string]VariantOverrides{
			VariantTurbo: {
				Title: "Snake (Turbo)",
				Speed: &SpeedConfig{
					IntervalMS:      150,
					MinIntervalMS:   60,
					RampEvery:       50,
					RampDecrementMS: 10,
				},
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
