// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board    BoardConfig                 `yaml:"board"`
	Speed    SpeedConfig                 `yaml:"speed"`
	Scoring  ScoringConfig               `yaml:"scoring"`
	Storage  StorageConfig               `yaml:"storage"`
	Effects  EffectsConfig               `yaml:"effects"`
	Variants map[string]VariantOverrides `yaml:"variants,omitempty"`
}

// BoardConfig describes the render surface. The grid is CanvasSize/CellSize
// cells on each side.
type BoardConfig struct {
	CanvasSize int `yaml:"canvas_size"` // Logical canvas size in units
	CellSize   int `yaml:"cell_size"`   // Logical units per cell
	CellWidth  int `yaml:"cell_width"`  // Terminal columns per cell
}

// GridSize returns the number of cells per side.
func (b BoardConfig) GridSize() int {
	if b.CellSize <= 0 {
		return 0
	}
	return b.CanvasSize / b.CellSize
}

// SpeedConfig defines the tick interval and the score-driven speed ramp.
type SpeedConfig struct {
	IntervalMS      int `yaml:"interval_ms"`       // Starting tick interval
	MinIntervalMS   int `yaml:"min_interval_ms"`   // Floor for the ramp
	RampEvery       int `yaml:"ramp_every"`        // Score step that speeds up the game, 0 = off
	RampDecrementMS int `yaml:"ramp_decrement_ms"` // Interval reduction per step
}

// Interval returns the starting tick interval.
func (s SpeedConfig) Interval() time.Duration {
	return time.Duration(s.IntervalMS) * time.Millisecond
}

// MinInterval returns the interval floor.
func (s SpeedConfig) MinInterval() time.Duration {
	return time.Duration(s.MinIntervalMS) * time.Millisecond
}

// RampDecrement returns the interval reduction per ramp step.
func (s SpeedConfig) RampDecrement() time.Duration {
	return time.Duration(s.RampDecrementMS) * time.Millisecond
}

// RampEnabled reports whether the speed ramp is active.
func (s SpeedConfig) RampEnabled() bool {
	return s.RampEvery > 0 && s.RampDecrementMS > 0
}

// ScoringConfig defines scoring parameters.
type ScoringConfig struct {
	FoodPoints int `yaml:"food_points"`
}

// StorageConfig defines how persisted values are keyed.
type StorageConfig struct {
	Namespace string `yaml:"namespace"`
}

// EffectsConfig defines the game-over blink effect.
type EffectsConfig struct {
	BlinkCount      int `yaml:"blink_count"`
	BlinkIntervalMS int `yaml:"blink_interval_ms"`
}

// BlinkInterval returns the duration of one blink phase.
func (e EffectsConfig) BlinkInterval() time.Duration {
	return time.Duration(e.BlinkIntervalMS) * time.Millisecond
}

// VariantOverrides replaces whole sections of the base config for one
// registered game variant.
type VariantOverrides struct {
	Title   string         `yaml:"title,omitempty"`
	Speed   *SpeedConfig   `yaml:"speed,omitempty"`
	Scoring *ScoringConfig `yaml:"scoring,omitempty"`
}

// ForVariant returns the config with the overrides of the given variant
// applied. Unknown variants get the base config.
func (c SnakeConfig) ForVariant(id string) SnakeConfig {
	out := c
	out.Variants = nil

	v, ok := c.Variants[id]
	if !ok {
		return out
	}
	if v.Speed != nil {
		out.Speed = *v.Speed
	}
	if v.Scoring != nil {
		out.Scoring = *v.Scoring
	}
	return out
}

// Validation errors.
var (
	ErrInvalidBoard = errors.New("config: invalid board")
	ErrInvalidSpeed = errors.New("config: invalid speed")
	ErrInvalidScore = errors.New("config: invalid scoring")
)

// minGridSize leaves room for the three-cell starting snake and a food cell
// on either side of the center row.
const minGridSize = 5

// Validate checks that the config describes a playable game.
func (c SnakeConfig) Validate() error {
	b := c.Board
	if b.CanvasSize <= 0 || b.CellSize <= 0 {
		return fmt.Errorf("%w: canvas_size and cell_size must be positive", ErrInvalidBoard)
	}
	if b.CanvasSize%b.CellSize != 0 {
		return fmt.Errorf("%w: canvas_size %d is not a multiple of cell_size %d", ErrInvalidBoard, b.CanvasSize, b.CellSize)
	}
	if b.GridSize() < minGridSize {
		return fmt.Errorf("%w: grid of %d cells is smaller than %d", ErrInvalidBoard, b.GridSize(), minGridSize)
	}
	if b.CellWidth <= 0 {
		return fmt.Errorf("%w: cell_width must be positive", ErrInvalidBoard)
	}

	s := c.Speed
	if s.IntervalMS <= 0 {
		return fmt.Errorf("%w: interval_ms must be positive", ErrInvalidSpeed)
	}
	if s.RampEvery < 0 || s.RampDecrementMS < 0 {
		return fmt.Errorf("%w: ramp values must not be negative", ErrInvalidSpeed)
	}
	if s.RampEnabled() && (s.MinIntervalMS <= 0 || s.MinIntervalMS > s.IntervalMS) {
		return fmt.Errorf("%w: min_interval_ms %d must be in (0, %d]", ErrInvalidSpeed, s.MinIntervalMS, s.IntervalMS)
	}

	if c.Scoring.FoodPoints <= 0 {
		return fmt.Errorf("%w: food_points must be positive", ErrInvalidScore)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// intervalScale returns the interval multiplier for a preset in percent.
func intervalScale(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 130
	case DifficultyHard:
		return 70
	default:
		return 100
	}
}
