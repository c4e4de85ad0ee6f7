package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	def := DefaultSnakeConfig()
	if cfg.Board != def.Board {
		t.Errorf("Board = %+v, expected %+v", cfg.Board, def.Board)
	}
	if cfg.Speed != def.Speed {
		t.Errorf("Speed = %+v, expected %+v", cfg.Speed, def.Speed)
	}
	if cfg.Scoring != def.Scoring || cfg.Storage != def.Storage || cfg.Effects != def.Effects {
		t.Error("scoring, storage or effects differ from hardcoded defaults")
	}

	turbo, ok := cfg.Variants[VariantTurbo]
	if !ok || turbo.Speed == nil {
		t.Fatal("embedded defaults should define the turbo variant speed")
	}
	if *turbo.Speed != *def.Variants[VariantTurbo].Speed {
		t.Errorf("turbo speed = %+v, expected %+v", *turbo.Speed, *def.Variants[VariantTurbo].Speed)
	}
}

func TestGridSize(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if got := cfg.Board.GridSize(); got != 20 {
		t.Errorf("GridSize() = %d, expected 20", got)
	}
	if got := (BoardConfig{CanvasSize: 100}).GridSize(); got != 0 {
		t.Errorf("GridSize() with zero cell size = %d, expected 0", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		want   error
	}{
		{"defaults", func(*SnakeConfig) {}, nil},
		{"zero cell size", func(c *SnakeConfig) { c.Board.CellSize = 0 }, ErrInvalidBoard},
		{"canvas not multiple", func(c *SnakeConfig) { c.Board.CanvasSize = 410 }, ErrInvalidBoard},
		{"grid too small", func(c *SnakeConfig) { c.Board.CanvasSize = 80 }, ErrInvalidBoard},
		{"zero cell width", func(c *SnakeConfig) { c.Board.CellWidth = 0 }, ErrInvalidBoard},
		{"zero interval", func(c *SnakeConfig) { c.Speed.IntervalMS = 0 }, ErrInvalidSpeed},
		{"negative ramp", func(c *SnakeConfig) { c.Speed.RampEvery = -1 }, ErrInvalidSpeed},
		{"floor above interval", func(c *SnakeConfig) {
			c.Speed.RampEvery = 50
			c.Speed.RampDecrementMS = 10
			c.Speed.MinIntervalMS = 200
		}, ErrInvalidSpeed},
		{"zero food points", func(c *SnakeConfig) { c.Scoring.FoodPoints = 0 }, ErrInvalidScore},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestForVariant(t *testing.T) {
	cfg := DefaultSnakeConfig()

	classic := cfg.ForVariant(VariantClassic)
	if classic.Speed.RampEvery != 0 {
		t.Errorf("classic RampEvery = %d, expected 0", classic.Speed.RampEvery)
	}

	turbo := cfg.ForVariant(VariantTurbo)
	if turbo.Speed.RampEvery != 50 || turbo.Speed.MinIntervalMS != 60 {
		t.Errorf("turbo speed = %+v, expected ramp every 50 down to 60ms", turbo.Speed)
	}
	if turbo.Scoring != cfg.Scoring {
		t.Error("turbo should inherit base scoring")
	}
	if turbo.Variants != nil {
		t.Error("resolved variant config should not carry the variants map")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplySnakePreset(t *testing.T) {
	base := DefaultSnakeConfig().ForVariant(VariantTurbo)

	easy := base
	ApplySnakePreset(&easy, DifficultyEasy)
	if easy.Speed.IntervalMS != 195 || easy.Speed.MinIntervalMS != 78 {
		t.Errorf("easy speed = %+v, expected 195ms down to 78ms", easy.Speed)
	}

	hard := base
	ApplySnakePreset(&hard, DifficultyHard)
	if hard.Speed.IntervalMS != 105 || hard.Speed.MinIntervalMS != 42 {
		t.Errorf("hard speed = %+v, expected 105ms down to 42ms", hard.Speed)
	}

	fixed := base
	ApplySnakePreset(&fixed, DifficultyFixed)
	if fixed.Speed.RampEnabled() {
		t.Error("fixed preset should disable the ramp")
	}
	if err := fixed.Validate(); err != nil {
		t.Errorf("fixed preset config invalid: %v", err)
	}

	normal := base
	ApplySnakePreset(&normal, DifficultyNormal)
	if normal.Speed != base.Speed {
		t.Error("normal preset should not change speed")
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	data := []byte("scoring:\n  food_points: 5\nstorage:\n  namespace: home\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Scoring.FoodPoints != 5 {
		t.Errorf("FoodPoints = %d, expected 5", cfg.Scoring.FoodPoints)
	}
	if cfg.Storage.Namespace != "home" {
		t.Errorf("Namespace = %q, expected home", cfg.Storage.Namespace)
	}
	// Untouched keys keep their defaults.
	if cfg.Board.GridSize() != 20 {
		t.Errorf("GridSize() = %d, expected default 20", cfg.Board.GridSize())
	}
}

func TestLoadSnakeErrors(t *testing.T) {
	if _, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadSnake() with missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board:\n  cell_size: 7\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	_, err := LoadSnake(path)
	if !errors.Is(err, ErrInvalidBoard) {
		t.Errorf("LoadSnake() = %v, expected ErrInvalidBoard", err)
	}
}

func TestResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, DefaultYAML(), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Resolve(path, VariantTurbo, DifficultyFixed)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if cfg.Speed.Interval() != 150*time.Millisecond {
		t.Errorf("Interval() = %v, expected 150ms", cfg.Speed.Interval())
	}
	if cfg.Speed.RampEnabled() {
		t.Error("fixed preset should disable the turbo ramp")
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	data, err := Marshal(DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if _, err := Parse(data); err != nil {
		t.Errorf("Parse(Marshal(defaults)) failed: %v", err)
	}
}

func TestSpeedRampCrossedAndIntervalFor(t *testing.T) {
	ramp := NewSpeedRamp(SpeedConfig{
		IntervalMS:      150,
		MinIntervalMS:   60,
		RampEvery:       50,
		RampDecrementMS: 10,
	})

	crossings := []struct {
		prev, next int
		want       bool
	}{
		{0, 10, false},
		{40, 50, true},
		{50, 60, false},
		{90, 110, true},
		{30, 130, true},
	}
	for _, c := range crossings {
		if got := ramp.Crossed(c.prev, c.next); got != c.want {
			t.Errorf("Crossed(%d, %d) = %v, expected %v", c.prev, c.next, got, c.want)
		}
	}

	intervals := []struct {
		score int
		want  time.Duration
	}{
		{0, 150 * time.Millisecond},
		{49, 150 * time.Millisecond},
		{50, 140 * time.Millisecond},
		{130, 130 * time.Millisecond},
		{450, 60 * time.Millisecond},
		{5000, 60 * time.Millisecond},
	}
	for _, c := range intervals {
		if got := ramp.IntervalFor(c.score); got != c.want {
			t.Errorf("IntervalFor(%d) = %v, expected %v", c.score, got, c.want)
		}
	}
}

func TestSpeedRampDisabled(t *testing.T) {
	ramp := NewSpeedRamp(DefaultSnakeConfig().Speed)
	if ramp.Crossed(0, 1000) {
		t.Error("a constant speed should never cross a threshold")
	}
	if got := ramp.IntervalFor(1000); got != 150*time.Millisecond {
		t.Errorf("IntervalFor(1000) = %v, expected 150ms", got)
	}
}
