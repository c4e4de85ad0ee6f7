// snake is the start-page Snake game for the terminal.
//
// Usage:
//
//	snake                      - Start menu to pick a variant interactively
//	snake play [variant]       - Play a variant directly (default: snake)
//	snake list                 - List available variants
//	snake scores [variant]     - Show recorded runs for a variant
//	snake config [variant]     - Print the effective configuration
//	snake reset-highscore      - Forget the persisted high score
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible food placement
//	--db <path>           - Set database path (default: ~/.snake/scores.db)
//	--config <path>       - Use a custom YAML config
//	--difficulty <name>   - easy, normal, hard or fixed
//	--namespace <name>    - Override the high score namespace
//	--log-file <path>     - Write logs to a file
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/startpage-snake/internal/config"
	"github.com/vovakirdan/startpage-snake/internal/core"
	"github.com/vovakirdan/startpage-snake/internal/games/snake"
	"github.com/vovakirdan/startpage-snake/internal/platform/tui"
	"github.com/vovakirdan/startpage-snake/internal/registry"
	"github.com/vovakirdan/startpage-snake/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagNamespace  string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the start-page snake game in your terminal",
	Long: `Snake is the start-page snake game rendered in the terminal.

Steer with the arrow keys, WASD or hjkl. Eat food to grow and score;
running into a wall or into yourself ends the run. Your best score is
kept between sessions.

Available commands:
  play             - Play a variant directly
  menu             - Interactive variant picker (default)
  list             - Show all variants
  scores           - View recorded runs
  config           - Print the effective configuration
  reset-highscore  - Forget the persisted high score

Examples:
  snake
  snake play
  snake play snake_turbo --difficulty hard
  snake scores --limit 5
  snake config --config ./my-snake.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagNamespace, "namespace", "", "High score namespace (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(resetHighScoreCmd)
}

// newLogger builds the process logger. The alt screen owns stdout, so
// logs go to --log-file when set, otherwise to stderr at warn level.
func newLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "snake",
			Level:  log.WarnLevel,
		})
		return logger, func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           log.DebugLevel,
	})
	return logger, func() { _ = f.Close() }, nil
}

// runtimeConfig returns the platform config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// runSeed returns the seed for the next run: --seed when given, otherwise
// a fresh time-based seed so consecutive runs differ.
func runSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// backend holds the persistence used by one CLI invocation. When the
// database cannot be opened, high scores live in memory for the process
// and finished runs are not recorded.
type backend struct {
	store  *storage.Store
	kv     core.KeyValueStore
	logger *log.Logger
}

func openBackend(logger *log.Logger) *backend {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores database unavailable, keeping scores in memory", "path", flagDBPath, "err", err)
		return &backend{kv: storage.NewMemoryKV(), logger: logger}
	}
	return &backend{store: store, kv: store, logger: logger}
}

func (b *backend) Close() {
	if b.store == nil {
		return
	}
	if err := b.store.Close(); err != nil {
		b.logger.Warn("closing scores database", "err", err)
	}
}

// recorder returns the score sink, nil without a database.
func (b *backend) recorder() tui.ScoreRecorder {
	if b.store == nil {
		return nil
	}
	return b.store
}

// reader returns the score source, nil without a database.
func (b *backend) reader() tui.ScoreReader {
	if b.store == nil {
		return nil
	}
	return b.store
}

// best returns the best recorded run of a variant.
func (b *backend) best(gameID string) int {
	if b.store == nil {
		return 0
	}
	high, err := b.store.HighScore(gameID)
	if err != nil {
		b.logger.Debug("reading best score", "game", gameID, "err", err)
		return 0
	}
	return high
}

// record returns the persisted high score of the configured namespace.
func (b *backend) record() tui.Record {
	cfg, err := effectiveConfig(config.VariantClassic)
	if err != nil {
		return tui.Record{}
	}
	rec := tui.Record{Namespace: cfg.Storage.Namespace}
	score, ok, err := b.kv.GetInt(snake.HighScoreKey(rec.Namespace))
	if err != nil {
		b.logger.Debug("reading high score", "namespace", rec.Namespace, "err", err)
		return rec
	}
	if ok {
		rec.Score = score
	}
	return rec
}

// newGame creates a variant. A high score that cannot be read is replaced
// by an in-memory one so the game stays playable.
func (b *backend) newGame(gameID, difficulty string) (registry.Game, error) {
	opts := registry.Options{
		ConfigPath: flagConfig,
		Difficulty: difficulty,
		Namespace:  flagNamespace,
		KV:         b.kv,
	}

	game, err := registry.Create(gameID, opts)
	if errors.Is(err, snake.ErrHighScoreUnavailable) {
		b.logger.Warn("high score unavailable, keeping it in memory", "err", err)
		b.kv = storage.NewMemoryKV()
		opts.KV = b.kv
		return registry.Create(gameID, opts)
	}
	return game, err
}

// withBackend runs fn with a logger and an open backend and releases both.
func withBackend(fn func(b *backend) error) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	b := openBackend(logger)
	defer b.Close()

	return fn(b)
}
