// Package snake implements the start-page Snake game: a pure session state
// machine, a fixed-interval tick schedule and a raster projection of the
// board. The Game type adapts all three to the platform's registry.Game.
package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/startpage-snake/internal/config"
	"github.com/vovakirdan/startpage-snake/internal/core"
	"github.com/vovakirdan/startpage-snake/internal/loop"
	"github.com/vovakirdan/startpage-snake/internal/registry"
)

// Game drives a Session from platform frames.
type Game struct {
	id    string
	title string
	cfg   config.SnakeConfig
	high  *HighScoreStore

	rng     *rand.Rand
	session *Session
	sched   *loop.Scheduler
	blink   blinkEffect
	frame   time.Duration
	frames  uint64

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

func init() {
	register(config.VariantClassic, "Snake")
	register(config.VariantTurbo, "Snake (Turbo)")
}

func register(id, fallbackTitle string) {
	title := fallbackTitle
	if v, ok := config.DefaultSnakeConfig().Variants[id]; ok && v.Title != "" {
		title = v.Title
	}
	registry.Register(id, title, func(opts registry.Options) (registry.Game, error) {
		return New(id, title, opts)
	})
}

// New resolves the configuration of variant id and creates the game.
// The game is not playable until Reset is called.
func New(id, title string, opts registry.Options) (*Game, error) {
	preset, err := config.ParsePreset(opts.Difficulty)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Resolve(opts.ConfigPath, id, preset)
	if err != nil {
		return nil, err
	}
	if opts.Namespace != "" {
		cfg.Storage.Namespace = opts.Namespace
	}

	high, err := NewHighScoreStore(opts.KV, cfg.Storage.Namespace)
	if err != nil {
		return nil, err
	}

	return NewWithConfig(id, title, cfg, high), nil
}

// NewWithConfig creates a game from an already resolved configuration.
func NewWithConfig(id, title string, cfg config.SnakeConfig, high *HighScoreStore) *Game {
	if high == nil {
		high = &HighScoreStore{key: HighScoreKey(cfg.Storage.Namespace)}
	}
	return &Game{
		id:    id,
		title: title,
		cfg:   cfg,
		high:  high,
		blink: newBlinkEffect(cfg.Effects.BlinkCount, cfg.Effects.BlinkInterval()),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes the game for a new screen and seed. The high score
// carries over.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.frame = cfg.FrameDuration()
	g.frames = 0

	g.session = NewSession(SettingsFrom(g.cfg), g.rng, g.high)
	g.sched = loop.New(g.session.Interval())
	g.blink.Stop()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout to a new screen size without touching the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	bw, bh := g.boardSize()
	g.tooSmall = w < bw || h < hudHeight+bh
}

// Step handles the frame's input and runs at most one simulation tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frames++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions() {
		g.handle(a)
	}

	ticks := 0
	if g.sched.Advance(g.frame) {
		ticks = 1
		if g.session.Tick() == OutcomeTerminated {
			g.sched.Stop()
			g.blink.Start()
		} else if g.session.Interval() != g.sched.Interval() {
			g.sched.SetInterval(g.session.Interval())
		}
	} else {
		g.blink.Advance(g.frame)
	}

	return core.StepResult{State: g.State(), Ticks: ticks}
}

// handle maps one semantic action onto the session and the schedule.
func (g *Game) handle(a core.Action) {
	status := g.session.Status()

	if a.IsDirection() {
		g.session.Steer(directionOf(a))
		return
	}

	switch a {
	case core.ActionStart:
		g.start()

	case core.ActionPause:
		g.togglePause()

	case core.ActionPrimary:
		switch {
		case status == StatusIdle:
			g.start()
		case status.Terminal():
			g.replay()
		default:
			g.togglePause()
		}

	case core.ActionRestart:
		if status.Terminal() {
			g.replay()
		} else if status != StatusIdle {
			g.session.Reset()
			g.sched.Stop()
		}
	}
}

// directionOf maps a steering action to a board direction.
func directionOf(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	default:
		return DirRight
	}
}

func (g *Game) start() {
	if g.session.Start() {
		g.sched.Start(g.session.Interval())
	}
}

func (g *Game) togglePause() {
	switch g.session.Status() {
	case StatusRunning:
		g.session.Pause()
		g.sched.Pause()
	case StatusPaused:
		g.session.Resume()
		g.sched.Resume()
	}
}

// replay starts a fresh run once the game-over effect has finished.
func (g *Game) replay() {
	if !g.ReplayReady() {
		return
	}
	g.session.Restart()
	g.sched.Start(g.session.Interval())
}

// ReplayReady reports whether a finished run accepts the replay command.
func (g *Game) ReplayReady() bool {
	return g.session.Status().Terminal() && !g.blink.Active()
}

// Session exposes the underlying run.
func (g *Game) Session() *Session {
	return g.session
}

// Config returns the resolved configuration.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	return core.GameState{
		Score:     s.Score(),
		HighScore: s.HighScore(),
		Started:   s.Status() != StatusIdle,
		GameOver:  s.Status().Terminal(),
		Paused:    s.Status() == StatusPaused,
	}
}

// PersistError returns the last failed high-score write of the current run.
func (g *Game) PersistError() error {
	return g.session.PersistError()
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.session
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Frame: %d, Tick: %d, Status: %s\n", g.frames, s.Ticks(), s.Status()))
	b.WriteString(fmt.Sprintf("Score: %d, High: %d, Interval: %v\n", s.Score(), s.HighScore(), s.Interval()))
	b.WriteString(fmt.Sprintf("Snake len: %d, Direction: %s, Queued: %s\n", s.Len(), s.Direction(), s.Queued()))
	b.WriteString(fmt.Sprintf("Head: %s, Food: %s\n", s.Head(), s.Food()))
	b.WriteString(fmt.Sprintf("Schedule: %s, elapsed %v\n", g.sched.State(), g.sched.Elapsed()))
	return b.String()
}
