package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/startpage-snake/internal/core"
	"github.com/vovakirdan/startpage-snake/internal/registry"
)

// ScoreRecorder persists finished runs for the scoreboard.
type ScoreRecorder interface {
	SaveScore(gameID, sessionID string, score int) (int64, error)
}

// persistReporter is implemented by games that surface failed high-score
// writes instead of stopping play.
type persistReporter interface {
	PersistError() error
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	scores     ScoreRecorder
	logger     *log.Logger
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	runID      string // uuid of the current run, stored with its score
	quitting   bool
	back       bool
	scoreSaved bool // Whether score has been saved for current game over
	warned     bool // Whether a persist failure was logged for this run
}

// NewModel creates a new Bubble Tea model for the given game.
// scores and logger may be nil.
func NewModel(game registry.Game, scores ScoreRecorder, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		scores:     scores,
		logger:     logger,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.FrameDuration())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Keys only land in the input frame;
// the game consumes it on the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.back = true
		return m, tea.Quit
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events. Games that can resize in
// place keep their run; others are reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick runs one platform frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	m.trackRun(result.State)
	m.gameState = result.State

	return m, tickCmd(m.config.FrameDuration())
}

// trackRun assigns session ids to runs, saves finished runs once and logs
// high-score persistence failures.
func (m *Model) trackRun(next core.GameState) {
	prev := m.gameState
	id := m.game.ID()

	switch {
	case next.Started && !next.GameOver && (!prev.Started || prev.GameOver):
		m.runID = uuid.NewString()
		m.scoreSaved = false
		m.warned = false
		m.logger.Info("run started", "game", id, "session", m.runID)

	case next.GameOver && !m.scoreSaved:
		m.scoreSaved = true
		m.logger.Info("game over",
			"game", id,
			"score", next.Score,
			"high_score", next.HighScore,
			"session", m.runID,
		)
		if m.scores != nil && next.Score > 0 {
			if _, err := m.scores.SaveScore(id, m.runID, next.Score); err != nil {
				m.logger.Error("cannot save score", "game", id, "err", err)
			}
		}
	}

	if pr, ok := m.game.(persistReporter); ok && !m.warned {
		if err := pr.PersistError(); err != nil {
			m.warned = true
			m.logger.Warn("high score not persisted, keeping it in memory", "err", err)
		}
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// WantsBack reports whether the user left the game for the menu.
func (m Model) WantsBack() bool {
	return m.back
}

// RunID returns the session id of the current run, empty before the first start.
func (m Model) RunID() string {
	return m.runID
}

// Config returns the runtime config, including the latest screen size.
func (m Model) Config() core.RuntimeConfig {
	return m.config
}

// RunResult describes how a game screen was left.
type RunResult struct {
	Back   bool
	Config core.RuntimeConfig
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, scores ScoreRecorder, logger *log.Logger, cfg core.RuntimeConfig) (RunResult, error) {
	model := NewModel(game, scores, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return RunResult{Config: cfg}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return RunResult{Config: cfg}, nil
	}
	return RunResult{Back: m.WantsBack(), Config: m.Config()}, nil
}
