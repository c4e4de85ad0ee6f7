package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/startpage-snake/internal/config"
)

// startLength is the number of cells of a fresh snake.
const startLength = 3

// Settings are the rules of one session.
type Settings struct {
	GridSize   int
	FoodPoints int
	Speed      config.SpeedConfig
}

// SettingsFrom extracts session rules from a resolved config.
func SettingsFrom(cfg config.SnakeConfig) Settings {
	return Settings{
		GridSize:   cfg.Board.GridSize(),
		FoodPoints: cfg.Scoring.FoodPoints,
		Speed:      cfg.Speed,
	}
}

// Session is one snake run: the body, the food, the score and the
// direction, plus the lifecycle state. It has no notion of time; a caller
// invokes Tick whenever its scheduler says a tick is due.
type Session struct {
	settings Settings
	ramp     config.SpeedRamp
	rng      *rand.Rand
	high     *HighScoreStore

	status    Status
	snake     []Cell // head at index 0
	food      Cell
	committed Direction // applied on the last tick
	queued    Direction // applied on the next tick
	score     int
	interval  time.Duration
	ticks     uint64

	persistErr error
}

// NewSession creates an idle session. A nil high score store keeps the
// high score in memory.
func NewSession(settings Settings, rng *rand.Rand, high *HighScoreStore) *Session {
	if high == nil {
		high = &HighScoreStore{key: HighScoreKey("")}
	}
	s := &Session{
		settings: settings,
		ramp:     config.NewSpeedRamp(settings.Speed),
		rng:      rng,
		high:     high,
	}
	s.Reset()
	return s
}

// Reset restores the initial 3-cell snake, a zero score, the default
// direction and the base speed, and returns to Idle. The high score is kept.
func (s *Session) Reset() {
	n := s.settings.GridSize
	mid := n / 2

	s.snake = s.snake[:0]
	for i := range startLength {
		s.snake = append(s.snake, Cell{X: mid - i, Y: mid})
	}
	s.committed = DirRight
	s.queued = DirRight
	s.score = 0
	s.interval = s.ramp.Base()
	s.ticks = 0
	s.persistErr = nil
	s.status = StatusIdle
	s.placeFood()
}

// Start moves an idle session to Running.
func (s *Session) Start() bool {
	if s.status != StatusIdle {
		return false
	}
	s.status = StatusRunning
	return true
}

// Restart resets a session and starts it again.
func (s *Session) Restart() {
	s.Reset()
	s.Start()
}

// Pause freezes a running session.
func (s *Session) Pause() bool {
	if s.status != StatusRunning {
		return false
	}
	s.status = StatusPaused
	return true
}

// Resume continues a paused session.
func (s *Session) Resume() bool {
	if s.status != StatusPaused {
		return false
	}
	s.status = StatusRunning
	return true
}

// TogglePause switches between Running and Paused.
func (s *Session) TogglePause() bool {
	if s.status == StatusPaused {
		return s.Resume()
	}
	return s.Pause()
}

// Steer queues a direction for the next tick. It is ignored unless the
// session is running, and rejected when it reverses the committed direction.
// A later accepted call before the next tick overwrites the queued value.
func (s *Session) Steer(d Direction) bool {
	if s.status != StatusRunning {
		return false
	}
	if d == s.committed.Opposite() {
		return false
	}
	s.queued = d
	return true
}

// Tick advances a running session by one cell.
func (s *Session) Tick() Outcome {
	if s.status != StatusRunning {
		if s.status.Terminal() {
			return OutcomeTerminated
		}
		return OutcomeContinue
	}
	s.ticks++

	s.committed = s.queued
	head := s.snake[0].Step(s.committed)

	if !s.inBounds(head) || s.occupied(head) {
		s.status = StatusGameOver
		return OutcomeTerminated
	}

	s.snake = append(s.snake, Cell{})
	copy(s.snake[1:], s.snake)
	s.snake[0] = head

	if head != s.food {
		s.snake = s.snake[:len(s.snake)-1]
		return OutcomeContinue
	}

	prev := s.score
	s.score += s.settings.FoodPoints
	if _, err := s.high.Record(s.score); err != nil {
		s.persistErr = err
	}
	if s.ramp.Crossed(prev, s.score) {
		s.interval = s.ramp.IntervalFor(s.score)
	}

	if !s.placeFood() {
		s.status = StatusWon
		return OutcomeTerminated
	}
	return OutcomeContinue
}

// placeFood resamples uniformly random cells until one is free.
// It reports false when the snake covers the whole board.
func (s *Session) placeFood() bool {
	n := s.settings.GridSize
	if len(s.snake) >= n*n {
		s.food = Cell{X: -1, Y: -1}
		return false
	}
	for {
		c := Cell{X: s.rng.Intn(n), Y: s.rng.Intn(n)}
		if !s.occupied(c) {
			s.food = c
			return true
		}
	}
}

func (s *Session) inBounds(c Cell) bool {
	n := s.settings.GridSize
	return c.X >= 0 && c.X < n && c.Y >= 0 && c.Y < n
}

func (s *Session) occupied(c Cell) bool {
	for _, seg := range s.snake {
		if seg == c {
			return true
		}
	}
	return false
}

// Status returns the lifecycle state.
func (s *Session) Status() Status { return s.status }

// Snake returns a copy of the body, head first.
func (s *Session) Snake() []Cell {
	out := make([]Cell, len(s.snake))
	copy(out, s.snake)
	return out
}

// Len returns the number of body cells.
func (s *Session) Len() int { return len(s.snake) }

// Head returns the head cell.
func (s *Session) Head() Cell { return s.snake[0] }

// Food returns the food cell, or (-1,-1) when the board is full.
func (s *Session) Food() Cell { return s.food }

// Direction returns the committed direction.
func (s *Session) Direction() Direction { return s.committed }

// Queued returns the direction that the next tick will commit.
func (s *Session) Queued() Direction { return s.queued }

// Score returns the score of the current run.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score, including the current run.
func (s *Session) HighScore() int { return s.high.Best() }

// Interval returns the current tick interval.
func (s *Session) Interval() time.Duration { return s.interval }

// SpeedLevel returns the ramp progress in [0, 1].
func (s *Session) SpeedLevel() float64 { return s.ramp.Level(s.interval) }

// Ticks returns the number of ticks executed since the last reset.
func (s *Session) Ticks() uint64 { return s.ticks }

// GridSize returns the board side length.
func (s *Session) GridSize() int { return s.settings.GridSize }

// PersistError returns the last high-score write failure of this run.
func (s *Session) PersistError() error { return s.persistErr }
