package snake

import "time"

// Snapshot captures the observable game state for determinism testing and
// logging.
type Snapshot struct {
	Frame     uint64
	Tick      uint64
	Status    Status
	Score     int
	HighScore int
	SnakeLen  int
	Head      Cell
	Dir       Direction
	Queued    Direction
	Food      Cell
	Interval  time.Duration
	Blinking  bool
	TooSmall  bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	return Snapshot{
		Frame:     g.frames,
		Tick:      s.Ticks(),
		Status:    s.Status(),
		Score:     s.Score(),
		HighScore: s.HighScore(),
		SnakeLen:  s.Len(),
		Head:      s.Head(),
		Dir:       s.Direction(),
		Queued:    s.Queued(),
		Food:      s.Food(),
		Interval:  s.Interval(),
		Blinking:  g.blink.Active(),
		TooSmall:  g.tooSmall,
	}
}
