package snake

import "fmt"

// Cell is an integer coordinate on the N×N board.
type Cell struct {
	X, Y int
}

// Step returns the neighboring cell in direction d.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Vector()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction represents the snake's movement direction.
// The zero value is DirRight, the direction every run starts with.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Vector returns the unit step for the direction. Y grows downwards.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Opposite returns the 180° reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Status is the lifecycle state of a session.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusGameOver
	StatusWon // the snake filled the board and no food cell is left
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	case StatusWon:
		return "won"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Terminal reports whether the run has ended.
func (s Status) Terminal() bool {
	return s == StatusGameOver || s == StatusWon
}

// Outcome is the externally observable result of a tick.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeTerminated
)

func (o Outcome) String() string {
	if o == OutcomeTerminated {
		return "terminated"
	}
	return "continue"
}
