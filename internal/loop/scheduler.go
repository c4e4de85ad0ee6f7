// Package loop provides the cooperative fixed-interval scheduler that paces
// simulation ticks. The platform feeds it frame durations; it answers whether
// a tick is due. It never spawns goroutines or timers of its own.
package loop

import (
	"fmt"
	"time"
)

// State is the scheduling state of a Scheduler.
type State int

const (
	StateStopped State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Scheduler tracks progress toward the next tick of a recurring interval.
//
// At most one tick is reported per Advance call, so ticks never overlap or
// burst after a slow frame. Progress left over after a tick is carried into
// the next interval but capped below one full interval.
type Scheduler struct {
	interval time.Duration
	elapsed  time.Duration // progress toward the next tick
	state    State
	ticks    uint64

	// pauseOffset is the progress recorded when the schedule was paused.
	pauseOffset time.Duration
}

// New creates a stopped scheduler with the given interval.
func New(interval time.Duration) *Scheduler {
	return &Scheduler{interval: interval}
}

// Start arms the schedule from zero progress with the given interval.
// A non-positive interval keeps the current one.
func (s *Scheduler) Start(interval time.Duration) {
	if interval > 0 {
		s.interval = interval
	}
	s.elapsed = 0
	s.pauseOffset = 0
	s.state = StateRunning
}

// Stop cancels the schedule. No tick fires until Start is called again.
func (s *Scheduler) Stop() {
	s.state = StateStopped
	s.elapsed = 0
	s.pauseOffset = 0
}

// Pause cancels the pending tick and records how far the schedule had
// progressed toward it. Pausing a non-running schedule is a no-op.
func (s *Scheduler) Pause() {
	if s.state != StateRunning {
		return
	}
	s.pauseOffset = s.elapsed
	s.state = StatePaused
}

// Resume re-arms a paused schedule, restoring the recorded progress.
// Resuming a non-paused schedule is a no-op.
func (s *Scheduler) Resume() {
	if s.state != StatePaused {
		return
	}
	s.elapsed = min(s.pauseOffset, s.maxCarry())
	s.pauseOffset = 0
	s.state = StateRunning
}

// SetInterval changes the tick interval. Progress already made toward the
// next tick is kept, clamped so the next tick is not due immediately.
func (s *Scheduler) SetInterval(interval time.Duration) {
	if interval <= 0 || interval == s.interval {
		return
	}
	s.interval = interval
	s.elapsed = min(s.elapsed, s.maxCarry())
	s.pauseOffset = min(s.pauseOffset, s.maxCarry())
}

// Advance moves the schedule forward by dt and reports whether a tick is due.
func (s *Scheduler) Advance(dt time.Duration) bool {
	if s.state != StateRunning || dt <= 0 || s.interval <= 0 {
		return false
	}

	s.elapsed += dt
	if s.elapsed < s.interval {
		return false
	}

	s.elapsed = min(s.elapsed-s.interval, s.maxCarry())
	s.ticks++
	return true
}

// maxCarry is the most progress that may be carried into an interval.
func (s *Scheduler) maxCarry() time.Duration {
	if s.interval <= 1 {
		return 0
	}
	return s.interval - 1
}

// Interval returns the current tick interval.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Elapsed returns the progress toward the next tick. While paused it is the
// offset recorded at pause time.
func (s *Scheduler) Elapsed() time.Duration {
	if s.state == StatePaused {
		return s.pauseOffset
	}
	return s.elapsed
}

// State returns the scheduling state.
func (s *Scheduler) State() State {
	return s.state
}

// Running reports whether ticks are currently being scheduled.
func (s *Scheduler) Running() bool {
	return s.state == StateRunning
}

// Ticks returns how many ticks have fired since the scheduler was created.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}
