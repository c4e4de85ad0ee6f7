package config

import "time"

// SpeedRamp calculates the tick interval for a score.
//
// Every time the score crosses a multiple of RampEvery the interval shrinks
// by RampDecrement, never going below MinInterval.
type SpeedRamp struct {
	cfg SpeedConfig
}

// NewSpeedRamp creates a speed ramp for the given speed settings.
func NewSpeedRamp(cfg SpeedConfig) SpeedRamp {
	return SpeedRamp{cfg: cfg}
}

// IsEnabled returns whether the ramp ever changes the interval.
func (r SpeedRamp) IsEnabled() bool {
	return r.cfg.RampEnabled() && r.cfg.MinIntervalMS < r.cfg.IntervalMS
}

// Base returns the starting interval.
func (r SpeedRamp) Base() time.Duration {
	return r.cfg.Interval()
}

// Steps returns how many ramp thresholds the score has crossed.
func (r SpeedRamp) Steps(score int) int {
	if !r.IsEnabled() || score <= 0 {
		return 0
	}
	return score / r.cfg.RampEvery
}

// Crossed reports whether going from prev to next crosses a threshold.
func (r SpeedRamp) Crossed(prev, next int) bool {
	return r.Steps(next) > r.Steps(prev)
}

// Next shortens current by one decrement, clamped to the floor. It returns
// current unchanged when it is already at or below the floor.
func (r SpeedRamp) Next(current time.Duration) time.Duration {
	if !r.IsEnabled() {
		return current
	}
	floor := r.cfg.MinInterval()
	if current <= floor {
		return current
	}
	return max(current-r.cfg.RampDecrement(), floor)
}

// IntervalFor returns the interval a run reaches at the given score.
func (r SpeedRamp) IntervalFor(score int) time.Duration {
	interval := r.Base()
	for range r.Steps(score) {
		next := r.Next(interval)
		if next == interval {
			break
		}
		interval = next
	}
	return interval
}

// Level returns the ramp progress in [0, 1]: 0 at the base interval and 1
// at the floor. Used for the HUD speed gauge.
func (r SpeedRamp) Level(current time.Duration) float64 {
	if !r.IsEnabled() {
		return 0
	}
	span := r.Base() - r.cfg.MinInterval()
	done := r.Base() - current
	return clampF(float64(done)/float64(span), 0.0, 1.0)
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return max(lo, min(hi, val))
}
