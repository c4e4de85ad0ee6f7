package snake

import "time"

// blinkEffect is the game-over flash: the body alternates between its
// normal colors and red, one phase per interval, for count phases.
type blinkEffect struct {
	count    int
	interval time.Duration
	elapsed  time.Duration
	active   bool
}

func newBlinkEffect(count int, interval time.Duration) blinkEffect {
	return blinkEffect{count: count, interval: interval}
}

// Start arms the effect from the beginning.
func (b *blinkEffect) Start() {
	b.elapsed = 0
	b.active = b.count > 0 && b.interval > 0
}

// Stop cancels the effect.
func (b *blinkEffect) Stop() {
	b.elapsed = 0
	b.active = false
}

// Advance moves the effect forward by dt.
func (b *blinkEffect) Advance(dt time.Duration) {
	if !b.active {
		return
	}
	b.elapsed += dt
	if b.elapsed >= time.Duration(b.count)*b.interval {
		b.active = false
	}
}

// Active reports whether the effect is still running.
func (b *blinkEffect) Active() bool {
	return b.active
}

// Red reports whether the body is drawn red right now. Phases that have
// fired alternate red, normal, red...
func (b *blinkEffect) Red() bool {
	if !b.active {
		return false
	}
	fired := int(b.elapsed / b.interval)
	return fired%2 == 1
}
