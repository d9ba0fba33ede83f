package game

import "time"

// Timer turns elapsed frame time into game ticks.
type Timer struct {
	interval time.Duration
	elapsed  time.Duration
	stopped  bool
}

func NewTimer(interval time.Duration) *Timer {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &Timer{interval: interval}
}

// Advance adds dt and returns how many ticks are due.
func (t *Timer) Advance(dt time.Duration) int {
	if t.stopped || dt <= 0 {
		return 0
	}
	t.elapsed += dt
	n := int(t.elapsed / t.interval)
	t.elapsed -= time.Duration(n) * t.interval
	return n
}

// Stop is permanent.
func (t *Timer) Stop() {
	t.stopped = true
	t.elapsed = 0
}

func (t *Timer) Stopped() bool { return t.stopped }
