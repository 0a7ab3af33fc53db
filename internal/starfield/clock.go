package starfield

import "time"

// FrameClock paces a free-running callback down to a fixed frame rate.
// A frame is committed only once more than one interval has elapsed; the
// overshoot is carried into the next boundary so the long-run rate stays
// on target under jitter.
type FrameClock struct {
	interval time.Duration
	maxDelta time.Duration
	then     time.Duration
}

// NewFrameClock returns a clock targeting FrameInterval with deltas capped
// at MaxDelta.
func NewFrameClock() *FrameClock {
	return &FrameClock{interval: FrameInterval, maxDelta: MaxDelta}
}

// Reset moves the timing base to now, discarding any accrued time.
func (c *FrameClock) Reset(now time.Duration) {
	c.then = now
}

// Tick reports whether a frame should be committed at now and, if so, the
// clamped physics delta for it.
func (c *FrameClock) Tick(now time.Duration) (time.Duration, bool) {
	elapsed := now - c.then
	if elapsed <= c.interval {
		return 0, false
	}
	c.then = now - elapsed%c.interval
	return min(elapsed, c.maxDelta), true
}
