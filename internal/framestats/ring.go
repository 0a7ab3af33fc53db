// Package framestats keeps a short history of committed frame deltas for
// the debug overlay.
package framestats

import "time"

// Ring records the last N frame deltas.
type Ring struct {
	buffer    []time.Duration
	nextIndex int
	filled    bool
}

// NewRing returns a ring holding size deltas.
func NewRing(size int) *Ring {
	return &Ring{buffer: make([]time.Duration, max(size, 1))}
}

// Record appends the wall time of one committed frame.
func (r *Ring) Record(dt time.Duration) {
	r.buffer[r.nextIndex] = dt
	r.nextIndex++
	if r.nextIndex >= len(r.buffer) {
		r.nextIndex = 0
		r.filled = true
	}
}

// Len reports how many deltas are held.
func (r *Ring) Len() int {
	if r.filled {
		return len(r.buffer)
	}
	return r.nextIndex
}

// Snapshot returns up to the last n deltas, oldest first.
func (r *Ring) Snapshot(n int) []time.Duration {
	n = min(n, r.Len())
	out := make([]time.Duration, n)
	// Walk backwards from nextIndex - 1
	idx := r.nextIndex - 1
	for i := n - 1; i >= 0; i-- {
		if idx < 0 {
			idx = len(r.buffer) - 1
		}
		out[i] = r.buffer[idx]
		idx--
	}
	return out
}

// FPS is the mean frame rate over the held deltas; zero when empty.
func (r *Ring) FPS() float64 {
	var sum time.Duration
	n := r.Len()
	for _, dt := range r.Snapshot(n) {
		sum += dt
	}
	if n == 0 || sum <= 0 {
		return 0
	}
	return float64(n) / sum.Seconds()
}

// Worst is the longest delta held.
func (r *Ring) Worst() time.Duration {
	var worst time.Duration
	for _, dt := range r.Snapshot(r.Len()) {
		worst = max(worst, dt)
	}
	return worst
}
