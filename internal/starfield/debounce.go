package starfield

import "time"

// ResizeQuiet is how long resize requests must stop arriving before the
// field is regenerated.
const ResizeQuiet = 200 * time.Millisecond

// Debouncer coalesces bursts of requests into the last one. It is polled
// from the frame loop instead of running its own timer.
type Debouncer[T any] struct {
	quiet    time.Duration
	value    T
	deadline time.Duration
	pending  bool
}

// NewDebouncer returns a debouncer with the given quiet period.
func NewDebouncer[T any](quiet time.Duration) *Debouncer[T] {
	return &Debouncer[T]{quiet: quiet}
}

// Request supersedes any pending value and restarts the quiet period.
func (d *Debouncer[T]) Request(v T, now time.Duration) {
	d.value = v
	d.deadline = now + d.quiet
	d.pending = true
}

// Poll returns the pending value once the quiet period has passed.
func (d *Debouncer[T]) Poll(now time.Duration) (T, bool) {
	var zero T
	if !d.pending || now < d.deadline {
		return zero, false
	}
	d.pending = false
	v := d.value
	d.value = zero
	return v, true
}

// Pending reports whether a request is waiting.
func (d *Debouncer[T]) Pending() bool { return d.pending }

// Cancel drops any pending request.
func (d *Debouncer[T]) Cancel() {
	var zero T
	d.pending = false
	d.value = zero
}
