package starfield

import (
	"math"
	"time"
)

// Viewport is the layout size of the drawing area and its device pixel ratio.
type Viewport struct {
	Width, Height float64
	Scale         float64
}

// Animator is the host-owned scheduler handle for a Field. The host calls
// Frame from its display loop; the animator decides whether a frame is
// committed and never schedules itself.
type Animator struct {
	field   *Field
	surface Surface
	clock   *FrameClock
	resize  *Debouncer[Viewport]

	viewport Viewport
	density  float64

	enabled bool
	visible bool
	stopped bool
	frames  uint64

	// committedAt and interval track unclamped wall time between
	// committed frames.
	committedAt time.Duration
	interval    time.Duration
}

// NewAnimator binds a field to the surface it draws on. A nil surface or
// field yields a disabled animator whose methods are no-ops.
func NewAnimator(field *Field, surface Surface) *Animator {
	a := &Animator{
		field:   field,
		surface: surface,
		clock:   NewFrameClock(),
		resize:  NewDebouncer[Viewport](ResizeQuiet),
		visible: true,
	}
	if field == nil || surface == nil {
		return a
	}
	a.enabled = true
	a.density = field.Density()
	return a
}

// Enabled reports whether the animator has a surface to draw on.
func (a *Animator) Enabled() bool { return a.enabled }

// Start sets the timing base and the start of the spawn frequency wave.
func (a *Animator) Start(now time.Duration) {
	if !a.enabled {
		return
	}
	a.clock.Reset(now)
	a.committedAt = now
	a.field.Begin(now)
}

// Resize schedules a debounced regeneration for a new viewport.
func (a *Animator) Resize(vp Viewport, now time.Duration) {
	if !a.enabled {
		return
	}
	if !(vp.Scale > 0) || math.IsInf(vp.Scale, 0) {
		vp.Scale = 1
	}
	a.resize.Request(vp, now)
}

// SetDensity schedules a debounced regeneration at a new density for the
// current viewport (or the one already pending).
func (a *Animator) SetDensity(density float64, now time.Duration) {
	if !a.enabled || density == a.density {
		return
	}
	a.density = density
	vp := a.viewport
	if a.resize.Pending() {
		vp = a.resize.value
	}
	a.resize.Request(vp, now)
}

// SetVisible suspends or resumes ticking. Resuming resets the timing base to
// now, so the first resumed frame sees no paused time. Repeated calls with
// the current state are ignored.
func (a *Animator) SetVisible(visible bool, now time.Duration) {
	if !a.enabled || a.stopped || visible == a.visible {
		return
	}
	a.visible = visible
	if visible {
		a.clock.Reset(now)
		a.committedAt = now
	}
}

// Visible reports whether the animator is ticking.
func (a *Animator) Visible() bool { return a.visible }

// Stop tears the animator down; later Frame calls do nothing.
func (a *Animator) Stop() {
	a.stopped = true
	a.resize.Cancel()
}

// Frame is the display-loop callback. It applies any settled resize and,
// when the frame clock commits a frame, advances and redraws the field.
// It returns the physics delta and whether a frame was committed.
func (a *Animator) Frame(now time.Duration, pulse Pulse) (time.Duration, bool) {
	if !a.enabled || a.stopped || !a.visible {
		return 0, false
	}
	if vp, ok := a.resize.Poll(now); ok {
		a.viewport = vp
		a.surface.Resize(vp.Width, vp.Height, vp.Scale)
		a.field.Reset(vp.Width, vp.Height, a.density)
	}

	dt, ok := a.clock.Tick(now)
	if !ok {
		return 0, false
	}
	a.interval = now - a.committedAt
	a.committedAt = now
	a.field.Advance(dt, now)
	a.field.Draw(a.surface, pulse)
	a.frames++
	return dt, true
}

// Interval reports the wall time between the last two committed frames.
// Unlike the physics delta it is not clamped, so stalls show in full.
// Time spent hidden is not counted.
func (a *Animator) Interval() time.Duration { return a.interval }

// Frames reports the number of committed frames.
func (a *Animator) Frames() uint64 { return a.frames }
