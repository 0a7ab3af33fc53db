package starfield

import (
	"image/color"
	"math"
	"time"
)

const (
	// FrameInterval is the target spacing of committed frames (60 FPS).
	FrameInterval = time.Second / 60
	// MaxDelta caps the physics step after a stall.
	MaxDelta = 32 * time.Millisecond

	// MaxStreaks is the number of shooting stars allowed on screen at once.
	MaxStreaks = 5
	// MaxStars caps the population of a single Reset.
	MaxStars = 100_000

	areaPerStar     = 800.0
	referenceFrame  = 16.0 // ms; streak speeds are calibrated against it
	boundsPadding   = 50.0
	resampleChance  = 0.0001
	maxTrailPixels  = 50
	trailMinOpacity = 0.1
	trailFadePower  = 1.2
)

// Options configure a Field. Start from DefaultOptions.
type Options struct {
	// Density is stars per 800 square units of viewport.
	Density float64
	// StreakFrequency is the baseline spawn probability per 16ms frame.
	StreakFrequency float64
	// Background is painted under the particles; zero alpha leaves the
	// surface transparent.
	Background color.NRGBA
	// Opacity is the global multiplier in [0,1].
	Opacity float64
}

// DefaultOptions returns the stock field configuration.
func DefaultOptions() Options {
	return Options{
		Density:         0.2,
		StreakFrequency: 0.005,
		Opacity:         1,
	}
}

// Field owns the ambient stars and the shooting stars and steps them once
// per committed frame. It is not safe for concurrent use.
type Field struct {
	opts Options
	rng  Source

	width, height float64
	opacity       float64
	startedAt     time.Duration

	stars   []Star
	streaks []Streak

	// OnSpawn, when set, is called with every new streak.
	OnSpawn func(Streak)

	stops [3]GradientStop
}

// NewField creates an empty field. A nil rng uses NewSource.
func NewField(opts Options, rng Source) *Field {
	if rng == nil {
		rng = NewSource()
	}
	f := &Field{opts: opts, rng: rng}
	f.SetOpacity(opts.Opacity)
	return f
}

// Begin marks the start of the simulation; the streak frequency wave is
// measured from here.
func (f *Field) Begin(now time.Duration) {
	f.startedAt = now
}

// SetOpacity sets the global opacity multiplier, clamped to [0,1].
func (f *Field) SetOpacity(v float64) {
	f.opacity = clamp(v, 0, 1)
}

// Opacity reports the global opacity multiplier.
func (f *Field) Opacity() float64 { return f.opacity }

// SetStreakFrequency changes the spawn baseline. Negative values disable spawning.
func (f *Field) SetStreakFrequency(p float64) {
	f.opts.StreakFrequency = math.Max(p, 0)
}

// Density reports the density used by the last Reset.
func (f *Field) Density() float64 { return f.opts.Density }

// Size reports the current viewport size in layout units.
func (f *Field) Size() (width, height float64) { return f.width, f.height }

// Reset regenerates the star population for a viewport of the given size.
// The count is capped at MaxStars. Shooting stars already in flight are
// kept.
func (f *Field) Reset(width, height, density float64) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		width, height = 0, 0
	}
	if !(density >= 0) || math.IsInf(density, 0) {
		density = 0
	}
	f.width, f.height = width, height
	f.opts.Density = density

	count := math.Floor(width * height * density / areaPerStar)
	if !(count < MaxStars) {
		count = MaxStars
	}
	stars := make([]Star, int(count))
	for i := range stars {
		stars[i] = Star{
			X:          f.rng.Float64() * width,
			Y:          f.rng.Float64() * height,
			Size:       uniform(f.rng, 0.2, 1.6),
			Opacity:    f.rng.Float64(),
			Speed:      f.twinkleSpeed(),
			MaxOpacity: uniform(f.rng, 0.7, 1.0),
			Phase:      f.rng.Float64() * 2 * math.Pi,
			Amplitude:  uniform(f.rng, 0.3, 0.5),
		}
	}
	f.stars = stars
}

func (f *Field) twinkleSpeed() float64 {
	speed := uniform(f.rng, 0.001, 0.003)
	if f.rng.Float64() > 0.5 {
		return speed
	}
	return -speed
}

// Advance steps the simulation by dt. dt is clamped to MaxDelta before any
// physics runs; now is the host clock used for the spawn frequency wave.
func (f *Field) Advance(dt, now time.Duration) {
	dt = min(max(dt, 0), MaxDelta)
	ms := float64(dt) / float64(time.Millisecond)

	f.twinkle(ms)
	f.moveStreaks(ms)

	elapsed := (now - f.startedAt).Seconds()
	wave := math.Sin(elapsed/10)*0.2 + 1
	if f.rng.Float64() < f.opts.StreakFrequency*wave*(ms/referenceFrame)*f.opacity {
		f.Spawn()
	}
}

func (f *Field) twinkle(ms float64) {
	for i := range f.stars {
		s := &f.stars[i]
		s.Phase += s.Speed * ms
		s.Opacity = clamp(s.MaxOpacity*(0.5+s.Amplitude*math.Sin(s.Phase)), 0, s.MaxOpacity)

		if f.rng.Float64() < resampleChance {
			s.Speed = f.twinkleSpeed()
			s.Amplitude = uniform(f.rng, 0.3, 0.5)
		}
	}
}

func (f *Field) moveStreaks(ms float64) {
	step := ms / referenceFrame
	kept := f.streaks[:0]
	for _, s := range f.streaks {
		dx := math.Cos(s.Angle) * s.Speed * step
		dy := math.Sin(s.Angle) * s.Speed * step
		s.X += dx
		s.Y += dy
		s.TailX += dx
		s.TailY += dy
		s.Opacity -= s.FadeSpeed * step

		if f.outside(s.X, s.Y) || s.Opacity <= 0 {
			continue
		}
		if s.Opacity > trailMinOpacity {
			s.Trail = f.buildTrail(&s, s.Trail[:0])
		}
		kept = append(kept, s)
	}
	clear(f.streaks[len(kept):])
	f.streaks = kept
}

func (f *Field) outside(x, y float64) bool {
	return x < -boundsPadding || x > f.width+boundsPadding ||
		y < -boundsPadding || y > f.height+boundsPadding
}

// buildTrail samples the head-to-tail segment into at most maxTrailPixels
// jittered squares whose opacity falls off super-linearly toward the tail.
func (f *Field) buildTrail(s *Streak, out []TrailPixel) []TrailPixel {
	dx := s.TailX - s.X
	dy := s.TailY - s.Y
	dist := math.Hypot(dx, dy)

	s.trailStep = math.Max(s.PixelSize, dist/maxTrailPixels)
	n := min(int(dist/s.trailStep), maxTrailPixels)
	jitter := s.PixelSize * (0.5 + s.PixelSize/3)

	for i := 0; i < n; i++ {
		ratio := float64(i) / float64(n)
		jx := (f.rng.Float64() - 0.5) * jitter
		jy := (f.rng.Float64() - 0.5) * jitter
		out = append(out, TrailPixel{
			X:       s.X + dx*ratio + jx,
			Y:       s.Y + dy*ratio + jy,
			Opacity: s.Opacity * math.Pow(1-ratio, trailFadePower),
			Size:    s.PixelSize * (0.7 + f.rng.Float64()*0.3),
		})
	}
	return out
}

// Spawn launches a new shooting star unless MaxStreaks are already active
// or the viewport is empty. It reports whether a streak was added.
func (f *Field) Spawn() bool {
	if len(f.streaks) >= MaxStreaks || f.width <= 0 || f.height <= 0 {
		return false
	}
	w, h := f.width, f.height
	pixelSize := uniform(f.rng, 1.2, 1.5)

	var x, y, angle float64
	switch {
	case f.rng.Float64() < 0.7:
		x = f.rng.Float64() * w
		y = f.rng.Float64() * h * 0.3
		angle = math.Pi/4 + f.rng.Float64()*math.Pi/2
	case f.rng.Float64() < 0.5:
		x = f.rng.Float64() * w * 0.2
		y = f.rng.Float64() * h * 0.6
		angle = math.Pi/6 + f.rng.Float64()*math.Pi/3
	default:
		x = w - f.rng.Float64()*w*0.2
		y = f.rng.Float64() * h * 0.6
		angle = math.Pi/2 + f.rng.Float64()*math.Pi/3
	}

	length := uniform(f.rng, 80, 200)
	s := Streak{
		X:         x,
		Y:         y,
		TailX:     x - math.Cos(angle)*length,
		TailY:     y - math.Sin(angle)*length,
		Length:    length,
		Angle:     angle,
		Speed:     uniform(f.rng, 4, 7),
		Opacity:   uniform(f.rng, 0.7, 1.0),
		Width:     uniform(f.rng, 0.6, 1.0),
		PixelSize: pixelSize,
		FadeSpeed: uniform(f.rng, 0.006, 0.016),
		Color:     f.streakColor(),
	}
	f.streaks = append(f.streaks, s)
	if f.OnSpawn != nil {
		f.OnSpawn(s.clone())
	}
	return true
}

func (f *Field) streakColor() color.NRGBA {
	base := uint8(220 + math.Floor(f.rng.Float64()*35))
	blue := base - uint8(math.Floor(f.rng.Float64()*20))
	if f.rng.Float64() < 0.9 {
		return color.NRGBA{R: base, G: base, B: base, A: 255}
	}
	return color.NRGBA{R: base, G: base - 10, B: blue, A: 255}
}

// Stars returns a copy of the ambient stars.
func (f *Field) Stars() []Star {
	return append([]Star(nil), f.stars...)
}

// Streaks returns a deep copy of the active shooting stars.
func (f *Field) Streaks() []Streak {
	out := make([]Streak, len(f.streaks))
	for i, s := range f.streaks {
		out[i] = s.clone()
	}
	return out
}

// StarCount reports the number of ambient stars.
func (f *Field) StarCount() int { return len(f.stars) }

// StreakCount reports the number of active shooting stars.
func (f *Field) StreakCount() int { return len(f.streaks) }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
