package starfield

import (
	"image/color"
	"math"
	"time"
)

// Point is a vertex in layout units.
type Point struct {
	X, Y float64
}

// GradientStop is a colour at a fractional offset (0 centre, 1 rim) of a
// radial gradient.
type GradientStop struct {
	Offset float64
	Color  color.NRGBA
}

// Surface is the immediate-mode 2D target the field draws onto. All
// coordinates are device-independent layout units.
type Surface interface {
	// Resize reallocates the surface for a width×height viewport and
	// applies the device pixel ratio as a scale transform.
	Resize(width, height, ratio float64)
	Clear(x, y, w, h float64)
	FillRadialGradient(cx, cy, radius float64, stops []GradientStop)
	FillPolygon(points []Point, c color.NRGBA)
	FillRect(x, y, w, h float64, c color.NRGBA)
}

// Pulse carries the midnight flourish state. The host decides when it is
// active; the field never reads the wall clock.
type Pulse struct {
	Active bool
	// Time drives the brightness oscillation.
	Time time.Duration
}

func (p Pulse) factor() float64 {
	if !p.Active {
		return 1
	}
	return math.Sin(p.Time.Seconds())*0.2 + 1
}

const (
	minVisibleAlpha  = 0.05
	sparkleChance    = 0.1
	sparkleThickness = 0.5
	tailShapeMinStep = 2.0
	tailShapeSpikes  = 5
)

var (
	starWhite = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	starBlue  = color.NRGBA{R: 200, G: 220, B: 255, A: 255}
)

// Draw paints the current frame. With a zero global opacity only the
// clear and the background fill are issued.
func (f *Field) Draw(dst Surface, pulse Pulse) {
	if dst == nil {
		return
	}
	dst.Clear(0, 0, f.width, f.height)
	if f.opts.Background.A > 0 {
		dst.FillRect(0, 0, f.width, f.height, f.opts.Background)
	}
	if f.opacity <= 0 {
		return
	}

	for i := range f.stars {
		f.drawStar(dst, &f.stars[i], pulse)
	}
	for i := range f.streaks {
		f.drawStreak(dst, &f.streaks[i])
	}
}

func (f *Field) drawStar(dst Surface, s *Star, pulse Pulse) {
	a := s.Opacity * f.opacity
	if a <= 0 {
		return
	}
	k := pulse.factor()
	glow, core := 2.5, 1.8
	if pulse.Active {
		glow, core = 3, 2
	}

	f.stops[0] = GradientStop{0, withAlpha(starWhite, a*k)}
	f.stops[1] = GradientStop{0.5, withAlpha(starBlue, a*0.5*k)}
	f.stops[2] = GradientStop{1, withAlpha(starBlue, 0)}
	dst.FillRadialGradient(s.X, s.Y, s.Size*glow, f.stops[:])

	c := withAlpha(starWhite, math.Min(1, a*core))
	f.stops[0] = GradientStop{0, c}
	f.stops[1] = GradientStop{1, c}
	dst.FillRadialGradient(s.X, s.Y, s.Size/2, f.stops[:2])

	if pulse.Active && f.rng.Float64() < sparkleChance {
		arm := s.Size * (f.rng.Float64()*0.5 + 0.5) * 2
		c := withAlpha(starWhite, a*0.3)
		dst.FillRect(s.X-arm, s.Y-sparkleThickness/2, 2*arm, sparkleThickness, c)
		dst.FillRect(s.X-sparkleThickness/2, s.Y-arm, sparkleThickness, 2*arm, c)
	}
}

func (f *Field) drawStreak(dst Surface, s *Streak) {
	if s.Opacity <= minVisibleAlpha {
		return
	}

	// Tail first so the head lands on top.
	for i := len(s.Trail) - 1; i >= 0; i-- {
		p := s.Trail[i]
		a := p.Opacity * f.opacity
		if a <= minVisibleAlpha {
			continue
		}
		dst.FillRect(p.X-p.Size/2, p.Y-p.Size/2, p.Size, p.Size, withAlpha(s.Color, a))
	}

	a := s.Opacity * f.opacity
	f.stops[0] = GradientStop{0, withAlpha(starWhite, a)}
	f.stops[1] = GradientStop{0.5, withAlpha(s.Color, a*0.6)}
	f.stops[2] = GradientStop{1, withAlpha(starBlue, 0)}
	dst.FillRadialGradient(s.X, s.Y, s.Width*1.5, f.stops[:])

	if len(s.Trail) > 0 && s.trailStep > tailShapeMinStep && s.Opacity*0.7 > minVisibleAlpha {
		x := s.TailX + (f.rng.Float64()-0.5)*2
		y := s.TailY + (f.rng.Float64()-0.5)*2
		dst.FillPolygon(starShape(x, y, s.trailStep*1.8), withAlpha(s.Color, s.Opacity*0.7*f.opacity))
	}
}

// starShape returns the outline of a five-pointed star centred on (x, y),
// rotated a quarter turn.
func starShape(x, y, outer float64) []Point {
	inner := outer / 2.5
	pts := make([]Point, 0, tailShapeSpikes*2)
	for i := 0; i < tailShapeSpikes*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := math.Pi*2*float64(i)/float64(tailShapeSpikes*2) + math.Pi/2
		pts = append(pts, Point{X: x + math.Cos(angle)*r, Y: y + math.Sin(angle)*r})
	}
	return pts
}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(math.Round(clamp(a, 0, 1) * 255))
	return c
}
