// Package timestyle maps wall-clock time to the look of the sky: the
// background gradient, whether stars show, how bright they are and how
// densely they are packed.
package timestyle

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Gradient is a vertical background running from Bottom up to Top.
type Gradient struct {
	Bottom, Top colorful.Color
}

// Solid returns a gradient of a single colour.
func Solid(c colorful.Color) Gradient {
	return Gradient{Bottom: c, Top: c}
}

// At returns the colour at height t, 0 at the bottom and 1 at the top.
func (g Gradient) At(t float64) colorful.Color {
	return g.Bottom.BlendRgb(g.Top, math.Max(0, math.Min(1, t))).Clamped()
}

// Style is the time-of-day presentation consumed by the host.
type Style struct {
	Background    Gradient
	ShowParticles bool
	Opacity       float64
	Density       float64
}

// ParticleOpacity is the global opacity scale handed to the starfield.
func (s Style) ParticleOpacity() float64 {
	if !s.ShowParticles {
		return 0
	}
	return s.Opacity
}

const (
	baseDensity      = 0.15
	eveningDensity   = 0.2
	deepNightDensity = 0.4
)

var (
	black   = rgb(0, 0, 0)
	skyBlue = rgb(135, 206, 235)
)

// At returns the style for t's local hour and minute.
func At(t time.Time) Style {
	hour := t.Hour()
	p := float64(t.Minute()) / 60

	switch {
	case hour < 5:
		return Style{Background: Solid(black), ShowParticles: true, Opacity: 1, Density: deepNightDensity}

	case hour == 5: // early dawn
		return Style{
			Background: Gradient{
				Bottom: rgb(math.Min(50+p*100, 150), math.Min(50+p*50, 100), math.Min(100+p*50, 150)),
				Top:    rgb(0, 0, math.Min(50+p*100, 150)),
			},
			ShowParticles: true,
			Opacity:       1 - p,
			Density:       baseDensity,
		}

	case hour == 6: // sunrise
		top := math.Min(150+p*105, 255)
		return Style{
			Background: Gradient{
				Bottom: rgb(255, math.Min(165+p*90, 255), math.Min(p*100, 100)),
				Top:    rgb(top, top, top),
			},
			Density: baseDensity,
		}

	case hour >= 8 && hour < 18:
		return Style{Background: Solid(skyBlue), Density: baseDensity}

	case hour == 18: // evening
		return Style{
			Background: Gradient{
				Bottom: rgb(255-p*100, 165-p*100, p*150),
				Top:    rgb(255-p*150, 200-p*150, p*200),
			},
			Density: baseDensity,
		}

	case hour == 19: // dusk
		return Style{
			Background: Gradient{
				Bottom: rgb(155-p*155, 65-p*65, 150+p*50),
				Top:    rgb(105-p*105, 50-p*50, 200+p*55),
			},
			ShowParticles: true,
			Opacity:       p,
			Density:       baseDensity + p*0.05,
		}

	case hour >= 20:
		return Style{Background: Solid(black), ShowParticles: true, Opacity: 1, Density: eveningDensity}
	}

	// 07:00 has no dedicated look.
	return Style{Background: Solid(skyBlue), Density: baseDensity}
}

func rgb(r, g, b float64) colorful.Color {
	return colorful.Color{R: r / 255, G: g / 255, B: b / 255}
}
