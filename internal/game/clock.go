package game

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/starlight/internal/clockface"
	"github.com/iburimskiy/starlight/internal/config"
	"github.com/iburimskiy/starlight/internal/starfield"
)

// Dial geometry is expressed in units of a 100-unit face, centre at 50.
const faceUnits = 50.0

var (
	white      = hex("#ffffff")
	brass      = hex("#d7b377")
	brassDark  = hex("#b19259")
	umber      = hex("#614b2a")
	vermilion  = hex("#c93545")
	faceCentre = hex("#fff8e1")
	faceMid    = hex("#fff2cc")
	faceRim    = hex("#ffe0b2")
)

// dial maps face units onto the window.
type dial struct {
	cx, cy float64 // layout units
	unit   float64 // layout units per face unit
	scale  float64
}

func (d dial) px(v float64) float32 { return float32(v * d.scale) }

func (d dial) point(length, degrees float64) (float32, float32) {
	x, y := clockface.Tip(d.cx, d.cy, length*d.unit, degrees)
	return d.px(x), d.px(y)
}

func (d dial) line(dst *ebiten.Image, from, to, degrees, width float64, c color.Color) {
	x1, y1 := d.point(from, degrees)
	x2, y2 := d.point(to, degrees)
	vector.StrokeLine(dst, x1, y1, x2, y2, d.px(width*d.unit), c, true)
}

func (d dial) circle(dst *ebiten.Image, r float64, c color.Color) {
	vector.DrawFilledCircle(dst, d.px(d.cx), d.px(d.cy), d.px(r*d.unit), c, true)
}

func (d dial) ring(dst *ebiten.Image, r, width float64, c color.Color) {
	vector.StrokeCircle(dst, d.px(d.cx), d.px(d.cy), d.px(r*d.unit), d.px(width*d.unit), c, true)
}

func (g *Game) drawClock(screen *ebiten.Image, surface *canvas, t time.Time) {
	d := dial{
		cx:    g.page.ClockX,
		cy:    g.page.ClockY - g.scroll,
		unit:  g.page.ClockRadius / faceUnits,
		scale: g.scaleOr1(),
	}
	if d.cy+g.page.ClockRadius < 0 {
		return
	}

	var readout string
	if g.clockStyle == config.ClockJapanese {
		g.drawJapaneseClock(screen, surface, d, t)
		readout = clockface.Digital12(t)
	} else {
		g.drawAnalogClock(screen, d, t)
		readout = clockface.Digital24(t)
	}

	g.textCentred(screen, readout, d.cx, d.cy+g.page.ClockRadius+config.LineHeight, titleSize, nrgba(white, 0.9))
}

func (g *Game) drawAnalogClock(screen *ebiten.Image, d dial, t time.Time) {
	d.circle(screen, 45, nrgba(white, 0.1))
	d.ring(screen, 45, 2, nrgba(white, 0.2))

	for i := 0; i < 12; i++ {
		d.line(screen, 35, 40, float64(i*30), 1.5, nrgba(white, 0.6))
	}

	hands := clockface.HandsAt(t)
	d.line(screen, 0, 20, hands.Hour, 2.5, nrgba(white, 0.9))
	d.line(screen, 0, 30, hands.Minute, 2, nrgba(white, 0.8))
	d.line(screen, 0, 35, hands.Second, 1, nrgba(white, 0.7))
	d.circle(screen, 2, nrgba(white, 0.9))
}

func (g *Game) drawJapaneseClock(screen *ebiten.Image, surface *canvas, d dial, t time.Time) {
	d.ring(screen, 48, 2, nrgba(brass, 1))
	surface.FillRadialGradient(d.cx, d.cy, 45*d.unit, []starfield.GradientStop{
		{Offset: 0, Color: nrgba(faceCentre, 1)},
		{Offset: 0.85, Color: nrgba(faceMid, 1)},
		{Offset: 1, Color: nrgba(faceRim, 1)},
	})
	d.ring(screen, 45, 1, nrgba(brassDark, 1))

	// Dotted and dashed inner rings.
	for deg := 0.0; deg < 360; deg += 4 {
		x, y := d.point(40, deg)
		vector.DrawFilledCircle(screen, x, y, d.px(0.25*d.unit), nrgba(brass, 1), true)
	}
	for deg := 0.0; deg < 360; deg += 12 {
		d.arc(screen, 35, deg, deg+6, 0.5, nrgba(brass, 1))
	}

	for i := 0; i < 12; i++ {
		inner, width := 37.0, 1.0
		if i%3 == 0 {
			inner, width = 35, 1.5
		}
		d.line(screen, inner, 40, float64(i*30), width, nrgba(umber, 1))
	}

	// Labels are placed by baseline; lift them to their visual centre.
	size := clockface.NumeralSize * d.unit
	for _, n := range clockface.Numerals {
		x := d.cx + (n.X-faceUnits)*d.unit
		y := d.cy + (n.Y-faceUnits)*d.unit - size*0.35
		g.textCentred(screen, n.Label, x, y, size, nrgba(umber, 1))
	}

	if glow := clockface.GlowAt(t.Hour()); glow.Opacity > 0 {
		c := glow.Color
		c.A = uint8(float64(c.A) * glow.Opacity)
		fade := c
		fade.A = 0
		surface.FillRadialGradient(d.cx, d.cy, 10*d.unit, []starfield.GradientStop{
			{Offset: 0, Color: c},
			{Offset: 0.7, Color: fade},
		})
	}

	hands := clockface.HandsAt(t)
	d.line(screen, 0, 20, hands.Hour, 2.5, nrgba(umber, 1))
	d.arrow(surface, 20, 25, 1.5, hands.Hour, nrgba(umber, 1))
	d.line(screen, 0, 28, hands.Minute, 1.8, nrgba(umber, 1))
	d.arrow(surface, 28, 32, 1, hands.Minute, nrgba(umber, 1))
	d.line(screen, -10, 33, hands.Second, 1, nrgba(vermilion, 1))
	x, y := d.point(33, hands.Second)
	vector.DrawFilledCircle(screen, x, y, d.px(d.unit), nrgba(vermilion, 1), true)

	d.circle(screen, 3, nrgba(umber, 1))
	d.circle(screen, 1.5, nrgba(vermilion, 1))
}

// arrow draws a triangular hand tip from base to tip, halfWidth wide at the base.
func (d dial) arrow(surface *canvas, base, tip, halfWidth, degrees float64, c color.NRGBA) {
	bx, by := clockface.Tip(d.cx, d.cy, base*d.unit, degrees)
	tx, ty := clockface.Tip(d.cx, d.cy, tip*d.unit, degrees)
	rad := degrees * math.Pi / 180
	nx, ny := math.Cos(rad)*halfWidth*d.unit, math.Sin(rad)*halfWidth*d.unit
	surface.FillPolygon([]starfield.Point{
		{X: bx - nx, Y: by - ny},
		{X: tx, Y: ty},
		{X: bx + nx, Y: by + ny},
	}, c)
}

// arc strokes a short arc of the circle of radius r between two angles.
func (d dial) arc(dst *ebiten.Image, r, from, to, width float64, c color.Color) {
	const step = 2.0
	for deg := from; deg < to; deg += step {
		x1, y1 := d.point(r, deg)
		x2, y2 := d.point(r, math.Min(deg+step, to))
		vector.StrokeLine(dst, x1, y1, x2, y2, d.px(width*d.unit), c, true)
	}
}
