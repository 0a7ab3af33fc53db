// Package clockface computes the geometry and readouts of the decorative
// clocks.
package clockface

import (
	"fmt"
	"image/color"
	"math"
	"time"
)

// Hands holds hand angles in degrees, clockwise from twelve o'clock.
type Hands struct {
	Hour, Minute, Second float64
}

// HandsAt returns the hand angles for t. The second hand sweeps with
// millisecond precision.
func HandsAt(t time.Time) Hands {
	h, m, s := t.Hour()%12, t.Minute(), t.Second()
	ms := t.Nanosecond() / int(time.Millisecond)
	return Hands{
		Hour:   (float64(h) + float64(m)/60) * 30,
		Minute: (float64(m) + float64(s)/60) * 6,
		Second: (float64(s) + float64(ms)/1000) * 6,
	}
}

// Tip returns the end point of a hand of the given length pivoting at
// (cx, cy). Screen y grows downward.
func Tip(cx, cy, length, degrees float64) (x, y float64) {
	rad := degrees * math.Pi / 180
	return cx + math.Sin(rad)*length, cy - math.Cos(rad)*length
}

// Digital24 formats t as HH:MM:SS.
func Digital24(t time.Time) string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// Digital12 formats t as hh:MM:SS AM/PM, with midnight and noon as 12.
func Digital12(t time.Time) string {
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	suffix := "AM"
	if t.Hour() >= 12 {
		suffix = "PM"
	}
	return fmt.Sprintf("%02d:%02d:%02d %s", h, t.Minute(), t.Second(), suffix)
}

// NumeralSize is the height of the Japanese dial labels in face units.
const NumeralSize = 4

// Numeral is a Japanese dial label. X and Y place the centre of its
// baseline on a 100-unit face whose centre is (50, 50).
type Numeral struct {
	Label string
	X, Y  float64
}

// Numerals labels the quarter hours of the Japanese dial.
var Numerals = []Numeral{
	{Label: "十二", X: 50, Y: 24},
	{Label: "三", X: 76, Y: 52},
	{Label: "六", X: 50, Y: 80},
	{Label: "九", X: 24, Y: 52},
}

// Glow is the halo behind the Japanese clock's centre.
type Glow struct {
	Opacity float64
	Color   color.NRGBA
}

// GlowAt returns the halo for an hour of the day: gold at midnight and
// noon, pink at six, none otherwise.
func GlowAt(hour int) Glow {
	switch hour {
	case 0, 12:
		return Glow{Opacity: 0.8, Color: color.NRGBA{R: 255, G: 215, B: 120, A: 153}}
	case 6, 18:
		return Glow{Opacity: 0.5, Color: color.NRGBA{R: 252, G: 180, B: 213, A: 102}}
	}
	return Glow{}
}
