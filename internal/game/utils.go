package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/starlight/internal/timestyle"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// nrgba converts a colour and straight alpha (0-1) for drawing.
func nrgba(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha)*255 + 0.5)}
}

// brighter raises a tint's alpha, used for hover states.
func brighter(t timestyle.Tint, by float64) color.NRGBA {
	t.Alpha = clamp01(t.Alpha + by)
	return t.NRGBA()
}

// hex parses a colour literal and panics on a malformed one.
func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// formatFrameTime formats a frame delta as milliseconds with one decimal.
func formatFrameTime(d time.Duration) string {
	return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
}
