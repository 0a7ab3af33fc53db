package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// backgroundBand is the height of one gradient strip in device pixels.
const backgroundBand = 4

// drawBackground paints the time-of-day sky gradient behind everything.
func (g *Game) drawBackground(screen *ebiten.Image) {
	grad := g.style.Background
	if grad.Bottom == grad.Top {
		screen.Fill(nrgba(grad.Top, 1))
		return
	}

	b := screen.Bounds()
	h := b.Dy()
	for y := 0; y < h; y += backgroundBand {
		// At expects 0 at the bottom.
		ratio := 1 - float64(y)/float64(h)
		c := nrgba(grad.At(ratio), 1)
		vector.DrawFilledRect(screen, 0, float32(y), float32(b.Dx()), backgroundBand, c, false)
	}
}
