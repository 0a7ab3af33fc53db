package game

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Text sizes in layout units.
const (
	bodySize  = 12
	titleSize = 15
	badgeSize = 10
)

// loadFont parses the bundled M+ 1p face, which covers Latin and kanji.
func loadFont() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.MPlus1pRegular_ttf))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return src, nil
}

func (g *Game) face(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: g.font, Size: size * g.scaleOr1()}
}

// textAt draws s with its top left corner at (x, y) in layout units.
func (g *Game) textAt(screen *ebiten.Image, s string, x, y, size float64, c color.Color) {
	g.drawText(screen, s, x, y, size, c, text.AlignStart, text.AlignStart)
}

// textCentred draws s centred on (x, y) in layout units.
func (g *Game) textCentred(screen *ebiten.Image, s string, x, y, size float64, c color.Color) {
	g.drawText(screen, s, x, y, size, c, text.AlignCenter, text.AlignCenter)
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y, size float64, c color.Color, h, v text.Align) {
	if g.font == nil || s == "" {
		return
	}
	sc := g.scaleOr1()
	op := &text.DrawOptions{}
	op.GeoM.Translate(x*sc, y*sc)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = h
	op.SecondaryAlign = v
	text.Draw(screen, s, g.face(size), op)
}

// textWidth measures s in layout units.
func (g *Game) textWidth(s string, size float64) float64 {
	if g.font == nil {
		return float64(len(s)) * size / 2
	}
	w, _ := text.Measure(s, g.face(size), 0)
	return w / g.scaleOr1()
}
