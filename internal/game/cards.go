package game

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/starlight/internal/config"
	"github.com/iburimskiy/starlight/internal/layout"
	"github.com/iburimskiy/starlight/internal/portfolio"
	"github.com/iburimskiy/starlight/internal/timestyle"
)

const hoverLift = 0.1

// mix blends two tints halfway, colour and alpha alike.
func mix(a, b timestyle.Tint) timestyle.Tint {
	return timestyle.Tint{
		Color: a.Color.BlendRgb(b.Color, 0.5),
		Alpha: (a.Alpha + b.Alpha) / 2,
	}
}

// wrapColumns estimates how many characters of a given size fit in width.
func wrapColumns(width, size float64) int {
	return max(1, int(width/(size*0.55)))
}

// panel draws a diagonal gradient box with a border and returns its rect
// on screen, in layout units.
func (g *Game) panel(screen *ebiten.Image, surface *canvas, r layout.Rect, hovered bool) layout.Rect {
	r = r.Offset(-g.scroll)
	p := g.palette
	from, to := p.CardFrom, p.CardTo
	if hovered {
		from.Alpha += hoverLift
		to.Alpha += hoverLift
	}
	middle := mix(from, to).NRGBA()
	surface.fillQuad(r.X, r.Y, r.W, r.H, from.NRGBA(), middle, to.NRGBA(), middle)

	border := p.Border.NRGBA()
	if hovered {
		border = brighter(p.Border, 0.2)
	}
	s := float32(g.scaleOr1())
	vector.StrokeRect(screen, float32(r.X)*s, float32(r.Y)*s, float32(r.W)*s, float32(r.H)*s, s, border, true)
	return r
}

// badge draws a pill label in the top right corner of r.
func (g *Game) badge(screen *ebiten.Image, surface *canvas, r layout.Rect, label string) {
	w := g.textWidth(label, badgeSize) + config.CardPadding
	h := badgeSize + 8.0
	x := r.X + r.W - config.CardPadding - w
	y := r.Y + config.CardPadding
	surface.FillRect(x, y, w, h, g.palette.TagBg.NRGBA())
	g.textCentred(screen, label, x+w/2, y+h/2, badgeSize, g.palette.TagText.NRGBA())
}

func (g *Game) visible(r layout.Rect) bool {
	top := r.Y - g.scroll
	return top+r.H >= 0 && top <= float64(g.height)
}

func (g *Game) drawCards(screen *ebiten.Image, surface *canvas) {
	ink := g.palette.Text.NRGBA()
	columns := wrapColumns(config.CardWidth-2*config.CardPadding, bodySize)
	for i, rect := range g.page.Cards {
		if i >= len(portfolio.Services) || !g.visible(rect) {
			continue
		}
		card := portfolio.Services[i]
		r := g.panel(screen, surface, rect, i == g.hoveredCard)

		// Icon well.
		surface.FillRect(r.X+config.CardPadding, r.Y+config.CardPadding,
			config.LineHeight*2, config.LineHeight*2, g.palette.IconBg.NRGBA())
		g.badge(screen, surface, r, card.Badge())

		y := r.Y + config.CardPadding + config.LineHeight*2 + config.LineHeight/2
		g.textAt(screen, card.Title, r.X+config.CardPadding, y, titleSize, ink)
		y += config.LineHeight * 1.5
		for _, line := range portfolio.Wrap(card.Description, columns) {
			if y+config.LineHeight > r.Y+r.H-config.CardPadding {
				break
			}
			g.textAt(screen, line, r.X+config.CardPadding, y, bodySize, ink)
			y += config.LineHeight
		}
	}
}

func (g *Game) drawHero(screen *ebiten.Image, surface *canvas) {
	if !g.visible(g.page.Hero) {
		return
	}
	ink := g.palette.Text.NRGBA()
	r := g.panel(screen, surface, g.page.Hero, g.heroHovered)
	owner := portfolio.Owner
	g.badge(screen, surface, r, owner.Tag)

	columns := wrapColumns(r.W-2*config.CardPadding, bodySize)
	x := r.X + config.CardPadding
	y := r.Y + config.CardPadding
	g.textAt(screen, owner.Name, x, y, titleSize+3, ink)
	y += config.LineHeight * 2
	for _, para := range owner.Lines {
		for _, line := range portfolio.Wrap(para, columns) {
			g.textAt(screen, line, x, y, bodySize, ink)
			y += config.LineHeight
		}
	}
	y += config.LineHeight / 2
	g.textAt(screen, owner.Email, x, y, bodySize, ink)
	y += config.LineHeight
	g.textAt(screen, owner.LinkedIn, x, y, bodySize, ink)
}

// drawFooter prints the copyright line with a slow glow, two seconds each
// way.
func (g *Game) drawFooter(screen *ebiten.Image, now time.Time) {
	f := g.page.Footer
	if !g.visible(f) {
		return
	}
	phase := math.Sin(g.elapsed(now).Seconds() * math.Pi / 2)
	glow := color.NRGBA{R: 255, G: 255, B: 255, A: uint8(160 + 50*phase)}
	g.textCentred(screen, portfolio.Footer, f.X+f.W/2, f.Y+f.H/2-g.scroll, bodySize, glow)
}
