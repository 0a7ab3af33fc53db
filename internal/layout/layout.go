// Package layout positions the page elements for a given window width.
package layout

import (
	"math"

	"github.com/iburimskiy/starlight/internal/config"
)

// Rect is an axis-aligned box in layout units.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) is inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Offset returns r moved vertically by dy.
func (r Rect) Offset(dy float64) Rect {
	r.Y += dy
	return r
}

// Page is the placement of every element, top to bottom: clock, service
// cards, hero card, footer.
type Page struct {
	ClockX, ClockY float64
	ClockRadius    float64
	Cards          []Rect
	Hero           Rect
	Footer         Rect
	Height         float64
}

// Columns returns how many cards fit side by side in width.
func Columns(width float64) int {
	usable := width - 2*config.PageMargin + config.CardGap
	n := int(math.Floor(usable / (config.CardWidth + config.CardGap)))
	return max(1, min(n, config.MaxColumns))
}

// Grid places n cards centred horizontally, starting at top.
func Grid(width, top float64, n int) []Rect {
	if n <= 0 {
		return nil
	}
	cols := Columns(width)
	total := float64(cols)*config.CardWidth + float64(cols-1)*config.CardGap
	left := math.Max(config.PageMargin, (width-total)/2)

	out := make([]Rect, n)
	for i := range out {
		row, col := i/cols, i%cols
		out[i] = Rect{
			X: left + float64(col)*(config.CardWidth+config.CardGap),
			Y: top + float64(row)*(config.CardHeight+config.CardGap),
			W: config.CardWidth,
			H: config.CardHeight,
		}
	}
	return out
}

// Build lays out a page for a window width and a card count.
func Build(width float64, cards int) Page {
	p := Page{
		ClockX:      width / 2,
		ClockY:      config.PageMargin + config.ClockRadius,
		ClockRadius: config.ClockRadius,
	}
	// Room for the digital readout under the dial.
	top := p.ClockY + config.ClockRadius + config.LineHeight*2 + config.CardGap

	p.Cards = Grid(width, top, cards)
	bottom := top
	if len(p.Cards) > 0 {
		last := p.Cards[len(p.Cards)-1]
		bottom = last.Y + last.H + config.CardGap
	}

	heroW := math.Min(config.HeroWidth, math.Max(width-2*config.PageMargin, config.CardWidth))
	p.Hero = Rect{X: (width - heroW) / 2, Y: bottom + config.CardGap, W: heroW, H: config.HeroHeight}
	p.Footer = Rect{
		X: config.PageMargin,
		Y: p.Hero.Y + p.Hero.H + config.CardGap,
		W: math.Max(width-2*config.PageMargin, 0),
		H: config.LineHeight * 2,
	}
	p.Height = p.Footer.Y + p.Footer.H + config.PageMargin
	return p
}

// ClampScroll keeps a scroll offset within the page for a viewport height.
func ClampScroll(scroll, pageHeight, viewportHeight float64) float64 {
	maxScroll := math.Max(0, pageHeight-viewportHeight)
	return math.Max(0, math.Min(scroll, maxScroll))
}

// Hit returns the index of the rect containing (x, y), or -1.
func Hit(rects []Rect, x, y float64) int {
	for i, r := range rects {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}
