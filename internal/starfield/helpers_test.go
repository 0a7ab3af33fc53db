package starfield

import (
	"image/color"
	"math/rand/v2"
)

// constSource always yields the same value.
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

func seeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed*31+7))
}

// recordingSurface counts draw calls by kind.
type recordingSurface struct {
	resizes   []Viewport
	clears    int
	gradients int
	polygons  int
	rects     int
	colors    []color.NRGBA
}

func (r *recordingSurface) Resize(width, height, ratio float64) {
	r.resizes = append(r.resizes, Viewport{Width: width, Height: height, Scale: ratio})
}

func (r *recordingSurface) Clear(x, y, w, h float64) { r.clears++ }

func (r *recordingSurface) FillRadialGradient(cx, cy, radius float64, stops []GradientStop) {
	r.gradients++
}

func (r *recordingSurface) FillPolygon(points []Point, c color.NRGBA) {
	r.polygons++
	r.colors = append(r.colors, c)
}

func (r *recordingSurface) FillRect(x, y, w, h float64, c color.NRGBA) {
	r.rects++
	r.colors = append(r.colors, c)
}

func (r *recordingSurface) particleCalls() int {
	return r.gradients + r.polygons + r.rects
}
