package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/starlight/internal/starfield"
)

const (
	gradientSegments      = 24
	smallGradientSegments = 8
	smallGradientRadius   = 3 // device pixels
)

// canvas is a starfield.Surface backed by an ebiten image. Coordinates are
// layout units, multiplied by scale on the way to device pixels.
type canvas struct {
	img   *ebiten.Image
	scale float64
	owned bool

	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func newWhitePixel() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// newCanvas returns an offscreen canvas; it allocates its image on the
// first Resize.
func newCanvas() *canvas {
	return &canvas{scale: 1, owned: true, white: newWhitePixel()}
}

// onto returns a canvas drawing straight into dst with c's white pixel.
func (c *canvas) onto(dst *ebiten.Image, scale float64) *canvas {
	return &canvas{img: dst, scale: scale, white: c.white}
}

func (c *canvas) Resize(width, height, ratio float64) {
	w := max(1, int(math.Ceil(width*ratio)))
	h := max(1, int(math.Ceil(height*ratio)))
	c.scale = ratio
	if c.img != nil {
		if b := c.img.Bounds(); b.Dx() == w && b.Dy() == h {
			return
		}
		if c.owned {
			c.img.Deallocate()
		}
	}
	c.img = ebiten.NewImage(w, h)
	c.owned = true
}

func (c *canvas) Clear(x, y, w, h float64) {
	if c.img == nil {
		return
	}
	s := c.scale
	r := image.Rect(
		int(math.Floor(x*s)), int(math.Floor(y*s)),
		int(math.Ceil((x+w)*s)), int(math.Ceil((y+h)*s)),
	).Intersect(c.img.Bounds())
	switch {
	case r.Empty():
	case r == c.img.Bounds():
		c.img.Clear()
	default:
		c.img.SubImage(r).(*ebiten.Image).Clear()
	}
}

func (c *canvas) FillRect(x, y, w, h float64, col color.NRGBA) {
	if c.img == nil || col.A == 0 {
		return
	}
	s := c.scale
	vector.DrawFilledRect(c.img, float32(x*s), float32(y*s), float32(w*s), float32(h*s), col, true)
}

// FillPolygon fans triangles out of the centroid, which covers convex and
// star-shaped outlines.
func (c *canvas) FillPolygon(points []starfield.Point, col color.NRGBA) {
	if c.img == nil || col.A == 0 || len(points) < 3 {
		return
	}
	var cx, cy float64
	for _, p := range points {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(points))
	cy /= float64(len(points))

	c.vertices = c.vertices[:0]
	c.indices = c.indices[:0]
	c.vertex(cx, cy, col)
	for i, p := range points {
		c.vertex(p.X, p.Y, col)
		next := (i+1)%len(points) + 1
		c.indices = append(c.indices, 0, uint16(i+1), uint16(next))
	}
	c.flush()
}

// FillRadialGradient builds a disc out of concentric rings, one per stop,
// and lets vertex colour interpolation produce the gradient between them.
func (c *canvas) FillRadialGradient(cx, cy, radius float64, stops []starfield.GradientStop) {
	if c.img == nil || radius <= 0 || len(stops) == 0 || !anyVisible(stops) {
		return
	}
	segments := gradientSegments
	if radius*c.scale < smallGradientRadius {
		segments = smallGradientSegments
	}

	c.vertices = c.vertices[:0]
	c.indices = c.indices[:0]
	c.vertex(cx, cy, stops[0].Color)

	rings := stops
	if stops[0].Offset <= 0 {
		rings = stops[1:]
	}
	for ring, stop := range rings {
		r := radius * math.Max(stop.Offset, 0)
		for i := 0; i < segments; i++ {
			a := 2 * math.Pi * float64(i) / float64(segments)
			c.vertex(cx+math.Cos(a)*r, cy+math.Sin(a)*r, stop.Color)
		}

		base := uint16(1 + ring*segments)
		for i := 0; i < segments; i++ {
			cur := base + uint16(i)
			next := base + uint16((i+1)%segments)
			if ring == 0 {
				c.indices = append(c.indices, 0, cur, next)
				continue
			}
			prevCur := cur - uint16(segments)
			prevNext := next - uint16(segments)
			c.indices = append(c.indices, prevCur, cur, next, prevCur, next, prevNext)
		}
	}
	c.flush()
}

// fillQuad fills an axis-aligned rect with a colour per corner, clockwise
// from the top left.
func (c *canvas) fillQuad(x, y, w, h float64, tl, tr, br, bl color.NRGBA) {
	if c.img == nil {
		return
	}
	c.vertices = c.vertices[:0]
	c.indices = c.indices[:0]
	c.vertex(x, y, tl)
	c.vertex(x+w, y, tr)
	c.vertex(x+w, y+h, br)
	c.vertex(x, y+h, bl)
	c.indices = append(c.indices, 0, 1, 2, 0, 2, 3)
	c.flush()
}

func (c *canvas) vertex(x, y float64, col color.NRGBA) {
	c.vertices = append(c.vertices, ebiten.Vertex{
		DstX:   float32(x * c.scale),
		DstY:   float32(y * c.scale),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(col.R) / 255,
		ColorG: float32(col.G) / 255,
		ColorB: float32(col.B) / 255,
		ColorA: float32(col.A) / 255,
	})
}

func (c *canvas) flush() {
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	c.img.DrawTriangles(c.vertices, c.indices, c.white, op)
}

func anyVisible(stops []starfield.GradientStop) bool {
	for _, s := range stops {
		if s.Color.A > 0 {
			return true
		}
	}
	return false
}
