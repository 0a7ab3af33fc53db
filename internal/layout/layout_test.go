package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/starlight/internal/config"
)

func TestColumns(t *testing.T) {
	assert.Equal(t, 1, Columns(200))
	assert.Equal(t, 1, Columns(400))
	// 2 cards need 2*300 + 24 + 2*40 = 704.
	assert.Equal(t, 1, Columns(703))
	assert.Equal(t, 2, Columns(704))
	assert.Equal(t, 3, Columns(1280))
	assert.Equal(t, config.MaxColumns, Columns(5000))
}

func TestGridRowsAndCentering(t *testing.T) {
	rects := Grid(1280, 100, 6)
	require.Len(t, rects, 6)

	total := 3*config.CardWidth + 2*config.CardGap
	assert.InDelta(t, (1280-float64(total))/2, rects[0].X, 1e-9)
	assert.Equal(t, rects[0].Y, rects[2].Y)
	assert.Equal(t, rects[0].X, rects[3].X)
	assert.InDelta(t, 100+config.CardHeight+config.CardGap, rects[3].Y, 1e-9)

	for i := 1; i < len(rects); i++ {
		for j := 0; j < i; j++ {
			a, b := rects[i], rects[j]
			overlap := a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
			require.False(t, overlap, "cards %d and %d overlap", i, j)
		}
	}
	assert.Nil(t, Grid(1280, 0, 0))
}

func TestBuildOrder(t *testing.T) {
	p := Build(1280, 6)
	require.Less(t, p.ClockY+p.ClockRadius, p.Cards[0].Y)
	require.Less(t, p.Cards[5].Y+p.Cards[5].H, p.Hero.Y)
	require.Greater(t, p.Footer.Y, p.Hero.Y+p.Hero.H)
	require.InDelta(t, p.Footer.Y+p.Footer.H+config.PageMargin, p.Height, 1e-9)
	require.InDelta(t, 640, p.Footer.X+p.Footer.W/2, 1e-9)
	require.InDelta(t, 640, p.Hero.X+p.Hero.W/2, 1e-9)

	narrow := Build(360, 6)
	require.Greater(t, narrow.Height, p.Height, "one column is taller")
}

func TestClampScroll(t *testing.T) {
	assert.Equal(t, 0.0, ClampScroll(-10, 1000, 800))
	assert.Equal(t, 200.0, ClampScroll(500, 1000, 800))
	assert.Equal(t, 50.0, ClampScroll(50, 1000, 800))
	assert.Equal(t, 0.0, ClampScroll(50, 600, 800))
}

func TestHit(t *testing.T) {
	rects := []Rect{{0, 0, 10, 10}, {20, 0, 10, 10}}
	assert.Equal(t, 0, Hit(rects, 5, 5))
	assert.Equal(t, 1, Hit(rects, 20, 9.9))
	assert.Equal(t, -1, Hit(rects, 15, 5))
	assert.Equal(t, -1, Hit(rects, 30, 5))
}
