package clockface

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandsAt(t *testing.T) {
	tm := time.Date(2025, 1, 1, 15, 30, 45, 500*int(time.Millisecond), time.UTC)
	h := HandsAt(tm)
	assert.InDelta(t, 105, h.Hour, 1e-9)
	assert.InDelta(t, 184.5, h.Minute, 1e-9)
	assert.InDelta(t, 273, h.Second, 1e-9)

	mid := HandsAt(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, Hands{}, mid)
}

func TestTip(t *testing.T) {
	x, y := Tip(50, 50, 20, 0)
	assert.InDelta(t, 50, x, 1e-9)
	assert.InDelta(t, 30, y, 1e-9)

	x, y = Tip(50, 50, 20, 90)
	assert.InDelta(t, 70, x, 1e-9)
	assert.InDelta(t, 50, y, 1e-9)
}

func TestDigital(t *testing.T) {
	cases := []struct {
		hour   int
		want24 string
		want12 string
	}{
		{0, "00:05:09", "12:05:09 AM"},
		{9, "09:05:09", "09:05:09 AM"},
		{12, "12:05:09", "12:05:09 PM"},
		{23, "23:05:09", "11:05:09 PM"},
	}
	for _, tc := range cases {
		tm := time.Date(2025, 1, 1, tc.hour, 5, 9, 0, time.UTC)
		require.Equal(t, tc.want24, Digital24(tm))
		require.Equal(t, tc.want12, Digital12(tm))
	}
}

func TestGlowAt(t *testing.T) {
	assert.Equal(t, 0.8, GlowAt(0).Opacity)
	assert.Equal(t, 0.8, GlowAt(12).Opacity)
	assert.Equal(t, 0.5, GlowAt(6).Opacity)
	assert.Equal(t, 0.5, GlowAt(18).Opacity)
	for _, h := range []int{1, 5, 7, 13, 23} {
		assert.Zero(t, GlowAt(h).Opacity, "hour %d", h)
	}
}

func TestNumeralsSitOnQuarterHours(t *testing.T) {
	require.Len(t, Numerals, 4)
	assert.Equal(t, []string{"十二", "三", "六", "九"},
		[]string{Numerals[0].Label, Numerals[1].Label, Numerals[2].Label, Numerals[3].Label})

	// Twelve and six share the vertical axis, three and nine mirror
	// across it.
	assert.Equal(t, 50.0, Numerals[0].X)
	assert.Equal(t, 50.0, Numerals[2].X)
	assert.Equal(t, 100.0, Numerals[1].X+Numerals[3].X)
	assert.Equal(t, Numerals[1].Y, Numerals[3].Y)
	for _, n := range Numerals {
		r := math.Hypot(n.X-50, n.Y-50)
		assert.Greater(t, r, 20.0, n.Label)
		assert.Less(t, r, 35.0, n.Label)
	}
}
