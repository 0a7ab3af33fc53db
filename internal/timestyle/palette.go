package timestyle

import (
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Tint is a colour with straight alpha.
type Tint struct {
	Color colorful.Color
	Alpha float64
}

// NRGBA converts the tint for drawing.
func (t Tint) NRGBA() color.NRGBA {
	r, g, b := t.Color.Clamped().RGB255()
	a := t.Alpha
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}
}

// Palette colours the hero and service cards.
type Palette struct {
	CardFrom, CardTo Tint
	Text             Tint
	Border           Tint
	IconBg           Tint
	TagBg            Tint
	TagText          Tint
}

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	ink   = colorful.Color{}

	indigo950 = mustHex("#1e1b4b")
	purple950 = mustHex("#3b0764")
	indigo900 = mustHex("#312e81")
	purple900 = mustHex("#581c87")
	orange400 = mustHex("#fb923c")
	yellow400 = mustHex("#facc15")
	sky400    = mustHex("#38bdf8")
	blue400   = mustHex("#60a5fa")
	orange600 = mustHex("#ea580c")
	purple600 = mustHex("#9333ea")
	purple800 = mustHex("#6b21a8")
	indigo800 = mustHex("#3730a3")
)

var (
	nightPalette = Palette{
		CardFrom: Tint{indigo950, 0.3},
		CardTo:   Tint{purple950, 0.3},
		Text:     Tint{white, 0.9},
		Border:   Tint{white, 0.1},
		IconBg:   Tint{ink, 0.4},
		TagBg:    Tint{white, 0.1},
		TagText:  Tint{white, 0.8},
	}
	dawnPalette = Palette{
		CardFrom: Tint{indigo900, 0.3},
		CardTo:   Tint{purple900, 0.3},
		Text:     Tint{white, 0.9},
		Border:   Tint{white, 0.1},
		IconBg:   Tint{ink, 0.3},
		TagBg:    Tint{white, 0.1},
		TagText:  Tint{white, 0.8},
	}
	sunrisePalette = Palette{
		CardFrom: Tint{orange400, 0.2},
		CardTo:   Tint{yellow400, 0.2},
		Text:     Tint{white, 1},
		Border:   Tint{white, 0.2},
		IconBg:   Tint{ink, 0.2},
		TagBg:    Tint{white, 0.2},
		TagText:  Tint{white, 1},
	}
	dayPalette = Palette{
		CardFrom: Tint{sky400, 0.2},
		CardTo:   Tint{blue400, 0.2},
		Text:     Tint{white, 1},
		Border:   Tint{white, 0.2},
		IconBg:   Tint{ink, 0.2},
		TagBg:    Tint{white, 0.2},
		TagText:  Tint{white, 1},
	}
	eveningPalette = Palette{
		CardFrom: Tint{orange600, 0.3},
		CardTo:   Tint{purple600, 0.3},
		Text:     Tint{white, 1},
		Border:   Tint{white, 0.15},
		IconBg:   Tint{ink, 0.3},
		TagBg:    Tint{white, 0.15},
		TagText:  Tint{white, 0.9},
	}
	duskPalette = Palette{
		CardFrom: Tint{purple800, 0.3},
		CardTo:   Tint{indigo800, 0.3},
		Text:     Tint{white, 0.9},
		Border:   Tint{white, 0.1},
		IconBg:   Tint{ink, 0.4},
		TagBg:    Tint{white, 0.1},
		TagText:  Tint{white, 0.8},
	}
)

// mustHex parses a package-level colour literal.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// PaletteAt returns the card colours for t's local hour. Hours without a
// dedicated palette (07:00) use the night one.
func PaletteAt(t time.Time) Palette {
	switch hour := t.Hour(); {
	case hour < 5:
		return nightPalette
	case hour == 5:
		return dawnPalette
	case hour == 6:
		return sunrisePalette
	case hour >= 8 && hour < 18:
		return dayPalette
	case hour == 18:
		return eveningPalette
	case hour == 19:
		return duskPalette
	default:
		return nightPalette
	}
}
