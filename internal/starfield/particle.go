package starfield

import "image/color"

// Star is an ambient twinkling point. Its position is fixed for its lifetime.
type Star struct {
	X, Y       float64
	Size       float64
	Opacity    float64
	MaxOpacity float64
	Phase      float64
	Speed      float64 // radians per millisecond, either sign
	Amplitude  float64
}

// TrailPixel is one square sample of a streak's trail.
type TrailPixel struct {
	X, Y    float64
	Opacity float64
	Size    float64
}

// Streak is a shooting star: a bright head dragging a fading pixel trail.
type Streak struct {
	X, Y         float64 // head
	TailX, TailY float64
	Length       float64
	Angle        float64
	Speed        float64 // units per 16ms reference frame
	Opacity      float64
	Width        float64
	PixelSize    float64
	FadeSpeed    float64 // opacity lost per 16ms reference frame
	Color        color.NRGBA
	Trail        []TrailPixel

	// trailStep is the adaptive spacing used for the last trail rebuild.
	trailStep float64
}

func (s Streak) clone() Streak {
	s.Trail = append([]TrailPixel(nil), s.Trail...)
	return s
}
