package starfield

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const frame = 16 * time.Millisecond

// FieldSuite exercises population, twinkling and shooting star lifecycles.
type FieldSuite struct {
	suite.Suite
	field *Field
}

func (s *FieldSuite) SetupTest() {
	opts := DefaultOptions()
	opts.StreakFrequency = 0
	s.field = NewField(opts, seeded(42))
	s.field.Begin(0)
}

// TestResetCount verifies the star count formula and that it does not
// depend on the random stream.
func (s *FieldSuite) TestResetCount() {
	cases := []struct {
		w, h, density float64
	}{
		{1000, 1000, 0.2},
		{333, 777, 0.3},
		{1920, 1080, 0.4},
		{10, 10, 0.2},
	}
	for _, tc := range cases {
		want := int(math.Floor(tc.w * tc.h * tc.density / 800))
		for _, rng := range []Source{constSource(0), constSource(0.99), seeded(7)} {
			f := NewField(DefaultOptions(), rng)
			f.Reset(tc.w, tc.h, tc.density)
			require.Equal(s.T(), want, f.StarCount(), "%vx%v@%v", tc.w, tc.h, tc.density)
		}
	}
	s.field.Reset(1000, 1000, 0.2)
	require.Equal(s.T(), 250, s.field.StarCount())
}

// TestResetInvalidViewport verifies that bad dimensions yield an empty field.
func (s *FieldSuite) TestResetInvalidViewport() {
	for _, dims := range [][3]float64{
		{0, 500, 0.2},
		{-10, 500, 0.2},
		{500, math.NaN(), 0.2},
		{math.Inf(1), 500, 0.2},
		{500, 500, -1},
		{500, 500, math.NaN()},
	} {
		s.field.Reset(dims[0], dims[1], dims[2])
		assert.Zero(s.T(), s.field.StarCount(), "%v", dims)
	}
	assert.False(s.T(), s.field.Spawn(), "empty viewport must not spawn")
}

// TestResetCapsHugeCounts verifies that an overflowing area or density
// is capped instead of crashing the host.
func (s *FieldSuite) TestResetCapsHugeCounts() {
	for _, dims := range [][3]float64{
		{1e200, 1e200, 0.2},
		{1280, 800, 1e300},
		{math.MaxFloat64, 2, 1},
	} {
		require.NotPanics(s.T(), func() { s.field.Reset(dims[0], dims[1], dims[2]) }, "%v", dims)
		assert.Equal(s.T(), MaxStars, s.field.StarCount(), "%v", dims)
	}
	s.field.Reset(1000, 1000, 0.2)
	assert.Equal(s.T(), 250, s.field.StarCount())
}

// TestResetSamplingRanges verifies every sampled star attribute.
func (s *FieldSuite) TestResetSamplingRanges() {
	s.field.Reset(800, 600, 0.4)
	for _, st := range s.field.Stars() {
		require.GreaterOrEqual(s.T(), st.X, 0.0)
		require.Less(s.T(), st.X, 800.0)
		require.GreaterOrEqual(s.T(), st.Y, 0.0)
		require.Less(s.T(), st.Y, 600.0)
		require.GreaterOrEqual(s.T(), st.Size, 0.2)
		require.Less(s.T(), st.Size, 1.6)
		require.GreaterOrEqual(s.T(), st.MaxOpacity, 0.7)
		require.LessOrEqual(s.T(), st.MaxOpacity, 1.0)
		require.GreaterOrEqual(s.T(), math.Abs(st.Speed), 0.001)
		require.Less(s.T(), math.Abs(st.Speed), 0.003)
		require.GreaterOrEqual(s.T(), st.Amplitude, 0.3)
		require.LessOrEqual(s.T(), st.Amplitude, 0.5)
		require.GreaterOrEqual(s.T(), st.Phase, 0.0)
		require.Less(s.T(), st.Phase, 2*math.Pi)
	}
}

// TestResetKeepsStreaks verifies that a resize does not drop streaks in flight.
func (s *FieldSuite) TestResetKeepsStreaks() {
	s.field.Reset(1000, 1000, 0.2)
	require.True(s.T(), s.field.Spawn())
	before := s.field.Streaks()

	s.field.Reset(1200, 900, 0.2)
	require.Equal(s.T(), 1, s.field.StreakCount())
	require.Equal(s.T(), before, s.field.Streaks())
	require.Equal(s.T(), int(math.Floor(1200*900*0.2/800)), s.field.StarCount())
}

// TestLongRunQuiet runs 600 frames with spawning disabled: every star stays
// inside its bounds and no streak ever appears.
func (s *FieldSuite) TestLongRunQuiet() {
	s.field.Reset(1000, 1000, 0.2)
	for i := 1; i <= 600; i++ {
		s.field.Advance(frame, time.Duration(i)*frame)
		require.Zero(s.T(), s.field.StreakCount(), "frame %d", i)
		for _, st := range s.field.Stars() {
			require.GreaterOrEqual(s.T(), st.Opacity, 0.0)
			require.LessOrEqual(s.T(), st.Opacity, st.MaxOpacity)
			require.GreaterOrEqual(s.T(), st.MaxOpacity, 0.7)
			require.LessOrEqual(s.T(), st.MaxOpacity, 1.0)
			require.GreaterOrEqual(s.T(), st.Amplitude, 0.3)
			require.LessOrEqual(s.T(), st.Amplitude, 0.5)
		}
	}
}

// TestTwinkleFormula verifies the sinusoidal opacity update on one star.
func (s *FieldSuite) TestTwinkleFormula() {
	f := NewField(DefaultOptions(), constSource(0.5))
	f.SetStreakFrequency(0)
	f.stars = []Star{{MaxOpacity: 0.8, Phase: 0, Speed: 0.002, Amplitude: 0.4}}
	f.Advance(frame, frame)

	st := f.Stars()[0]
	require.InDelta(s.T(), 0.032, st.Phase, 1e-12)
	require.InDelta(s.T(), 0.8*(0.5+0.4*math.Sin(0.032)), st.Opacity, 1e-12)
}

// TestStreakOpacityNonIncreasing follows one streak to its removal.
func (s *FieldSuite) TestStreakOpacityNonIncreasing() {
	s.field.Reset(1000, 1000, 0)
	require.True(s.T(), s.field.Spawn())

	last := s.field.Streaks()[0].Opacity
	ticks := 0
	for s.field.StreakCount() > 0 {
		s.field.Advance(frame, time.Duration(ticks)*frame)
		ticks++
		require.Less(s.T(), ticks, 10_000, "streak never removed")
		if s.field.StreakCount() == 0 {
			break
		}
		cur := s.field.Streaks()[0].Opacity
		require.LessOrEqual(s.T(), cur, last)
		last = cur
	}
}

// TestStreakRemoval checks removal happens exactly when the head leaves the
// padded viewport or the opacity runs out.
func (s *FieldSuite) TestStreakRemoval() {
	base := Streak{Speed: 4, Opacity: 0.9, FadeSpeed: 0.01, PixelSize: 1.3, Width: 0.8}
	cases := []struct {
		name    string
		x, y    float64
		angle   float64
		opacity float64
		removed bool
	}{
		{"inside", 500, 500, 0, 0.9, false},
		{"right edge", 1049, 500, 0, 0.9, true},
		{"left edge", -49, 500, math.Pi, 0.9, true},
		{"bottom edge", 500, 1049, math.Pi / 2, 0.9, true},
		{"top edge", 500, -49, -math.Pi / 2, 0.9, true},
		{"padding kept", 1040, 500, 0, 0.9, false},
		{"faded out", 500, 500, 0, 0.005, true},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			f := NewField(DefaultOptions(), seeded(1))
			f.SetStreakFrequency(0)
			f.Reset(1000, 1000, 0)
			st := base
			st.X, st.Y, st.Angle, st.Opacity = tc.x, tc.y, tc.angle, tc.opacity
			st.TailX, st.TailY = st.X-math.Cos(st.Angle)*100, st.Y-math.Sin(st.Angle)*100
			f.streaks = []Streak{st}

			f.Advance(frame, frame)
			if tc.removed {
				require.Zero(s.T(), f.StreakCount())
			} else {
				require.Equal(s.T(), 1, f.StreakCount())
			}
		})
	}
}

// TestStreakExitsOnFirstTick forces a spawn near the right edge and feeds a
// huge delta: the streak is gone after exactly one tick.
func (s *FieldSuite) TestStreakExitsOnFirstTick() {
	s.field.Reset(1000, 1000, 0)
	require.True(s.T(), s.field.Spawn())
	st := &s.field.streaks[0]
	st.X, st.Y, st.Angle, st.Speed = 1045, 500, 0, 7
	st.TailX, st.TailY = st.X-100, st.Y

	s.field.Advance(5*time.Second, frame)
	require.Zero(s.T(), s.field.StreakCount())
}

// TestStreakCap drives the spawn probability far above 1.
func (s *FieldSuite) TestStreakCap() {
	s.field.SetStreakFrequency(1e6)
	s.field.Reset(2000, 2000, 0)
	peak := 0
	for i := 1; i <= 1000; i++ {
		s.field.Advance(frame, time.Duration(i)*frame)
		require.LessOrEqual(s.T(), s.field.StreakCount(), MaxStreaks)
		peak = max(peak, s.field.StreakCount())
		require.False(s.T(), s.field.StreakCount() == MaxStreaks && s.field.Spawn())
	}
	require.Equal(s.T(), MaxStreaks, peak)
}

// TestZeroOpacityNeverSpawns verifies spawning scales with the global opacity.
func (s *FieldSuite) TestZeroOpacityNeverSpawns() {
	s.field.SetStreakFrequency(1e6)
	s.field.SetOpacity(0)
	s.field.Reset(1000, 1000, 0.1)
	for i := 1; i <= 200; i++ {
		s.field.Advance(frame, time.Duration(i)*frame)
	}
	require.Zero(s.T(), s.field.StreakCount())
}

// TestDeltaClampedBeforePhysics compares a 5s step with a 32ms step on two
// fields sharing a seed.
func (s *FieldSuite) TestDeltaClampedBeforePhysics() {
	build := func() *Field {
		opts := DefaultOptions()
		opts.StreakFrequency = 0.5
		f := NewField(opts, seeded(99))
		f.Begin(0)
		f.Reset(640, 480, 0.3)
		require.True(s.T(), f.Spawn())
		return f
	}
	a, b := build(), build()
	a.Advance(5*time.Second, time.Second)
	b.Advance(MaxDelta, time.Second)

	require.Equal(s.T(), b.Stars(), a.Stars())
	require.Equal(s.T(), b.Streaks(), a.Streaks())
}

// TestTrailShape checks sample count, fade and jitter bounds.
func (s *FieldSuite) TestTrailShape() {
	s.field.Reset(1000, 1000, 0)
	s.field.streaks = []Streak{{
		X: 500, Y: 500, TailX: 400, TailY: 500,
		Speed: 0, Opacity: 0.9, FadeSpeed: 0.01, PixelSize: 1.5, Width: 0.8,
	}}
	s.field.Advance(frame, frame)

	st := s.field.Streaks()[0]
	// 100 units at the adaptive step max(1.5, 100/50) = 2 gives 50 samples.
	require.Len(s.T(), st.Trail, 50)
	jitter := 1.5 * (0.5 + 1.5/3) / 2
	for i, p := range st.Trail {
		ratio := float64(i) / 50
		require.InDelta(s.T(), st.Opacity*math.Pow(1-ratio, 1.2), p.Opacity, 1e-12)
		require.InDelta(s.T(), 500-100*ratio, p.X, jitter+1e-9)
		require.InDelta(s.T(), 500, p.Y, jitter+1e-9)
		require.GreaterOrEqual(s.T(), p.Size, 1.5*0.7)
		require.LessOrEqual(s.T(), p.Size, 1.5)
		if i > 0 {
			require.Less(s.T(), p.Opacity, st.Trail[i-1].Opacity)
		}
	}
}

// TestSpawnGeometry checks the region and angle of many spawns.
func (s *FieldSuite) TestSpawnGeometry() {
	const w, h = 1000.0, 800.0
	for seed := uint64(0); seed < 300; seed++ {
		f := NewField(DefaultOptions(), seeded(seed))
		f.Reset(w, h, 0)
		require.True(s.T(), f.Spawn())
		st := f.Streaks()[0]

		top := st.Y <= h*0.3 && st.Angle >= math.Pi/4 && st.Angle <= 3*math.Pi/4
		left := st.X <= w*0.2 && st.Y <= h*0.6 && st.Angle >= math.Pi/6 && st.Angle <= math.Pi/2
		right := st.X >= w*0.8 && st.Y <= h*0.6 && st.Angle >= math.Pi/2 && st.Angle <= 5*math.Pi/6
		require.True(s.T(), top || left || right, "seed %d: %+v", seed, st)

		require.InDelta(s.T(), st.Length, math.Hypot(st.X-st.TailX, st.Y-st.TailY), 1e-9)
		require.GreaterOrEqual(s.T(), st.Length, 80.0)
		require.Less(s.T(), st.Length, 200.0)
		require.GreaterOrEqual(s.T(), st.Speed, 4.0)
		require.Less(s.T(), st.Speed, 7.0)
		require.GreaterOrEqual(s.T(), st.Opacity, 0.7)
		require.GreaterOrEqual(s.T(), st.FadeSpeed, 0.006)
		require.Less(s.T(), st.FadeSpeed, 0.016)
		require.GreaterOrEqual(s.T(), st.Color.R, uint8(220))
	}
}

// TestOnSpawnHook verifies the spawn callback receives a detached copy.
func (s *FieldSuite) TestOnSpawnHook() {
	var got []Streak
	s.field.OnSpawn = func(st Streak) { got = append(got, st) }
	s.field.Reset(1000, 1000, 0)
	require.True(s.T(), s.field.Spawn())
	require.Len(s.T(), got, 1)
	require.Equal(s.T(), s.field.Streaks()[0], got[0])
}

func TestFieldSuite(t *testing.T) {
	suite.Run(t, new(FieldSuite))
}
