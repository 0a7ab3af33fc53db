package ambience

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// pentatonic is A major pentatonic across two octaves, in Hz.
var pentatonic = []float64{440, 493.88, 554.37, 659.25, 739.99, 880, 987.77, 1108.73, 1318.51, 1479.98}

const (
	chimeDecay = 6.0 // 1/s
	chimeGain  = 0.25
)

// ChimeFrequency maps a shooting star's speed (4-7 units per frame) onto
// the scale: faster streaks ring higher.
func ChimeFrequency(speed float64) float64 {
	t := (speed - 4) / 3
	t = math.Max(0, math.Min(1, t))
	return pentatonic[int(math.Round(t*float64(len(pentatonic)-1)))]
}

// chime returns a decaying sine ping of the given length. It ends by
// reporting ok=false once the last sample is out.
func chime(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := rate.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			t := float64(pos) / float64(rate)
			// A short linear attack keeps the onset from clicking.
			attack := math.Min(1, t*200)
			v := math.Sin(2*math.Pi*freq*t) * math.Exp(-chimeDecay*t) * attack * chimeGain
			samples[i] = [2]float64{v, v}
			pos++
		}
		return len(samples), true
	})
}
