// Package ambience plays the optional soundtrack and the shooting star
// chime.
package ambience

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/starlight/internal/config"
)

// Player owns the speaker. All methods are safe to call on a nil *Player.
type Player struct {
	rate     beep.SampleRate
	initDone bool
	muted    bool
	chimes   bool

	track    *beep.Ctrl
	streamer beep.StreamSeekCloser
	file     *os.File
}

// NewPlayer initialises the speaker. On failure it returns the error and
// no player; audio is then simply absent.
func NewPlayer(chimes bool) (*Player, error) {
	p := &Player{rate: beep.SampleRate(config.SampleRate), chimes: chimes}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	p.initDone = true
	return p, nil
}

// PlayTrack loops an audio file underneath everything else, replacing any
// previous track.
func (p *Player) PlayTrack(path string) error {
	if p == nil {
		return nil
	}
	streamer, format, f, err := open(path)
	if err != nil {
		return err
	}
	p.stopTrack()

	var s beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != p.rate {
		s = beep.Resample(4, format.SampleRate, p.rate, s)
	}
	ctrl := &beep.Ctrl{
		Streamer: &effects.Volume{Streamer: s, Base: 2, Volume: config.TrackVolume},
		Paused:   p.muted,
	}

	speaker.Lock()
	p.track = ctrl
	p.streamer = streamer
	p.file = f
	speaker.Unlock()

	speaker.Play(ctrl)
	log.Printf("ambient track %s (%d Hz)", path, format.SampleRate)
	return nil
}

// Chime rings once for a streak of the given speed. Muted players and
// players created without chimes stay silent.
func (p *Player) Chime(speed float64) {
	if p == nil || !p.chimes {
		return
	}
	speaker.Lock()
	muted := p.muted
	speaker.Unlock()
	if muted {
		return
	}
	d := time.Duration(config.ChimeDuration * float64(time.Second))
	speaker.Play(&effects.Volume{
		Streamer: chime(p.rate, ChimeFrequency(speed), d),
		Base:     2,
		Volume:   config.ChimeVolume,
	})
}

// ToggleMute flips the mute state and reports the new one.
func (p *Player) ToggleMute() bool {
	if p == nil {
		return true
	}
	speaker.Lock()
	defer speaker.Unlock()
	p.muted = !p.muted
	if p.track != nil {
		p.track.Paused = p.muted
	}
	return p.muted
}

// Close stops playback and releases the track file.
func (p *Player) Close() {
	if p == nil || !p.initDone {
		return
	}
	p.stopTrack()
}

// stopTrack clears the mixer, chimes included. speaker.Clear takes the
// speaker lock itself.
func (p *Player) stopTrack() {
	speaker.Clear()
	speaker.Lock()
	streamer, f := p.streamer, p.file
	p.track, p.streamer, p.file = nil, nil, nil
	speaker.Unlock()

	if streamer != nil {
		_ = streamer.Close()
	}
	if f != nil {
		_ = f.Close()
	}
}
