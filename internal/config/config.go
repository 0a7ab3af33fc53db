package config

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	WindowTitle = "Evening - Esc/Q: Quit, S: Snapshot, Space: Mute, C: Clock, D: Debug"

	// Card layout, in layout units
	CardWidth    = 300
	CardHeight   = 150
	CardGap      = 24
	CardPadding  = 16
	MaxColumns   = 3
	HeroWidth    = 560
	HeroHeight   = 210
	PageMargin   = 40
	LineHeight   = 16
	ClockRadius  = 90
	StatusMargin = 12

	// Frame statistics
	FrameRingSize = 120

	// MaxDensity bounds STARLIGHT_DENSITY, in stars per 800 square units
	MaxDensity = 10

	// Audio
	SampleRate    = 44100
	TrackVolume   = -1.5
	ChimeVolume   = -2.0
	ChimeDuration = 0.9 // seconds
)

// Clock styles.
const (
	ClockAnalog   = "analog"
	ClockJapanese = "japanese"
)

// Config is read from STARLIGHT_* environment variables.
type Config struct {
	Width  int `env:"STARLIGHT_WIDTH" envDefault:"1280"`
	Height int `env:"STARLIGHT_HEIGHT" envDefault:"800"`

	// Density overrides the time-of-day star density when positive.
	Density         float64 `env:"STARLIGHT_DENSITY" envDefault:"0"`
	StreakFrequency float64 `env:"STARLIGHT_STREAK_FREQUENCY" envDefault:"0.01"`
	Background      string  `env:"STARLIGHT_BACKGROUND"`
	Opacity         float64 `env:"STARLIGHT_OPACITY" envDefault:"1"`

	PauseUnfocused bool   `env:"STARLIGHT_PAUSE_UNFOCUSED" envDefault:"true"`
	Clock          string `env:"STARLIGHT_CLOCK" envDefault:"analog"`
	// ForceHour pins the sky to an hour of the day; negative follows the clock.
	ForceHour int `env:"STARLIGHT_FORCE_HOUR" envDefault:"-1"`

	Chime        bool   `env:"STARLIGHT_CHIME" envDefault:"false"`
	AmbientTrack string `env:"STARLIGHT_AMBIENT_TRACK"`

	Debug bool `env:"STARLIGHT_DEBUG" envDefault:"false"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Clock = strings.ToLower(cfg.Clock)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the program cannot start with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Opacity < 0 || c.Opacity > 1 {
		return fmt.Errorf("opacity %v outside [0,1]", c.Opacity)
	}
	if !(c.Density >= 0 && c.Density <= MaxDensity) {
		return fmt.Errorf("density %v outside [0,%d]", c.Density, MaxDensity)
	}
	if !(c.StreakFrequency >= 0 && c.StreakFrequency <= 1) {
		return fmt.Errorf("streak frequency %v outside [0,1]", c.StreakFrequency)
	}
	if c.ForceHour > 23 {
		return fmt.Errorf("force hour %d outside 0-23", c.ForceHour)
	}
	switch c.Clock {
	case ClockAnalog, ClockJapanese:
	default:
		return fmt.Errorf("unknown clock style %q", c.Clock)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	return nil
}

// BackgroundColor parses Background as a hex colour. Empty means
// transparent.
func (c Config) BackgroundColor() (color.NRGBA, error) {
	if c.Background == "" {
		return color.NRGBA{}, nil
	}
	col, err := colorful.Hex(c.Background)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("background %q: %w", c.Background, err)
	}
	r, g, b := col.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
