// Package game is the ebiten host: it owns the window, drives the
// starfield from the display loop and draws the page around it.
package game

import (
	"errors"
	"fmt"
	"image"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/starlight/internal/ambience"
	"github.com/iburimskiy/starlight/internal/config"
	"github.com/iburimskiy/starlight/internal/framestats"
	"github.com/iburimskiy/starlight/internal/layout"
	"github.com/iburimskiy/starlight/internal/portfolio"
	"github.com/iburimskiy/starlight/internal/starfield"
	"github.com/iburimskiy/starlight/internal/timestyle"
)

const (
	styleRefresh = time.Second
	scrollStep   = 40.0
	statusTTL    = 4 * time.Second
)

// Game implements ebiten.Game.
type Game struct {
	cfg   config.Config
	clock func() time.Time
	start time.Time

	// sky
	field  *starfield.Field
	anim   *starfield.Animator
	canvas *canvas
	frames *framestats.Ring

	style       timestyle.Style
	palette     timestyle.Palette
	styleTicker time.Time

	// audio, nil when unavailable
	audio *ambience.Player
	muted bool

	font *text.GoTextFaceSource

	// layout
	width, height int
	scale         float64
	page          layout.Page
	scroll        float64

	// input edge detection
	prevKey map[ebiten.Key]bool

	hoveredCard int
	heroHovered bool

	// state
	clockStyle        string
	showDebug         bool
	snapshotRequested bool
	pendingSnapshot   *image.RGBA
	status            string
	statusUntil       time.Time
	lastErr           error
}

// New builds the game. audio may be nil.
func New(cfg config.Config, audio *ambience.Player) (*Game, error) {
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}
	font, err := loadFont()
	if err != nil {
		return nil, err
	}

	opts := starfield.DefaultOptions()
	opts.StreakFrequency = cfg.StreakFrequency
	opts.Background = bg
	opts.Opacity = cfg.Opacity

	g := &Game{
		cfg:         cfg,
		clock:       time.Now,
		field:       starfield.NewField(opts, nil),
		canvas:      newCanvas(),
		frames:      framestats.NewRing(config.FrameRingSize),
		audio:       audio,
		font:        font,
		prevKey:     map[ebiten.Key]bool{},
		hoveredCard: -1,
		clockStyle:  cfg.Clock,
		showDebug:   cfg.Debug,
	}
	g.field.OnSpawn = func(s starfield.Streak) {
		g.audio.Chime(s.Speed)
	}
	g.anim = starfield.NewAnimator(g.field, g.canvas)

	g.start = g.clock()
	g.anim.Start(0)
	g.applyStyle(g.start, 0)
	return g, nil
}

// elapsed is the monotonic time since start, the animator's clock.
func (g *Game) elapsed(now time.Time) time.Duration {
	return now.Sub(g.start)
}

// skyTime is the wall-clock time the sky is drawn for.
func (g *Game) skyTime(now time.Time) time.Time {
	if g.cfg.ForceHour < 0 {
		return now
	}
	return time.Date(now.Year(), now.Month(), now.Day(), g.cfg.ForceHour,
		now.Minute(), now.Second(), now.Nanosecond(), now.Location())
}

func (g *Game) Update() error {
	now := g.clock()
	elapsed := g.elapsed(now)

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.Close()
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyS) {
		g.snapshotRequested = true
	}
	if justPressed(ebiten.KeySpace) && g.audio != nil {
		g.muted = g.audio.ToggleMute()
		if g.muted {
			g.notify(now, "Sound muted")
		} else {
			g.notify(now, "Sound on")
		}
	}
	if justPressed(ebiten.KeyD) {
		g.showDebug = !g.showDebug
	}
	if justPressed(ebiten.KeyC) {
		if g.clockStyle == config.ClockAnalog {
			g.clockStyle = config.ClockJapanese
		} else {
			g.clockStyle = config.ClockAnalog
		}
	}

	g.updatePointer()

	// Save a snapshot captured by the previous Draw. The dialog blocks the
	// loop; the animator sees the gap as one clamped frame.
	if img := g.pendingSnapshot; img != nil {
		g.pendingSnapshot = nil
		path, err := g.saveSnapshot(img)
		switch {
		case err != nil:
			g.fail(now, err)
		case path != "":
			g.notify(now, "Saved "+path)
		}
	}

	if now.Sub(g.styleTicker) >= styleRefresh {
		g.applyStyle(now, elapsed)
	}

	visible := !ebiten.IsWindowMinimized() && (ebiten.IsFocused() || !g.cfg.PauseUnfocused)
	g.anim.SetVisible(visible, elapsed)

	pulse := starfield.Pulse{Active: g.skyTime(now).Hour() == 0, Time: elapsed}
	if _, ok := g.anim.Frame(elapsed, pulse); ok {
		g.frames.Record(g.anim.Interval())
	}
	return nil
}

func (g *Game) updatePointer() {
	_, dy := ebiten.Wheel()
	if dy != 0 {
		g.scroll = layout.ClampScroll(g.scroll-dy*scrollStep, g.page.Height, float64(g.height))
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx)/g.scaleOr1(), float64(my)/g.scaleOr1()+g.scroll
	g.hoveredCard = layout.Hit(g.page.Cards, x, y)
	g.heroHovered = g.page.Hero.Contains(x, y)

	if g.hoveredCard >= 0 && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		card := portfolio.Services[g.hoveredCard]
		if card.Link != "" {
			g.notify(g.clock(), card.Link)
		}
	}
}

// applyStyle pulls the time-of-day look into the field.
func (g *Game) applyStyle(now time.Time, elapsed time.Duration) {
	g.styleTicker = now
	sky := g.skyTime(now)
	g.style = timestyle.At(sky)
	g.palette = timestyle.PaletteAt(sky)

	g.field.SetOpacity(g.style.ParticleOpacity() * g.cfg.Opacity)
	density := g.style.Density
	if g.cfg.Density > 0 {
		density = g.cfg.Density
	}
	g.anim.SetDensity(density, elapsed)
}

func (g *Game) Draw(screen *ebiten.Image) {
	now := g.clock()

	g.drawBackground(screen)
	if g.canvas.img != nil {
		screen.DrawImage(g.canvas.img, nil)
	}

	surface := g.canvas.onto(screen, g.scaleOr1())
	g.drawClock(screen, surface, g.skyTime(now))
	g.drawCards(screen, surface)
	g.drawHero(screen, surface)
	g.drawFooter(screen, now)
	g.drawStatus(screen, now)
	if g.showDebug {
		g.drawDebug(screen)
	}

	if g.snapshotRequested {
		g.snapshotRequested = false
		g.pendingSnapshot = capture(screen)
	}
}

func (g *Game) drawStatus(screen *ebiten.Image, now time.Time) {
	status := g.statusLine(now)
	if status == "" {
		return
	}
	y := int(float64(g.height)*g.scaleOr1()) - config.StatusMargin - config.LineHeight
	ebitenutil.DebugPrintAt(screen, status, config.StatusMargin, y)
}

// statusLine is the transient message, or the last error once the message
// has expired.
func (g *Game) statusLine(now time.Time) string {
	if now.Before(g.statusUntil) {
		return g.status
	}
	if g.lastErr != nil {
		return "Error: " + g.lastErr.Error()
	}
	return ""
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	vis := "visible"
	if !g.anim.Visible() {
		vis = "suspended"
	}
	lines := fmt.Sprintf(
		"FPS %.1f (TPS %.0f)  worst %s\nstars %d  streaks %d  frames %d\nopacity %.2f  density %.3f  %s",
		g.frames.FPS(), ebiten.ActualTPS(), formatFrameTime(g.frames.Worst()),
		g.field.StarCount(), g.field.StreakCount(), g.anim.Frames(),
		g.field.Opacity(), g.field.Density(), vis,
	)
	ebitenutil.DebugPrintAt(screen, lines, config.StatusMargin, config.StatusMargin)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}
	if outsideWidth != g.width || outsideHeight != g.height || scale != g.scale {
		g.width, g.height, g.scale = outsideWidth, outsideHeight, scale
		g.page = layout.Build(float64(outsideWidth), len(portfolio.Services))
		g.scroll = layout.ClampScroll(g.scroll, g.page.Height, float64(outsideHeight))
		g.anim.Resize(starfield.Viewport{
			Width:  float64(outsideWidth),
			Height: float64(outsideHeight),
			Scale:  scale,
		}, g.elapsed(g.clock()))
	}
	return int(math.Ceil(float64(outsideWidth) * g.scaleOr1())), int(math.Ceil(float64(outsideHeight) * g.scaleOr1()))
}

func (g *Game) scaleOr1() float64 {
	if g.scale > 0 {
		return g.scale
	}
	return 1
}

// notify shows a transient status line. It supersedes any earlier error.
func (g *Game) notify(now time.Time, msg string) {
	g.lastErr = nil
	g.setStatus(now, msg)
}

func (g *Game) setStatus(now time.Time, msg string) {
	g.status = msg
	g.statusUntil = now.Add(statusTTL)
	log.Print(msg)
}

// record keeps err as the sticky status until the next notify.
func (g *Game) record(now time.Time, err error) {
	g.lastErr = err
	g.setStatus(now, "Error: "+err.Error())
}

// fail surfaces a non-fatal error in the status line and a dialog.
func (g *Game) fail(now time.Time, err error) {
	g.record(now, err)
	go func() {
		if derr := zenity.Error(err.Error(), zenity.Title("Starlight"), zenity.ErrorIcon); derr != nil && !errors.Is(derr, zenity.ErrCanceled) {
			log.Printf("error dialog: %v", derr)
		}
	}()
}

// Close stops the animation and the audio.
func (g *Game) Close() {
	g.anim.Stop()
	g.audio.Close()
}
