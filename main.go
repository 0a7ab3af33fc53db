package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/starlight/internal/ambience"
	"github.com/iburimskiy/starlight/internal/config"
	"github.com/iburimskiy/starlight/internal/game"
)

func main() {
	log.SetPrefix("starlight: ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var audio *ambience.Player
	if cfg.Chime || cfg.AmbientTrack != "" {
		audio, err = ambience.NewPlayer(cfg.Chime)
		if err != nil {
			log.Printf("audio disabled: %v", err)
		}
	}
	if cfg.AmbientTrack != "" {
		if err := audio.PlayTrack(cfg.AmbientTrack); err != nil {
			log.Printf("ambient track: %v", err)
		}
	}

	g, err := game.New(cfg, audio)
	if err != nil {
		log.Fatalf("start: %v", err)
	}
	defer g.Close()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("run: %v", err)
	}
}
