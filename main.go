package main

import (
	"errors"
	"log"
	"math/rand"
	"os"
	"shapeanim/scene"
	"shapeanim/utils"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Llongfile)

	cfg, err := utils.ReadTOML("config.toml")
	if errors.Is(err, os.ErrNotExist) {
		log.Print("no config.toml, using defaults")
		cfg = utils.DefaultConfig()
	} else if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	log.Printf("%+v", cfg)

	// Seed zero means a fresh scene every run.
	seed := cfg.Scene.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("seed: %d", seed)

	s, err := scene.New(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetMaxTPS(cfg.Timing.TPS)

	if err := ebiten.RunGame(s); err != nil && !errors.Is(err, scene.ErrQuit) {
		log.Fatal(err)
	}
}
