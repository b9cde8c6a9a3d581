package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"PlatformJumper/internal/config"
	"PlatformJumper/internal/game"
	"PlatformJumper/internal/screen"
)

// program entry
func main() {
	cfgPath := flag.String("config", "platformjumper.toml", "TOML file overriding the default tuning")
	seed := flag.Int64("seed", 0, "platform layout seed (0 picks one from the clock)")
	debug := flag.Bool("debug", false, "log each life and show a debug line")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *debug {
		log.Printf("seed %d", *seed)
	}

	g := game.New(cfg, rand.New(rand.NewSource(*seed)))
	s, err := screen.New(g, cfg, *debug)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetTPS(cfg.Window.TPS)
	if err := ebiten.RunGame(s); err != nil {
		log.Fatal(err)
	}
}
