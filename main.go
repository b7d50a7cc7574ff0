package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"orbyte/internal/config"
)

// Window defaults
const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Orbyte"
)

func main() {
	cfg := config.Default()

	// 1. Flags
	flag.IntVar(&cfg.ParticleCount, "particles", cfg.ParticleCount, "number of particles in the ring")
	flag.Float64Var(&cfg.DotSize, "dot-size", cfg.DotSize, "base radius of a particle")
	flag.Float64Var(&cfg.RepulsionRadius, "repel-radius", cfg.RepulsionRadius, "pointer distance that pushes particles away")
	flag.Float64Var(&cfg.RepulsionStrength, "repel-strength", cfg.RepulsionStrength, "push distance for a pointer sitting on a particle")
	flag.Float64Var(&cfg.RotationSpeed, "rotation", cfg.RotationSpeed, "ring rotation in radians per second")
	flag.DurationVar(&cfg.IntroDuration, "intro", cfg.IntroDuration, "intro assembly duration")
	flag.Float64Var(&cfg.SpawnPadding, "spawn-padding", cfg.SpawnPadding, "distance beyond the screen edge particles start from")
	flag.Float64Var(&cfg.RepelBlend, "repel-blend", cfg.RepelBlend, "per-frame easing towards a repelled target")
	flag.Float64Var(&cfg.SettleBlend, "settle-blend", cfg.SettleBlend, "per-frame easing towards the orbit")
	flag.Float64Var(&cfg.Shape.Bulge, "bulge", cfg.Shape.Bulge, "lobe size of the silhouette, 0 for a circle")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for a time based seed")
	overlay := flag.Bool("debug", false, "show the debug overlay")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	// 2. Window Setup
	ebiten.SetWindowSize(WindowWidth, WindowHeight)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// 3. Initialize Game
	game := NewGame(cfg, rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)))
	game.Overlay = *overlay

	// 4. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
