package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"orbyte/internal/animation"
	"orbyte/internal/config"
	"orbyte/internal/geometry"
	"orbyte/internal/input"
	"orbyte/internal/render"
)

// Game hosts the driver inside ebiten's loop
type Game struct {
	cfg    config.Config
	driver *animation.Driver
	input  *input.Adapter
	marks  []animation.Mark

	// Size the driver was built for, and the size Layout last saw
	width, height    int
	layoutW, layoutH int

	Overlay bool

	touchIDs []ebiten.TouchID
}

func NewGame(cfg config.Config, rng geometry.Rand) *Game {
	d := animation.New(cfg, rng, animation.SystemClock{})
	return &Game{
		cfg:    cfg,
		driver: d,
		input:  input.NewAdapter(d.Pointer()),
	}
}

// Update: Logic (60 TPS)
func (g *Game) Update() error {
	// 1. Rebuild before stepping so a draw never sees a half-built generation
	if g.layoutW != g.width || g.layoutH != g.height {
		g.width, g.height = g.layoutW, g.layoutH
		log.Printf("viewport %dx%d, rebuilding %d particles", g.width, g.height, g.cfg.ParticleCount)
		g.driver.Resize(float64(g.width), float64(g.height))
	}

	// 2. Input
	g.input.Apply(g.readInput())
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.driver.Replay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.Overlay = !g.Overlay
	}

	// 3. Simulation
	g.marks = g.driver.Step()
	return nil
}

// readInput collects this frame's cursor and touch state
func (g *Game) readInput() input.Snapshot {
	s := input.Snapshot{Focused: ebiten.IsFocused(), Width: g.width, Height: g.height}
	s.CursorX, s.CursorY = ebiten.CursorPosition()

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		s.Touches = append(s.Touches, input.Touch{X: x, Y: y})
	}

	g.touchIDs = inpututil.AppendJustReleasedTouchIDs(g.touchIDs[:0])
	s.TouchEnded = len(g.touchIDs) > 0
	return s
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background)
	render.Draw(screen, g.marks, true)

	if g.Overlay {
		w, h := g.driver.Size()
		render.Overlay(screen, render.Stats{
			Phase:     g.driver.Phase(),
			Particles: len(g.driver.Particles()),
			Width:     w,
			Height:    h,
			Pointer:   g.driver.Pointer().Present,
		})
	}
}

// Layout: render at the window's logical size, one unit per device-independent pixel
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layoutW, g.layoutH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
