package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"orbyte/internal/animation"
)

// Draw fills one circle per mark, in order.
func Draw(screen *ebiten.Image, marks []animation.Mark, antialias bool) {
	for _, m := range marks {
		if m.Alpha <= 0 {
			continue
		}
		vector.DrawFilledCircle(screen, float32(m.X), float32(m.Y), float32(m.Radius), Fade(m.Color, m.Alpha), antialias)
	}
}

// Fade scales c by alpha in [0, 1]. ebiten expects premultiplied color.
func Fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// Stats is what the debug overlay shows.
type Stats struct {
	Phase     animation.Phase
	Particles int
	Width     float64
	Height    float64
	Pointer   bool
}

// Overlay prints debug info in the top-left corner.
func Overlay(screen *ebiten.Image, s Stats) {
	msg := fmt.Sprintf("PHASE: %s\nPARTICLES: %d\nVIEW: %.0fx%.0f\nPOINTER: %v\nTPS: %0.1f FPS: %0.1f\n(R replay, F3 overlay)",
		s.Phase, s.Particles, s.Width, s.Height, s.Pointer, ebiten.ActualTPS(), ebiten.ActualFPS())
	ebitenutil.DebugPrint(screen, msg)
}
