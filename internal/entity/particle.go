package entity

import (
	"math"

	"orbyte/internal/config"
	"orbyte/internal/geometry"
)

// Particle is one point of the ring.
// Everything except X and Y is fixed until the store is reinitialized.
type Particle struct {
	Angle          float64 // slot around the ring, radians
	RadiusVariance float64 // own distance from center

	X, Y           float64 // current position
	StartX, StartY float64 // off-screen spawn, used during the intro only

	OrbitOffset float64 // wobble amplitude added to the rotation angle
	Alpha       float64 // target opacity
	Size        float64 // drawn radius
	Delay       float64 // fraction of the intro to wait before moving
}

// newParticle samples slot i of n.
func newParticle(r geometry.Rand, cfg config.Config, i, n int, width, height, radius float64) Particle {
	angle := 2*math.Pi*float64(i)/float64(n) + symmetric(r, cfg.AngleJitter)
	shapeR := geometry.ShapeRadius(angle, radius, cfg.Shape)
	sx, sy := geometry.OffscreenSpawnPoint(r, width, height, cfg.SpawnPadding)

	return Particle{
		Angle:          angle,
		RadiusVariance: shapeR * (1 + symmetric(r, cfg.RadiusJitter)),
		X:              sx,
		Y:              sy,
		StartX:         sx,
		StartY:         sy,
		OrbitOffset:    symmetric(r, cfg.OrbitWobble),
		Alpha:          0.3 + r.Float64()*0.7,
		Size:           cfg.DotSize * (0.5 + r.Float64()),
		Delay:          r.Float64() * cfg.MaxDelay,
	}
}

// symmetric draws uniformly from [-half, half).
func symmetric(r geometry.Rand, half float64) float64 {
	return (r.Float64()*2 - 1) * half
}
