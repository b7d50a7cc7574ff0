// Package geometry places particles on the target silhouette and off screen.
package geometry

import (
	"math"

	"orbyte/internal/config"
)

// Rand is the randomness geometry consumes. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Edge of the viewport a spawn point lies beyond.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// ShapeRadius returns the silhouette radius at angle.
// Four lobes at the axes grow with s.Bulge; a zero bulge is a circle of radius base.
func ShapeRadius(angle, base float64, s config.Shape) float64 {
	if s.Bulge == 0 {
		return base
	}
	return base * (1 + s.Bulge*math.Pow(math.Abs(math.Cos(2*angle)), s.Sharpness))
}

// OffscreenSpawnPoint returns a point pad units beyond a uniformly chosen edge,
// spread uniformly along that edge.
func OffscreenSpawnPoint(r Rand, width, height, pad float64) (x, y float64) {
	switch Edge(r.IntN(4)) {
	case EdgeTop:
		return r.Float64() * width, -pad
	case EdgeBottom:
		return r.Float64() * width, height + pad
	case EdgeLeft:
		return -pad, r.Float64() * height
	default:
		return width + pad, r.Float64() * height
	}
}

// BaseRadius sizes the ring for a viewport. Narrow viewports get a larger share
// of the short side so the ring still reads on a phone.
func BaseRadius(width, height float64, l config.Layout) float64 {
	short := math.Min(width, height)
	if width <= l.CompactWidth {
		return short * l.CompactScale
	}
	return short * l.Scale
}
