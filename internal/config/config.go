package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"
)

// Shape controls the silhouette particles settle on.
// Bulge 0 degenerates to a plain circle.
type Shape struct {
	Bulge     float64
	Sharpness float64
}

// Layout picks the base ring radius from the viewport size.
type Layout struct {
	CompactWidth float64 // widths at or below this use CompactScale
	CompactScale float64
	Scale        float64
}

// Config is every tunable of the effect.
type Config struct {
	ParticleCount int
	DotSize       float64

	RepulsionRadius   float64
	RepulsionStrength float64
	RotationSpeed     float64 // radians per second

	IntroDuration       time.Duration
	ApproachFraction    float64 // share of IntroDuration a single particle travels for
	IntroCompleteFactor float64 // intro ends once elapsed exceeds IntroDuration * factor
	FadeInRate          float64

	SpawnPadding float64

	RepelBlend  float64
	SettleBlend float64

	AngleJitter  float64
	RadiusJitter float64
	OrbitWobble  float64
	MaxDelay     float64

	Shape  Shape
	Layout Layout

	Color      color.RGBA
	Background color.RGBA

	Seed uint64 // 0 seeds from the clock
}

// Default returns the stock tuning of the effect.
func Default() Config {
	return Config{
		ParticleCount: 600,
		DotSize:       0.85,

		RepulsionRadius:   100,
		RepulsionStrength: 80,
		RotationSpeed:     0.25,

		IntroDuration:       3300 * time.Millisecond,
		ApproachFraction:    0.7,
		IntroCompleteFactor: 1.45,
		FadeInRate:          2.5,

		SpawnPadding: 180,

		RepelBlend:  0.18,
		SettleBlend: 0.08,

		AngleJitter:  0.15,
		RadiusJitter: 0.11,
		OrbitWobble:  0.04,
		MaxDelay:     0.55,

		Shape:  Shape{Bulge: 0, Sharpness: 6},
		Layout: Layout{CompactWidth: 600, CompactScale: 0.63, Scale: 0.40},

		Color:      color.RGBA{0x00, 0x00, 0x00, 0xff},
		Background: color.RGBA{0xff, 0xff, 0xff, 0xff},
	}
}

// IntroEnd is the elapsed intro time after which the driver switches to steady state.
func (c Config) IntroEnd() time.Duration {
	return time.Duration(math.Round(float64(c.IntroDuration) * c.IntroCompleteFactor))
}

// Validate reports every field that would put NaN or Inf into the simulation.
func (c Config) Validate() error {
	var errs []error

	if c.ParticleCount < 1 {
		errs = append(errs, fmt.Errorf("particle count must be at least 1, got %d", c.ParticleCount))
	}
	if c.IntroDuration <= 0 {
		errs = append(errs, fmt.Errorf("intro duration must be positive, got %v", c.IntroDuration))
	}

	nonNegative := []struct {
		name string
		v    float64
	}{
		{"dot size", c.DotSize},
		{"repulsion radius", c.RepulsionRadius},
		{"repulsion strength", c.RepulsionStrength},
		{"approach fraction", c.ApproachFraction},
		{"fade-in rate", c.FadeInRate},
		{"spawn padding", c.SpawnPadding},
		{"angle jitter", c.AngleJitter},
		{"radius jitter", c.RadiusJitter},
		{"orbit wobble", c.OrbitWobble},
		{"shape bulge", c.Shape.Bulge},
		{"shape sharpness", c.Shape.Sharpness},
		{"layout compact scale", c.Layout.CompactScale},
		{"layout scale", c.Layout.Scale},
	}
	for _, f := range nonNegative {
		if f.v < 0 || math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			errs = append(errs, fmt.Errorf("%s must be a finite non-negative number, got %v", f.name, f.v))
		}
	}

	if math.IsNaN(c.RotationSpeed) || math.IsInf(c.RotationSpeed, 0) {
		errs = append(errs, fmt.Errorf("rotation speed must be finite, got %v", c.RotationSpeed))
	}
	if !(c.IntroCompleteFactor >= 1) || math.IsInf(c.IntroCompleteFactor, 0) {
		errs = append(errs, fmt.Errorf("intro complete factor must be finite and at least 1, got %v", c.IntroCompleteFactor))
	}
	if !(c.MaxDelay >= 0 && c.MaxDelay < 1) {
		errs = append(errs, fmt.Errorf("max delay must be in [0, 1), got %v", c.MaxDelay))
	}
	for _, b := range []struct {
		name string
		v    float64
	}{{"repel blend", c.RepelBlend}, {"settle blend", c.SettleBlend}} {
		if !(b.v > 0 && b.v <= 1) {
			errs = append(errs, fmt.Errorf("%s must be in (0, 1], got %v", b.name, b.v))
		}
	}

	return errors.Join(errs...)
}
