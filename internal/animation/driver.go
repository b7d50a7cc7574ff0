// Package animation steps the particle ring: the intro assembly, then the steady
// orbit that shies away from the pointer.
package animation

import (
	"image/color"
	"log"
	"math"
	"time"

	"orbyte/internal/config"
	"orbyte/internal/easing"
	"orbyte/internal/entity"
	"orbyte/internal/geometry"
	"orbyte/internal/input"
)

// Phase of the current generation.
type Phase int

const (
	PhaseIntro  Phase = iota // particles travel in from off screen
	PhaseSteady              // particles orbit and react to the pointer
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseSteady:
		return "steady"
	default:
		return "unknown"
	}
}

// Mark is one filled circle to draw.
type Mark struct {
	X, Y   float64
	Radius float64
	Alpha  float64
	Color  color.RGBA
}

// Driver owns the whole simulation state.
// The input adapter writes Pointer(); everything else is private to the driver.
type Driver struct {
	cfg   config.Config
	rng   geometry.Rand
	clock Clock

	width, height    float64
	centerX, centerY float64
	radius           float64

	store   entity.Store
	pointer input.Pointer

	epoch      time.Time // origin of the rotation clock
	introStart time.Time
	phase      Phase
	inert      bool

	marks []Mark
}

// New creates a driver with no viewport. It draws nothing until Resize.
func New(cfg config.Config, rng geometry.Rand, clock Clock) *Driver {
	now := clock.Now()
	return &Driver{
		cfg:        cfg,
		rng:        rng,
		clock:      clock,
		epoch:      now,
		introStart: now,
		inert:      true,
	}
}

// Resize rebuilds the generation for a new viewport and restarts the intro.
// A non-positive or non-finite size leaves the driver inert with no particles.
func (d *Driver) Resize(width, height float64) {
	if !validDimension(width) || !validDimension(height) {
		if !d.inert || d.store.Len() > 0 {
			log.Printf("animation: ignoring viewport %vx%v, going inert", width, height)
		}
		d.width, d.height = 0, 0
		d.store.Clear()
		d.inert = true
		return
	}

	d.width, d.height = width, height
	d.centerX, d.centerY = width/2, height/2
	d.radius = geometry.BaseRadius(width, height, d.cfg.Layout)
	d.inert = false
	d.Replay()
}

// Replay starts a fresh generation and intro on the current viewport.
func (d *Driver) Replay() {
	if d.inert {
		return
	}
	d.store.Reinitialize(d.rng, d.cfg, d.width, d.height, d.radius)
	d.introStart = d.clock.Now()
	d.phase = PhaseIntro
}

// Step runs Update at the driver's clock.
func (d *Driver) Step() []Mark {
	return d.Update(d.clock.Now())
}

// Update advances one frame to now and returns the marks to draw, in particle order.
// The returned slice is reused by the next call.
func (d *Driver) Update(now time.Time) []Mark {
	d.marks = d.marks[:0]
	particles := d.store.Particles()
	if len(particles) == 0 {
		return d.marks
	}

	t := now.Sub(d.epoch).Seconds()
	rotation := t * d.cfg.RotationSpeed
	wobble := math.Sin(t * 0.5)

	elapsed := now.Sub(d.introStart)
	intro := float64(d.cfg.IntroDuration)

	for i := range particles {
		p := &particles[i]

		a := p.Angle + rotation + p.OrbitOffset*wobble
		tx := d.centerX + math.Cos(a)*p.RadiusVariance
		ty := d.centerY + math.Sin(a)*p.RadiusVariance

		var alpha float64
		switch d.phase {
		case PhaseIntro:
			raw, eased := easing.Progress(float64(elapsed), p.Delay, intro, d.cfg.ApproachFraction)
			p.X = p.StartX + (tx-p.StartX)*eased
			p.Y = p.StartY + (ty-p.StartY)*eased
			alpha = p.Alpha * easing.FadeIn(raw, d.cfg.FadeInRate)

		case PhaseSteady:
			blend := d.cfg.SettleBlend
			if rx, ry, ok := repel(tx, ty, d.pointer, d.cfg.RepulsionRadius, d.cfg.RepulsionStrength); ok {
				tx, ty = rx, ry
				blend = d.cfg.RepelBlend
			}
			p.X += (tx - p.X) * blend
			p.Y += (ty - p.Y) * blend
			alpha = p.Alpha
		}

		d.marks = append(d.marks, Mark{X: p.X, Y: p.Y, Radius: p.Size, Alpha: alpha, Color: d.cfg.Color})
	}

	if d.phase == PhaseIntro && elapsed > d.cfg.IntroEnd() {
		d.phase = PhaseSteady
	}

	return d.marks
}

// repel pushes target (tx, ty) away from the pointer when it is within radius.
// Force falls linearly from strength at the pointer to zero at radius.
// A pointer exactly on the target has no direction and contributes nothing.
func repel(tx, ty float64, p input.Pointer, radius, strength float64) (x, y float64, ok bool) {
	if !p.Present {
		return tx, ty, false
	}
	dx, dy := tx-p.X, ty-p.Y
	dist := math.Hypot(dx, dy)
	if dist >= radius || dist == 0 {
		return tx, ty, false
	}
	f := (radius - dist) / radius * strength
	return tx + dx/dist*f, ty + dy/dist*f, true
}

func validDimension(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// Pointer is the field the input adapter writes.
func (d *Driver) Pointer() *input.Pointer { return &d.pointer }

func (d *Driver) Phase() Phase { return d.phase }

// Size reports the current viewport; zero when inert.
func (d *Driver) Size() (width, height float64) { return d.width, d.height }

// Radius is the base ring radius for the current viewport.
func (d *Driver) Radius() float64 { return d.radius }

// Particles is the live generation. Callers must not hold it across Resize.
func (d *Driver) Particles() []entity.Particle { return d.store.Particles() }

// Generation counts rebuilds of the particle store.
func (d *Driver) Generation() int { return d.store.Generation() }
