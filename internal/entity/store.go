package entity

import (
	"orbyte/internal/config"
	"orbyte/internal/geometry"
)

// Store holds the current particle generation.
type Store struct {
	particles  []Particle
	generation int
}

// Reinitialize replaces the whole generation with cfg.ParticleCount fresh particles
// for a width x height viewport and a ring of the given base radius.
// The new slice is built completely before it is swapped in.
func (s *Store) Reinitialize(r geometry.Rand, cfg config.Config, width, height, radius float64) {
	n := cfg.ParticleCount
	next := make([]Particle, n)
	for i := range next {
		next[i] = newParticle(r, cfg, i, n, width, height, radius)
	}
	s.particles = next
	s.generation++
}

// Clear drops the generation, leaving an empty store.
func (s *Store) Clear() {
	s.particles = nil
	s.generation++
}

// Particles exposes the generation for in-place updates.
func (s *Store) Particles() []Particle { return s.particles }

func (s *Store) Len() int { return len(s.particles) }

// Generation counts reinitializations.
func (s *Store) Generation() int { return s.generation }
