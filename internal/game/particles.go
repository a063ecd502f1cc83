package game

import (
	"github.com/vovakirdan/neonbreaker/internal/config"
	"github.com/vovakirdan/neonbreaker/internal/core"
)

// Particle is a short-lived decaying point effect.
type Particle struct {
	Pos     core.Vec
	Vel     core.Vec
	Life    int // Ticks remaining
	MaxLife int // Life at spawn, for fading
	Color   core.Color
}

// Alpha returns the remaining fraction of the particle's life in (0, 1].
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// ParticleSystem owns every live particle.
// There is no cap on the count; bursts disappear by natural decay.
type ParticleSystem struct {
	Particles []Particle

	cfg config.ParticlesConfig
	rng *SimpleRNG
}

// NewParticleSystem creates an empty particle system.
func NewParticleSystem(cfg config.ParticlesConfig, rng *SimpleRNG) *ParticleSystem {
	return &ParticleSystem{
		Particles: make([]Particle, 0, cfg.Count*4),
		cfg:       cfg,
		rng:       rng,
	}
}

// Spawn emits one burst at pos. Each particle gets its own random velocity
// (uniform in [-range/2, range/2) per axis) and lifetime (uniform in
// [life_min, life_max] ticks).
func (ps *ParticleSystem) Spawn(pos core.Vec, color core.Color) {
	spread := ps.cfg.LifeMax - ps.cfg.LifeMin + 1
	for range ps.cfg.Count {
		vel := core.V(
			(ps.rng.Float64()-0.5)*ps.cfg.VelocityRange,
			(ps.rng.Float64()-0.5)*ps.cfg.VelocityRange,
		)
		life := ps.cfg.LifeMin + ps.rng.Intn(spread)
		ps.Particles = append(ps.Particles, Particle{
			Pos:     pos,
			Vel:     vel,
			Life:    life,
			MaxLife: life,
			Color:   color,
		})
	}
}

// Update moves every particle, ages it by one tick, and removes the dead ones.
// Removal swaps in the last particle, so survivors do not keep their order.
func (ps *ParticleSystem) Update() {
	for i := 0; i < len(ps.Particles); {
		p := &ps.Particles[i]
		p.Pos = p.Pos.Add(p.Vel)
		p.Life--
		if p.Life <= 0 {
			last := len(ps.Particles) - 1
			ps.Particles[i] = ps.Particles[last]
			ps.Particles = ps.Particles[:last]
			continue
		}
		i++
	}
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.Particles)
}

// Clear removes every particle.
func (ps *ParticleSystem) Clear() {
	ps.Particles = ps.Particles[:0]
}

// Radius is the draw radius shared by all particles.
func (ps *ParticleSystem) Radius() float64 {
	return ps.cfg.Radius
}
