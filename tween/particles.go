package tween

import (
	"image/color"
	"math"
)

// Particle motion constants, in pixels and life units per frame.
const (
	ParticleMinSpeed   = 2.0
	ParticleSpeedRange = 3.0
	ParticleUpwardBias = -2.0
	ParticleMinSize    = 3.0
	ParticleSizeRange  = 3.0
	ParticleGravity    = 0.1
	ParticleLifeDecay  = 0.02
	DefaultBurstCount  = 10
)

// Particle is one spark of a burst. Alpha tracks Life/MaxLife.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Size    float64
	Color   color.RGBA
	Alpha   float64
}

// Burst emits count particles in an even radial fan around (x, y).
func (r *Registry) Burst(x, y float64, clr color.RGBA, count int) {
	if count <= 0 {
		count = DefaultBurstCount
	}
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		speed := ParticleMinSpeed + r.rng.Float64()*ParticleSpeedRange
		r.particles = append(r.particles, Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle)*speed + ParticleUpwardBias,
			Life:    1,
			MaxLife: 1,
			Size:    ParticleMinSize + r.rng.Float64()*ParticleSizeRange,
			Color:   clr,
			Alpha:   1,
		})
	}
}

// AdvanceParticles integrates one frame of motion and drops dead particles.
func (r *Registry) AdvanceParticles() {
	alive := r.particles[:0]
	for _, p := range r.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += ParticleGravity
		p.Life -= ParticleLifeDecay
		if p.Life <= 0 {
			continue
		}
		p.Alpha = p.Life / p.MaxLife
		alive = append(alive, p)
	}
	clear(r.particles[len(alive):])
	r.particles = alive
}

// Particles returns the live particles. The slice is owned by the registry
// and only valid until the next AdvanceParticles or Burst.
func (r *Registry) Particles() []Particle {
	return r.particles
}

// AppendParticles copies the live particles onto dst.
func (r *Registry) AppendParticles(dst []Particle) []Particle {
	return append(dst, r.particles...)
}
