package tinsel

import (
	"math/rand/v2"

	"github.com/tanema/gween/ease"
)

// ParticleSize is the range of per-particle sizes drawn at pool creation.
var ParticleSize = Range{Min: 0.05, Max: 0.17}

// Particle is one point of the pool. Base is written only by the pool's
// retarget tween; Render is derived from Base every frame by the motion layer.
type Particle struct {
	Base   Vec3
	Render Vec3
	Size   float64
}

// Pool is a fixed-size, ordered set of particles morphing between shapes.
// The particle count never changes after NewPool.
type Pool struct {
	particles []Particle

	// Retarget state: one synchronized progress value drives every particle
	// from its captured start to its target point.
	start    []Vec3
	target   []Vec3
	progress float64
	slot     Slot
}

// NewPool creates count particles placed at the given initial points. Missing
// points default to the origin. Sizes are drawn once from ParticleSize.
func NewPool(rng *rand.Rand, count int, initial []Vec3) *Pool {
	rng = ensureRand(rng)
	count = clampCount(count)
	p := &Pool{
		particles: make([]Particle, count),
		start:     make([]Vec3, count),
		target:    make([]Vec3, count),
	}
	for i := range p.particles {
		pt := pointAt(initial, i)
		p.particles[i] = Particle{
			Base:   pt,
			Render: pt,
			Size:   ParticleSize.Sample(rng),
		}
	}
	return p
}

// Len returns the number of particles.
func (p *Pool) Len() int {
	return len(p.particles)
}

// Particles returns the live particle slice. Callers must not resize it.
func (p *Pool) Particles() []Particle {
	return p.particles
}

// Retarget starts moving every particle from its current base position to
// the matching point of target. A running retarget is replaced and the new
// one starts from the current interpolated positions. Indices missing from
// target move to the origin.
func (p *Pool) Retarget(target []Vec3, duration float32, fn ease.TweenFunc) {
	for i := range p.particles {
		p.start[i] = p.particles[i].Base
		p.target[i] = pointAt(target, i)
	}
	p.progress = 0
	p.slot.Start(TweenFloat(&p.progress, 1, duration, fn).OnStep(p.apply))
}

// Busy reports whether a retarget is in flight.
func (p *Pool) Busy() bool {
	return p.slot.Active()
}

// Update advances the retarget tween by dt seconds.
func (p *Pool) Update(dt float32) {
	p.slot.Update(dt)
}

func (p *Pool) apply() {
	t := p.progress
	for i := range p.particles {
		p.particles[i].Base = p.start[i].Lerp(p.target[i], t)
	}
}

// Sample returns a value drawn uniformly from [Min, Max].
func (r Range) Sample(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// pointAt returns pts[i], or the origin when pts is too short.
func pointAt(pts []Vec3, i int) Vec3 {
	if i < len(pts) {
		return pts[i]
	}
	return Vec3{}
}
