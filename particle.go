package blockfall

import (
	"math/rand/v2"
)

// FallingBlock is a single falling colored square. Owned by ParticleSystem.
type FallingBlock struct {
	X, Y    float64
	Size    int     // edge length in pixels
	Speed   float64 // fall speed in pixels per second
	Color   Color
	Life    float64 // remaining lifetime in seconds
	MaxLife float64 // initial lifetime (for computing the fade)
}

// LifeFraction returns the remaining share of the particle's lifetime,
// clamped to [0, 1].
func (b FallingBlock) LifeFraction() float64 {
	if b.MaxLife <= 0 {
		return 0
	}
	return clamp01(b.Life / b.MaxLife)
}

// spawnSizeClasses weights single-pixel blocks three to one over doubles.
var spawnSizeClasses = [...]int{1, 1, 1, 2}

// spawnColors is the palette falling blocks draw their color from.
var spawnColors = [...]Color{GrassTop, GrassEdge, Dirt, Stone, Wood}

// ParticleSystem spawns, ages and culls falling blocks. Spawns follow a
// jittered interval: after each spawn the next gap is drawn from a normal
// distribution around the mean and floored at a minimum.
type ParticleSystem struct {
	cfg       Config
	rng       *rand.Rand
	width     float64
	height    float64
	pixelSize int

	particles []FallingBlock
	accum     float64
	interval  float64
	spawned   int
}

// NewParticleSystem creates an empty system for a screen of the given size.
// pixelSize is the block sprite's cell size; spawned blocks are one or two
// cells wide.
func NewParticleSystem(cfg Config, width, height, pixelSize int, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		cfg:       cfg,
		rng:       rng,
		width:     float64(width),
		height:    float64(height),
		pixelSize: pixelSize,
		particles: make([]FallingBlock, 0, 128),
		interval:  cfg.SpawnInterval,
	}
}

// Particles returns the active particles. The returned slice MUST NOT be
// mutated and is only valid until the next Update.
func (ps *ParticleSystem) Particles() []FallingBlock {
	return ps.particles
}

// Len returns the number of active particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Spawned returns the total number of particles spawned since creation or
// the last Reset.
func (ps *ParticleSystem) Spawned() int {
	return ps.spawned
}

// Interval returns the gap the next spawn is waiting for.
func (ps *ParticleSystem) Interval() float64 {
	return ps.interval
}

// Reset drops every particle and restarts the spawn schedule.
func (ps *ParticleSystem) Reset() {
	ps.particles = ps.particles[:0]
	ps.accum = 0
	ps.interval = ps.cfg.SpawnInterval
	ps.spawned = 0
}

// Update advances the simulation by dt seconds and reports whether a new
// particle was spawned this frame. At most one particle spawns per call.
func (ps *ParticleSystem) Update(dt float64) bool {
	spawned := false
	ps.accum += dt
	if ps.accum >= ps.interval {
		ps.accum -= ps.interval
		ps.interval = ps.nextInterval()
		ps.particles = append(ps.particles, ps.spawn())
		ps.spawned++
		spawned = true
	}

	limit := ps.height + ps.cfg.RemovalMargin
	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.Y += p.Speed * dt
		p.Life -= dt
		if p.Life > 0 && p.Y < limit {
			alive = append(alive, p)
		}
	}
	// Zero the tail so culled particles do not linger in the backing array.
	clear(ps.particles[len(alive):])
	ps.particles = alive

	return spawned
}

// nextInterval draws a fresh spawn gap.
func (ps *ParticleSystem) nextInterval() float64 {
	mean := ps.cfg.SpawnInterval
	gap := mean + ps.rng.NormFloat64()*mean*ps.cfg.SpawnJitter
	return max(ps.cfg.MinSpawnInterval, gap)
}

// spawn builds a particle with independently drawn attributes.
func (ps *ParticleSystem) spawn() FallingBlock {
	size := spawnSizeClasses[ps.rng.IntN(len(spawnSizeClasses))] * ps.pixelSize
	fs := float64(size)

	life := ps.cfg.LifeBase + ps.rng.Float64()*ps.cfg.LifeSpread
	return FallingBlock{
		X:       Range{0, max(0, ps.width-fs)}.Random(ps.rng),
		Y:       -fs - Range{0, ps.height * ps.cfg.SpawnHeadroom}.Random(ps.rng),
		Size:    size,
		Speed:   ps.cfg.FallSpeed.Random(ps.rng),
		Color:   spawnColors[ps.rng.IntN(len(spawnColors))],
		Life:    life,
		MaxLife: life,
	}
}
