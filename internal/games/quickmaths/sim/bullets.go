package sim

import (
	"time"

	"github.com/vovakirdan/quickmaths/internal/config"
	"github.com/vovakirdan/quickmaths/internal/core"
)

// Bullet is a projectile fired by the player.
type Bullet struct {
	Pos    core.Vec2
	Dir    core.Vec2
	Radius float64
	Dead   bool

	particleTimer time.Duration
}

// Particle is a cosmetic trail dot left behind by a bullet.
type Particle struct {
	Pos    core.Vec2
	Radius float64
	Life   time.Duration
	Angle  float64
	Speed  float64

	startRadius float64
}

// Bullets owns all projectiles and their trail particles.
type Bullets struct {
	Projectiles []Bullet
	Particles   []Particle

	cfg config.BulletConfig
	rng core.Random
}

// NewBullets creates an empty projectile set.
func NewBullets(cfg config.BulletConfig, rng core.Random) Bullets {
	return Bullets{cfg: cfg, rng: rng}
}

// Spawn fires a bullet from origin along angle.
func (b *Bullets) Spawn(origin core.Vec2, angle float64) {
	b.Projectiles = append(b.Projectiles, Bullet{
		Pos:    origin,
		Dir:    core.FromAngle(angle),
		Radius: b.cfg.Radius,
	})
}

// Update moves live bullets, emits trail particles and decays them.
// Emission uses an accumulator so long frames emit every particle they owe.
func (b *Bullets) Update(dt time.Duration) {
	for i := range b.Projectiles {
		p := &b.Projectiles[i]
		if !p.Dead {
			p.Pos = p.Pos.Add(p.Dir.Scale(b.cfg.Speed * dt.Seconds()))
		}
		p.particleTimer += dt
		for p.particleTimer >= b.cfg.ParticleInterval {
			b.emit(p)
			p.particleTimer -= b.cfg.ParticleInterval
		}
	}

	secs := dt.Seconds()
	for i := range b.Particles {
		pt := &b.Particles[i]
		pt.Life -= dt
		pt.Pos = pt.Pos.Add(core.FromAngle(pt.Angle).Scale(pt.Speed * secs))
		if pt.Life > 0 {
			pt.Radius = pt.startRadius * float64(pt.Life) / float64(b.cfg.ParticleLifetime)
		} else {
			pt.Radius = 0
		}
	}

	alive := b.Particles[:0]
	for _, pt := range b.Particles {
		if pt.Life > 0 {
			alive = append(alive, pt)
		}
	}
	b.Particles = alive
}

func (b *Bullets) emit(from *Bullet) {
	r := from.Radius / 2
	b.Particles = append(b.Particles, Particle{
		Pos:         from.Pos,
		Radius:      r,
		Life:        b.cfg.ParticleLifetime,
		Angle:       core.RandomAngle(b.rng),
		Speed:       b.rng.Float64() * b.cfg.ParticleSpeed,
		startRadius: r,
	})
}

// Prune drops dead bullets, then the oldest survivors beyond the cap.
func (b *Bullets) Prune() {
	live := b.Projectiles[:0]
	for _, p := range b.Projectiles {
		if !p.Dead {
			live = append(live, p)
		}
	}
	if over := len(live) - b.cfg.Cap; over > 0 {
		live = append(live[:0], live[over:]...)
	}
	b.Projectiles = live
}

// Alpha returns the particle's remaining life as a fraction.
func (pt Particle) Alpha(lifetime time.Duration) float64 {
	if lifetime <= 0 {
		return 0
	}
	return core.ClampF(float64(pt.Life)/float64(lifetime), 0, 1)
}
