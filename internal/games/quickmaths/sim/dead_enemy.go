package sim

import (
	"time"

	"github.com/vovakirdan/quickmaths/internal/config"
	"github.com/vovakirdan/quickmaths/internal/core"
)

// DeadEnemy is the falling, fading remnant of a destroyed enemy.
type DeadEnemy struct {
	Pos      core.Vec2
	Radius   float64
	Vel      core.Vec2
	Life     time.Duration
	Lifetime time.Duration
	Text     string

	gravity float64
	scale   float64
}

func newDeadEnemy(e Enemy, cfg config.DeadEnemyConfig, rng core.Random) DeadEnemy {
	return DeadEnemy{
		Pos:      e.Pos,
		Radius:   e.Radius,
		Vel:      core.V(rng.Float64()-0.5, cfg.Lift),
		Life:     cfg.Lifetime,
		Lifetime: cfg.Lifetime,
		Text:     e.Text,
		gravity:  cfg.Gravity,
		scale:    cfg.Scale,
	}
}

// Update applies gravity, moves the remnant and burns its lifetime.
func (d *DeadEnemy) Update(dt time.Duration) {
	secs := dt.Seconds()
	d.Vel.Y += d.gravity * secs
	d.Pos = d.Pos.Add(d.Vel.Scale(d.scale * secs))
	d.Life -= dt
}

// Alpha returns remaining life as a fraction, for fading.
func (d DeadEnemy) Alpha() float64 {
	if d.Lifetime <= 0 {
		return 0
	}
	return core.ClampF(float64(d.Life)/float64(d.Lifetime), 0, 1)
}
