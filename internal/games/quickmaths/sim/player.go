package sim

import (
	"math"
	"time"

	"github.com/vovakirdan/quickmaths/internal/config"
	"github.com/vovakirdan/quickmaths/internal/core"
)

const (
	tiltStrength = 0.2
	tiltRate     = 0.02 // radians per millisecond of sim time
)

// Player is the avatar controlled by the user.
type Player struct {
	Pos         core.Vec2
	Radius      float64
	Dead        bool
	DeathReason string
	TimeDead    time.Duration
	Angle       float64 // cosmetic tilt, zero while stationary
}

// NewPlayer places a player at the spawn point, centred horizontally and two
// thirds of the way down the arena.
func NewPlayer(cfg config.QuickMathsConfig) Player {
	return Player{
		Pos:    core.V(cfg.Arena.Width/2, 2*(cfg.Arena.Height/3)),
		Radius: cfg.Player.Radius,
	}
}

// Kill marks the player dead. A later call replaces the reason.
func (p *Player) Kill(reason string) {
	p.Dead = true
	p.DeathReason = reason
}

// move applies held directions. Diagonals are not normalised.
func (p *Player) move(in core.InputFrame, dt time.Duration, speed float64, arena config.ArenaConfig, clock time.Duration) {
	prev := p.Pos
	step := speed * dt.Seconds()

	if in.Has(core.ActionLeft) {
		p.Pos.X -= step
	}
	if in.Has(core.ActionRight) {
		p.Pos.X += step
	}
	if in.Has(core.ActionUp) {
		p.Pos.Y -= step
	}
	if in.Has(core.ActionDown) {
		p.Pos.Y += step
	}
	p.clamp(arena)

	if p.Pos != prev {
		ms := float64(clock) / float64(time.Millisecond)
		p.Angle = (math.Sin(ms*tiltRate) - 0.5) * tiltStrength
	} else {
		p.Angle = 0
	}
}

func (p *Player) clamp(arena config.ArenaConfig) {
	p.Pos.X = core.ClampF(p.Pos.X, p.Radius, arena.Width-p.Radius)
	p.Pos.Y = core.ClampF(p.Pos.Y, p.Radius, arena.Height-p.Radius)
}
