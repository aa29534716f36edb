package sim

import (
	"fmt"
	"time"

	"github.com/vovakirdan/quickmaths/internal/config"
	"github.com/vovakirdan/quickmaths/internal/core"
)

// Sim is the base simulation shared by the tutorial and level scenes.
type Sim struct {
	Player      Player
	Bullets     Bullets
	Enemies     []Enemy
	DeadEnemies []DeadEnemy
	Killed      int

	cfg   config.QuickMathsConfig
	rng   core.Random
	cues  core.CuePlayer
	clock time.Duration
}

// New creates a fresh simulation with the player at the spawn point.
// A nil cue player is replaced by core.NopCuePlayer.
func New(cfg config.QuickMathsConfig, rng core.Random, cues core.CuePlayer) *Sim {
	if cues == nil {
		cues = core.NopCuePlayer{}
	}
	return &Sim{
		Player:  NewPlayer(cfg),
		Bullets: NewBullets(cfg.Bullets, rng),
		cfg:     cfg,
		rng:     rng,
		cues:    cues,
	}
}

// Config returns the configuration the simulation was built with.
func (s *Sim) Config() config.QuickMathsConfig {
	return s.cfg
}

// Clock returns the total simulated time.
func (s *Sim) Clock() time.Duration {
	return s.clock
}

// SpawnRandom adds a randomly chosen enemy.
func (s *Sim) SpawnRandom() {
	s.Enemies = append(s.Enemies, RandomEnemy(s.cfg, s.rng))
}

// SpawnAt adds a stationary enemy at a fixed position.
func (s *Sim) SpawnAt(pos core.Vec2, number int) {
	s.Enemies = append(s.Enemies, ScriptedEnemy(s.cfg, pos, number))
}

// AddEnemy adds a prepared enemy.
func (s *Sim) AddEnemy(e Enemy) {
	s.Enemies = append(s.Enemies, e)
}

// ReloadDue reports whether the player has been dead long enough for the
// owning scene to reload.
func (s *Sim) ReloadDue() bool {
	return s.Player.Dead && s.Player.TimeDead > s.cfg.Player.ReloadDelay
}

// Update advances the simulation by one frame. The order of the phases
// decides the outcome of simultaneous events and must not change.
func (s *Sim) Update(in core.InputFrame, dt time.Duration) {
	s.clock += dt

	if s.Player.Dead {
		s.Player.TimeDead += dt
		return
	}

	s.Player.move(in, dt, s.cfg.Player.Speed, s.cfg.Arena, s.clock)
	if in.Clicked {
		s.shoot(in.Cursor)
	}
	s.updateEnemies(dt)
	s.Bullets.Update(dt)
	s.Bullets.Prune()
	s.bulletsHitEnemies()
	s.playerTouchesEnemies()
	s.updateDeadEnemies(dt)
}

func (s *Sim) shoot(cursor core.Vec2) {
	s.cues.Play(core.CueShoot)
	angle := s.Player.Pos.AngleTo(cursor)
	s.Bullets.Spawn(s.Player.Pos, angle)
	s.Player.Pos = s.Player.Pos.Sub(core.FromAngle(angle).Scale(s.cfg.Player.Recoil))
}

// updateEnemies moves every enemy and separates it from the active enemies
// it overlaps in the same pass, so later enemies see earlier results.
func (s *Sim) updateEnemies(dt time.Duration) {
	for i := range s.Enemies {
		e := &s.Enemies[i]
		e.Update(dt, s.cfg.Enemies.Speed, s.cfg.Arena)
		if !e.Active() {
			continue
		}
		for j := range s.Enemies {
			if i == j || !s.Enemies[j].Active() {
				continue
			}
			e.separate(&s.Enemies[j])
		}
	}
}

// bulletsHitEnemies resolves each bullet against the newest active enemy it
// overlaps. Shooting the hazard destroys it; anything else kills the player.
func (s *Sim) bulletsHitEnemies() {
	hazard := s.cfg.Enemies.Hazard
	for bi := range s.Bullets.Projectiles {
		b := &s.Bullets.Projectiles[bi]
		for i := len(s.Enemies) - 1; i >= 0; i-- {
			e := &s.Enemies[i]
			if e.Killed || !e.Active() {
				continue
			}
			if !core.CirclesOverlap(e.Pos, e.Radius, b.Pos, b.Radius) {
				continue
			}
			if e.IsHazard(hazard) {
				b.Dead = true
				s.destroy(e)
			} else {
				s.Player.Kill(fmt.Sprintf("you shot %s!", e.Text))
			}
			s.cues.Play(core.CueHit)
			break
		}
	}
	s.sweepEnemies()
}

// playerTouchesEnemies resolves every active enemy overlapping the player.
func (s *Sim) playerTouchesEnemies() {
	hazard := s.cfg.Enemies.Hazard
	for i := len(s.Enemies) - 1; i >= 0; i-- {
		e := &s.Enemies[i]
		if e.Killed || !e.Active() {
			continue
		}
		if !core.CirclesOverlap(e.Pos, e.Radius, s.Player.Pos, s.Player.Radius) {
			continue
		}
		if e.IsHazard(hazard) {
			s.Player.Kill(fmt.Sprintf("you touched %s!", e.Text))
		} else {
			s.destroy(e)
		}
		s.cues.Play(core.CueHit)
	}
	s.sweepEnemies()
}

func (s *Sim) destroy(e *Enemy) {
	e.Killed = true
	s.DeadEnemies = append(s.DeadEnemies, newDeadEnemy(*e, s.cfg.DeadEnemies, s.rng))
	s.Killed++
}

// sweepEnemies removes killed enemies, keeping survivors in order.
func (s *Sim) sweepEnemies() {
	alive := s.Enemies[:0]
	for _, e := range s.Enemies {
		if !e.Killed {
			alive = append(alive, e)
		}
	}
	s.Enemies = alive
}

func (s *Sim) updateDeadEnemies(dt time.Duration) {
	alive := s.DeadEnemies[:0]
	for i := range s.DeadEnemies {
		d := s.DeadEnemies[i]
		d.Update(dt)
		if d.Life > 0 {
			alive = append(alive, d)
		}
	}
	s.DeadEnemies = alive
}
