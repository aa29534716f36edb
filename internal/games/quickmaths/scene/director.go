package scene

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quickmaths/internal/core"
	"github.com/vovakirdan/quickmaths/internal/games/quickmaths/sim"
)

// Simulated is implemented by scenes that run the base simulation.
type Simulated interface {
	Simulation() *sim.Sim
}

// Director owns the single active scene and applies change and reload
// requests once the scene's update has returned.
type Director struct {
	env     Env
	log     *log.Logger
	current Scene

	next   Kind
	change bool
	reload bool
}

// NewDirector creates a director starting at the given scene.
func NewDirector(env Env, start Kind) *Director {
	return &Director{
		env:     env,
		log:     env.Logger.WithPrefix("scene"),
		current: New(env, start),
	}
}

// Current returns the active scene.
func (d *Director) Current() Scene {
	return d.current
}

// ChangeScene implements Switcher.
func (d *Director) ChangeScene(k Kind) {
	d.next = k
	d.change = true
}

// ReloadScene implements Switcher.
func (d *Director) ReloadScene() {
	d.reload = true
}

// Update advances the active scene by one frame, then applies any pending
// request. A change wins over a reload requested in the same frame.
func (d *Director) Update(in core.InputFrame, dt time.Duration) {
	wasDead := d.playerDead()
	d.current.Update(d, in, dt)
	if !wasDead && d.playerDead() {
		s := d.current.(Simulated).Simulation()
		d.log.Info("player died", "scene", d.current.Kind(), "reason", s.Player.DeathReason, "kills", s.Killed)
	}

	switch {
	case d.change:
		d.log.Debug("changing scene", "from", d.current.Kind(), "to", d.next)
		d.current = New(d.env, d.next)
	case d.reload:
		d.log.Debug("reloading scene", "scene", d.current.Kind())
		d.current = New(d.env, d.current.Kind())
	}
	d.change = false
	d.reload = false
}

func (d *Director) playerDead() bool {
	s, ok := d.current.(Simulated)
	return ok && s.Simulation().Player.Dead
}
