package scene

import (
	"time"

	"github.com/vovakirdan/quickmaths/internal/core"
	"github.com/vovakirdan/quickmaths/internal/games/quickmaths/sim"
)

// Level is the endless game: a fresh simulation that gains an enemy every
// spawn interval for as long as the scene lives.
type Level struct {
	Sim     *sim.Sim
	FadeIn  Transition
	Elapsed time.Duration

	env        Env
	spawnTimer time.Duration
}

// NewLevel creates a level scene.
func NewLevel(env Env) *Level {
	return &Level{
		Sim:    sim.New(env.Config, env.Rand, env.Cues),
		FadeIn: NewTransition(env.Config.Scenes.TransitionDuration, WipeIn),
		env:    env,
	}
}

// Kind implements Scene.
func (l *Level) Kind() Kind { return KindLevel }

// SpawnInterval returns the current time between spawns.
func (l *Level) SpawnInterval() time.Duration {
	return l.env.Difficulty.SpawnInterval(l.env.Config.Scenes.LevelSpawnInterval, l.Sim.Killed, l.Elapsed)
}

// Update implements Scene.
func (l *Level) Update(sw Switcher, in core.InputFrame, dt time.Duration) {
	l.Elapsed += dt
	l.spawnTimer += dt
	for interval := l.SpawnInterval(); l.spawnTimer >= interval; interval = l.SpawnInterval() {
		l.spawnTimer -= interval
		l.Sim.SpawnRandom()
	}

	l.FadeIn.Update(dt)
	l.Sim.Update(in, dt)
	if l.Sim.ReloadDue() {
		sw.ReloadScene()
	}
}

// Simulation implements Simulated.
func (l *Level) Simulation() *sim.Sim { return l.Sim }
