package scene

import (
	"math"
	"time"

	"github.com/vovakirdan/quickmaths/internal/config"
)

// Direction tells which way a radial wipe runs.
type Direction int

const (
	WipeIn  Direction = iota // visible disc grows from the centre
	WipeOut                  // visible disc shrinks to the centre
)

// Transition is a fixed-duration radial wipe.
type Transition struct {
	Direction Direction
	Elapsed   time.Duration
	Duration  time.Duration
}

// NewTransition creates a wipe that has not started.
func NewTransition(d time.Duration, dir Direction) Transition {
	return Transition{Direction: dir, Duration: d}
}

// Update advances the wipe, saturating at its duration.
func (t *Transition) Update(dt time.Duration) {
	t.Elapsed += dt
	if t.Elapsed > t.Duration {
		t.Elapsed = t.Duration
	}
}

// Progress returns 0 at the start and 1 when done.
func (t Transition) Progress() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return float64(t.Elapsed) / float64(t.Duration)
}

// Done reports whether the wipe has run its full duration.
func (t Transition) Done() bool {
	return t.Elapsed >= t.Duration
}

// Radius returns the radius of the visible disc centred on the arena.
func (t Transition) Radius(arena config.ArenaConfig) float64 {
	half := math.Hypot(arena.Width, arena.Height) / 2
	if t.Direction == WipeOut {
		return half * (1 - t.Progress())
	}
	return half * t.Progress()
}
