package sim

import (
	"math"
	"strconv"
	"time"

	"github.com/vovakirdan/quickmaths/internal/config"
	"github.com/vovakirdan/quickmaths/internal/core"
)

// Enemy is a numbered target. While TimeToSpawn is positive it is inert:
// it neither moves nor collides.
type Enemy struct {
	Pos         core.Vec2
	Dir         core.Vec2 // unit heading
	Radius      float64
	TimeToSpawn time.Duration
	SpawnDelay  time.Duration // initial countdown, for fade-in
	Number      int
	Text        string

	// Killed is set during a collision phase and swept at its end.
	Killed bool
}

// Active reports whether the spawn countdown has elapsed.
func (e *Enemy) Active() bool {
	return e.TimeToSpawn <= 0
}

// SpawnProgress returns 0 at creation rising to 1 when the enemy activates.
func (e *Enemy) SpawnProgress() float64 {
	if e.SpawnDelay <= 0 || e.TimeToSpawn <= 0 {
		return 1
	}
	return core.ClampF(1-float64(e.TimeToSpawn)/float64(e.SpawnDelay), 0, 1)
}

// IsHazard reports whether touching this enemy kills the player.
func (e *Enemy) IsHazard(hazard int) bool {
	return e.Number == hazard
}

// Update counts down the spawn delay, then moves the enemy along its heading
// and bounces it off the arena walls.
func (e *Enemy) Update(dt time.Duration, speed float64, arena config.ArenaConfig) {
	e.TimeToSpawn -= dt
	if !e.Active() {
		return
	}

	e.Pos = e.Pos.Add(e.Dir.Scale(speed * dt.Seconds()))

	if e.Pos.X-e.Radius < 0 {
		e.Pos.X = e.Radius
		e.Dir.X = math.Abs(e.Dir.X)
	} else if e.Pos.X+e.Radius > arena.Width {
		e.Pos.X = arena.Width - e.Radius
		e.Dir.X = -math.Abs(e.Dir.X)
	}
	if e.Pos.Y-e.Radius < 0 {
		e.Pos.Y = e.Radius
		e.Dir.Y = math.Abs(e.Dir.Y)
	} else if e.Pos.Y+e.Radius > arena.Height {
		e.Pos.Y = arena.Height - e.Radius
		e.Dir.Y = -math.Abs(e.Dir.Y)
	}
}

// separate pushes e out of other when they overlap. Only e moves.
func (e *Enemy) separate(other *Enemy) {
	dist := e.Pos.Dist(other.Pos)
	overlap := e.Radius + other.Radius - dist
	if overlap <= 0 {
		return
	}
	push := core.FromAngle(e.Pos.AngleTo(other.Pos)).Scale(overlap)
	e.Pos = e.Pos.Sub(push)
}

// RandomEnemy spawns a number enemy or a math enemy with equal odds by
// default (enemies.math_chance).
func RandomEnemy(cfg config.QuickMathsConfig, rng core.Random) Enemy {
	if rng.Float64() < cfg.Enemies.MathChance {
		return MathEnemy(cfg, rng)
	}
	return NumberEnemy(cfg, rng)
}

// NumberEnemy spawns a small enemy labelled with one of the number choices.
func NumberEnemy(cfg config.QuickMathsConfig, rng core.Random) Enemy {
	r := cfg.Enemies.NumberRadius
	heading := core.RandomAngle(rng)
	number := core.RandomChoice(rng, cfg.Enemies.NumberChoices)
	pos := randomInside(cfg.Arena, r, rng)

	return newEnemy(cfg.Enemies, pos, core.FromAngle(heading), r, number, strconv.Itoa(number))
}

// MathEnemy spawns a large enemy labelled with a sum or difference that
// evaluates to its number.
func MathEnemy(cfg config.QuickMathsConfig, rng core.Random) Enemy {
	r := cfg.Enemies.MathRadius
	heading := core.RandomAngle(rng)

	var number int
	if rng.Float64() < cfg.Enemies.HazardChance {
		number = cfg.Enemies.Hazard
	} else {
		number = core.RandomChoice(rng, cfg.Enemies.MathChoices)
	}
	b := roundHalfUp(core.RandomBetween(rng, cfg.Enemies.OperandMin, cfg.Enemies.OperandMax))
	pos := randomInside(cfg.Arena, r, rng)

	return newEnemy(cfg.Enemies, pos, core.FromAngle(heading), r, number, Expression(number, b))
}

// ScriptedEnemy places a stationary number enemy at a fixed position.
// It still waits out the normal spawn delay.
func ScriptedEnemy(cfg config.QuickMathsConfig, pos core.Vec2, number int) Enemy {
	return newEnemy(cfg.Enemies, pos, core.Vec2{}, cfg.Enemies.NumberRadius, number, strconv.Itoa(number))
}

// Expression renders "a+b" or "a-|b|" such that a+b == n.
func Expression(n, b int) string {
	a := strconv.Itoa(n - b)
	if b >= 0 {
		return a + "+" + strconv.Itoa(b)
	}
	return a + "-" + strconv.Itoa(-b)
}

func newEnemy(cfg config.EnemyConfig, pos, dir core.Vec2, radius float64, number int, text string) Enemy {
	return Enemy{
		Pos:         pos,
		Dir:         dir,
		Radius:      radius,
		TimeToSpawn: cfg.SpawnDelay,
		SpawnDelay:  cfg.SpawnDelay,
		Number:      number,
		Text:        text,
	}
}

func randomInside(arena config.ArenaConfig, r float64, rng core.Random) core.Vec2 {
	x := core.RandomBetween(rng, r, arena.Width-r)
	y := core.RandomBetween(rng, r, arena.Height-r)
	return core.V(x, y)
}

// roundHalfUp rounds halves towards positive infinity, so -2.5 becomes -2.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
