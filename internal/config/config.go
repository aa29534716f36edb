// Package config provides YAML-based game configuration loading and
// difficulty management for Quick Maths.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// QuickMathsConfig contains all tunables of the simulation and its scenes.
type QuickMathsConfig struct {
	Arena       ArenaConfig      `yaml:"arena"`
	Player      PlayerConfig     `yaml:"player"`
	Enemies     EnemyConfig      `yaml:"enemies"`
	Bullets     BulletConfig     `yaml:"bullets"`
	DeadEnemies DeadEnemyConfig  `yaml:"dead_enemies"`
	Scenes      SceneConfig      `yaml:"scenes"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the playfield size in arena units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player avatar.
type PlayerConfig struct {
	Radius      float64       `yaml:"radius"`
	Speed       float64       `yaml:"speed"`        // units per second
	Recoil      float64       `yaml:"recoil"`       // units pushed back per shot
	ReloadDelay time.Duration `yaml:"reload_delay"` // time dead before the scene reloads
}

// EnemyConfig defines enemy spawning and movement.
type EnemyConfig struct {
	Speed         float64       `yaml:"speed"`
	SpawnDelay    time.Duration `yaml:"spawn_delay"`
	Hazard        int           `yaml:"hazard"`
	NumberRadius  float64       `yaml:"number_radius"`
	NumberChoices []int         `yaml:"number_choices"`
	MathChance    float64       `yaml:"math_chance"` // probability a spawn is a math enemy
	MathRadius    float64       `yaml:"math_radius"`
	HazardChance  float64       `yaml:"hazard_chance"` // probability a math enemy targets the hazard
	MathChoices   []int         `yaml:"math_choices"`
	OperandMin    float64       `yaml:"operand_min"`
	OperandMax    float64       `yaml:"operand_max"`
}

// BulletConfig defines projectiles and their particle trails.
type BulletConfig struct {
	Radius           float64       `yaml:"radius"`
	Speed            float64       `yaml:"speed"`
	Cap              int           `yaml:"cap"`
	ParticleInterval time.Duration `yaml:"particle_interval"`
	ParticleLifetime time.Duration `yaml:"particle_lifetime"`
	ParticleSpeed    float64       `yaml:"particle_speed"` // upper bound, exclusive
}

// DeadEnemyConfig defines the kill effect.
type DeadEnemyConfig struct {
	Lifetime time.Duration `yaml:"lifetime"`
	Lift     float64       `yaml:"lift"`    // initial upward velocity
	Gravity  float64       `yaml:"gravity"` // added to vertical velocity per second
	Scale    float64       `yaml:"scale"`   // velocity to units per second
}

// SceneConfig defines scene timing.
type SceneConfig struct {
	TransitionDuration time.Duration `yaml:"transition_duration"`
	LevelSpawnInterval time.Duration `yaml:"level_spawn_interval"`
	TutorialExitDelay  time.Duration `yaml:"tutorial_exit_delay"`
	LetterInterval     time.Duration `yaml:"letter_interval"`
	RevealDelay        time.Duration `yaml:"reveal_delay"`
	ProgressRate       float64       `yaml:"progress_rate"` // smoothing per millisecond
	MoveDistance       float64       `yaml:"move_distance"` // distance that completes the move step
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a level.
type ProgressionConfig struct {
	Type     string        `yaml:"type"`      // "kills", "time", or "none"
	MaxKills int           `yaml:"max_kills"` // kills at which max difficulty is reached
	MaxTime  time.Duration `yaml:"max_time"`  // level time at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnReduction   float64       `yaml:"spawn_reduction"` // fraction of the spawn interval removed at max difficulty
	MinSpawnInterval time.Duration `yaml:"min_spawn_interval"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string is accepted and
// means "leave the loaded config alone".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate checks that every value can drive the simulation.
func (c QuickMathsConfig) Validate() error {
	var problems []string
	positive := func(name string, v float64) {
		if v <= 0 {
			problems = append(problems, fmt.Sprintf("%s must be positive, got %v", name, v))
		}
	}
	positiveDur := func(name string, d time.Duration) {
		if d <= 0 {
			problems = append(problems, fmt.Sprintf("%s must be positive, got %v", name, d))
		}
	}
	chance := func(name string, v float64) {
		if v < 0 || v > 1 {
			problems = append(problems, fmt.Sprintf("%s must be within [0, 1], got %v", name, v))
		}
	}

	positive("arena.width", c.Arena.Width)
	positive("arena.height", c.Arena.Height)
	positive("player.radius", c.Player.Radius)
	positive("player.speed", c.Player.Speed)
	positiveDur("player.reload_delay", c.Player.ReloadDelay)
	positive("enemies.speed", c.Enemies.Speed)
	positive("enemies.number_radius", c.Enemies.NumberRadius)
	positive("enemies.math_radius", c.Enemies.MathRadius)
	chance("enemies.math_chance", c.Enemies.MathChance)
	chance("enemies.hazard_chance", c.Enemies.HazardChance)
	if len(c.Enemies.NumberChoices) == 0 {
		problems = append(problems, "enemies.number_choices must not be empty")
	}
	if len(c.Enemies.MathChoices) == 0 {
		problems = append(problems, "enemies.math_choices must not be empty")
	}
	if c.Enemies.OperandMax < c.Enemies.OperandMin {
		problems = append(problems, "enemies.operand_max must not be below operand_min")
	}
	positive("bullets.radius", c.Bullets.Radius)
	positive("bullets.speed", c.Bullets.Speed)
	if c.Bullets.Cap <= 0 {
		problems = append(problems, fmt.Sprintf("bullets.cap must be positive, got %d", c.Bullets.Cap))
	}
	positiveDur("bullets.particle_interval", c.Bullets.ParticleInterval)
	positiveDur("bullets.particle_lifetime", c.Bullets.ParticleLifetime)
	positiveDur("dead_enemies.lifetime", c.DeadEnemies.Lifetime)
	positiveDur("scenes.transition_duration", c.Scenes.TransitionDuration)
	positiveDur("scenes.level_spawn_interval", c.Scenes.LevelSpawnInterval)
	positiveDur("scenes.letter_interval", c.Scenes.LetterInterval)
	positive("scenes.progress_rate", c.Scenes.ProgressRate)
	positive("scenes.move_distance", c.Scenes.MoveDistance)
	chance("difficulty.initial_level", c.Difficulty.InitialLevel)
	switch c.Difficulty.Progression.Type {
	case "", "none", "kills", "time":
	default:
		problems = append(problems, fmt.Sprintf("difficulty.progression.type %q is not one of kills, time, none", c.Difficulty.Progression.Type))
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("config: %w: %s", ErrInvalidConfig, joinProblems(problems))
}

func joinProblems(p []string) string {
	out := p[0]
	for _, s := range p[1:] {
		out += "; " + s
	}
	return out
}
