package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/quickmaths.yaml
var defaultQuickMathsYAML []byte

// DefaultQuickMathsConfig returns the built-in configuration. It mirrors
// defaults/quickmaths.yaml and is used when the embedded file cannot be parsed.
func DefaultQuickMathsConfig() QuickMathsConfig {
	return QuickMathsConfig{
		Arena: ArenaConfig{
			Width:  100,
			Height: 100,
		},
		Player: PlayerConfig{
			Radius:      2,
			Speed:       30,
			Recoil:      0.5,
			ReloadDelay: time.Second,
		},
		Enemies: EnemyConfig{
			Speed:         20,
			SpawnDelay:    3 * time.Second,
			Hazard:        13,
			NumberRadius:  3,
			NumberChoices: []int{13, 14, 15},
			MathChance:    0.5,
			MathRadius:    5,
			HazardChance:  0.5,
			MathChoices:   []int{11, 12, 14, 15},
			OperandMin:    -9,
			OperandMax:    9,
		},
		Bullets: BulletConfig{
			Radius:           1.5,
			Speed:            100,
			Cap:              20,
			ParticleInterval: 10 * time.Millisecond,
			ParticleLifetime: 500 * time.Millisecond,
			ParticleSpeed:    7,
		},
		DeadEnemies: DeadEnemyConfig{
			Lifetime: 500 * time.Millisecond,
			Lift:     -3,
			Gravity:  9.8,
			Scale:    20,
		},
		Scenes: SceneConfig{
			TransitionDuration: 500 * time.Millisecond,
			LevelSpawnInterval: 2 * time.Second,
			TutorialExitDelay:  time.Second,
			LetterInterval:     50 * time.Millisecond,
			RevealDelay:        500 * time.Millisecond,
			ProgressRate:       0.01,
			MoveDistance:       50,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:     "none",
				MaxKills: 60,
				MaxTime:  3 * time.Minute,
			},
			Scaling: ScalingConfig{
				SpawnReduction:   0.6,
				MinSpawnInterval: 400 * time.Millisecond,
			},
		},
	}
}
